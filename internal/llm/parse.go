package llm

import (
	"encoding/json"
	"fmt"
)

// ParseJSON unmarshals the JSON object embedded in a model response into T.
// Even with JSON mode requested, providers sometimes wrap the object in
// markdown fences or lead-in prose, so the response is trimmed to its
// outermost braces before decoding.
func ParseJSON[T any](response string) (T, error) {
	var zero T
	jsonStr := response

	start := -1
	end := -1

	for i, c := range jsonStr {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(jsonStr) - 1; i >= 0; i-- {
		if c := jsonStr[i]; c == '}' {
			end = i + 1
			break
		}
	}

	if start != -1 && end != -1 && start < end {
		jsonStr = jsonStr[start:end]
	} else if start == -1 {
		return zero, fmt.Errorf("response contains no JSON object")
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("invalid JSON in response: %w (data: %s)", err, jsonStr)
	}

	return result, nil
}

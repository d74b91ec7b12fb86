package pipeline

import "fmt"

// Stage names which of the two upstream calls failed.
type Stage string

const (
	StageAnswer     Stage = "answer"
	StageExtraction Stage = "extraction"
)

// ConfigurationError means the upstream credential is missing. Fatal for
// the attempt, surfaced verbatim to the user.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// UpstreamError wraps a failed chat-completion call (transport failure or
// non-success status from the API client).
type UpstreamError struct {
	Stage Stage
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s call failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError means the extraction call returned text that is not valid
// JSON for the expected shape. Propagated, never retried.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse extraction response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

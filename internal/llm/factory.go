package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/graphweave/graphweave/internal/config"
)

// New builds the chat client for the configured provider. The credential is
// resolved here at construction and again checked per attempt by the caller,
// so a missing key surfaces as a configuration error on generate, not a
// crash at boot.
func New(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	provider := strings.ToLower(cfg.Provider)
	apiKey := cfg.ResolveAPIKey()

	switch provider {
	case "", "openai":
		return NewOpenAIClient(apiKey, cfg.Model, cfg.BaseURL), nil

	case "claude":
		return NewClaudeClient(apiKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, apiKey, cfg.Model)

	case "compat":
		// Any OpenAI-compatible endpoint (Ollama, vLLM, gateways).
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		if apiKey == "" {
			apiKey = "compat" // Some compatible servers ignore the key but the client requires one.
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

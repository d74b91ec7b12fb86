package llm

import (
	"context"
)

// Request carries everything one chat-completion call needs. The two
// pipeline stages use different temperatures and only the extraction stage
// asks for JSON-object output, so these ride on the request rather than the
// client.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

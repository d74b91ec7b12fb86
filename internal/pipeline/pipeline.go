package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/graphweave/graphweave/internal/config"
	"github.com/graphweave/graphweave/internal/graph"
	"github.com/graphweave/graphweave/internal/llm"
)

// Result is the normalized payload of one full generation.
type Result struct {
	Question   string
	Answer     string
	Extraction graph.Extraction
}

// Generator runs the two-stage answer→extract pipeline. The stages are
// strictly sequential: the extraction prompt embeds the answer text, so
// the calls can never overlap.
type Generator struct {
	client llm.Client
	cfg    *config.Config
	log    *zap.Logger
}

func NewGenerator(client llm.Client, cfg *config.Config, log *zap.Logger) *Generator {
	return &Generator{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// Generate answers the question, then extracts a graph from the answer.
// It short-circuits on the first failure; no retry, no backoff, no timeout
// beyond the HTTP client's own.
func (g *Generator) Generate(ctx context.Context, question string) (*Result, error) {
	if !g.cfg.LLM.HasAPIKey() {
		err := &ConfigurationError{Reason: "LLM API key is not configured"}
		g.log.Error("generation aborted", zap.Error(err))
		return nil, err
	}

	answer, err := g.answer(ctx, question)
	if err != nil {
		g.log.Error("answer stage failed", zap.Error(err))
		return nil, err
	}

	extraction, err := g.extract(ctx, question, answer)
	if err != nil {
		g.log.Error("extraction stage failed", zap.Error(err))
		return nil, err
	}

	return &Result{
		Question:   question,
		Answer:     answer,
		Extraction: extraction,
	}, nil
}

func (g *Generator) answer(ctx context.Context, question string) (string, error) {
	text, err := g.client.Complete(ctx, llm.Request{
		System:      g.cfg.Answer.SystemPrompt,
		Prompt:      question,
		Temperature: g.cfg.Answer.Temperature,
		MaxTokens:   g.cfg.Answer.MaxTokens,
	})
	if err != nil {
		return "", &UpstreamError{Stage: StageAnswer, Err: err}
	}
	return text, nil
}

func (g *Generator) extract(ctx context.Context, question, answer string) (graph.Extraction, error) {
	prompt := fmt.Sprintf(g.cfg.Extraction.UserTemplate, question, answer)

	text, err := g.client.Complete(ctx, llm.Request{
		System:      g.cfg.Extraction.SystemPrompt,
		Prompt:      prompt,
		Temperature: g.cfg.Extraction.Temperature,
		MaxTokens:   g.cfg.Extraction.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return graph.Extraction{}, &UpstreamError{Stage: StageExtraction, Err: err}
	}

	extraction, err := llm.ParseJSON[graph.Extraction](text)
	if err != nil {
		return graph.Extraction{}, &ParseError{Err: err}
	}

	// Missing keys degrade to empty lists rather than failing.
	extraction.Normalize()
	return extraction, nil
}

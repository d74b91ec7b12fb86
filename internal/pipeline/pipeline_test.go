package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/graphweave/graphweave/internal/config"
	"github.com/graphweave/graphweave/internal/llm"
)

// mockClient returns canned responses in call order and records every
// request it sees.
type mockClient struct {
	Responses []string
	Errs      []error
	Calls     []llm.Request
}

func (m *mockClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	i := len(m.Calls)
	m.Calls = append(m.Calls, req)
	if i < len(m.Errs) && m.Errs[i] != nil {
		return "", m.Errs[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], nil
	}
	return "", fmt.Errorf("unexpected call %d", i)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.LLM.APIKey = "test-key"
	return cfg
}

const extractionJSON = `{
	"entities": [
		{"id": "e1", "name": "Alice", "type": "person"},
		{"id": "e2", "name": "Go", "type": "technology"}
	],
	"relationships": [
		{"source": "e1", "target": "e2", "label": "uses", "strength": 0.9}
	]
}`

func TestGenerateTwoStageSuccess(t *testing.T) {
	mock := &mockClient{Responses: []string{"Alice writes Go.", extractionJSON}}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(), "Who is Alice?")

	require.NoError(t, err)
	assert.Equal(t, "Who is Alice?", result.Question)
	assert.Equal(t, "Alice writes Go.", result.Answer)
	assert.Len(t, result.Extraction.Entities, 2)
	assert.Len(t, result.Extraction.Relationships, 1)

	require.Len(t, mock.Calls, 2)

	answerCall := mock.Calls[0]
	assert.Equal(t, float32(0.7), answerCall.Temperature)
	assert.False(t, answerCall.JSONMode)
	assert.Equal(t, "Who is Alice?", answerCall.Prompt)

	extractCall := mock.Calls[1]
	assert.Equal(t, float32(0.3), extractCall.Temperature)
	assert.True(t, extractCall.JSONMode)
	// The extraction prompt embeds the first stage's answer.
	assert.Contains(t, extractCall.Prompt, "Alice writes Go.")
	assert.Contains(t, extractCall.Prompt, "Who is Alice?")
}

func TestGenerateMissingAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := config.Default()
	cfg.LLM.APIKey = ""
	mock := &mockClient{}
	gen := NewGenerator(mock, cfg, zap.NewNop())

	_, err := gen.Generate(context.Background(), "anything")

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	// No upstream call is made at all.
	assert.Empty(t, mock.Calls)
}

func TestGenerateAnswerStageFailure(t *testing.T) {
	mock := &mockClient{Errs: []error{errors.New("503 Service Unavailable")}}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "q")

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, StageAnswer, upErr.Stage)
	// Short-circuits: the extraction call never happens.
	assert.Len(t, mock.Calls, 1)
}

func TestGenerateExtractionStageFailure(t *testing.T) {
	mock := &mockClient{
		Responses: []string{"an answer"},
		Errs:      []error{nil, errors.New("429 Too Many Requests")},
	}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "q")

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, StageExtraction, upErr.Stage)
}

func TestGenerateParseError(t *testing.T) {
	mock := &mockClient{Responses: []string{"an answer", "this is not json"}}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "q")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGenerateEmptyExtractionObject(t *testing.T) {
	mock := &mockClient{Responses: []string{"an answer", "{}"}}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(), "q")

	require.NoError(t, err)
	assert.NotNil(t, result.Extraction.Entities)
	assert.NotNil(t, result.Extraction.Relationships)
	assert.Empty(t, result.Extraction.Entities)
	assert.Empty(t, result.Extraction.Relationships)
}

func TestGenerateMarkdownWrappedExtraction(t *testing.T) {
	wrapped := "```json\n" + extractionJSON + "\n```"
	mock := &mockClient{Responses: []string{"an answer", wrapped}}
	gen := NewGenerator(mock, testConfig(), zap.NewNop())

	result, err := gen.Generate(context.Background(), "q")

	require.NoError(t, err)
	assert.Len(t, result.Extraction.Entities, 2)
}

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// HasAPIKey reports whether a credential is available for the next call.
// It is consulted per generation attempt, not once at boot, so an operator
// can export the key without restarting the process.
func (c LLMConfig) HasAPIKey() bool {
	return c.ResolveAPIKey() != ""
}

func (c LLMConfig) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}

// AnswerConfig drives the first upstream call (free-form answer).
type AnswerConfig struct {
	SystemPrompt string  `toml:"system_prompt"`
	Temperature  float32 `toml:"temperature"`
	MaxTokens    int     `toml:"max_tokens"`
}

// ExtractionConfig drives the second upstream call (structured graph).
// UserTemplate is a Sprintf template receiving the question and the answer.
type ExtractionConfig struct {
	SystemPrompt string  `toml:"system_prompt"`
	UserTemplate string  `toml:"user_template"`
	Temperature  float32 `toml:"temperature"`
	MaxTokens    int     `toml:"max_tokens"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Answer     AnswerConfig     `toml:"answer"`
	Extraction ExtractionConfig `toml:"extraction"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables if present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}

// Default returns a config that works without a config file, so the server
// can boot with nothing but an API key in the environment.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Answer: AnswerConfig{
			SystemPrompt: "You are a helpful assistant. Provide clear, informative answers to questions.",
			Temperature:  0.7,
			MaxTokens:    1000,
		},
		Extraction: ExtractionConfig{
			SystemPrompt: defaultExtractionPrompt,
			UserTemplate: "Question: %s\n\nAnswer: %s",
			Temperature:  0.3,
			MaxTokens:    2000,
		},
	}
}

const defaultExtractionPrompt = `You are a knowledge graph extraction system. Given a question and its answer, extract the key entities and relationships.

Return ONLY a valid JSON object with this exact structure:
{
  "entities": [
    {"id": "unique_id", "name": "Entity Name", "type": "person|place|concept|organization|event|technology|other", "description": "brief description"}
  ],
  "relationships": [
    {"source": "entity_id_1", "target": "entity_id_2", "label": "relationship description", "strength": 0.8}
  ]
}

Rules:
- Extract 6-12 of the most important entities
- Extract 8-15 relationships between them
- Every relationship's source and target must be an entity id from the entities list
- strength is a number between 0 and 1
- Make sure the graph is connected`

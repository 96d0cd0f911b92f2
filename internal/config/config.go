package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CheckPrompts overrides the built-in prompt templates per check. Each value
// is an fmt template whose verbs must match the defaults in the checks
// package. Empty fields fall back to the defaults.
type CheckPrompts struct {
	Temporal     string `toml:"temporal"`
	Description  string `toml:"description"`
	Reference    string `toml:"reference"`
	Relationship string `toml:"relationship"`
}

type SummaryPrompts struct {
	Report string `toml:"report"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Checks   CheckPrompts   `toml:"checks"`
	Summary  SummaryPrompts `toml:"summary"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the config file if it exists and falls back to an
// empty config otherwise, so the binaries can run from env vars alone.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return &Config{}
	}
	return cfg
}

// ApplyEnv overrides file values with environment variables when present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		c.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
}

// Validate checks that the oracle is usable. A run must fail closed before
// any check starts when no valid provider configuration exists.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "":
		return fmt.Errorf("no llm provider configured (set llm.provider or LLM_PROVIDER)")
	case "ollama":
		return nil // local, no credential needed
	case "openai", "gemini", "claude":
		if c.LLM.APIKey == "" && c.LLM.BaseURL == "" {
			return fmt.Errorf("no credential available for provider %q (set llm.api_key or LLM_API_KEY)", c.LLM.Provider)
		}
		return nil
	default:
		return fmt.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}
}

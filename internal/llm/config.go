package llm

import (
	"fmt"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
	ProviderNone       = "none"
)

// Config holds LLM provider configuration. The struct tags are read by
// caarlos0/env; see internal/config.
type Config struct {
	// Provider selects the backend. Empty means discover from API keys,
	// "none" disables LLM help entirely.
	Provider string `env:"FRACDIV_LLM_PROVIDER"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single logical request including retries.
	Timeout time.Duration `env:"FRACDIV_LLM_TIMEOUT" envDefault:"30s"`
}

type AnthropicConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
	Model  string `env:"FRACDIV_ANTHROPIC_MODEL" envDefault:"claude-haiku"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"FRACDIV_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"FRACDIV_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"FRACDIV_GEMINI_MODEL" envDefault:"gemini-flash"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"OPENROUTER_API_KEY"`
	Model   string `env:"FRACDIV_OPENROUTER_MODEL" envDefault:"google/gemini-2.0-flash-001"`
	BaseURL string `env:"FRACDIV_OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"FRACDIV_LLM_MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"FRACDIV_LLM_INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"FRACDIV_LLM_MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"FRACDIV_LLM_BACKOFF_MULTIPLIER" envDefault:"2"`
}

// DefaultConfig mirrors the envDefault tags for callers that do not go
// through the environment.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Resolve fills in Provider when it was left empty by probing API keys in
// priority order Gemini, OpenAI, Anthropic, OpenRouter. It returns
// ErrNoProvider when nothing is available or the provider is "none".
func (c Config) Resolve() (Config, error) {
	if c.Provider == ProviderNone {
		return c, ErrNoProvider
	}
	if c.Provider == "" {
		switch {
		case c.Gemini.APIKey != "":
			c.Provider = ProviderGemini
		case c.OpenAI.APIKey != "":
			c.Provider = ProviderOpenAI
		case c.Anthropic.APIKey != "":
			c.Provider = ProviderAnthropic
		case c.OpenRouter.APIKey != "":
			c.Provider = ProviderOpenRouter
		default:
			return c, ErrNoProvider
		}
	}
	return c, c.Validate()
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	var key, envName string
	switch c.Provider {
	case ProviderAnthropic:
		key, envName = c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, envName = c.OpenAI.APIKey, "OPENAI_API_KEY"
	case ProviderGemini:
		key, envName = c.Gemini.APIKey, "GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, envName = c.OpenRouter.APIKey, "OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envName, c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

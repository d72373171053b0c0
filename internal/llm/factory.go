package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// NewProvider builds the configured provider wrapped as
// caller → timeout → retry → logging → base, so every attempt is recorded.
// cfg must already be resolved; see Config.Resolve.
func NewProvider(ctx context.Context, cfg Config, rec Recorder, logger zerolog.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	case "", ProviderNone:
		return nil, ErrNoProvider
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, rec, logger)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}

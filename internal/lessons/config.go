package lessons

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.5,
	}
}

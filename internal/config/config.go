// Package config loads fracdiv settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// Config is the fully resolved application configuration.
type Config struct {
	Env      string `env:"FRACDIV_ENV" envDefault:"production"`
	DBPath   string `env:"FRACDIV_DB"`
	LogLevel string `env:"FRACDIV_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"FRACDIV_LOG_FILE"`

	Practice Practice
	LLM      llm.Config
}

// Practice controls lesson pacing and problem generation.
type Practice struct {
	ExactCount    int     `env:"FRACDIV_EXACT_COUNT" envDefault:"3"`
	PracticeCount int     `env:"FRACDIV_PRACTICE_COUNT" envDefault:"3"`
	RepeatSkip    float64 `env:"FRACDIV_REPEAT_SKIP" envDefault:"0.7"`

	// Seed fixes the problem sequence. Zero means random.
	Seed uint64 `env:"FRACDIV_SEED"`
}

// Load reads dotenv files (default ".env") and then the environment.
// Missing dotenv files are skipped; variables already set are not
// overridden.
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the practice settings. LLM settings are validated when a
// provider is resolved, since running without one is fine.
func (c *Config) Validate() error {
	p := c.Practice
	if p.ExactCount < 1 {
		return fmt.Errorf("FRACDIV_EXACT_COUNT must be at least 1, got %d", p.ExactCount)
	}
	if p.PracticeCount < 1 {
		return fmt.Errorf("FRACDIV_PRACTICE_COUNT must be at least 1, got %d", p.PracticeCount)
	}
	// At 1 a repeated quotient could never be accepted.
	if p.RepeatSkip < 0 || p.RepeatSkip >= 1 {
		return fmt.Errorf("FRACDIV_REPEAT_SKIP must be within [0, 1), got %v", p.RepeatSkip)
	}
	return nil
}

// GeneratorConfig returns the problem generator settings for p.
func (p Practice) GeneratorConfig() problemgen.Config {
	cfg := problemgen.DefaultConfig()
	cfg.RepeatSkipProbability = p.RepeatSkip
	return cfg
}

// IsDevelopment reports whether console-friendly output is wanted.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

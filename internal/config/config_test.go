package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FRACDIV_ENV", "FRACDIV_DB", "FRACDIV_LOG_LEVEL", "FRACDIV_LOG_FILE",
		"FRACDIV_EXACT_COUNT", "FRACDIV_PRACTICE_COUNT", "FRACDIV_REPEAT_SKIP", "FRACDIV_SEED",
		"FRACDIV_LLM_PROVIDER", "FRACDIV_LLM_TIMEOUT", "FRACDIV_LLM_MAX_ATTEMPTS",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, 3, cfg.Practice.ExactCount)
	assert.Equal(t, 3, cfg.Practice.PracticeCount)
	assert.InDelta(t, 0.7, cfg.Practice.RepeatSkip, 1e-9)
	assert.Zero(t, cfg.Practice.Seed)

	assert.Empty(t, cfg.LLM.Provider)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.OpenRouter.BaseURL)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.LLM.Retry.InitialWait)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRACDIV_ENV", "development")
	t.Setenv("FRACDIV_DB", "/tmp/fd.db")
	t.Setenv("FRACDIV_PRACTICE_COUNT", "5")
	t.Setenv("FRACDIV_SEED", "42")
	t.Setenv("FRACDIV_LLM_TIMEOUT", "5s")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "/tmp/fd.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.Practice.PracticeCount)
	assert.Equal(t, uint64(42), cfg.Practice.Seed)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FRACDIV_EXACT_COUNT=4\nFRACDIV_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("FRACDIV_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Practice.ExactCount)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"FRACDIV_EXACT_COUNT":    "0",
		"FRACDIV_PRACTICE_COUNT": "-1",
		"FRACDIV_REPEAT_SKIP":    "1.5",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, k)
		})
	}
}

func TestValidate_RepeatSkipRange(t *testing.T) {
	base := Practice{ExactCount: 3, PracticeCount: 3}
	tests := []struct {
		p       float64
		wantErr bool
	}{
		{0, false},
		{0.7, false},
		{0.999, false},
		{1, true},
		{-0.1, true},
	}
	for _, tc := range tests {
		p := base
		p.RepeatSkip = tc.p
		err := (&Config{Practice: p}).Validate()
		if tc.wantErr {
			assert.ErrorContains(t, err, "FRACDIV_REPEAT_SKIP", "RepeatSkip=%v", tc.p)
		} else {
			assert.NoError(t, err, "RepeatSkip=%v", tc.p)
		}
	}
}

func TestLoad_Unparseable(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRACDIV_EXACT_COUNT", "three")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestPractice_GeneratorConfig(t *testing.T) {
	cfg := Practice{RepeatSkip: 0.25}.GeneratorConfig()
	assert.InDelta(t, 0.25, cfg.RepeatSkipProbability, 1e-9)
	assert.NotEmpty(t, cfg.Validators)
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("fracdiv", "production", "debug", &buf)
	logger.Debug().Str("problem", "3/4 ÷ 3/8").Msg("generated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fracdiv", line["app"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "3/4 ÷ 3/8", line["problem"])
	assert.Contains(t, line, "time")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New("fracdiv", "production", "warn", &buf)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DevelopmentConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New("fracdiv", "development", "info", &buf)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "console output should not be JSON")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New("fracdiv", "production", "info", &buf)

	ctx := IntoContext(context.Background(), logger)
	got := FromContext(ctx)
	got.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	nop := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fracdiv", "fracdiv.log"), p)

	f, err := OpenFile(p)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, p)
}

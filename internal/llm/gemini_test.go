package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint":  map[string]any{"type": "string", "description": "one line"},
			"step":  map[string]any{"type": "integer"},
			"kind":  map[string]any{"type": "string", "enum": []any{"flip", "multiply"}},
			"steps": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1, "maxItems": 4},
		},
		"required": []string{"hint", "step"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("expected object, got %v", s.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("expected 2 required fields, got %v", s.Required)
	}
	if s.Properties["hint"].Description != "one line" {
		t.Errorf("description lost")
	}
	if s.Properties["step"].Type != genai.TypeInteger {
		t.Errorf("expected integer step")
	}
	if len(s.Properties["kind"].Enum) != 2 {
		t.Errorf("expected enum of 2, got %v", s.Properties["kind"].Enum)
	}
	steps := s.Properties["steps"]
	if steps.Items == nil || steps.Items.Type != genai.TypeString {
		t.Fatalf("expected string items")
	}
	if steps.MaxItems == nil || *steps.MaxItems != 4 {
		t.Errorf("maxItems not carried over")
	}
}

func TestGeminiSchema_UnknownTypeDefaultsToString(t *testing.T) {
	if s := geminiSchema(map[string]any{"type": "null"}); s.Type != genai.TypeString {
		t.Errorf("expected string fallback, got %v", s.Type)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if err := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Errorf("expected ErrRateLimit, got %T", err)
	}
	var un *ErrProviderUnavailable
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &un) {
		t.Errorf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

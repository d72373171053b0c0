package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_StructuredOutput(t *testing.T) {
	var got map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(anthropicMessage(`{"answer":"5/8"}`, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Prompt("You are a fractions tutor.", "Explain 3/4 ÷ 6/5.", answerSchema, 256, 0.3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"5/8"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Errorf("expected 80 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if got["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("alias not resolved, sent model %v", got["model"])
	}
	if _, ok := got["system"]; !ok {
		t.Error("system prompt not sent")
	}
}

func TestAnthropicProvider_SchemaViolation(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(anthropicMessage(`{"wrong":1}`, "end_turn"))
	})

	_, err := p.Generate(context.Background(), Prompt("", "x", answerSchema, 64, 0))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl) && rl.RetryAfter == 2*time.Second
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
		{"bad key", http.StatusUnauthorized, func(err error) bool {
			var rej *ErrRequestRejected
			return errors.As(err, &rej) && rej.Status == http.StatusUnauthorized
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "2")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": "api_error", "message": tt.name},
				})
			})
			_, err := p.Generate(context.Background(), Prompt("", "x", nil, 64, 0))
			if !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input   string
		aliases map[string]string
		want    string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"claude-sonnet", anthropicModels, "claude-sonnet-4-5-20250929"},
		{"gemini-flash", geminiModels, "gemini-2.0-flash"},
		{"gpt-4o-mini", openaiModels, "gpt-4o-mini"},
		{"some-new-model", anthropicModels, "some-new-model"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

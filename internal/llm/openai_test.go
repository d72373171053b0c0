package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func newOpenAIServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL + "/v1"
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	var body map[string]any
	url := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"answer":"2"}`, "stop"))
	})
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), Prompt("tutor", "3/4 ÷ 3/8", answerSchema, 128, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}

	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(msgs))
	}
	format, _ := body["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("expected json_schema response format, got %v", format["type"])
	}
}

func TestOpenAIProvider_TruncatedStructuredOutput(t *testing.T) {
	url := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"answer":"2"}`, "length"))
	})
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})

	_, err := p.Generate(context.Background(), Prompt("", "x", answerSchema, 8, 0))
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusTooManyRequests, "rate"},
		{http.StatusInternalServerError, "unavailable"},
		{http.StatusBadRequest, "rejected"},
	}
	for _, tt := range tests {
		url := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "error", "message": "boom", "code": "boom"},
			})
		})
		p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})
		_, err := p.Generate(context.Background(), Prompt("", "x", nil, 8, 0))

		var (
			rl  *ErrRateLimit
			un  *ErrProviderUnavailable
			rej *ErrRequestRejected
		)
		switch tt.want {
		case "rate":
			if !errors.As(err, &rl) {
				t.Errorf("status %d: expected ErrRateLimit, got %T", tt.status, err)
			}
		case "unavailable":
			if !errors.As(err, &un) {
				t.Errorf("status %d: expected ErrProviderUnavailable, got %T", tt.status, err)
			}
		case "rejected":
			if !errors.As(err, &rej) {
				t.Errorf("status %d: expected ErrRequestRejected, got %T", tt.status, err)
			}
		}
	}
}

func TestOpenRouterProvider_UsesCompatibleAPI(t *testing.T) {
	var path, auth, model string
	url := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		model, _ = body["model"].(string)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`"ok"`, "stop"))
	})

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "or-key", Model: "google/gemini-2.0-flash-001", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(context.Background(), Prompt("", "hi", nil, 8, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/v1/chat/completions" {
		t.Errorf("unexpected path %q", path)
	}
	if auth != "Bearer or-key" {
		t.Errorf("unexpected auth header %q", auth)
	}
	if model != "google/gemini-2.0-flash-001" {
		t.Errorf("model should pass through verbatim, got %q", model)
	}
}

func TestNewOpenRouterProvider_DefaultBaseURL(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "m"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "m" {
		t.Errorf("unexpected model %q", p.ModelID())
	}
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

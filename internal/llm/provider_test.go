package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]string{"answer": "2"}))
	mock.AddResponse(MockJSON(map[string]string{"answer": "5/8"}))

	for _, want := range []string{"2", "5/8"} {
		resp, err := mock.Generate(context.Background(), Prompt("", "q", answerSchema, 8, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var out struct{ Answer string }
		if err := resp.Decode(&out); err != nil {
			t.Fatal(err)
		}
		if out.Answer != want {
			t.Errorf("got %q, want %q", out.Answer, want)
		}
	}

	_, err := mock.Generate(context.Background(), Request{})
	var un *ErrProviderUnavailable
	if !errors.As(err, &un) {
		t.Fatalf("empty queue should be unavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
	if mock.LastCall().Schema != nil {
		t.Error("last call should be the schema-less request")
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]int{"answer": 2}))
	_, err := mock.Generate(context.Background(), Prompt("", "q", answerSchema, 8, 0))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestResponse_DecodeError(t *testing.T) {
	r := &Response{Content: []byte(`nope`)}
	var v map[string]any
	var inv *ErrInvalidResponse
	if err := r.Decode(&v); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestConfigResolve(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		want    string
		wantErr error
	}{
		{"nothing configured", func(*Config) {}, "", ErrNoProvider},
		{"disabled", func(c *Config) { c.Provider = ProviderNone; c.Gemini.APIKey = "g" }, "", ErrNoProvider},
		{"gemini wins discovery", func(c *Config) { c.Gemini.APIKey = "g"; c.OpenAI.APIKey = "o" }, ProviderGemini, nil},
		{"openai before anthropic", func(c *Config) { c.OpenAI.APIKey = "o"; c.Anthropic.APIKey = "a" }, ProviderOpenAI, nil},
		{"openrouter last", func(c *Config) { c.OpenRouter.APIKey = "r" }, ProviderOpenRouter, nil},
		{"explicit provider kept", func(c *Config) { c.Provider = ProviderAnthropic; c.Anthropic.APIKey = "a"; c.Gemini.APIKey = "g" }, ProviderAnthropic, nil},
		{"mock needs no key", func(c *Config) { c.Provider = ProviderMock }, ProviderMock, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			got, err := cfg.Resolve()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Provider != tt.want {
				t.Errorf("provider = %q, want %q", got.Provider, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	if err := cfg.Validate(); err == nil {
		t.Error("expected missing key error")
	}
	cfg.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown provider error")
	}
	cfg.Provider = ProviderGemini
	cfg.Gemini.APIKey = "g"
	cfg.Retry.MaxAttempts = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected retry attempts error")
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("unexpected model %q", p.ModelID())
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Errorf("expected timeout wrapper outermost, got %T", p)
	}

	cfg.Provider = ""
	if _, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop()); !errors.Is(err, ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}
	cfg.Provider = "llama"
	if _, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop()); err == nil {
		t.Error("expected unknown provider error")
	}
}

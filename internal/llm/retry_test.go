package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// newTestRetry returns a RetryProvider that records waits instead of sleeping.
func newTestRetry(p Provider, attempts int) (*RetryProvider, *[]time.Duration) {
	waits := &[]time.Duration{}
	r := WithRetry(p, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2.0,
	}).(*RetryProvider)
	r.sleep = func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return ctx.Err()
	}
	return r, waits
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func ok() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	mock := NewMockProvider(ok())
	p, waits := newTestRetry(mock, 3)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 || len(*waits) != 0 {
		t.Fatalf("expected a single call and no waits, got %d calls %v", mock.CallCount(), *waits)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(down(), down(), ok())
	p, waits := newTestRetry(mock, 3)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(*waits) != 2 {
		t.Fatalf("expected 2 waits, got %v", *waits)
	}
	// ±20% jitter around 100ms then 200ms.
	if w := (*waits)[0]; w < 80*time.Millisecond || w > 120*time.Millisecond {
		t.Errorf("first wait out of range: %v", w)
	}
	if w := (*waits)[1]; w < 160*time.Millisecond || w > 240*time.Millisecond {
		t.Errorf("second wait out of range: %v", w)
	}
}

func TestRetry_BackoffCapped(t *testing.T) {
	r, _ := newTestRetry(NewMockProvider(), 5)
	for attempt := range 5 {
		if w := r.backoff(attempt, errors.New("x")); w > 360*time.Millisecond {
			t.Errorf("attempt %d wait %v exceeds cap plus jitter", attempt, w)
		}
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(down(), down(), down(), ok())
	p, _ := newTestRetry(mock, 3)

	_, err := p.Generate(context.Background(), Request{})
	var un *ErrProviderUnavailable
	if !errors.As(err, &un) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_NonRetryable(t *testing.T) {
	tests := map[string]error{
		"max tokens": &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)},
		"rejected":   &ErrRequestRejected{Status: 401, Err: errors.New("bad key")},
		"canceled":   context.Canceled,
	}
	for name, fail := range tests {
		t.Run(name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: fail}, ok())
			p, _ := newTestRetry(mock, 3)

			if _, err := p.Generate(context.Background(), Request{}); !errors.Is(err, fail) {
				t.Fatalf("expected %v, got %v", fail, err)
			}
			if mock.CallCount() != 1 {
				t.Fatalf("expected 1 call, got %d", mock.CallCount())
			}
		})
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, ok())
	p, _ := newTestRetry(mock, 5)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 7 * time.Second, Err: errors.New("429")}},
		ok(),
	)
	p, waits := newTestRetry(mock, 3)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 1 || (*waits)[0] != 7*time.Second {
		t.Fatalf("expected a single 7s wait, got %v", *waits)
	}
}

func TestRetry_ContextCanceledDuringWait(t *testing.T) {
	mock := NewMockProvider(down(), ok())
	p, _ := newTestRetry(mock, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	if _, err := p.Generate(context.Background(), Request{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if p.ModelID() != "slow" {
		t.Errorf("ModelID not delegated")
	}
	if WithTimeout(slowProvider{}, 0) != (slowProvider{}) {
		t.Error("zero timeout should return the provider unchanged")
	}
}

package llm

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/fracdiv/internal/store"
)

type fakeRecorder struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	var buf bytes.Buffer
	mock := NewMockProvider(MockResponse{Content: []byte(`{"answer":"2"}`), Usage: newUsage(12, 8)})
	p := WithLogging(mock, ProviderMock, rec, zerolog.New(&buf).Level(zerolog.DebugLevel))

	ctx := WithPurpose(context.Background(), PurposeLesson)
	if _, err := p.Generate(ctx, Prompt("sys", "3/4 ÷ 3/8", answerSchema, 64, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Purpose != PurposeLesson || ev.Provider != ProviderMock || !ev.Success {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 8 {
		t.Errorf("usage not recorded: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[schema: test-answer]") || !strings.Contains(ev.RequestBody, "3/4 ÷ 3/8") {
		t.Errorf("request body missing parts: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"answer":"2"}` {
		t.Errorf("unexpected response body %q", ev.ResponseBody)
	}
	if !strings.Contains(buf.String(), `"purpose":"lesson"`) {
		t.Errorf("log line missing purpose: %s", buf.String())
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	var buf bytes.Buffer
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, ProviderMock, rec, zerolog.New(&buf))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	ev := rec.events[0]
	if ev.Success || ev.ErrorMessage == "" || ev.Purpose != "unknown" {
		t.Errorf("unexpected event: %+v", ev)
	}
	out := buf.String()
	if !strings.Contains(out, "llm request") || !strings.Contains(out, "record llm request event") {
		t.Errorf("expected both the request and recorder failure logged: %s", out)
	}
}

func TestLoggingProvider_NilRecorder(t *testing.T) {
	p := WithLogging(NewMockProvider(ok()), ProviderMock, nil, zerolog.Nop())
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("expected 0.75, got %v", got)
	}
	if LookupCost("mock") != nil {
		t.Error("mock should have no pricing")
	}
}

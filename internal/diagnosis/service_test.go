package diagnosis

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/fracdiv/internal/llm"
)

func wrongAnswer(answer string, ms int, accuracy float64) Request {
	return Request{
		Problem:        testProblem(),
		LearnerAnswer:  answer,
		ResponseTimeMs: ms,
		Accuracy:       accuracy,
		Attempt:        1,
	}
}

func TestService_RuleBasedMisconception(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	result := svc.Diagnose(context.Background(), wrongAnswer("9/10", 5000, 0.5), nil)
	if result.Category != CategoryMisconception {
		t.Errorf("got %q, want %q", result.Category, CategoryMisconception)
	}
	if result.MisconceptionID != "fd-no-flip" {
		t.Errorf("misconception ID = %q, want fd-no-flip", result.MisconceptionID)
	}
}

func TestService_RuleBasedSpeedRush(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	result := svc.Diagnose(context.Background(), wrongAnswer("7/3", 1500, 0.5), nil)
	if result.Category != CategorySpeedRush {
		t.Errorf("got %q, want %q", result.Category, CategorySpeedRush)
	}
	if result.ClassifierName != "speed-rush" {
		t.Errorf("got classifier %q, want speed-rush", result.ClassifierName)
	}
	if result.MisconceptionID != "" {
		t.Errorf("speed-rush should not carry a misconception ID, got %q", result.MisconceptionID)
	}
}

func TestService_UnclassifiedWithoutLLM(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	result := svc.Diagnose(context.Background(), wrongAnswer("7/3", 5000, 0.4), nil)
	if result.Category != CategoryUnclassified {
		t.Errorf("got %q, want %q", result.Category, CategoryUnclassified)
	}
	if result.ClassifierName != "none" {
		t.Errorf("got classifier %q, want none", result.ClassifierName)
	}
}

func TestService_LLMFallback(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"fd-flip-both","confidence":0.6,"reasoning":"Inverted both"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock)
	defer svc.Close()

	var mu sync.Mutex
	var asyncResult *DiagnosisResult
	done := make(chan struct{})

	cb := func(r *DiagnosisResult) {
		mu.Lock()
		asyncResult = r
		mu.Unlock()
		close(done)
	}

	// Slow answer, low accuracy, no rule match: the LLM is consulted.
	syncResult := svc.Diagnose(context.Background(), wrongAnswer("7/3", 5000, 0.4), cb)
	if syncResult.Category != CategoryUnclassified {
		t.Errorf("sync result: got %q, want %q", syncResult.Category, CategoryUnclassified)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async LLM diagnosis")
	}

	mu.Lock()
	defer mu.Unlock()
	if asyncResult == nil || asyncResult.MisconceptionID != "fd-flip-both" {
		t.Errorf("async result = %+v, want fd-flip-both", asyncResult)
	}
}

func TestService_RulesBeforeLLM(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue, must not be called.
	svc := NewService(mock)
	defer svc.Close()

	result := svc.Diagnose(context.Background(), wrongAnswer("8/5", 5000, 0.4), nil)
	if result.MisconceptionID != "fd-flip-wrong" {
		t.Errorf("got %+v, want fd-flip-wrong", result)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times, want 0", mock.CallCount())
	}
}

func TestService_CloseTwiceAndDiagnoseAfterClose(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)
	svc.Close()
	svc.Close()

	result := svc.Diagnose(context.Background(), wrongAnswer("7/3", 5000, 0.4), nil)
	if result.Category != CategoryUnclassified {
		t.Errorf("got %q, want unclassified", result.Category)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times after Close", mock.CallCount())
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		in   *DiagnosisResult
		want string
	}{
		{nil, ""},
		{&DiagnosisResult{Category: CategoryMisconception, MisconceptionID: "fd-no-flip"}, "Looks like: Multiplied without flipping"},
		{&DiagnosisResult{Category: CategoryMisconception, MisconceptionID: "nope"}, ""},
		{&DiagnosisResult{Category: CategorySpeedRush}, "That was quick. Take your time."},
		{&DiagnosisResult{Category: CategoryCareless}, "Close. Check your arithmetic."},
		{&DiagnosisResult{Category: CategoryUnclassified}, ""},
	}
	for _, tt := range tests {
		if got := Explain(tt.in); got != tt.want {
			t.Errorf("Explain(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

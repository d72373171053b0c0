package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

func testRequest() *DiagnosisRequest {
	return &DiagnosisRequest{
		Problem:       problemgen.NewProblem(fraction.F(3, 4), fraction.F(6, 5), problemgen.NonExact),
		LearnerAnswer: "7/3",
		Attempt:       2,
		Candidates:    AllMisconceptions(),
	}
}

func TestDiagnoser_MatchesMisconception(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"fd-no-flip","confidence":0.92,"reasoning":"Multiplied across"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	result, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if result.Category != CategoryMisconception {
		t.Errorf("category = %q, want %q", result.Category, CategoryMisconception)
	}
	if result.MisconceptionID != "fd-no-flip" {
		t.Errorf("misconception_id = %q, want fd-no-flip", result.MisconceptionID)
	}
	if result.Confidence != 0.92 {
		t.Errorf("confidence = %f, want 0.92", result.Confidence)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"3/4 ÷ 6/5", "Correct answer: 5/8 (3/4 × 5/6)", "fd-flip-wrong", "(would answer 9/10)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if got := mock.Calls[0].System; got != diagnosisSystemPrompt {
		t.Errorf("system prompt = %q", got)
	}
	if mock.Calls[0].Schema != DiagnosisSchema {
		t.Error("request did not carry the diagnosis schema")
	}
}

func TestDiagnoser_NullMisconception(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":null,"confidence":0.3,"reasoning":"No clear pattern"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	result, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if result.Category != CategoryUnclassified {
		t.Errorf("category = %q, want %q", result.Category, CategoryUnclassified)
	}
	if result.MisconceptionID != "" {
		t.Errorf("misconception_id = %q, want empty", result.MisconceptionID)
	}
}

func TestDiagnoser_UnknownIDFailsSchema(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"fake-id","confidence":0.9,"reasoning":"test"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	_, err := d.Diagnose(context.Background(), testRequest())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestDiagnoser_IDOutsideCandidates(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"fd-no-flip","confidence":0.9,"reasoning":"test"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	req := testRequest()
	req.Candidates = []*Misconception{GetMisconception("fd-flip-both")}
	result, err := d.Diagnose(context.Background(), req)
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if result.Category != CategoryUnclassified {
		t.Errorf("category = %q, want unclassified for an ID that was not offered", result.Category)
	}
}

func TestDiagnosisSchemaEnum(t *testing.T) {
	enum := DiagnosisSchema.Definition["properties"].(map[string]any)["misconception_id"].(map[string]any)["enum"].([]any)
	if len(enum) != len(MisconceptionIDs())+1 {
		t.Fatalf("enum has %d values, want every ID plus null", len(enum))
	}
	if enum[len(enum)-1] != nil {
		t.Error("last enum value should be null")
	}
}

func TestDiagnoser_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	if _, err := d.Diagnose(context.Background(), testRequest()); err == nil {
		t.Error("expected error from failing provider")
	}
}

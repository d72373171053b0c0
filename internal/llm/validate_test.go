package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func practiceSchema() *Schema {
	return &Schema{
		Name: "test-practice",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"steps":    map[string]any{"type": "integer", "minimum": 1},
				"kind":     map[string]any{"type": "string", "enum": []any{"exact", "non-exact"}},
			},
			"required": []any{"question", "steps"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"3/4 ÷ 3/8","steps":3,"kind":"exact"}`, false},
		{"optional omitted", `{"question":"3/4 ÷ 6/5","steps":3}`, false},
		{"missing required", `{"question":"3/4 ÷ 6/5"}`, true},
		{"wrong type", `{"question":"x","steps":"three"}`, true},
		{"below minimum", `{"question":"x","steps":0}`, true},
		{"bad enum", `{"question":"x","steps":1,"kind":"mixed"}`, true},
		{"not JSON", `question: x`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(practiceSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				if string(inv.Content) != tt.raw {
					t.Errorf("content not preserved: %s", inv.Content)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := practiceSchema()
	a, err := compileSchema(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := compileSchema(s)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached schema to be reused")
	}
}

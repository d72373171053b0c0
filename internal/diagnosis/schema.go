package diagnosis

import "github.com/abhisek/fracdiv/internal/llm"

// DiagnosisSchema constrains the LLM to a catalogued misconception ID or
// null.
var DiagnosisSchema = &llm.Schema{
	Name:        "fraction-division-diagnosis",
	Description: "Which known fraction division misconception explains a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_id": map[string]any{
				"type": []any{"string", "null"},
				"enum": misconceptionEnum(),
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0.0,
				"maximum": 1.0,
			},
			"reasoning": map[string]any{
				"type":      "string",
				"maxLength": 300,
			},
		},
		"required":             []any{"misconception_id", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

// misconceptionEnum reads seedMisconceptions directly because package
// variables are initialized before the registry's init runs.
func misconceptionEnum() []any {
	out := make([]any, 0, len(seedMisconceptions)+1)
	for _, m := range seedMisconceptions {
		out = append(out, m.ID)
	}
	return append(out, nil)
}

package llm

// answerSchema is the small schema shared by the adapter tests.
var answerSchema = &Schema{
	Name:        "test-answer",
	Description: "A single fraction answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

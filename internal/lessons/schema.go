package lessons

import "github.com/abhisek/fracdiv/internal/llm"

// LessonSchema is the structured output contract for micro-lessons.
var LessonSchema = &llm.Schema{
	Name:        "fraction-division-lesson",
	Description: "A micro-lesson on dividing fractions with a worked example and one practice problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title (3-8 words)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "3-5 sentences addressing the learner's specific mistake",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "Numbered steps solving a similar division problem",
			},
			"practice_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"problem": map[string]any{
						"type":        "string",
						"description": "Exactly one division in the form a/b ÷ c/d",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The reduced answer, a/b or a whole number",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "One or two sentences solving it",
					},
				},
				"required":             []any{"problem", "answer", "explanation"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "explanation", "worked_example", "practice_question"},
		"additionalProperties": false,
	},
}

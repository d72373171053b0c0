package llm

// ModelCost is USD pricing per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of one request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models reachable through the aliases below.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5-20250929": {3, 15},
	"gpt-4o-mini":                {0.15, 0.6},
	"gpt-4o":                     {2.5, 10},
	"gpt-4.1-mini":               {0.4, 1.6},
	"gemini-2.0-flash":           {0.1, 0.4},
	"gemini-2.5-flash":           {0.3, 2.5},
	"gemini-2.5-pro":             {1.25, 10},
}

// Friendly model aliases per provider. Unknown names pass through as
// literal model IDs.
var (
	anthropicModels = map[string]string{
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-5-20250929",
	}
	openaiModels = map[string]string{
		"gpt-mini": "gpt-4o-mini",
	}
	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.5-pro",
	}
)

func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

package diagnosis

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// DiagnoserConfig holds generation settings for LLM diagnosis.
type DiagnoserConfig struct {
	MaxTokens   int
	Temperature float64
}

func DefaultDiagnoserConfig() DiagnoserConfig {
	return DiagnoserConfig{MaxTokens: 256, Temperature: 0.3}
}

// Diagnoser asks an LLM which catalogued misconception, if any, explains a
// wrong answer that no rule matched.
type Diagnoser struct {
	provider llm.Provider
	cfg      DiagnoserConfig
}

func NewDiagnoser(provider llm.Provider, cfg DiagnoserConfig) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

// DiagnosisRequest is one wrong answer sent for LLM diagnosis.
type DiagnosisRequest struct {
	Problem       problemgen.Problem
	LearnerAnswer string
	Attempt       int
	Candidates    []*Misconception
}

type diagnosisOutput struct {
	MisconceptionID *string `json:"misconception_id"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// Diagnose returns a misconception result, or an unclassified one when the
// model names no candidate or an ID outside the candidate list.
func (d *Diagnoser) Diagnose(ctx context.Context, req *DiagnosisRequest) (*DiagnosisResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDiagnosis)

	resp, err := d.provider.Generate(ctx, llm.Prompt(
		diagnosisSystemPrompt,
		buildDiagnosisMessage(req),
		DiagnosisSchema,
		d.cfg.MaxTokens,
		d.cfg.Temperature,
	))
	if err != nil {
		return nil, fmt.Errorf("llm diagnosis: %w", err)
	}

	var out diagnosisOutput
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}

	result := &DiagnosisResult{
		Category:       CategoryUnclassified,
		Confidence:     out.Confidence,
		ClassifierName: "llm",
		Reasoning:      out.Reasoning,
	}
	if id := out.MisconceptionID; id != nil && slices.ContainsFunc(req.Candidates, func(m *Misconception) bool { return m.ID == *id }) {
		result.Category = CategoryMisconception
		result.MisconceptionID = *id
	}
	return result, nil
}

const diagnosisSystemPrompt = `You help a fraction division tutor explain wrong answers.
You get a problem, its correct answer, what the learner typed and a list of known misconceptions.
Each misconception lists the answer it would produce for this problem, when it applies.

Return the ID of the misconception that best explains the learner's answer, or null if none does.
Only use IDs from the list. Give a confidence between 0 and 1 and one sentence of reasoning.`

// buildDiagnosisMessage lists each candidate with the answer it predicts,
// so the model can compare procedures rather than guess.
func buildDiagnosisMessage(req *DiagnosisRequest) string {
	p := req.Problem
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", p.Text())
	fmt.Fprintf(&b, "Correct answer: %s (%s × %s)\n", p.Quotient, p.Dividend, p.Divisor.Reciprocal())
	fmt.Fprintf(&b, "Learner's answer: %s\n", req.LearnerAnswer)
	fmt.Fprintf(&b, "Attempt: %d\n\nKnown misconceptions:\n", req.Attempt)
	for _, m := range req.Candidates {
		fmt.Fprintf(&b, "- %s: %s", m.ID, m.Description)
		if m.Predict != nil {
			if want, ok := m.Predict(&p); ok {
				fmt.Fprintf(&b, " (would answer %s)", want)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

package store

import (
	"context"
	"fmt"
	"sort"

	"entgo.io/ent/dialect/sql"

	"github.com/abhisek/fracdiv/ent"
	"github.com/abhisek/fracdiv/ent/answerevent"
	"github.com/abhisek/fracdiv/ent/diagnosisevent"
	"github.com/abhisek/fracdiv/ent/llmrequestevent"
	"github.com/abhisek/fracdiv/ent/sessionevent"
)

// eventFilter turns QueryOpts into a storage-level selector predicate. The
// mixin columns are shared by every event table, so one predicate serves all.
func eventFilter(opts QueryOpts) func(*sql.Selector) {
	return func(s *sql.Selector) {
		if opts.After > 0 {
			s.Where(sql.GT(s.C("sequence"), opts.After))
		}
		if opts.Before > 0 {
			s.Where(sql.LT(s.C("sequence"), opts.Before))
		}
		if !opts.From.IsZero() {
			s.Where(sql.GTE(s.C("timestamp"), opts.From))
		}
		if !opts.To.IsZero() {
			s.Where(sql.LTE(s.C("timestamp"), opts.To))
		}
	}
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionEnd), eventFilter(opts)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	out := make([]SessionSummary, len(events))
	for i, e := range events {
		out[i] = SessionSummary{
			SessionID:      e.SessionID,
			EndedAt:        e.Timestamp,
			Stage:          e.Stage,
			ProblemsServed: e.ProblemsServed,
			CorrectAnswers: e.CorrectAnswers,
			DurationSecs:   e.DurationSecs,
		}
	}
	return out, nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	out := make([]AnswerRecord, len(events))
	for i, e := range events {
		out[i] = AnswerRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:     e.SessionID,
				Stage:         e.Stage,
				ProblemText:   e.ProblemText,
				CorrectAnswer: e.CorrectAnswer,
				LearnerAnswer: e.LearnerAnswer,
				Correct:       e.Correct,
				Attempt:       e.Attempt,
				TimeMs:        e.TimeMs,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) MisconceptionCounts(ctx context.Context) (map[string]int, error) {
	events, err := r.client.DiagnosisEvent.Query().
		Where(diagnosisevent.MisconceptionIDNEQ("")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query misconceptions: %w", err)
	}
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.MisconceptionID]++
	}
	return counts, nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Where(eventFilter(opts)).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	out := make([]LLMRequestRecord, len(events))
	for i, e := range events {
		out[i] = llmRecord(e)
	}
	return out, nil
}

func llmRecord(e *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			CostUSD:      e.CostUsd,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

func (r *eventRepo) LLMUsageStats(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Select(
			llmrequestevent.FieldProvider,
			llmrequestevent.FieldModel,
			llmrequestevent.FieldPurpose,
			llmrequestevent.FieldInputTokens,
			llmrequestevent.FieldOutputTokens,
			llmrequestevent.FieldLatencyMs,
			llmrequestevent.FieldCostUsd,
			llmrequestevent.FieldSuccess,
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	type key struct{ provider, model, purpose string }
	groups := make(map[key]*LLMUsage)
	var totalLatency = make(map[key]int64)
	for _, e := range events {
		k := key{e.Provider, e.Model, e.Purpose}
		u, ok := groups[k]
		if !ok {
			u = &LLMUsage{Provider: e.Provider, Model: e.Model, Purpose: e.Purpose}
			groups[k] = u
		}
		u.Requests++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		u.CostUSD += e.CostUsd
		totalLatency[k] += e.LatencyMs
	}

	out := make([]LLMUsage, 0, len(groups))
	for k, u := range groups {
		u.AvgLatencyMs = totalLatency[k] / int64(u.Requests)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Provider != b.Provider {
			return a.Provider < b.Provider
		}
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.Purpose < b.Purpose
	})
	return out, nil
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSessionEvent_Summaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: id, Action: ActionStart, Seed: 42}))
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:      id,
			Action:         ActionEnd,
			Stage:          "practice",
			ProblemsServed: 4,
			CorrectAnswers: 3,
			DurationSecs:   90,
		}))
	}

	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sums, 3)
	assert.Equal(t, "s3", sums[0].SessionID, "newest first")
	assert.Equal(t, "practice", sums[0].Stage)
	assert.InDelta(t, 0.75, sums[0].Accuracy(), 1e-9)

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// s1 end is sequence 2; only the later two remain.
	after, err := repo.QuerySessionSummaries(ctx, QueryOpts{After: 2})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	future, err := repo.QuerySessionSummaries(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestSessionSummary_AccuracyEmpty(t *testing.T) {
	assert.Zero(t, SessionSummary{}.Accuracy())
	assert.Zero(t, ProgressData{}.Accuracy())
}

func TestAppendAnswerEvent_QueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "a", Stage: "exact", ProblemText: "4/5 ÷ 2/5", CorrectAnswer: "2", LearnerAnswer: "3", Attempt: 1, TimeMs: 4000},
		{SessionID: "a", Stage: "exact", ProblemText: "4/5 ÷ 2/5", CorrectAnswer: "2", LearnerAnswer: "2", Correct: true, Attempt: 2, TimeMs: 2500},
		{SessionID: "b", Stage: "practice", ProblemText: "1/2 ÷ 3/4", CorrectAnswer: "2/3", LearnerAnswer: "2/3", Correct: true, Attempt: 1, TimeMs: 9000},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	got, err := repo.QueryAnswers(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, answers[0], got[0].AnswerEventData)
	assert.Equal(t, answers[1], got[1].AnswerEventData)
	assert.Less(t, got[0].Sequence, got[1].Sequence)
	assert.False(t, got[0].Timestamp.IsZero())

	none, err := repo.QueryAnswers(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAppendHintAndLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendHintEvent(ctx, HintEventData{SessionID: "a", Stage: "exact", ProblemText: "4/5 ÷ 2/5", HintText: "4 ÷ 2 = 2"}))
	require.NoError(t, repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "a", ProblemText: "1/2 ÷ 3/4", Title: "Flip the divisor", PracticeText: "2/3 ÷ 1/6", PracticeVerified: true}))

	hints, err := s.Client().HintEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, hints, 1)
	assert.Equal(t, "4 ÷ 2 = 2", hints[0].HintText)

	lessons, err := s.Client().LessonEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.True(t, lessons[0].PracticeVerified)
	assert.Greater(t, lessons[0].Sequence, hints[0].Sequence)
}

func TestMisconceptionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []DiagnosisEventData{
		{SessionID: "a", Category: "misconception", MisconceptionID: "fd-no-flip", Confidence: 0.85, Classifier: "rule"},
		{SessionID: "b", Category: "misconception", MisconceptionID: "fd-no-flip", Confidence: 0.85, Classifier: "rule"},
		{SessionID: "b", Category: "misconception", MisconceptionID: "fd-flip-both", Confidence: 0.85, Classifier: "rule"},
		{SessionID: "b", Category: "careless", Confidence: 0.7, Classifier: "rule"},
	} {
		require.NoError(t, repo.AppendDiagnosisEvent(ctx, d))
	}

	counts, err := repo.MisconceptionCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"fd-no-flip": 2, "fd-flip-both": 1}, counts)
}

func TestLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, CostUSD: 0.001, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 120, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "diagnosis", InputTokens: 80, OutputTokens: 20, LatencyMs: 100, CostUSD: 0.0002, Success: true},
	}
	for _, r := range reqs {
		require.NoError(t, repo.AppendLLMRequest(ctx, r))
	}

	recs, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "gemini", recs[0].Provider, "newest first")
	assert.Equal(t, "rate limited", recs[1].ErrorMessage)

	stats, err := repo.LLMUsageStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "gemini", stats[0].Provider)
	assert.Equal(t, 1, stats[0].Requests)

	oa := stats[1]
	assert.Equal(t, "openai", oa.Provider)
	assert.Equal(t, 2, oa.Requests)
	assert.Equal(t, 1, oa.Failures)
	assert.Equal(t, 220, oa.InputTokens)
	assert.Equal(t, int64(300), oa.AvgLatencyMs)
	assert.InDelta(t, 0.001, oa.CostUSD, 1e-9)
}

func TestLatestSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seq, err := repo.LatestSequence(ctx)
	require.NoError(t, err)
	assert.Zero(t, seq)

	require.NoError(t, repo.AppendHintEvent(ctx, HintEventData{SessionID: "a"}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "a", Attempt: 1}))

	seq, err = repo.LatestSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

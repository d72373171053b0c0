package store

import (
	"context"
	"fmt"

	"github.com/abhisek/fracdiv/ent"
)

// eventRepo implements EventRepo on ent. Every append takes a sequence
// first, so a failed save leaves a gap rather than a duplicate.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.SessionEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetStage(data.Stage).
		SetProblemsServed(data.ProblemsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		SetSeed(data.Seed).
		SetLlmEnabled(data.LLMEnabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.AnswerEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetStage(data.Stage).
		SetProblemText(data.ProblemText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetAttempt(data.Attempt).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.HintEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetStage(data.Stage).
		SetProblemText(data.ProblemText).
		SetHintText(data.HintText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.DiagnosisEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetProblemText(data.ProblemText).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCategory(data.Category).
		SetMisconceptionID(data.MisconceptionID).
		SetConfidence(data.Confidence).
		SetClassifier(data.Classifier).
		SetReasoning(data.Reasoning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.LessonEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetProblemText(data.ProblemText).
		SetTitle(data.Title).
		SetPracticeText(data.PracticeText).
		SetPracticeVerified(data.PracticeVerified).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetCostUsd(data.CostUSD).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

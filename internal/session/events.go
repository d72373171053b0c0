package session

import (
	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/logging"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/store"
)

// Event recording is best-effort: a failed append is logged and the lesson
// carries on.

// End records the session end event and folds the session into the stored
// progress totals. Later calls are no-ops until RestartAll starts a new
// session.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.recordSession(store.ActionEnd)

	if s.opts.Events == nil || s.opts.Snapshots == nil {
		return
	}
	_, err := store.RecordProgress(s.ctx, s.opts.Events, s.opts.Snapshots, store.SessionResult{
		ProblemsServed: s.progress.Served,
		CorrectAnswers: s.progress.Correct,
		BestStreak:     s.progress.BestStreak,
		Completed:      s.completed,
		EndedAt:        s.now(),
	})
	if err != nil {
		s.logError(err, "record progress")
	}
}

func (s *Session) recordSession(action string) {
	if s.opts.Events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:  s.id,
		Action:     action,
		Stage:      s.stage.String(),
		Seed:       s.opts.Seed,
		LLMEnabled: s.LLMEnabled(),
	}
	if action == store.ActionEnd {
		data.ProblemsServed = s.progress.Served
		data.CorrectAnswers = s.progress.Correct
		data.DurationSecs = int(s.now().Sub(s.started).Seconds())
	}
	if err := s.opts.Events.AppendSessionEvent(s.ctx, data); err != nil {
		s.logError(err, "append session event")
	}
}

func (s *Session) recordAnswer(p problemgen.Problem, answer string, correct bool, attempt, ms int) {
	if s.opts.Events == nil {
		return
	}
	err := s.opts.Events.AppendAnswerEvent(s.ctx, store.AnswerEventData{
		SessionID:     s.id,
		Stage:         s.stage.String(),
		ProblemText:   p.Text(),
		CorrectAnswer: p.Quotient.String(),
		LearnerAnswer: answer,
		Correct:       correct,
		Attempt:       attempt,
		TimeMs:        ms,
	})
	if err != nil {
		s.logError(err, "append answer event")
	}
}

func (s *Session) recordHint(p problemgen.Problem, hint string) {
	if s.opts.Events == nil {
		return
	}
	err := s.opts.Events.AppendHintEvent(s.ctx, store.HintEventData{
		SessionID:   s.id,
		Stage:       s.stage.String(),
		ProblemText: p.Text(),
		HintText:    hint,
	})
	if err != nil {
		s.logError(err, "append hint event")
	}
}

// recordDiagnosis may run on the diagnosis goroutine, so it takes the
// session id instead of reading it.
func (s *Session) recordDiagnosis(sessionID string, p problemgen.Problem, answer string, d *diagnosis.DiagnosisResult) {
	if s.opts.Events == nil || d == nil {
		return
	}
	err := s.opts.Events.AppendDiagnosisEvent(s.ctx, store.DiagnosisEventData{
		SessionID:       sessionID,
		ProblemText:     p.Text(),
		LearnerAnswer:   answer,
		Category:        string(d.Category),
		MisconceptionID: d.MisconceptionID,
		Confidence:      d.Confidence,
		Classifier:      d.ClassifierName,
		Reasoning:       d.Reasoning,
	})
	if err != nil {
		logger := logging.FromContext(s.ctx)
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("append diagnosis event")
	}
}

func (s *Session) logError(err error, msg string) {
	logger := logging.FromContext(s.ctx)
	logger.Warn().Err(err).Str("session_id", s.id).Msg(msg)
}

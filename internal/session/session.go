package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

var (
	// ErrWrongStage is returned when an operation is not allowed in the
	// current stage.
	ErrWrongStage = errors.New("not allowed in this stage")

	// ErrUnfinished is returned by Next while the current problem still
	// awaits an answer.
	ErrUnfinished = errors.New("current problem is not finished")
)

// FeedbackKind classifies the outcome of Submit.
type FeedbackKind int

const (
	FeedbackInvalid FeedbackKind = iota // unparseable or not accepted; no attempt counted
	FeedbackCorrect
	FeedbackRetry  // first wrong answer, hint shown
	FeedbackReveal // repeated wrong answer, quotient shown
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackCorrect:
		return "correct"
	case FeedbackRetry:
		return "retry"
	case FeedbackReveal:
		return "reveal"
	}
	return "invalid"
}

// Feedback is the result of one submitted answer.
type Feedback struct {
	Kind    FeedbackKind
	Message string

	// Hint is set on FeedbackRetry.
	Hint string

	// Answer is the quotient, set on FeedbackCorrect and FeedbackReveal.
	Answer fraction.Fraction

	// Solution is the worked solution, set in the practice stage on
	// FeedbackCorrect and FeedbackReveal.
	Solution []lessons.Step

	// Diagnosis is the synchronous diagnosis of a wrong answer.
	Diagnosis *diagnosis.DiagnosisResult
}

const invalidMessage = "Enter a fraction like 3/4, a whole number like 2, or a mixed number like 1 1/2."

// Submit grades an answer to the current problem.
func (s *Session) Submit(answer string) Feedback {
	cur := s.current
	if cur == nil || cur.finished {
		return Feedback{Kind: FeedbackInvalid, Message: "There is no problem waiting for an answer."}
	}

	answer = strings.TrimSpace(answer)
	given, err := fraction.Parse(answer)
	if err != nil {
		return Feedback{Kind: FeedbackInvalid, Message: invalidMessage}
	}

	now := s.now()
	elapsed := now.Sub(cur.shownAt)
	cur.shownAt = now
	cur.attempts++
	cur.lastAnswer = answer

	p := cur.problem
	correct := problemgen.CheckAnswer(given.Num, given.Den, p.Quotient)
	s.recordAnswer(p, answer, correct, cur.attempts, int(elapsed.Milliseconds()))

	if correct {
		s.finish(true)
		fb := Feedback{
			Kind:    FeedbackCorrect,
			Message: "Correct!",
			Answer:  p.Quotient,
		}
		if s.stage == StagePractice {
			fb.Solution = lessons.WorkedSolution(p)
		}
		return fb
	}

	cur.wrongAnswers = append(cur.wrongAnswers, answer)
	diag := s.diagnose(p, answer, cur.attempts, int(elapsed.Milliseconds()))

	if cur.attempts < RevealAfter {
		hint := s.Hint()
		s.recordHint(p, hint)
		return Feedback{
			Kind:      FeedbackRetry,
			Message:   "Not quite. Check the hint and try again.",
			Hint:      hint,
			Diagnosis: diag,
		}
	}

	s.finish(false)
	s.requestLesson(p, cur.wrongAnswers, diag)
	fb := Feedback{
		Kind:      FeedbackReveal,
		Message:   fmt.Sprintf("Not quite again. The answer is %s.", p.Quotient),
		Answer:    p.Quotient,
		Diagnosis: diag,
	}
	if s.stage == StagePractice {
		fb.Solution = lessons.WorkedSolution(p)
	}
	return fb
}

// Hint returns the hint for the current problem, empty outside the
// answerable stages.
func (s *Session) Hint() string {
	if s.current == nil {
		return ""
	}
	if s.stage == StagePractice {
		return lessons.PracticeHint(s.current.problem)
	}
	return lessons.Hint(s.current.problem)
}

// Concept returns the reciprocal walkthrough of the example problem.
func (s *Session) Concept() []lessons.Step {
	return lessons.Concept(s.plan.Example)
}

func (s *Session) finish(correct bool) {
	cur := s.current
	cur.finished = true
	cur.correct = correct
	s.progress.Record(correct)
	if sp := s.stages[s.stage]; sp != nil {
		sp.Record(correct)
	}
	s.history = append(s.history, HistoryEntry{
		Stage:       s.stage,
		Problem:     cur.problem,
		FinalAnswer: cur.lastAnswer,
		Attempts:    cur.attempts,
		Correct:     correct,
	})
}

func (s *Session) diagnose(p problemgen.Problem, answer string, attempt, ms int) *diagnosis.DiagnosisResult {
	if s.opts.Diagnosis == nil {
		s.resetDiagnosis()
		return nil
	}
	sessionID := s.id
	token := s.claimDiagnosis()
	diag := s.opts.Diagnosis.Diagnose(s.ctx, diagnosis.Request{
		Problem:        &p,
		LearnerAnswer:  answer,
		ResponseTimeMs: ms,
		Accuracy:       s.progress.Accuracy(),
		Attempt:        attempt,
	}, func(async *diagnosis.DiagnosisResult) {
		s.setDiagnosis(token, async)
		s.recordDiagnosis(sessionID, p, answer, async)
	})
	s.offerDiagnosis(token, diag)
	if diag.Category != diagnosis.CategoryUnclassified {
		s.recordDiagnosis(sessionID, p, answer, diag)
	}
	return diag
}

func (s *Session) requestLesson(p problemgen.Problem, wrong []string, diag *diagnosis.DiagnosisResult) {
	if s.opts.Lessons == nil {
		return
	}
	s.opts.Lessons.RequestLesson(s.ctx, lessons.LessonInput{
		SessionID:     s.id,
		Problem:       p,
		WrongAnswers:  append([]string(nil), wrong...),
		LastDiagnosis: diag,
		Accuracy:      s.progress.Accuracy(),
	})
}

// Next advances past a finished problem. At the end of the exact batch it
// enters the concept page; at the end of the practice batch it completes
// the lesson.
func (s *Session) Next() error {
	if !s.stage.Answerable() {
		return ErrWrongStage
	}
	if !s.Finished() {
		return ErrUnfinished
	}

	s.index++
	if s.index < len(s.plan.Problems(s.stage)) {
		s.serve()
		return nil
	}

	if s.stage == StageExact {
		s.enter(StageConcept)
	} else {
		s.enter(StageComplete)
	}
	return nil
}

// Understood leaves the concept page for the practice batch.
func (s *Session) Understood() error {
	if s.stage != StageConcept {
		return ErrWrongStage
	}
	s.enter(StagePractice)
	return nil
}

// MorePractice draws a new example and practice batch and returns to the
// concept page. Counters carry over.
func (s *Session) MorePractice() error {
	if s.stage != StageComplete {
		return ErrWrongStage
	}
	s.plan.Example, s.plan.Practice = s.opts.Planner.PracticeRound()
	s.enter(StageConcept)
	return nil
}

// RestartAll ends the session and starts a new one from the first stage
// with a new id, a new plan and zeroed counters.
func (s *Session) RestartAll() {
	s.End()
	s.start()
}

// enter switches to stage st and serves its first problem. A stage whose
// batch came back empty is skipped.
func (s *Session) enter(st Stage) {
	s.stage = st
	s.index = 0
	s.current = nil

	switch st {
	case StageExact, StagePractice:
		if len(s.plan.Problems(st)) == 0 {
			if st == StageExact {
				s.enter(StageConcept)
			} else {
				s.enter(StageComplete)
			}
			return
		}
		s.serve()
	case StageComplete:
		s.completed = true
	}
}

func (s *Session) serve() {
	s.current = &problemState{
		problem: s.plan.Problems(s.stage)[s.index],
		shownAt: s.now(),
	}
	s.resetDiagnosis()
}

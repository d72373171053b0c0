package lessons

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/store"
)

// Recorder persists generated lessons. store.EventRepo satisfies it.
type Recorder interface {
	AppendLessonEvent(ctx context.Context, data store.LessonEventData) error
}

// Service generates micro-lessons asynchronously. At most one result is
// held; a newer request supersedes an older one still in flight.
type Service struct {
	provider llm.Provider
	cfg      Config
	rec      Recorder

	mu      sync.Mutex
	gen     uint64
	pending *Lesson
	err     error
	ready   bool
	wg      sync.WaitGroup
}

// NewService creates a lesson service. rec may be nil.
func NewService(provider llm.Provider, cfg Config, rec Recorder) *Service {
	return &Service{provider: provider, cfg: cfg, rec: rec}
}

// RequestLesson starts generation in the background.
func (s *Service) RequestLesson(ctx context.Context, input LessonInput) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.ready = false
	s.pending, s.err = nil, nil
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		lesson, err := s.generate(ctx, input)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending, s.err, s.ready = lesson, err, true
	}()
}

// Result is a finished lesson request. Lesson may be set even when Err is
// non-nil if only recording failed.
type Result struct {
	Lesson *Lesson
	Err    error
}

// ConsumeLesson returns the finished result, if any, and clears the slot.
// It never blocks.
func (s *Service) ConsumeLesson() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	r := Result{Lesson: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return r, true
}

// Wait blocks until every in-flight request has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

type lessonOutput struct {
	Title            string         `json:"title"`
	Explanation      string         `json:"explanation"`
	WorkedExample    string         `json:"worked_example"`
	PracticeQuestion practiceOutput `json:"practice_question"`
}

type practiceOutput struct {
	Problem     string `json:"problem"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

func (s *Service) generate(ctx context.Context, input LessonInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	req := llm.Prompt(lessonSystemPrompt, buildLessonUserMessage(input),
		LessonSchema, s.cfg.MaxTokens, s.cfg.Temperature)
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	lesson := &Lesson{
		Title:         out.Title,
		Explanation:   out.Explanation,
		WorkedExample: out.WorkedExample,
		Practice:      verifyPractice(out.PracticeQuestion),
	}

	if s.rec != nil {
		data := store.LessonEventData{
			SessionID:   input.SessionID,
			ProblemText: input.Problem.Text(),
			Title:       lesson.Title,
		}
		if lesson.Practice != nil {
			data.PracticeText = lesson.Practice.Text
			data.PracticeVerified = true
		} else {
			data.PracticeText = out.PracticeQuestion.Problem
		}
		if err := s.rec.AppendLessonEvent(ctx, data); err != nil {
			return lesson, fmt.Errorf("record lesson: %w", err)
		}
	}
	return lesson, nil
}

// verifyPractice recomputes the model's practice problem and keeps it only
// if the stated answer is right.
func verifyPractice(out practiceOutput) *PracticeQuestion {
	p, err := problemgen.ParseProblem(out.Problem)
	if err != nil {
		return nil
	}
	if !problemgen.CheckAnswerText(out.Answer, p.Quotient) {
		return nil
	}
	return &PracticeQuestion{
		Text:        p.Text(),
		Answer:      p.Quotient.String(),
		Explanation: out.Explanation,
		Problem:     p,
	}
}

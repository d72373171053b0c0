package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/store"
)

// Options wires a Session to its collaborators. Every field except Planner
// is optional.
type Options struct {
	Planner Planner

	// Events receives session, answer, hint and diagnosis events.
	Events store.EventRepo

	// Snapshots receives the progress totals when the session ends.
	Snapshots store.SnapshotRepo

	// Diagnosis classifies wrong answers.
	Diagnosis *diagnosis.Service

	// Lessons writes a micro-lesson after a reveal.
	Lessons *lessons.Service

	// Seed is recorded on the session start event.
	Seed int64

	Now   func() time.Time
	NewID func() string
}

// Session is the lesson state machine. Its methods are meant to be called
// from a single goroutine; only the diagnosis result may be written
// concurrently by async LLM diagnosis.
type Session struct {
	ctx  context.Context
	opts Options

	id      string
	stage   Stage
	plan    Plan
	index   int
	current *problemState

	progress  Progress
	stages    map[Stage]*Progress
	history   []HistoryEntry
	completed bool
	ended     bool

	started time.Time

	mu            sync.Mutex
	lastDiagnosis *diagnosis.DiagnosisResult
	diagToken     uint64 // bumped per wrong answer and per problem served
}

// problemState tracks the problem being answered.
type problemState struct {
	problem      problemgen.Problem
	attempts     int
	wrongAnswers []string
	lastAnswer   string
	shownAt      time.Time
	finished     bool
	correct      bool
}

// New starts a session at the first stage and records its start event.
func New(ctx context.Context, opts Options) *Session {
	if opts.Planner == nil {
		opts.Planner = NewPlanner(problemgen.New(problemgen.DefaultConfig(), nil), 0, 0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	s := &Session{ctx: ctx, opts: opts}
	s.start()
	return s
}

func (s *Session) start() {
	s.id = s.opts.NewID()
	s.plan = BuildPlan(s.opts.Planner)
	s.progress = Progress{}
	s.stages = map[Stage]*Progress{StageExact: {}, StagePractice: {}}
	s.history = nil
	s.completed = false
	s.ended = false
	s.started = s.now()
	s.resetDiagnosis()
	s.enter(StageExact)

	s.recordSession(store.ActionStart)
}

func (s *Session) now() time.Time {
	return s.opts.Now()
}

// ID returns the session id. It changes on RestartAll.
func (s *Session) ID() string { return s.id }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Plan returns the problems of the current pass.
func (s *Session) Plan() Plan { return s.plan }

// Example returns the concept page's example problem.
func (s *Session) Example() problemgen.Problem { return s.plan.Example }

// Current returns the problem awaiting an answer. The second result is
// false outside the answerable stages.
func (s *Session) Current() (problemgen.Problem, bool) {
	if s.current == nil {
		return problemgen.Problem{}, false
	}
	return s.current.problem, true
}

// Position returns the 1-based index of the current problem and the size of
// the stage's batch.
func (s *Session) Position() (int, int) {
	return s.index + 1, len(s.plan.Problems(s.stage))
}

// Attempts returns the number of answers given to the current problem.
func (s *Session) Attempts() int {
	if s.current == nil {
		return 0
	}
	return s.current.attempts
}

// Finished reports whether the current problem is done and Next may be
// called.
func (s *Session) Finished() bool {
	return s.current != nil && s.current.finished
}

// Progress returns the counters across all stages.
func (s *Session) Progress() Progress { return s.progress }

// Diagnosis returns the latest diagnosis of a wrong answer, which may have
// been updated by async LLM diagnosis since the answer was submitted.
func (s *Session) Diagnosis() *diagnosis.DiagnosisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDiagnosis
}

// resetDiagnosis clears the shown diagnosis. Results still in flight for
// earlier answers are discarded when they arrive.
func (s *Session) resetDiagnosis() {
	s.claimDiagnosis()
}

// claimDiagnosis clears the shown diagnosis and returns the token that a
// result for the answer being diagnosed must carry.
func (s *Session) claimDiagnosis() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagToken++
	s.lastDiagnosis = nil
	return s.diagToken
}

// setDiagnosis shows d unless a newer answer or problem has claimed the
// slot since token was issued.
func (s *Session) setDiagnosis(token uint64, d *diagnosis.DiagnosisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == s.diagToken {
		s.lastDiagnosis = d
	}
}

// offerDiagnosis is setDiagnosis that leaves an earlier result for the same
// token in place, so a fast async callback is not overwritten by the
// synchronous result it followed.
func (s *Session) offerDiagnosis(token uint64, d *diagnosis.DiagnosisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == s.diagToken && s.lastDiagnosis == nil {
		s.lastDiagnosis = d
	}
}

// LLMEnabled reports whether LLM-backed lessons are available.
func (s *Session) LLMEnabled() bool {
	return s.opts.Lessons != nil
}

// ConsumeLesson returns a finished micro-lesson, if any.
func (s *Session) ConsumeLesson() (lessons.Result, bool) {
	if s.opts.Lessons == nil {
		return lessons.Result{}, false
	}
	return s.opts.Lessons.ConsumeLesson()
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/store"
)

func exact(n1, d1, n2, d2 int) problemgen.Problem {
	return problemgen.NewProblem(fraction.F(n1, d1), fraction.F(n2, d2), problemgen.Exact)
}

func nonExact(n1, d1, n2, d2 int) problemgen.Problem {
	return problemgen.NewProblem(fraction.F(n1, d1), fraction.F(n2, d2), problemgen.NonExact)
}

// fixedPlanner serves the same problems every round.
type fixedPlanner struct {
	exact    []problemgen.Problem
	example  problemgen.Problem
	practice []problemgen.Problem
	rounds   int
}

func (p *fixedPlanner) ExactRound() []problemgen.Problem { return p.exact }

func (p *fixedPlanner) PracticeRound() (problemgen.Problem, []problemgen.Problem) {
	p.rounds++
	return p.example, p.practice
}

func testPlanner() *fixedPlanner {
	return &fixedPlanner{
		exact:    []problemgen.Problem{exact(4, 5, 2, 5), exact(9, 10, 3, 10)},
		example:  nonExact(1, 2, 3, 4),
		practice: []problemgen.Problem{nonExact(2, 3, 4, 5), nonExact(3, 4, 2, 5)},
	}
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recorder is an in-memory store.EventRepo.
type recorder struct {
	store.EventRepo // unused query methods

	mu        sync.Mutex
	sessions  []store.SessionEventData
	answers   []store.AnswerEventData
	hints     []store.HintEventData
	diagnoses []store.DiagnosisEventData
}

func (r *recorder) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, d)
	return nil
}

func (r *recorder) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers = append(r.answers, d)
	return nil
}

func (r *recorder) AppendHintEvent(_ context.Context, d store.HintEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hints = append(r.hints, d)
	return nil
}

func (r *recorder) AppendDiagnosisEvent(_ context.Context, d store.DiagnosisEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnoses = append(r.diagnoses, d)
	return nil
}

func newTestSession(t *testing.T) (*Session, *recorder, *clock) {
	t.Helper()
	rec := &recorder{}
	clk := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	ids := 0
	s := New(context.Background(), Options{
		Planner: testPlanner(),
		Events:  rec,
		Seed:    7,
		Now:     clk.Now,
		NewID: func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		},
	})
	return s, rec, clk
}

func mustNext(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
}

func TestNew_StartsAtExactStage(t *testing.T) {
	s, rec, _ := newTestSession(t)

	if s.Stage() != StageExact {
		t.Fatalf("Stage = %v, want exact", s.Stage())
	}
	p, ok := s.Current()
	if !ok || p.Text() != "4/5 ÷ 2/5" {
		t.Fatalf("Current = %v, %v", p, ok)
	}
	if i, n := s.Position(); i != 1 || n != 2 {
		t.Errorf("Position = %d/%d, want 1/2", i, n)
	}
	if len(rec.sessions) != 1 || rec.sessions[0].Action != store.ActionStart || rec.sessions[0].Seed != 7 {
		t.Errorf("start event = %+v", rec.sessions)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	s, rec, _ := newTestSession(t)

	for _, in := range []string{"", "abc", "3/0", "1/"} {
		fb := s.Submit(in)
		if fb.Kind != FeedbackInvalid {
			t.Errorf("Submit(%q) = %v, want invalid", in, fb.Kind)
		}
	}
	if s.Attempts() != 0 {
		t.Errorf("Attempts = %d, want 0", s.Attempts())
	}
	if len(rec.answers) != 0 {
		t.Errorf("recorded %d answers for invalid input", len(rec.answers))
	}
}

func TestSubmit_Correct(t *testing.T) {
	s, rec, clk := newTestSession(t)
	clk.Advance(4 * time.Second)

	fb := s.Submit("4/2")
	if fb.Kind != FeedbackCorrect {
		t.Fatalf("Kind = %v, want correct", fb.Kind)
	}
	if !fb.Answer.Identical(fraction.F(2, 1)) {
		t.Errorf("Answer = %v, want 2", fb.Answer)
	}
	if fb.Solution != nil {
		t.Error("exact stage should not carry a worked solution")
	}
	if !s.Finished() {
		t.Error("problem should be finished")
	}
	if got := s.Progress(); got.Served != 1 || got.Correct != 1 {
		t.Errorf("Progress = %+v", got)
	}

	a := rec.answers[0]
	if !a.Correct || a.Attempt != 1 || a.TimeMs != 4000 || a.Stage != "exact" || a.CorrectAnswer != "2" {
		t.Errorf("answer event = %+v", a)
	}

	if fb := s.Submit("2"); fb.Kind != FeedbackInvalid {
		t.Errorf("second Submit on a finished problem = %v, want invalid", fb.Kind)
	}
}

func TestSubmit_RetryThenReveal(t *testing.T) {
	s, rec, _ := newTestSession(t)

	fb := s.Submit("3")
	if fb.Kind != FeedbackRetry {
		t.Fatalf("first wrong = %v, want retry", fb.Kind)
	}
	if fb.Hint == "" || fb.Hint != s.Hint() {
		t.Errorf("Hint = %q", fb.Hint)
	}
	if s.Finished() {
		t.Fatal("problem finished after one wrong answer")
	}
	if err := s.Next(); !errors.Is(err, ErrUnfinished) {
		t.Errorf("Next = %v, want ErrUnfinished", err)
	}

	fb = s.Submit("5")
	if fb.Kind != FeedbackReveal {
		t.Fatalf("second wrong = %v, want reveal", fb.Kind)
	}
	if !fb.Answer.Identical(fraction.F(2, 1)) {
		t.Errorf("Answer = %v", fb.Answer)
	}
	if !s.Finished() {
		t.Error("reveal should finish the problem")
	}
	if got := s.Progress(); got.Served != 1 || got.Correct != 0 {
		t.Errorf("Progress = %+v", got)
	}
	if len(rec.answers) != 2 || rec.answers[1].Attempt != 2 {
		t.Errorf("answers = %+v", rec.answers)
	}
	if len(rec.hints) != 1 {
		t.Errorf("hints = %d, want 1", len(rec.hints))
	}

	h := s.History()
	if len(h) != 1 || h[0].Attempts != 2 || h[0].Correct || h[0].FinalAnswer != "5" {
		t.Errorf("History = %+v", h)
	}
}

func TestSubmit_CorrectAfterRetry(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.Submit("3")
	if fb := s.Submit("2"); fb.Kind != FeedbackCorrect {
		t.Fatalf("Kind = %v, want correct", fb.Kind)
	}
	h := s.History()
	if len(h) != 1 || h[0].Attempts != 2 || !h[0].Correct {
		t.Errorf("History = %+v", h)
	}
}

func TestSubmit_Diagnosis(t *testing.T) {
	rec := &recorder{}
	svc := diagnosis.NewService(nil)
	defer svc.Close()
	clk := &clock{t: time.Now()}
	s := New(context.Background(), Options{Planner: testPlanner(), Events: rec, Diagnosis: svc, Now: clk.Now})

	// Slow enough not to count as rushing; 4/5 × 2/5 without flipping.
	clk.Advance(10 * time.Second)
	fb := s.Submit("8/25")
	if fb.Diagnosis == nil || fb.Diagnosis.MisconceptionID != "fd-no-flip" {
		t.Fatalf("Diagnosis = %+v", fb.Diagnosis)
	}
	if s.Diagnosis() != fb.Diagnosis {
		t.Error("Diagnosis() should return the latest result")
	}
	if len(rec.diagnoses) != 1 || rec.diagnoses[0].MisconceptionID != "fd-no-flip" {
		t.Errorf("diagnosis events = %+v", rec.diagnoses)
	}

	s.Submit("2")
	mustNext(t, s)
	if s.Diagnosis() != nil {
		t.Error("diagnosis should reset on the next problem")
	}
}

func TestFlow_AllStages(t *testing.T) {
	s, rec, clk := newTestSession(t)

	s.Submit("2")
	mustNext(t, s)
	s.Submit("3")
	mustNext(t, s)

	if s.Stage() != StageConcept {
		t.Fatalf("Stage = %v, want concept", s.Stage())
	}
	if _, ok := s.Current(); ok {
		t.Error("concept stage should have no current problem")
	}
	if len(s.Concept()) == 0 {
		t.Error("Concept returned no steps")
	}
	if err := s.Next(); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Next in concept = %v, want ErrWrongStage", err)
	}

	if err := s.Understood(); err != nil {
		t.Fatal(err)
	}
	if s.Stage() != StagePractice {
		t.Fatalf("Stage = %v, want practice", s.Stage())
	}

	fb := s.Submit("5/6")
	if fb.Kind != FeedbackCorrect || len(fb.Solution) == 0 {
		t.Fatalf("practice correct = %+v", fb)
	}
	mustNext(t, s)

	s.Submit("1")
	fb = s.Submit("2")
	if fb.Kind != FeedbackReveal || len(fb.Solution) == 0 {
		t.Fatalf("practice reveal = %+v", fb)
	}
	mustNext(t, s)

	if s.Stage() != StageComplete {
		t.Fatalf("Stage = %v, want complete", s.Stage())
	}

	clk.Advance(2 * time.Minute)
	sum := s.Summary()
	if sum.Served != 4 || sum.Correct != 3 || !sum.Completed || sum.Duration != 2*time.Minute {
		t.Errorf("Summary = %+v", sum)
	}
	if sum.Stages[StageExact].Correct != 2 || sum.Stages[StagePractice].Served != 2 {
		t.Errorf("Stages = %+v", sum.Stages)
	}
	if sum.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", sum.Accuracy)
	}

	s.End()
	s.End()
	if n := len(rec.sessions); n != 2 {
		t.Fatalf("session events = %d, want 2", n)
	}
	end := rec.sessions[1]
	if end.Action != store.ActionEnd || end.ProblemsServed != 4 || end.CorrectAnswers != 3 || end.DurationSecs != 120 || end.Stage != "complete" {
		t.Errorf("end event = %+v", end)
	}
}

func TestPracticeHint(t *testing.T) {
	s, _, _ := newTestSession(t)
	exactHint := s.Hint()

	s.Submit("2")
	mustNext(t, s)
	s.Submit("3")
	mustNext(t, s)
	if s.Hint() != "" {
		t.Error("concept stage should have no hint")
	}
	s.Understood()

	if h := s.Hint(); h == "" || h == exactHint {
		t.Errorf("practice hint = %q", h)
	}
}

func TestMorePractice(t *testing.T) {
	s, _, _ := newTestSession(t)
	planner := s.opts.Planner.(*fixedPlanner)

	if err := s.MorePractice(); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("MorePractice before complete = %v", err)
	}

	s.Submit("2")
	mustNext(t, s)
	s.Submit("3")
	mustNext(t, s)
	s.Understood()
	s.Submit("5/6")
	mustNext(t, s)
	s.Submit("15/8")
	mustNext(t, s)

	id := s.ID()
	if err := s.MorePractice(); err != nil {
		t.Fatal(err)
	}
	if s.Stage() != StageConcept {
		t.Errorf("Stage = %v, want concept", s.Stage())
	}
	if planner.rounds != 2 {
		t.Errorf("PracticeRound calls = %d, want 2", planner.rounds)
	}
	if s.ID() != id || s.Progress().Served != 4 {
		t.Error("MorePractice should keep the session and its counters")
	}
}

func TestRestartAll(t *testing.T) {
	s, rec, _ := newTestSession(t)
	s.Submit("2")
	mustNext(t, s)

	s.RestartAll()

	if s.ID() != "session-2" {
		t.Errorf("ID = %q, want session-2", s.ID())
	}
	if s.Stage() != StageExact || s.Progress().Served != 0 || len(s.History()) != 0 {
		t.Errorf("restart did not reset: stage=%v progress=%+v", s.Stage(), s.Progress())
	}
	if i, _ := s.Position(); i != 1 {
		t.Errorf("Position = %d, want 1", i)
	}

	var actions []string
	for _, e := range rec.sessions {
		actions = append(actions, e.SessionID+":"+e.Action)
	}
	want := []string{"session-1:start", "session-1:end", "session-2:start"}
	if fmt.Sprint(actions) != fmt.Sprint(want) {
		t.Errorf("session events = %v, want %v", actions, want)
	}
}

func TestEmptyBatchesSkipStages(t *testing.T) {
	s := New(context.Background(), Options{Planner: &fixedPlanner{example: nonExact(1, 2, 3, 4)}})
	if s.Stage() != StageConcept {
		t.Fatalf("Stage = %v, want concept", s.Stage())
	}
	s.Understood()
	if s.Stage() != StageComplete {
		t.Errorf("Stage = %v, want complete", s.Stage())
	}
}

func TestEnd_RecordsProgress(t *testing.T) {
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	ctx := context.Background()
	s := New(ctx, Options{Planner: testPlanner(), Events: st.EventRepo(), Snapshots: st.SnapshotRepo()})
	s.Submit("2")
	mustNext(t, s)
	s.Submit("1")
	s.Submit("1")
	s.End()

	p, err := store.LoadProgress(ctx, st.SnapshotRepo())
	if err != nil {
		t.Fatal(err)
	}
	if p.Sessions != 1 || p.ProblemsServed != 2 || p.CorrectAnswers != 1 || p.CompletedLessons != 0 {
		t.Errorf("progress = %+v", p)
	}

	sums, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 || sums[0].SessionID != s.ID() {
		t.Errorf("summaries = %+v", sums)
	}
}

func TestDefaultPlanner(t *testing.T) {
	gen := problemgen.New(problemgen.DefaultConfig(), problemgen.NewSeededRand(42))
	plan := BuildPlan(NewPlanner(gen, 0, 4))

	if len(plan.Exact) == 0 || len(plan.Exact) > DefaultExactCount {
		t.Errorf("exact batch = %d", len(plan.Exact))
	}
	if len(plan.Practice) == 0 || len(plan.Practice) > 4 {
		t.Errorf("practice batch = %d", len(plan.Practice))
	}
	for _, p := range plan.Practice {
		if p.Key() == plan.Example.Key() {
			t.Error("practice batch repeats the example")
		}
	}
}

func TestProgress_Record(t *testing.T) {
	var p Progress
	for _, c := range []bool{true, true, false, true} {
		p.Record(c)
	}
	if p.Served != 4 || p.Correct != 3 || p.Streak != 1 || p.BestStreak != 2 {
		t.Errorf("Progress = %+v", p)
	}
	if p.Accuracy() != 0.75 {
		t.Errorf("Accuracy = %v", p.Accuracy())
	}
	if (Progress{}).Accuracy() != 0 {
		t.Error("empty accuracy should be 0")
	}
}

// gatedProvider holds every request until release is closed.
type gatedProvider struct {
	*llm.MockProvider
	release chan struct{}
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	<-g.release
	return g.MockProvider.Generate(ctx, req)
}

func TestSubmit_LateDiagnosisDoesNotLeakToNextProblem(t *testing.T) {
	late := json.RawMessage(`{"misconception_id":"fd-flip-both","confidence":0.9,"reasoning":"Inverted both"}`)
	provider := &gatedProvider{
		MockProvider: llm.NewMockProvider(llm.MockResponse{Content: late}, llm.MockResponse{Content: late}),
		release:      make(chan struct{}),
	}
	svc := diagnosis.NewService(provider)
	rec := &recorder{}
	clk := &clock{t: time.Now()}
	s := New(context.Background(), Options{Planner: testPlanner(), Events: rec, Diagnosis: svc, Now: clk.Now})

	// 4/5 ÷ 2/5: "7" matches no rule, so both wrong answers go to the LLM.
	clk.Advance(10 * time.Second)
	s.Submit("7")
	clk.Advance(10 * time.Second)
	if fb := s.Submit("7"); fb.Kind != FeedbackReveal {
		t.Fatalf("Kind = %v, want reveal", fb.Kind)
	}
	mustNext(t, s)

	// 9/10 ÷ 3/10 multiplied straight across.
	clk.Advance(10 * time.Second)
	fb := s.Submit("27/100")
	if fb.Diagnosis == nil || fb.Diagnosis.MisconceptionID != "fd-no-flip" {
		t.Fatalf("Diagnosis = %+v", fb.Diagnosis)
	}

	close(provider.release)
	svc.Close()

	if got := s.Diagnosis(); got != fb.Diagnosis {
		t.Errorf("Diagnosis() = %+v, want the current problem's result", got)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.diagnoses) != 3 {
		t.Fatalf("diagnosis events = %+v, want the two late results recorded too", rec.diagnoses)
	}
	for _, d := range rec.diagnoses {
		if d.MisconceptionID == "fd-flip-both" && d.ProblemText != "4/5 ÷ 2/5" {
			t.Errorf("late result recorded against %q", d.ProblemText)
		}
	}
}

func TestSubmit_LateDiagnosisForCurrentProblem(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"fd-flip-both","confidence":0.9,"reasoning":"Inverted both"}`)
	svc := diagnosis.NewService(llm.NewMockProvider(llm.MockResponse{Content: resp}))
	clk := &clock{t: time.Now()}
	s := New(context.Background(), Options{Planner: testPlanner(), Diagnosis: svc, Now: clk.Now})

	clk.Advance(10 * time.Second)
	fb := s.Submit("7")
	if fb.Diagnosis == nil || fb.Diagnosis.Category != diagnosis.CategoryUnclassified {
		t.Fatalf("Diagnosis = %+v, want unclassified", fb.Diagnosis)
	}
	svc.Close()

	got := s.Diagnosis()
	if got == nil || got.MisconceptionID != "fd-flip-both" {
		t.Errorf("Diagnosis() = %+v, want the LLM result", got)
	}
}

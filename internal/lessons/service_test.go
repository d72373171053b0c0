package lessons

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/store"
)

func lessonResponse(problem, answer string) llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"title":          "Flip, then multiply",
		"explanation":    "Dividing by 6/5 is the same as multiplying by 5/6.",
		"worked_example": "1. 2/3 ÷ 4/5\n2. 2/3 × 5/4\n3. 10/12 = 5/6",
		"practice_question": map[string]any{
			"problem":     problem,
			"answer":      answer,
			"explanation": "Flip the second fraction and multiply.",
		},
	})
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []store.LessonEventData
}

func (f *fakeRecorder) AppendLessonEvent(_ context.Context, d store.LessonEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, d)
	return nil
}

func testInput() LessonInput {
	p := problemgen.NewProblem(fraction.F(3, 4), fraction.F(6, 5), problemgen.NonExact)
	return LessonInput{
		SessionID:    "s-1",
		Problem:      p,
		WrongAnswers: []string{"9/10", "18/20"},
		LastDiagnosis: &diagnosis.DiagnosisResult{
			Category:        diagnosis.CategoryMisconception,
			MisconceptionID: "fd-no-flip",
		},
		Accuracy: 0.5,
	}
}

func consume(t *testing.T, svc *Service) Result {
	t.Helper()
	svc.Wait()
	r, ok := svc.ConsumeLesson()
	if !ok {
		t.Fatal("expected a finished lesson")
	}
	return r
}

func TestService_VerifiedPractice(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse("2/3 ÷ 4/5", "10/12"))
	rec := &fakeRecorder{}
	svc := NewService(mock, DefaultConfig(), rec)

	svc.RequestLesson(t.Context(), testInput())
	r := consume(t, svc)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Lesson.Title != "Flip, then multiply" {
		t.Errorf("unexpected title %q", r.Lesson.Title)
	}
	pq := r.Lesson.Practice
	if pq == nil {
		t.Fatal("expected verified practice question")
	}
	// The unreduced answer is accepted and replaced by the computed one.
	if pq.Answer != "5/6" || pq.Text != "2/3 ÷ 4/5" {
		t.Errorf("unexpected practice %+v", pq)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 lesson event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.SessionID != "s-1" || ev.ProblemText != "3/4 ÷ 6/5" || !ev.PracticeVerified {
		t.Errorf("unexpected event %+v", ev)
	}

	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("slot should be empty after consumption")
	}
}

func TestService_WrongPracticeAnswerDropped(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse("2/3 ÷ 4/5", "8/15"))
	rec := &fakeRecorder{}
	svc := NewService(mock, DefaultConfig(), rec)

	svc.RequestLesson(t.Context(), testInput())
	r := consume(t, svc)
	if r.Err != nil || r.Lesson == nil {
		t.Fatalf("expected lesson without error, got %+v", r)
	}
	if r.Lesson.Practice != nil {
		t.Errorf("wrong practice answer should be dropped, got %+v", r.Lesson.Practice)
	}
	if rec.events[0].PracticeVerified {
		t.Error("event should record an unverified practice question")
	}
}

func TestService_UnparseablePracticeDropped(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse("two thirds divided by four fifths", "5/6"))
	svc := NewService(mock, DefaultConfig(), nil)

	svc.RequestLesson(t.Context(), testInput())
	if r := consume(t, svc); r.Lesson.Practice != nil {
		t.Error("expected practice question to be dropped")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig(), nil)

	svc.RequestLesson(t.Context(), testInput())
	r := consume(t, svc)
	var un *llm.ErrProviderUnavailable
	if !errors.As(r.Err, &un) {
		t.Fatalf("expected provider unavailable, got %v", r.Err)
	}
	if r.Lesson != nil {
		t.Error("expected no lesson")
	}
}

func TestService_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(lessonResponse("2/3 ÷ 4/5", "5/6"))
	svc := NewService(mock, DefaultConfig(), nil)

	svc.RequestLesson(t.Context(), testInput())
	consume(t, svc)

	req := mock.LastCall()
	if req.Schema != LessonSchema {
		t.Error("expected lesson schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"3/4 ÷ 6/5", "Correct answer: 5/8", "- 9/10", "Multiplied without flipping", "50%"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestService_NewerRequestSupersedes(t *testing.T) {
	mock := llm.NewMockProvider(
		lessonResponse("2/3 ÷ 4/5", "5/6"),
		lessonResponse("1/2 ÷ 3/4", "2/3"),
	)
	svc := NewService(mock, DefaultConfig(), nil)

	svc.RequestLesson(t.Context(), testInput())
	svc.Wait()
	svc.RequestLesson(t.Context(), testInput())
	r := consume(t, svc)
	if r.Lesson.Practice == nil || r.Lesson.Practice.Text != "1/2 ÷ 3/4" {
		t.Errorf("expected the second lesson, got %+v", r.Lesson.Practice)
	}
	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("superseded result should not be delivered")
	}
}

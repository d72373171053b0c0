package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoSnapshot is returned by SnapshotRepo.Latest when nothing was saved.
var ErrNoSnapshot = errors.New("no snapshot")

// QueryOpts filters and paginates event queries. Zero values disable a
// filter.
type QueryOpts struct {
	Limit  int
	After  int64 // sequence > After
	Before int64 // sequence < Before
	From   time.Time
	To     time.Time
}

// Session lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

type SessionEventData struct {
	SessionID      string
	Action         string
	Stage          string
	ProblemsServed int
	CorrectAnswers int
	DurationSecs   int
	Seed           int64
	LLMEnabled     bool
}

type AnswerEventData struct {
	SessionID     string
	Stage         string
	ProblemText   string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Attempt       int
	TimeMs        int
}

type HintEventData struct {
	SessionID   string
	Stage       string
	ProblemText string
	HintText    string
}

type DiagnosisEventData struct {
	SessionID       string
	ProblemText     string
	LearnerAnswer   string
	Category        string
	MisconceptionID string
	Confidence      float64
	Classifier      string
	Reasoning       string
}

type LessonEventData struct {
	SessionID        string
	ProblemText      string
	Title            string
	PracticeText     string
	PracticeVerified bool
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is a finished session as recorded by its end event.
type SessionSummary struct {
	SessionID      string
	EndedAt        time.Time
	Stage          string
	ProblemsServed int
	CorrectAnswers int
	DurationSecs   int
}

// Accuracy returns correct/served, 0 when nothing was served.
func (s SessionSummary) Accuracy() float64 {
	if s.ProblemsServed == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.ProblemsServed)
}

// AnswerRecord is a stored answer.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LLMRequestRecord is a stored LLM request.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM requests per provider, model and purpose.
type LLMUsage struct {
	Provider     string
	Model        string
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	AvgLatencyMs int64
}

// EventRepo appends and queries domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// QueryAnswers returns a session's answers in the order given.
	QueryAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// MisconceptionCounts tallies diagnosed misconceptions across sessions.
	MisconceptionCounts(ctx context.Context) (map[string]int, error)

	// QueryLLMRequests returns LLM requests, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// LLMUsageStats aggregates all recorded LLM requests.
	LLMUsageStats(ctx context.Context) ([]LLMUsage, error)

	// LatestSequence returns the highest sequence handed out, 0 when empty.
	LatestSequence(ctx context.Context) (int64, error)
}

// ProgressData is the cumulative learner progress kept in snapshots.
type ProgressData struct {
	Version          int       `json:"version"`
	Sessions         int       `json:"sessions"`
	CompletedLessons int       `json:"completed_lessons"`
	ProblemsServed   int       `json:"problems_served"`
	CorrectAnswers   int       `json:"correct_answers"`
	BestStreak       int       `json:"best_streak"`
	LastSessionAt    time.Time `json:"last_session_at"`
}

// Accuracy returns correct/served across all sessions.
func (p ProgressData) Accuracy() float64 {
	if p.ProblemsServed == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.ProblemsServed)
}

// Snapshot is a point-in-time capture of progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ProgressData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the newest snapshot or ErrNoSnapshot.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the keep most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

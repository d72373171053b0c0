package session

import (
	"time"

	"github.com/abhisek/fracdiv/internal/problemgen"
)

// HistoryEntry is one finished problem.
type HistoryEntry struct {
	Stage       Stage
	Problem     problemgen.Problem
	FinalAnswer string
	Attempts    int
	Correct     bool
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID  string
	Served     int
	Correct    int
	Accuracy   float64
	BestStreak int
	Duration   time.Duration
	Completed  bool
	Stages     map[Stage]Progress
}

// Summary builds the current session's summary.
func (s *Session) Summary() Summary {
	stages := make(map[Stage]Progress, len(s.stages))
	for st, p := range s.stages {
		stages[st] = *p
	}
	return Summary{
		SessionID:  s.id,
		Served:     s.progress.Served,
		Correct:    s.progress.Correct,
		Accuracy:   s.progress.Accuracy(),
		BestStreak: s.progress.BestStreak,
		Duration:   s.now().Sub(s.started),
		Completed:  s.completed,
		Stages:     stages,
	}
}

// History returns the finished problems in the order they were answered.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

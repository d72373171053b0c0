package store

import (
	"context"
	"errors"
	"time"
)

// ProgressVersion is the current ProgressData layout.
const ProgressVersion = 1

// snapshotsKept bounds the snapshot table.
const snapshotsKept = 5

// LoadProgress returns the latest progress totals, or zero totals when no
// snapshot exists yet.
func LoadProgress(ctx context.Context, snaps SnapshotRepo) (ProgressData, error) {
	snap, err := snaps.Latest(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return ProgressData{Version: ProgressVersion}, nil
	}
	if err != nil {
		return ProgressData{}, err
	}
	return snap.Data, nil
}

// SessionResult is what a finished session contributes to progress.
type SessionResult struct {
	ProblemsServed int
	CorrectAnswers int
	BestStreak     int
	Completed      bool
	EndedAt        time.Time
}

// RecordProgress folds a finished session into the latest totals, saves a
// new snapshot at the current sequence and prunes old ones.
func RecordProgress(ctx context.Context, events EventRepo, snaps SnapshotRepo, res SessionResult) (ProgressData, error) {
	p, err := LoadProgress(ctx, snaps)
	if err != nil {
		return ProgressData{}, err
	}

	p.Version = ProgressVersion
	p.Sessions++
	p.ProblemsServed += res.ProblemsServed
	p.CorrectAnswers += res.CorrectAnswers
	p.BestStreak = max(p.BestStreak, res.BestStreak)
	if res.Completed {
		p.CompletedLessons++
	}
	p.LastSessionAt = res.EndedAt

	seq, err := events.LatestSequence(ctx)
	if err != nil {
		return ProgressData{}, err
	}
	if err := snaps.Save(ctx, &Snapshot{Sequence: seq, Data: p}); err != nil {
		return ProgressData{}, err
	}
	if err := snaps.Prune(ctx, snapshotsKept); err != nil {
		return ProgressData{}, err
	}
	return p, nil
}

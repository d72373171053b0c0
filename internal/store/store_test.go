package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
	assert.NotNil(t, s.EventRepo())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fracdiv.db")
	s, err := Open(path)
	require.NoError(t, err)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	require.NoError(t, s.Close())

	existed, err := Remove(path)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NoFileExists(t, path)

	existed, err = Remove(path)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("FRACDIV_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("FRACDIV_DB", "")
	require.NoError(t, os.Unsetenv("FRACDIV_DB"))
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fracdiv", "fracdiv.db"), p)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seq, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	cur, err := seq.Current(ctx)
	require.NoError(t, err)

	var prev int64 = cur
	for range 5 {
		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, prev+1, n)
		prev = n
	}
	cur, err = seq.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, prev, cur)
}

func TestSequenceCounter_Concurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int64]bool{}
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.events.seq.Next(ctx)
			assert.NoError(t, err)
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 20, "every sequence should be unique")
}

func TestSnapshot_LatestEmpty(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SnapshotRepo().Latest(context.Background())
	assert.True(t, errors.Is(err, ErrNoSnapshot))
}

func TestSnapshot_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i := range 3 {
		snap := &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: now,
			Data:      ProgressData{Version: 1, Sessions: i + 1, LastSessionAt: now},
		}
		require.NoError(t, repo.Save(ctx, snap))
		assert.NotZero(t, snap.ID)
	}

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.Sequence)
	assert.Equal(t, 3, snap.Data.Sessions)
	assert.True(t, snap.Data.LastSessionAt.Equal(now))
}

func TestSnapshot_Prune(t *testing.T) {
	tests := []struct {
		saved, keep, want int
	}{
		{7, 5, 5},
		{2, 5, 2},
		{3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_keep_%d", tt.saved, tt.keep), func(t *testing.T) {
			s := openTestStore(t)
			repo := s.SnapshotRepo()
			ctx := context.Background()

			for i := range tt.saved {
				require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: int64(i + 1), Data: ProgressData{Version: 1}}))
			}
			require.NoError(t, repo.Prune(ctx, tt.keep))

			count, err := s.Client().Snapshot.Query().Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)

			if tt.want > 0 {
				snap, err := repo.Latest(ctx)
				require.NoError(t, err)
				assert.Equal(t, int64(tt.saved), snap.Sequence)
			}
		})
	}
}

func TestRecordProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events, snaps := s.EventRepo(), s.SnapshotRepo()

	p, err := LoadProgress(ctx, snaps)
	require.NoError(t, err)
	assert.Zero(t, p.Sessions)

	end := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: ActionEnd}))
	_, err = RecordProgress(ctx, events, snaps, SessionResult{ProblemsServed: 6, CorrectAnswers: 5, BestStreak: 4, Completed: true, EndedAt: end})
	require.NoError(t, err)
	p, err = RecordProgress(ctx, events, snaps, SessionResult{ProblemsServed: 2, CorrectAnswers: 1, BestStreak: 1, EndedAt: end})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Sessions)
	assert.Equal(t, 1, p.CompletedLessons)
	assert.Equal(t, 8, p.ProblemsServed)
	assert.Equal(t, 4, p.BestStreak)
	assert.InDelta(t, 0.75, p.Accuracy(), 1e-9)

	loaded, err := LoadProgress(ctx, snaps)
	require.NoError(t, err)
	assert.Equal(t, p.Sessions, loaded.Sessions)

	latest, err := snaps.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest.Sequence)
}

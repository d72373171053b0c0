package problemgen

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
)

func TestDistinctBatch(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := New(DefaultConfig(), NewSeededRand(seed))
		example := g.NonExact()
		batch := g.DistinctBatch(example, 3)

		if len(batch) != 3 {
			t.Fatalf("seed %d: got %d problems, want 3", seed, len(batch))
		}
		seen := map[Key]bool{example.Key(): true}
		for _, p := range batch {
			if seen[p.Key()] {
				t.Errorf("seed %d: duplicate problem %s", seed, p.Text())
			}
			seen[p.Key()] = true
			if p.Quotient.Den == 1 {
				t.Errorf("seed %d: %s has whole quotient", seed, p.Text())
			}
		}
	}
}

func TestDistinctBatch_Degrades(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchAttempts = 50
	g := New(cfg, zeroRand{})

	seed := NewProblem(fraction.F(3, 4), fraction.F(3, 8), Exact)
	batch := g.DistinctBatch(seed, 3)
	if len(batch) != 1 {
		t.Fatalf("got %d problems, want 1 when the generator keeps repeating", len(batch))
	}

	// The seed itself is never returned.
	batch = g.DistinctBatch(fallbackNonExact, 3)
	if len(batch) != 0 {
		t.Errorf("got %d problems, want 0 when every candidate equals the seed", len(batch))
	}
}

func TestDistinctBatch_NonPositiveCount(t *testing.T) {
	g := New(DefaultConfig(), NewSeededRand(1))
	if got := g.DistinctBatch(fallbackNonExact, 0); len(got) != 0 {
		t.Errorf("DistinctBatch(count=0) = %d problems", len(got))
	}
	if got := g.DistinctBatch(fallbackNonExact, -2); got == nil || len(got) != 0 {
		t.Errorf("DistinctBatch(count=-2) = %v, want empty non-nil", got)
	}
}

func TestDistinctBatch_RepeatSkipDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RepeatSkipProbability = 0
	g := New(cfg, NewSeededRand(3))

	batch := g.DistinctBatch(g.NonExact(), 5)
	if len(batch) != 5 {
		t.Errorf("got %d problems, want 5", len(batch))
	}
}

func TestExactBatch(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := New(DefaultConfig(), NewSeededRand(seed))
		batch := g.ExactBatch(3)
		if len(batch) != 3 {
			t.Fatalf("seed %d: got %d problems, want 3", seed, len(batch))
		}
		seen := make(map[Key]bool)
		for _, p := range batch {
			if seen[p.Key()] {
				t.Errorf("seed %d: duplicate %s", seed, p.Text())
			}
			seen[p.Key()] = true
			if p.Quotient.Den != 1 {
				t.Errorf("seed %d: %s is not exact", seed, p.Text())
			}
		}
	}
}

func TestExactRepeatSkip_Positions(t *testing.T) {
	g := New(DefaultConfig(), nil)
	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0.3},
		{1, 0.7},
		{2, 0.3},
		{9, 0.3},
	}
	for _, tc := range tests {
		if got := g.exactRepeatSkip(tc.pos); got != tc.want {
			t.Errorf("exactRepeatSkip(%d) = %v, want %v", tc.pos, got, tc.want)
		}
	}

	cfg := DefaultConfig()
	cfg.ExactRepeatSkip = nil
	if got := New(cfg, nil).exactRepeatSkip(1); got != 0 {
		t.Errorf("disabled exactRepeatSkip = %v", got)
	}
}

// scriptedRand replays fixed draws in order. Exhausted scripts return 0.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestDistinctBatch_RepeatSkip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RepeatSkipProbability = 0.7
	// Zero ints pin every NonExact draw to 3/4 ÷ 6/5 = 5/8, which never
	// consumes a float.
	src := &scriptedRand{floats: []float64{0.5, 0.9}}
	g := New(cfg, src)

	// A different problem with the same quotient as every candidate.
	seed := NewProblem(fraction.F(1, 4), fraction.F(2, 5), NonExact)
	if seed.Quotient != fallbackNonExact.Quotient || seed.Key() == fallbackNonExact.Key() {
		t.Fatalf("seed %v does not share only its quotient with %v", seed, fallbackNonExact)
	}

	batch := g.DistinctBatch(seed, 1)
	if len(batch) != 1 || batch[0] != fallbackNonExact {
		t.Fatalf("batch = %v, want [%v]", batch, fallbackNonExact)
	}
	if len(src.floats) != 0 {
		t.Errorf("%d skip rolls unused; the first repeat should be skipped and the second kept", len(src.floats))
	}
}

func TestDistinctBatch_RepeatSkippedBelowProbability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RepeatSkipProbability = 0.7
	cfg.BatchAttempts = 3
	src := &scriptedRand{floats: []float64{0.1, 0.2, 0.69}}
	g := New(cfg, src)

	seed := NewProblem(fraction.F(1, 4), fraction.F(2, 5), NonExact)
	if batch := g.DistinctBatch(seed, 1); len(batch) != 0 {
		t.Errorf("batch = %v, want every repeat skipped", batch)
	}
}

func TestExactBatch_RepeatSkipByPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validators = nil
	cfg.ExactRepeatSkip = []float64{0.3, 0.7}

	// Each Exact call reads one branch roll, then d2, the d1 multiplier, n1
	// and n2.
	a := []int{1, 0, 3, 0} // 4/6 ÷ 1/3 = 2/3 ÷ 1/3 = 2
	b := []int{3, 0, 3, 0} // 4/10 ÷ 1/5 = 2/5 ÷ 1/5 = 2
	src := &scriptedRand{
		ints: append(append(append([]int{}, a...), b...), b...),
		// A is first, so no roll. B repeats A's quotient at position 1 and
		// is skipped on 0.5 < 0.7, then kept on 0.9.
		floats: []float64{0, 0, 0.5, 0, 0.9},
	}
	g := New(cfg, src)

	batch := g.ExactBatch(2)
	wantA := NewProblem(fraction.F(2, 3), fraction.F(1, 3), Exact)
	wantB := NewProblem(fraction.F(2, 5), fraction.F(1, 5), Exact)
	if len(batch) != 2 || batch[0] != wantA || batch[1] != wantB {
		t.Fatalf("batch = %v, want [%v %v]", batch, wantA, wantB)
	}
	if len(src.ints) != 0 || len(src.floats) != 0 {
		t.Errorf("unused draws: ints %v, floats %v", src.ints, src.floats)
	}
}

func TestExactBatch_RepeatSkipUsesBatchPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validators = nil
	cfg.ExactRepeatSkip = []float64{0.3, 0.7}
	cfg.ExactBatchAttempts = 3

	// At position 1 a roll of 0.5 skips, but against position 0's 0.3 it
	// would keep. This pins the lookup to len(batch), not the attempt.
	a := []int{1, 0, 3, 0}
	b := []int{3, 0, 3, 0}
	src := &scriptedRand{
		ints:   append(append(append([]int{}, a...), b...), b...),
		floats: []float64{0, 0, 0.5, 0, 0.5},
	}
	g := New(cfg, src)

	batch := g.ExactBatch(2)
	if len(batch) != 1 {
		t.Errorf("batch = %v, want only the first problem", batch)
	}
}

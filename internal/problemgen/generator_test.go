package problemgen

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
)

// zeroRand always returns the smallest value, which starves every search
// tier and forces the fixed fallbacks.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

func assertStructural(t *testing.T, p Problem) {
	t.Helper()
	if !p.Dividend.IsReduced() || !p.Divisor.IsReduced() {
		t.Errorf("%s: operands not reduced", p.Text())
	}
	if p.Dividend.IsUnit() || p.Divisor.IsUnit() {
		t.Errorf("%s: unit operand", p.Text())
	}
	if p.Dividend.Den == p.Divisor.Den {
		t.Errorf("%s: equal denominators", p.Text())
	}
	if p.Dividend.Equal(p.Divisor) {
		t.Errorf("%s: equal operands", p.Text())
	}
	q, err := p.Dividend.Div(p.Divisor)
	if err != nil || !q.Identical(p.Quotient) {
		t.Errorf("%s: stored quotient %s, computed %s (err %v)", p.Text(), p.Quotient, q, err)
	}
}

func TestExact_Invariants(t *testing.T) {
	for seed := uint64(1); seed <= 300; seed++ {
		g := New(DefaultConfig(), NewSeededRand(seed))
		p := g.Exact()

		assertStructural(t, p)
		if p.Quotient.Den != 1 || p.Quotient.Num <= 0 {
			t.Errorf("seed %d: %s quotient %s is not a positive whole number", seed, p.Text(), p.Quotient)
		}
		if p.Difficulty != Exact {
			t.Errorf("seed %d: difficulty = %q, want exact", seed, p.Difficulty)
		}
	}
}

func TestNonExact_Invariants(t *testing.T) {
	cancels := 0
	for seed := uint64(1); seed <= 300; seed++ {
		g := New(DefaultConfig(), NewSeededRand(seed))
		p := g.NonExact()

		assertStructural(t, p)
		if p.Quotient.Den == 1 {
			t.Errorf("seed %d: %s quotient %s is whole", seed, p.Text(), p.Quotient)
		}
		if HasCrossCancel(&p) {
			cancels++
		}
	}
	if cancels == 0 {
		t.Error("no non-exact problem offered a cross-cancellation")
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	g := New(DefaultConfig(), NewSeededRand(7))

	if p := g.Generate(Exact); p.Quotient.Den != 1 {
		t.Errorf("Generate(Exact) quotient = %s", p.Quotient)
	}
	if p := g.Generate(NonExact); p.Quotient.Den == 1 {
		t.Errorf("Generate(NonExact) quotient = %s", p.Quotient)
	}
	if p := g.Generate("bogus"); p.Difficulty != NonExact {
		t.Errorf("Generate(bogus) difficulty = %q, want non-exact", p.Difficulty)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := New(DefaultConfig(), NewSeededRand(42))
	b := New(DefaultConfig(), NewSeededRand(42))

	for i := 0; i < 20; i++ {
		pa, pb := a.Generate(NonExact), b.Generate(NonExact)
		if pa != pb {
			t.Fatalf("draw %d: %v != %v", i, pa, pb)
		}
	}
}

func TestExact_LastResort(t *testing.T) {
	g := New(DefaultConfig(), zeroRand{})
	p := g.Exact()

	want := NewProblem(fraction.F(3, 4), fraction.F(3, 8), Exact)
	if p != want {
		t.Fatalf("Exact() = %v, want %v", p, want)
	}
	if verr := RunValidators(DefaultConfig().Validators, &p, Constraints{Difficulty: Exact}); verr != nil {
		t.Errorf("last-resort exact problem fails validation: %v", verr)
	}
}

func TestNonExact_LastResort(t *testing.T) {
	g := New(DefaultConfig(), zeroRand{})
	p := g.NonExact()

	if p.Text() != "3/4 ÷ 6/5" || p.Quotient != fraction.F(5, 8) {
		t.Fatalf("NonExact() = %v, want 3/4 ÷ 6/5 = 5/8", p)
	}
	c := Constraints{Difficulty: NonExact, RequireCancel: true}
	if verr := RunValidators(DefaultConfig().Validators, &p, c); verr != nil {
		t.Errorf("last-resort non-exact problem fails validation: %v", verr)
	}
}

func TestExact_FallbackSearch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExactAttempts = 0

	for seed := uint64(1); seed <= 100; seed++ {
		p := New(cfg, NewSeededRand(seed)).Exact()
		assertStructural(t, p)
		if p.Quotient.Den != 1 || p.Quotient.Num <= 0 {
			t.Errorf("seed %d: fallback produced %v", seed, p)
		}
	}
}

func TestNonExact_PlainSearch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NonExactAttempts = 0

	for seed := uint64(1); seed <= 100; seed++ {
		p := New(cfg, NewSeededRand(seed)).NonExact()
		assertStructural(t, p)
		if p.Quotient.Den == 1 {
			t.Errorf("seed %d: plain search produced whole quotient %v", seed, p)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"exact", Exact, false},
		{" EXACT ", Exact, false},
		{"non-exact", NonExact, false},
		{"nonexact", NonExact, false},
		{"hard", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.input)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tc.input, got, err)
		}
	}
}

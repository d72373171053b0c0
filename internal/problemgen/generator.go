package problemgen

import "github.com/abhisek/fracdiv/internal/fraction"

// Generator produces fraction-division problems by bounded rejection
// sampling. Every operation is total: exhausted budgets fall back to a
// simpler search and finally to a fixed problem known to be valid.
//
// A Generator is not safe for concurrent use because its random source
// is not.
type Generator struct {
	config Config
	rand   Rand
}

// New creates a Generator. A nil src uses a freshly seeded PCG source.
func New(cfg Config, src Rand) *Generator {
	if src == nil {
		src = newRandomRand()
	}
	return &Generator{config: cfg, rand: src}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate dispatches on difficulty. Unknown values produce a non-exact
// problem.
func (g *Generator) Generate(d Difficulty) Problem {
	if d == Exact {
		return g.Exact()
	}
	return g.NonExact()
}

// candidate reduces n1/d1 ÷ n2/d2 and runs the validator chain. It reports
// whether the problem was accepted.
func (g *Generator) candidate(n1, d1, n2, d2 int, c Constraints) (Problem, bool) {
	if d1 == 0 || d2 == 0 || n2 == 0 {
		return Problem{}, false
	}
	p := NewProblem(fraction.Fraction{Num: n1, Den: d1}, fraction.Fraction{Num: n2, Den: d2}, c.Difficulty)
	if verr := RunValidators(g.config.Validators, &p, c); verr != nil {
		return Problem{}, false
	}
	return p, true
}

// The last-resort problems. Both satisfy every rule of their difficulty,
// including the cancellation rule for the non-exact one.
var (
	fallbackExact    = NewProblem(fraction.F(3, 4), fraction.F(3, 8), Exact)
	fallbackNonExact = NewProblem(fraction.F(3, 4), fraction.F(6, 5), NonExact)
)

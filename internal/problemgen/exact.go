package problemgen

// compositeDenominators seeds the divisor-pair strategy of the exact search.
var compositeDenominators = []int{4, 6, 8, 9, 10, 12, 15, 16, 18, 20}

var (
	evenNumerators = []int{2, 4, 6, 8}
	oddNumerators  = []int{1, 3, 5, 7, 9}
)

// Exact returns a problem whose quotient is a positive whole number and
// whose denominators stand in a divisor/multiple relationship.
func (g *Generator) Exact() Problem {
	c := Constraints{Difficulty: Exact}

	for range g.config.ExactAttempts {
		var d1, d2 int
		if chance(g.rand, 0.5) {
			d2 = between(g.rand, 2, 6)
			d1 = d2 * between(g.rand, 2, 4)
		} else {
			d1 = pick(g.rand, compositeDenominators)
			d2 = pick(g.rand, properDivisors(d1))
		}
		n1 := between(g.rand, 1, 11)
		n2 := between(g.rand, 1, 11)

		if p, ok := g.candidate(n1, d1, n2, d2, c); ok {
			return p
		}
	}

	if p, ok := g.exactFallback(c); ok {
		return p
	}
	return fallbackExact
}

// exactFallback builds the denominator pair from a divisor relationship and
// scans parity-matched numerators for the dividend until the quotient is
// whole.
func (g *Generator) exactFallback(c Constraints) (Problem, bool) {
	for range g.config.ExactFallbackAttempts {
		d1 := between(g.rand, 2, 12)
		divs := divisors(d1)
		if len(divs) > 1 {
			divs = divs[:len(divs)-1]
		}
		d2 := pick(g.rand, divs)
		n2 := pick(g.rand, parityNumerators(d2))

		for _, n1 := range parityNumerators(d1) {
			if (n1*d2)%(d1*n2) != 0 {
				continue
			}
			if p, ok := g.candidate(n1, d1, n2, d2, c); ok {
				return p, true
			}
		}
	}
	return Problem{}, false
}

func parityNumerators(d int) []int {
	if d%2 == 0 {
		return evenNumerators
	}
	return oddNumerators
}

// divisors returns the divisors of n in ascending order, including 1 and n.
func divisors(n int) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if n%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

// properDivisors returns the divisors of n in [2, n-1].
func properDivisors(n int) []int {
	var out []int
	for i := 2; i < n; i++ {
		if n%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

package problemgen

// NonExact returns a problem whose quotient is not a whole number. It first
// searches for operands built around shared factors so the worked solution
// can cancel, then relaxes to plain rejection sampling.
func (g *Generator) NonExact() Problem {
	c := Constraints{Difficulty: NonExact, RequireCancel: true}

	for range g.config.NonExactAttempts {
		c1 := between(g.rand, 2, 6)
		c2 := between(g.rand, 2, 6)

		n1 := c1 * between(g.rand, 1, 3)
		d2 := c1 * between(g.rand, 1, 3)
		d1 := c2 * between(g.rand, 1, 4)
		n2 := c2 * between(g.rand, 1, 3)

		if !inRange(n1, 1, 12) || !inRange(n2, 1, 12) || !inRange(d1, 2, 12) || !inRange(d2, 2, 12) {
			continue
		}
		if (n1*d2)%(d1*n2) == 0 {
			continue
		}
		if p, ok := g.candidate(n1, d1, n2, d2, c); ok {
			return p
		}
	}

	c.RequireCancel = false
	for range g.config.NonExactPlainAttempts {
		n1 := between(g.rand, 2, 9)
		d1 := between(g.rand, 2, 12)
		n2 := between(g.rand, 2, 9)
		d2 := between(g.rand, 2, 12)

		if p, ok := g.candidate(n1, d1, n2, d2, c); ok {
			return p
		}
	}

	return fallbackNonExact
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

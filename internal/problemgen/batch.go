package problemgen

import "github.com/abhisek/fracdiv/internal/fraction"

// DistinctBatch returns up to count non-exact problems that differ from each
// other and from seed by (dividend, divisor). Candidates whose quotient was
// already seen are skipped with probability RepeatSkipProbability to vary
// the answers. Fewer than count problems come back if the attempt budget
// runs out.
func (g *Generator) DistinctBatch(seed Problem, count int) []Problem {
	if count <= 0 {
		return []Problem{}
	}

	seen := map[Key]bool{seed.Key(): true}
	quotients := map[fraction.Fraction]bool{seed.Quotient.Reduce(): true}
	out := make([]Problem, 0, count)

	for attempt := 0; attempt < g.config.BatchAttempts && len(out) < count; attempt++ {
		p := g.NonExact()
		if seen[p.Key()] {
			continue
		}
		if quotients[p.Quotient] && chance(g.rand, g.config.RepeatSkipProbability) {
			continue
		}
		seen[p.Key()] = true
		quotients[p.Quotient] = true
		out = append(out, p)
	}
	return out
}

// ExactBatch returns up to count distinct exact problems for the first
// lesson stage. A candidate whose quotient is already in the batch is
// skipped with the per-position probability in ExactRepeatSkip.
func (g *Generator) ExactBatch(count int) []Problem {
	if count <= 0 {
		return []Problem{}
	}

	seen := make(map[Key]bool)
	quotients := make(map[fraction.Fraction]bool)
	out := make([]Problem, 0, count)

	for attempt := 0; attempt < g.config.ExactBatchAttempts && len(out) < count; attempt++ {
		p := g.Exact()
		if seen[p.Key()] {
			continue
		}
		if quotients[p.Quotient] && chance(g.rand, g.exactRepeatSkip(len(out))) {
			continue
		}
		seen[p.Key()] = true
		quotients[p.Quotient] = true
		out = append(out, p)
	}
	return out
}

func (g *Generator) exactRepeatSkip(pos int) float64 {
	probs := g.config.ExactRepeatSkip
	if len(probs) == 0 {
		return 0
	}
	if pos >= len(probs) {
		return probs[len(probs)-1]
	}
	return probs[pos]
}

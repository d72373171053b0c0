package problemgen

// Config controls the search budgets and diversity heuristics of the
// Generator.
type Config struct {
	// Validators is the ordered rejection chain applied to every candidate.
	// The first failure rejects the candidate.
	Validators []Validator

	// ExactAttempts bounds the primary exact search.
	ExactAttempts int

	// ExactFallbackAttempts bounds the divisor-pair exact search that runs
	// once the primary search is exhausted.
	ExactFallbackAttempts int

	// NonExactAttempts bounds the cross-cancel search.
	NonExactAttempts int

	// NonExactPlainAttempts bounds the plain rejection search that drops the
	// cancellation requirement.
	NonExactPlainAttempts int

	// BatchAttempts bounds DistinctBatch.
	BatchAttempts int

	// ExactBatchAttempts bounds ExactBatch.
	ExactBatchAttempts int

	// RepeatSkipProbability is the chance a practice problem whose quotient
	// was already seen gets skipped. 0 disables the heuristic.
	RepeatSkipProbability float64

	// ExactRepeatSkip holds, per batch position, the chance an exact
	// problem repeating an earlier quotient gets skipped. Positions past the
	// end use the last entry. Empty disables the heuristic.
	ExactRepeatSkip []float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended budgets.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&QuotientValidator{},
			&CrossCancelValidator{},
			&MathCheckValidator{},
		},
		ExactAttempts:         500,
		ExactFallbackAttempts: 1000,
		NonExactAttempts:      100,
		NonExactPlainAttempts: 100,
		BatchAttempts:         5000,
		ExactBatchAttempts:    1000,
		RepeatSkipProbability: 0.7,
		ExactRepeatSkip:       []float64{0.3, 0.7, 0.3},
	}
}

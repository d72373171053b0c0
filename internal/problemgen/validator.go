package problemgen

import "fmt"

// Validator checks a candidate problem against one family of rules.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "quotient", "math-check".
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p *Problem, c Constraints) *ValidationError
}

// ValidationError describes why a candidate was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether drawing a new candidate is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// RunValidators executes vs in order and returns the first failure.
func RunValidators(vs []Validator, p *Problem, c Constraints) *ValidationError {
	for _, v := range vs {
		if verr := v.Validate(p, c); verr != nil {
			return verr
		}
	}
	return nil
}

package problemgen

import (
	"strings"

	"github.com/abhisek/fracdiv/internal/fraction"
)

// CheckAnswer reports whether n/d has the same rational value as target.
// Representation does not matter: 6/10 matches 3/5. A zero denominator is a
// caller error and never matches.
func CheckAnswer(n, d int, target fraction.Fraction) bool {
	if d == 0 || target.Den == 0 {
		return false
	}
	return fraction.Fraction{Num: n, Den: d}.Equal(target)
}

// CheckAnswerText parses the learner's input and compares it to target.
//
// Accepted forms:
// - "a/b" with optional spaces around the slash
// - a whole number, e.g. "2"
// - a mixed number, e.g. "1 1/2"
//
// Blank or malformed input is never correct.
func CheckAnswerText(input string, target fraction.Fraction) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	f, err := fraction.Parse(input)
	if err != nil {
		return false
	}
	return CheckAnswer(f.Num, f.Den, target)
}

package fraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads "a/b", a whole number "a", or a mixed number "a b/c".
// Surrounding whitespace and spaces around the slash are ignored.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, fmt.Errorf("empty fraction")
	}

	if fields := strings.Fields(s); len(fields) == 2 && !strings.Contains(fields[0], "/") && strings.Contains(fields[1], "/") && !strings.HasPrefix(fields[1], "/") {
		return parseMixed(fields[0], fields[1])
	}

	num, den, ok := strings.Cut(s, "/")
	if !ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Fraction{}, fmt.Errorf("invalid whole number %q: %w", s, err)
		}
		return Fraction{Num: n, Den: 1}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid denominator: %w", err)
	}
	return New(n, d)
}

func parseMixed(wholeStr, fracStr string) (Fraction, error) {
	whole, err := strconv.Atoi(wholeStr)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid whole part: %w", err)
	}
	part, err := Parse(fracStr)
	if err != nil {
		return Fraction{}, err
	}
	if part.Num < 0 {
		return Fraction{}, fmt.Errorf("invalid mixed number %q", wholeStr+" "+fracStr)
	}
	if whole == math.MinInt || abs(whole) > (math.MaxInt-part.Num)/part.Den {
		return Fraction{}, ErrOutOfRange
	}
	n := abs(whole)*part.Den + part.Num
	if whole < 0 {
		n = -n
	}
	return New(n, part.Den)
}

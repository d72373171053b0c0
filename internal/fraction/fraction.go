// Package fraction implements the small rational type used by the problem
// generator, the answer verifier and the worked solutions.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrZeroDenominator is returned when a fraction would divide by zero.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrOutOfRange is returned when a term does not fit in an int once the
	// sign is moved onto the numerator.
	ErrOutOfRange = errors.New("fraction term out of range")
)

// Fraction is a value Num/Den. The denominator is always positive once
// constructed through New or F; the sign lives on the numerator.
type Fraction struct {
	Num int
	Den int
}

// New returns n/d with the sign normalized onto the numerator.
// It does not reduce.
func New(n, d int) (Fraction, error) {
	if d == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if d < 0 {
		if n == math.MinInt || d == math.MinInt {
			return Fraction{}, ErrOutOfRange
		}
		n, d = -n, -d
	}
	return Fraction{Num: n, Den: d}, nil
}

// F is New for literals that are known to be valid. It panics on a zero
// denominator.
func F(n, d int) Fraction {
	f, err := New(n, d)
	if err != nil {
		panic(fmt.Sprintf("fraction.F(%d, %d): %v", n, d, err))
	}
	return f
}

// Reduce returns the fraction in lowest terms.
func (f Fraction) Reduce() Fraction {
	if f.Den == 0 {
		return f
	}
	g := GCD(f.Num, f.Den)
	if g <= 1 {
		return f
	}
	return Fraction{Num: f.Num / g, Den: f.Den / g}
}

// IsReduced reports whether numerator and denominator share no factor > 1.
func (f Fraction) IsReduced() bool {
	return GCD(f.Num, f.Den) == 1
}

// IsWhole reports whether the value is an integer.
func (f Fraction) IsWhole() bool {
	return f.Den != 0 && f.Num%f.Den == 0
}

// IsUnit reports whether numerator equals denominator literally.
func (f Fraction) IsUnit() bool {
	return f.Num == f.Den
}

// Reciprocal flips the fraction. The reciprocal of zero, or of a value
// whose flip does not fit in an int, is returned as-is.
func (f Fraction) Reciprocal() Fraction {
	if f.Num == 0 {
		return f
	}
	r, err := New(f.Den, f.Num)
	if err != nil {
		return f
	}
	return r
}

// Mul returns f × g reduced.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{Num: f.Num * g.Num, Den: f.Den * g.Den}.Reduce()
}

// Div returns f ÷ g reduced. Dividing by zero yields ErrZeroDenominator.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	q, err := New(f.Num*g.Den, f.Den*g.Num)
	if err != nil {
		return Fraction{}, err
	}
	return q.Reduce(), nil
}

// Equal reports rational equality, so 2/4 equals 1/2. The comparison is
// exact for any int terms.
func (f Fraction) Equal(g Fraction) bool {
	if f.Den == 0 || g.Den == 0 {
		return false
	}
	return f.Value().Cmp(g.Value()) == 0
}

// Identical reports structural equality of numerator and denominator.
func (f Fraction) Identical(g Fraction) bool {
	return f.Num == g.Num && f.Den == g.Den
}

// Value returns the fraction as a big.Rat. Panics on a zero denominator.
func (f Fraction) Value() *big.Rat {
	return big.NewRat(int64(f.Num), int64(f.Den))
}

// String renders "n/d", or just "n" for a whole number.
func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Mixed renders an improper fraction as a mixed number, e.g. "1 1/2".
// Proper fractions and whole numbers render like String.
func (f Fraction) Mixed() string {
	r := f.Reduce()
	if r.Den == 1 || abs(r.Num) < r.Den {
		return r.String()
	}
	whole := r.Num / r.Den
	rem := abs(r.Num % r.Den)
	return fmt.Sprintf("%d %d/%d", whole, rem, r.Den)
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(a, 0) is |a|.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

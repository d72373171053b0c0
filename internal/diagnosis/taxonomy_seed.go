package diagnosis

import (
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// seedMisconceptions is the fraction-division taxonomy, most specific first.
var seedMisconceptions = []Misconception{
	{
		ID:          "fd-no-flip",
		Label:       "Multiplied without flipping",
		Description: "Multiplies the fractions straight across without taking the reciprocal of the divisor",
		Examples:    []string{"3/4 ÷ 6/5 answered 9/10", "2/3 ÷ 4/9 answered 8/27"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			return p.Dividend.Mul(p.Divisor), true
		},
	},
	{
		ID:          "fd-flip-wrong",
		Label:       "Flipped the wrong fraction",
		Description: "Takes the reciprocal of the dividend instead of the divisor, giving the reciprocal of the answer",
		Examples:    []string{"3/4 ÷ 6/5 answered 8/5", "3/4 ÷ 3/8 answered 1/2"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			return p.Dividend.Reciprocal().Mul(p.Divisor), true
		},
	},
	{
		ID:          "fd-flip-both",
		Label:       "Flipped both fractions",
		Description: "Takes the reciprocal of both fractions before multiplying",
		Examples:    []string{"3/4 ÷ 6/5 answered 10/9"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			return p.Dividend.Reciprocal().Mul(p.Divisor.Reciprocal()), true
		},
	},
	{
		ID:          "fd-numerators-only",
		Label:       "Divided numerators only",
		Description: "Divides the numerators and ignores the denominators",
		Examples:    []string{"3/4 ÷ 3/8 answered 1", "8/9 ÷ 2/3 answered 4"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			return fraction.Fraction{Num: p.Dividend.Num, Den: p.Divisor.Num}.Reduce(), true
		},
	},
	{
		ID:          "fd-dropped-whole",
		Label:       "Dropped the whole part",
		Description: "Converts an improper answer to a mixed number and keeps only the fractional part",
		Examples:    []string{"3/4 ÷ 1/2 = 3/2 answered 1/2"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			q := p.Quotient
			if q.Den == 1 || q.Num < q.Den {
				return fraction.Fraction{}, false
			}
			return fraction.Fraction{Num: q.Num % q.Den, Den: q.Den}, true
		},
	},
	{
		ID:          "fd-whole-only",
		Label:       "Kept only the whole part",
		Description: "Truncates an improper answer to its whole-number part",
		Examples:    []string{"3/4 ÷ 1/2 = 3/2 answered 1"},
		Predict: func(p *problemgen.Problem) (fraction.Fraction, bool) {
			q := p.Quotient
			if q.Den == 1 || q.Num < q.Den {
				return fraction.Fraction{}, false
			}
			return fraction.Fraction{Num: q.Num / q.Den, Den: 1}, true
		},
	},
}

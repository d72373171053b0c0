package fraction

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Fraction
		wantErr bool
	}{
		{"3/4", F(3, 4), false},
		{" 6 / 10 ", F(6, 10), false},
		{"3", F(3, 1), false},
		{"1 1/2", F(3, 2), false},
		{"-1 1/2", F(-3, 2), false},
		{"2/-3", F(-2, 3), false},
		{"3 /4", F(3, 4), false},
		{"", Fraction{}, true},
		{"abc", Fraction{}, true},
		{"1/0", Fraction{}, true},
		{"1/2/3", Fraction{}, true},
		{"1 -1/2", Fraction{}, true},
		{"1/-9223372036854775808", Fraction{}, true},
		{"9223372036854775807 1/2", Fraction{}, true},
		{"-9223372036854775808 1/2", Fraction{}, true},
		{"1/99999999999999999999", Fraction{}, true},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_DenominatorPositive(t *testing.T) {
	for _, in := range []string{"1/-2", "-1/-2", "-9223372036854775807/-1", "2 1/3"} {
		f, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", in, err)
			continue
		}
		if f.Den <= 0 {
			t.Errorf("Parse(%q) = %v, denominator not positive", in, f)
		}
	}
}

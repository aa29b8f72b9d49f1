package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{590.0, 590.0},
		{589.999999999, 590.0},
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(590); got != "590.00" {
		t.Errorf("FormatMoney(590) = %q", got)
	}
	if got := FormatMoney(531.5); got != "531.50" {
		t.Errorf("FormatMoney(531.5) = %q", got)
	}
}

func TestFormatRupees(t *testing.T) {
	if got := FormatRupees(590); got != "₹590.00" {
		t.Errorf("FormatRupees(590) = %q", got)
	}
	if got := FormatRupees(-12.5); got != "-₹12.50" {
		t.Errorf("FormatRupees(-12.5) = %q", got)
	}
}

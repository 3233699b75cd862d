package agent

import (
	"testing"

	"bigpicture_agent/pkg/core/calc"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{100, "100.00"},
		{114.99999999999999, "115.00"}, // 100 * 1.15 in float64
		{1799.9999999999998, "1800.00"},
		{12.5, "12.50"},
		{0, "0.00"},
	}
	for _, tc := range testCases {
		if got := formatAmount(tc.in); got != tc.want {
			t.Errorf("formatAmount(%v) expected %q, got %q", tc.in, tc.want, got)
		}
	}

	// The computed new price carries representation noise; the formatted
	// figure must not.
	if got := formatAmount(calc.NewPrice(100, 15)); got != "115.00" {
		t.Errorf("formatted new price expected 115.00, got %q", got)
	}
}

package parse

import (
	"math"
	"testing"
)

func TestExtractPartNumber(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{
			name:    "uppercase part number",
			message: "Supplier wants to raise the price of PA-10197 by 15%",
			want:    "PA-10197",
			wantOK:  true,
		},
		{
			name:    "lowercase input normalized to uppercase",
			message: "what about part pa-10197?",
			want:    "PA-10197",
			wantOK:  true,
		},
		{
			name:    "mixed case",
			message: "see Pa-10197",
			want:    "PA-10197",
			wantOK:  true,
		},
		{
			name:    "first match wins",
			message: "compare PA-10197 against ZX-20412",
			want:    "PA-10197",
			wantOK:  true,
		},
		{
			name:    "longer prefix and digits",
			message: "part ABC-123456 please",
			want:    "ABC-123456",
			wantOK:  true,
		},
		{
			name:    "too few digits is not a part number",
			message: "part PA-101 please",
			wantOK:  false,
		},
		{
			name:    "no identifier at all",
			message: "the supplier wants more money",
			wantOK:  false,
		},
	}

	for _, tc := range testCases {
		got, ok := ExtractPartNumber(tc.message)
		if ok != tc.wantOK {
			t.Errorf("%s: ok expected %v, got %v", tc.name, tc.wantOK, ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestExtractPercentage(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    float64
	}{
		{"decimal percentage", "increase of 12.5%", 12.5},
		{"integer percentage", "a 15% increase", 15.0},
		{"whitespace before percent sign", "they ask for 8 %", 8.0},
		{"first match wins", "from 10% to 20%", 10.0},
		{"no percentage mentioned", "no percentage mentioned", 0.0},
		{"over one hundred accepted as-is", "an outrageous 250% hike", 250.0},
	}

	for _, tc := range testCases {
		got := ExtractPercentage(tc.message)
		if math.Abs(got-tc.want) > 0.0001 {
			t.Errorf("%s: expected %f, got %f", tc.name, tc.want, got)
		}
	}
}

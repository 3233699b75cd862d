// Package parse extracts the part identifier and the requested percentage
// increase from a free-text user message. Both extractions are pure pattern
// matches; no semantic validation happens here.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Part numbers look like PA-10197: two or more letters, a hyphen, four
	// or more digits. Matching is case-insensitive, output is canonical
	// uppercase.
	partNumberRe = regexp.MustCompile(`(?i)([A-Z]{2,}-\d{4,})`)

	// A decimal number directly followed by a percent sign, optional
	// whitespace in between.
	percentageRe = regexp.MustCompile(`(\d+\.?\d*)\s*%`)
)

// ExtractPartNumber returns the first part identifier in the message,
// uppercased. ok is false when the message contains none.
func ExtractPartNumber(message string) (partNumber string, ok bool) {
	m := partNumberRe.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(m[1])), true
}

// ExtractPercentage returns the first percentage in the message, or 0 when
// none is present. An increase is not mandatory for a valid request, and
// out-of-range values (e.g. 250%) are passed through as-is.
func ExtractPercentage(message string) float64 {
	m := percentageRe.FindStringSubmatch(message)
	if m == nil {
		return 0.0
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0.0
	}
	return pct
}

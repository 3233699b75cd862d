// Package analysis turns a wide-format MASTER_FILE row into the aligned
// monthly series the impact calculation and the charts run on.
package analysis

import (
	"strings"
	"time"
)

// Months is the fixed three-year axis every series in the system is keyed by.
// The order is the universal time axis: index i in any series is the month
// Months[i].
var Months = [...]string{
	"jan2023", "feb2023", "mar2023", "apr2023", "may2023", "jun2023",
	"jul2023", "aug2023", "sep2023", "oct2023", "nov2023", "dec2023",
	"jan2024", "feb2024", "mar2024", "apr2024", "may2024", "jun2024",
	"jul2024", "aug2024", "sep2024", "oct2024", "nov2024", "dec2024",
	"jan2025", "feb2025", "mar2025", "apr2025", "may2025", "jun2025",
	"jul2025", "aug2025", "sep2025", "oct2025", "nov2025", "dec2025",
}

// MonthCount is the length of the calendar table.
const MonthCount = len(Months)

var monthIndex = func() map[string]int {
	m := make(map[string]int, MonthCount)
	for i, key := range Months {
		m[key] = i
	}
	return m
}()

// MonthIndex resolves a month key (e.g. "mar2024") to its position on the
// time axis.
func MonthIndex(key string) (int, bool) {
	i, ok := monthIndex[key]
	return i, ok
}

// CurrentMonthIndex maps wall-clock time onto the calendar table. When now
// falls outside the configured window the last index is used, so an aged
// deployment keeps answering with the most recent month instead of failing.
func CurrentMonthIndex(now time.Time) int {
	key := strings.ToLower(now.Format("Jan")) + now.Format("2006")
	if i, ok := monthIndex[key]; ok {
		return i
	}
	return MonthCount - 1
}

// MonthLabels returns display labels for charts ("jan2023" -> "Jan2023").
func MonthLabels() []string {
	labels := make([]string, MonthCount)
	for i, key := range Months {
		labels[i] = strings.ToUpper(key[:1]) + key[1:]
	}
	return labels
}

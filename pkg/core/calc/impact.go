// Package calc computes the financial impact of a requested price increase.
// All functions are deterministic and free of I/O.
package calc

import (
	"github.com/shopspring/decimal"

	"bigpicture_agent/pkg/core/analysis"
)

// ForwardMonths is the projection window: the last calendar year of the
// three-year table. The window is a fixed slice of the table, not derived
// from the current-month index.
const ForwardMonths = 12

// Impact is the computed cost effect of moving to the new price.
type Impact struct {
	CurrentPrice float64
	NewPrice     float64
	Currency     string

	// IncrementalCost is the projected extra spend across the forward
	// window versus the historical prices; TotalSpend is the projected
	// full spend at the new price.
	IncrementalCost float64
	TotalSpend      float64
}

// NewPrice applies a percentage increase to the current price. A zero
// percentage returns the current price unchanged; negative percentages are
// accepted (a requested decrease is a valid scenario).
func NewPrice(currentPrice, pctIncrease float64) float64 {
	return currentPrice * (1 + pctIncrease/100)
}

// ProjectImpact sums volume-weighted cost deltas over the forward window.
// Sums run in decimal to keep money arithmetic exact over 12 additions; the
// result converts back to float64 because the wire format is plain JSON
// numbers.
func ProjectImpact(prices, volumes []float64, newPrice float64) (incrementalCost, totalSpend float64) {
	start := len(prices) - ForwardMonths
	if start < 0 {
		start = 0
	}

	np := decimal.NewFromFloat(newPrice)
	incremental := decimal.Zero
	total := decimal.Zero
	for i := start; i < len(prices); i++ {
		vol := decimal.NewFromFloat(volumes[i])
		incremental = incremental.Add(vol.Mul(np.Sub(decimal.NewFromFloat(prices[i]))))
		total = total.Add(vol.Mul(np))
	}
	return incremental.InexactFloat64(), total.InexactFloat64()
}

// Analyze is the full impact computation for one request: current price at
// the current-month index (missing price counts as 0), the proposed new
// price, and the projected forward-window figures.
func Analyze(s analysis.Series, currentMonthIdx int, pctIncrease float64, currency string) Impact {
	currentPrice := s.Prices[currentMonthIdx]
	newPrice := NewPrice(currentPrice, pctIncrease)
	incremental, total := ProjectImpact(s.Prices, s.Volumes, newPrice)

	return Impact{
		CurrentPrice:    currentPrice,
		NewPrice:        newPrice,
		Currency:        currency,
		IncrementalCost: incremental,
		TotalSpend:      total,
	}
}

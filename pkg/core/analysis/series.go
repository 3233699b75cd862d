package analysis

import (
	"bigpicture_agent/pkg/models"
)

// Series holds the three aligned monthly sequences of one part. Prices and
// volumes default to 0 for missing months. Market keeps nil for months
// without market data; absence is meaningful there and only becomes 0 at
// plotting time.
type Series struct {
	Prices  []float64
	Volumes []float64
	Market  []*float64
}

// Column prefixes of the wide MASTER_FILE row. The market-index prefix keeps
// the odd capitalisation of the source schema.
const (
	priceColumnPrefix  = "price"
	volumeColumnPrefix = "vol"
	marketColumnPrefix = "Pricemktindex"
)

// ExtractSeries projects a part record onto the calendar table.
func ExtractSeries(rec models.PartRecord) Series {
	s := Series{
		Prices:  make([]float64, MonthCount),
		Volumes: make([]float64, MonthCount),
		Market:  make([]*float64, MonthCount),
	}
	for i, month := range Months {
		s.Prices[i] = rec.FloatOrZero(priceColumnPrefix + month)
		s.Volumes[i] = rec.FloatOrZero(volumeColumnPrefix + month)
		s.Market[i] = rec.Float(marketColumnPrefix + month)
	}
	return s
}

// MarketOrZero returns the market series with missing months collapsed to 0,
// the form the chart builders need for plotting continuity.
func (s Series) MarketOrZero() []float64 {
	out := make([]float64, len(s.Market))
	for i, v := range s.Market {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

// Package charts derives the four renderer-ready chart payloads from the
// monthly series and the computed prices. Every builder is a pure function;
// the figures are plotly dicts the frontend renders unchanged.
package charts

import (
	"bigpicture_agent/pkg/models"
)

const (
	companyColor = "#2563eb"
	marketColor  = "#dc2626"
	volumeColor  = "#059669"
)

func lineTrace(name string, months []string, values []float64, color string) map[string]interface{} {
	trace := map[string]interface{}{
		"type": "scatter",
		"mode": "lines+markers",
		"name": name,
		"x":    months,
		"y":    values,
	}
	if color != "" {
		trace["line"] = map[string]interface{}{"color": color}
	}
	return trace
}

func barTrace(name string, months []string, values []float64, color string) map[string]interface{} {
	trace := map[string]interface{}{
		"type": "bar",
		"name": name,
		"x":    months,
		"y":    values,
	}
	if color != "" {
		trace["marker"] = map[string]interface{}{"color": color}
	}
	return trace
}

// onSubplotRow2 pins a trace to the second panel of a two-row figure.
func onSubplotRow2(trace map[string]interface{}) map[string]interface{} {
	trace["xaxis"] = "x2"
	trace["yaxis"] = "y2"
	return trace
}

func anyNonZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}

// PriceEvolution plots company price over the full table, with the market
// index overlaid. The market trace is dropped entirely when there is no
// market data at all, but the chart itself always exists.
func PriceEvolution(prices, market []float64, months []string) models.ChartData {
	data := []interface{}{
		lineTrace("Company Price", months, prices, companyColor),
	}
	if anyNonZero(market) {
		data = append(data, lineTrace("Market Index", months, market, marketColor))
	}

	return models.ChartData{
		Title:     "Price Evolution",
		ChartType: "price_evolution",
		PlotlyJSON: map[string]interface{}{
			"data": data,
			"layout": map[string]interface{}{
				"title":    "Price Evolution Over Time",
				"xaxis":    map[string]interface{}{"title": "Month"},
				"yaxis":    map[string]interface{}{"title": "Price"},
				"legend":   map[string]interface{}{"title": "Legend"},
				"template": "plotly_white",
				"height":   400,
			},
		},
	}
}

// VolumeAnalysis plots shipped volume per month.
func VolumeAnalysis(volumes []float64, months []string) models.ChartData {
	return models.ChartData{
		Title:     "Volume Analysis",
		ChartType: "volume_analysis",
		PlotlyJSON: map[string]interface{}{
			"data": []interface{}{
				barTrace("Volume", months, volumes, volumeColor),
			},
			"layout": map[string]interface{}{
				"title":    "Volume Analysis",
				"xaxis":    map[string]interface{}{"title": "Month"},
				"yaxis":    map[string]interface{}{"title": "Volume"},
				"template": "plotly_white",
				"height":   400,
			},
		},
	}
}

// MarketComparison is a two-panel figure: company vs market price lines on
// top, the per-month difference (company − market) as bars below. A month
// missing either side contributes a 0 difference.
func MarketComparison(prices, market []float64, months []string) models.ChartData {
	diff := make([]float64, len(prices))
	for i := range prices {
		if prices[i] != 0 && market[i] != 0 {
			diff[i] = prices[i] - market[i]
		}
	}

	return models.ChartData{
		Title:     "Market Comparison",
		ChartType: "market_comparison",
		PlotlyJSON: map[string]interface{}{
			"data": []interface{}{
				lineTrace("Company Price", months, prices, ""),
				lineTrace("Market Price", months, market, ""),
				onSubplotRow2(barTrace("Price Difference", months, diff, "")),
			},
			"layout": map[string]interface{}{
				"grid":       map[string]interface{}{"rows": 2, "columns": 1, "pattern": "independent"},
				"template":   "plotly_white",
				"height":     600,
				"showlegend": true,
			},
		},
	}
}

// ImpactForecast is a two-panel figure: monthly cost at the current vs the
// proposed price on top, the resulting cost increase as bars below. Costs
// cover the full table so the historical shape stays visible.
func ImpactForecast(currentPrice, newPrice float64, volumes []float64, months []string) models.ChartData {
	currentCost := make([]float64, len(volumes))
	newCost := make([]float64, len(volumes))
	increase := make([]float64, len(volumes))
	for i, v := range volumes {
		currentCost[i] = v * currentPrice
		newCost[i] = v * newPrice
		increase[i] = newCost[i] - currentCost[i]
	}

	return models.ChartData{
		Title:     "Impact Forecast",
		ChartType: "impact_forecast",
		PlotlyJSON: map[string]interface{}{
			"data": []interface{}{
				lineTrace("Current Cost", months, currentCost, ""),
				lineTrace("New Cost", months, newCost, ""),
				onSubplotRow2(barTrace("Cost Increase", months, increase, marketColor)),
			},
			"layout": map[string]interface{}{
				"grid":       map[string]interface{}{"rows": 2, "columns": 1, "pattern": "independent"},
				"template":   "plotly_white",
				"height":     600,
				"showlegend": true,
			},
		},
	}
}

// BuildAll returns the four dashboard charts in their fixed order.
func BuildAll(prices, market, volumes []float64, months []string, currentPrice, newPrice float64) []models.ChartData {
	return []models.ChartData{
		PriceEvolution(prices, market, months),
		VolumeAnalysis(volumes, months),
		MarketComparison(prices, market, months),
		ImpactForecast(currentPrice, newPrice, volumes, months),
	}
}

package analysis

import (
	"testing"

	"bigpicture_agent/pkg/models"
)

func TestExtractSeries(t *testing.T) {
	rec := models.PartRecord{
		"PartNumber":           "PA-10197",
		"pricejan2023":         10.5,
		"voljan2023":           100.0,
		"Pricemktindexjan2023": 9.8,
		"pricefeb2023":         nil, // explicit null from the store
		"Pricemktindexfeb2023": nil,
		"pricedec2025":         12.0,
		"voldec2025":           80.0,
		// mar2023 columns entirely absent
	}

	s := ExtractSeries(rec)

	if len(s.Prices) != MonthCount || len(s.Volumes) != MonthCount || len(s.Market) != MonthCount {
		t.Fatalf("series not aligned to calendar: %d/%d/%d", len(s.Prices), len(s.Volumes), len(s.Market))
	}

	if s.Prices[0] != 10.5 {
		t.Errorf("jan2023 price expected 10.5, got %f", s.Prices[0])
	}
	if s.Volumes[0] != 100.0 {
		t.Errorf("jan2023 volume expected 100, got %f", s.Volumes[0])
	}
	if s.Market[0] == nil || *s.Market[0] != 9.8 {
		t.Errorf("jan2023 market expected 9.8, got %v", s.Market[0])
	}

	// Null and absent prices/volumes collapse to zero.
	if s.Prices[1] != 0 {
		t.Errorf("null feb2023 price expected 0, got %f", s.Prices[1])
	}
	if s.Prices[2] != 0 || s.Volumes[2] != 0 {
		t.Errorf("absent mar2023 price/volume expected 0, got %f/%f", s.Prices[2], s.Volumes[2])
	}

	// Market absence stays nil, not zero.
	if s.Market[1] != nil {
		t.Errorf("null feb2023 market expected nil, got %v", *s.Market[1])
	}
	if s.Market[2] != nil {
		t.Errorf("absent mar2023 market expected nil, got %v", *s.Market[2])
	}

	if s.Prices[35] != 12.0 || s.Volumes[35] != 80.0 {
		t.Errorf("dec2025 expected 12/80, got %f/%f", s.Prices[35], s.Volumes[35])
	}
}

func TestMarketOrZero(t *testing.T) {
	v := 5.5
	s := Series{Market: []*float64{nil, &v, nil}}
	got := s.MarketOrZero()
	if got[0] != 0 || got[1] != 5.5 || got[2] != 0 {
		t.Errorf("MarketOrZero expected [0 5.5 0], got %v", got)
	}
}

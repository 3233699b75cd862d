package models

// PartRecord is one row of the MASTER_FILE table as returned by the record
// store. The table is wide-format: besides the supplier/part identity columns
// it carries one price, volume and market-index column per calendar month
// (e.g. "pricejan2023", "voljan2023", "Pricemktindexjan2023"), so we keep the
// raw decoded JSON object and expose typed accessors instead of a 100+ field
// struct.
type PartRecord map[string]interface{}

// Str returns the string value of a column, or "" when the column is missing
// or null. Mirrors the permissive reads the analysis layer needs for the
// supplier identity fields.
func (r PartRecord) Str(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Float returns a pointer to the numeric value of a column, or nil when the
// column is missing or null. Callers decide per-series whether nil means zero
// (price, volume) or "no data" (market index).
func (r PartRecord) Float(key string) *float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

// FloatOrZero returns the numeric value of a column, with missing/null
// collapsed to 0.
func (r PartRecord) FloatOrZero(key string) float64 {
	if p := r.Float(key); p != nil {
		return *p
	}
	return 0
}

// PartNumber returns the canonical part identifier of the record.
func (r PartRecord) PartNumber() string {
	return r.Str("PartNumber")
}

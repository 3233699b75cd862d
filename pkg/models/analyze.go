package models

// AnalyzeRequest is the inbound payload of POST /analyze-part/.
type AnalyzeRequest struct {
	Message string `json:"message"`
}

// ChartData is one renderer-ready chart. PlotlyJSON is an opaque plotly
// figure dict; the frontend hands it to the plotting library unchanged.
type ChartData struct {
	Title      string                 `json:"title"`
	PlotlyJSON map[string]interface{} `json:"plotly_json"`
	ChartType  string                 `json:"chart_type"`
}

// AnalyzeResponse is the outcome of one analysis run. Text is always set
// (guidance or not-found wording when the pipeline short-circuits). The three
// section excerpts are null when the narrative did not contain the matching
// header.
type AnalyzeResponse struct {
	Text            string      `json:"text"`
	Charts          []ChartData `json:"charts"`
	Summary         *string     `json:"summary"`
	ImpactAnalysis  *string     `json:"impact_analysis"`
	Recommendations *string     `json:"recommendations"`
}

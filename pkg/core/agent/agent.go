// Package agent orchestrates the impact-analysis pipeline: parse the user
// message, fetch the part, compute the impact, build the charts, request the
// narrative and assemble the response.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bigpicture_agent/pkg/core/analysis"
	"bigpicture_agent/pkg/core/calc"
	"bigpicture_agent/pkg/core/charts"
	"bigpicture_agent/pkg/core/parse"
	"bigpicture_agent/pkg/core/prompt"
	"bigpicture_agent/pkg/core/store"
	"bigpicture_agent/pkg/core/utils"
	"bigpicture_agent/pkg/models"
)

// guidanceText answers messages without a recognizable part number. This is
// a terminal success, not an error.
const guidanceText = "Please specify the part number (e.g., PA-10197) and describe the situation, including if the supplier is requesting a price increase and what the new price or percentage is."

// negotiatorAgent is the agent type the manager resolves to a provider.
const negotiatorAgent = "negotiator"

// Pipeline runs one analysis per call. It holds no per-request state, so a
// single Pipeline serves concurrent requests.
type Pipeline struct {
	store  store.PartStore
	agents *Manager
	now    func() time.Time
}

// NewPipeline wires the pipeline to its two collaborators.
func NewPipeline(st store.PartStore, mgr *Manager) *Pipeline {
	return &Pipeline{store: st, agents: mgr, now: time.Now}
}

// WithClock overrides the wall clock. Tests pin the current-month index with
// it.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// AnalyzePart runs the full pipeline for one user message. The two
// short-circuit outcomes (no part number, part not found) return a normal
// response; configuration and upstream failures propagate to the transport
// layer.
func (p *Pipeline) AnalyzePart(ctx context.Context, message string) (*models.AnalyzeResponse, error) {
	partNumber, ok := parse.ExtractPartNumber(message)
	pctIncrease := parse.ExtractPercentage(message)
	if !ok {
		return terminalResponse(guidanceText), nil
	}

	utils.Logger.Info().
		Str("part_number", partNumber).
		Float64("pct_increase", pctIncrease).
		Msg("analyzing price increase request")

	rec, err := p.store.FetchPart(ctx, partNumber)
	if err != nil {
		if errors.Is(err, store.ErrPartNotFound) {
			return terminalResponse(fmt.Sprintf("Part %s was not found.", partNumber)), nil
		}
		return nil, err
	}

	series := analysis.ExtractSeries(rec)
	currentMonthIdx := analysis.CurrentMonthIndex(p.now())
	impact := calc.Analyze(series, currentMonthIdx, pctIncrease, rec.Str("currency"))

	chartData := charts.BuildAll(
		series.Prices,
		series.MarketOrZero(),
		series.Volumes,
		analysis.MonthLabels(),
		impact.CurrentPrice,
		impact.NewPrice,
	)

	userPrompt, systemPrompt, err := prompt.Get().Render(prompt.NegotiationAnalyzeID, map[string]interface{}{
		"SupplierName":         rec.Str("suppliername"),
		"SupplierNumber":       rec.Str("suppliernumber"),
		"SupplierContactName":  rec.Str("suppliercontactname"),
		"SupplierContactEmail": rec.Str("suppliercontactemail"),
		"SupplierLocation":     rec.Str("suppliermanufacturinglocation"),
		"PartNumber":           rec.PartNumber(),
		"PartName":             rec.Str("partname"),
		"Material":             rec.Str("material"),
		"Currency":             impact.Currency,
		"CurrentPrice":         formatAmount(impact.CurrentPrice),
		"NewPrice":             formatAmount(impact.NewPrice),
		"PctIncrease":          pctIncrease,
		"IncrementalCost":      formatAmount(impact.IncrementalCost),
		"TotalSpend":           formatAmount(impact.TotalSpend),
		"Message":              message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build narrative prompt: %w", err)
	}

	narrative, err := p.agents.ExecutePrompt(ctx, negotiatorAgent, userPrompt, systemPrompt, nil)
	if err != nil {
		var apiErr *utils.ApiError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, utils.CreateUpstreamError("narrative generation failed", err)
	}

	narrative = utils.CleanMarkdown(strings.TrimSpace(narrative))
	if !utils.ValidateMarkdown(narrative) {
		utils.Logger.Warn().Str("part_number", partNumber).Msg("narrative is not valid markdown")
	}

	sections := SplitSections(narrative)

	resp := &models.AnalyzeResponse{
		Text:   narrative,
		Charts: chartData,
	}
	if v, ok := sections[SectionSummary]; ok {
		resp.Summary = &v
	}
	if v, ok := sections[SectionImpactAnalysis]; ok {
		resp.ImpactAnalysis = &v
	}
	if v, ok := sections[SectionRecommendations]; ok {
		resp.Recommendations = &v
	}
	return resp, nil
}

// formatAmount renders a money figure for the narrative prompt. Fixing two
// decimals here keeps float artifacts (115 computed as 114.99999999999999)
// out of the text the model and the user see.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func terminalResponse(text string) *models.AnalyzeResponse {
	return &models.AnalyzeResponse{
		Text:   text,
		Charts: []models.ChartData{},
	}
}

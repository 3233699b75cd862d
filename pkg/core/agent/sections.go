package agent

import (
	"encoding/json"
	"strings"

	"bigpicture_agent/pkg/core/utils"
)

// Section keys of the narrative excerpts surfaced to the caller. The fourth
// narrative section (suggested response) stays inside the full text only.
const (
	SectionSummary         = "summary"
	SectionImpactAnalysis  = "impact_analysis"
	SectionRecommendations = "recommendations"
)

// sectionMarkers is the fixed, ordered header list the narrative prompt asks
// for. Splitting walks this list once; order here is the order of the scan.
var sectionMarkers = []struct {
	key    string
	marker string
}{
	{SectionSummary, "**EXECUTIVE SUMMARY**"},
	{SectionImpactAnalysis, "**IMPACT ANALYSIS**"},
	{SectionRecommendations, "**NEGOTIATION RECOMMENDATIONS**"},
}

// SplitSections extracts the labeled excerpts from a free-form narrative.
// For each marker present, the excerpt runs from the marker to the next
// "**"-delimited header (or end of text), with the header itself and
// surrounding whitespace stripped. A marker absent from the text yields no
// entry at all: model output is free-form and missing sections are normal,
// not an error.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	if text == "" {
		return sections
	}

	anyMarker := false
	for _, sm := range sectionMarkers {
		start := strings.Index(text, sm.marker)
		if start == -1 {
			continue
		}
		anyMarker = true

		body := text[start+len(sm.marker):]
		if end := strings.Index(body, "**"); end != -1 {
			body = body[:end]
		}
		sections[sm.key] = strings.TrimSpace(body)
	}

	if !anyMarker {
		// Models in JSON mode sometimes answer structurally despite the
		// markdown instructions. One repair pass before giving up.
		if fromJSON := sectionsFromJSON(text); len(fromJSON) > 0 {
			return fromJSON
		}
	}
	return sections
}

func sectionsFromJSON(text string) map[string]string {
	sections := make(map[string]string)
	if !strings.Contains(text, "{") {
		return sections
	}

	repaired, err := utils.RepairJSON(text)
	if err != nil {
		return sections
	}

	var parsed struct {
		Summary         string `json:"summary"`
		ImpactAnalysis  string `json:"impact_analysis"`
		Recommendations string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return sections
	}

	if parsed.Summary != "" {
		sections[SectionSummary] = strings.TrimSpace(parsed.Summary)
	}
	if parsed.ImpactAnalysis != "" {
		sections[SectionImpactAnalysis] = strings.TrimSpace(parsed.ImpactAnalysis)
	}
	if parsed.Recommendations != "" {
		sections[SectionRecommendations] = strings.TrimSpace(parsed.Recommendations)
	}
	return sections
}

package agent

import (
	"testing"
)

func TestSplitSections(t *testing.T) {
	text := "**EXECUTIVE SUMMARY**\nFoo bar.\n**IMPACT ANALYSIS**\nBaz."

	sections := SplitSections(text)

	if got := sections[SectionSummary]; got != "Foo bar." {
		t.Errorf("summary expected %q, got %q", "Foo bar.", got)
	}
	if got := sections[SectionImpactAnalysis]; got != "Baz." {
		t.Errorf("impact analysis expected %q, got %q", "Baz.", got)
	}
	if _, ok := sections[SectionRecommendations]; ok {
		t.Error("recommendations must be genuinely missing, not an empty placeholder")
	}
}

func TestSplitSectionsAllPresent(t *testing.T) {
	text := "Intro line.\n" +
		"**EXECUTIVE SUMMARY**\nShort summary here.\n\n" +
		"**IMPACT ANALYSIS**\nNumbers: 1800 EUR.\n\n" +
		"**NEGOTIATION RECOMMENDATIONS**\nPush back hard.\n\n" +
		"**SUGGESTED RESPONSE**\nDear supplier..."

	sections := SplitSections(text)

	if got := sections[SectionSummary]; got != "Short summary here." {
		t.Errorf("summary expected %q, got %q", "Short summary here.", got)
	}
	if got := sections[SectionImpactAnalysis]; got != "Numbers: 1800 EUR." {
		t.Errorf("impact analysis expected %q, got %q", "Numbers: 1800 EUR.", got)
	}
	if got := sections[SectionRecommendations]; got != "Push back hard." {
		t.Errorf("recommendations expected %q, got %q", "Push back hard.", got)
	}
}

func TestSplitSectionsMarkerIsLastSection(t *testing.T) {
	text := "**NEGOTIATION RECOMMENDATIONS**\nHold the line."

	sections := SplitSections(text)
	if got := sections[SectionRecommendations]; got != "Hold the line." {
		t.Errorf("trailing section expected %q, got %q", "Hold the line.", got)
	}
	if len(sections) != 1 {
		t.Errorf("expected exactly 1 section, got %d", len(sections))
	}
}

func TestSplitSectionsEmptyText(t *testing.T) {
	if got := SplitSections(""); len(got) != 0 {
		t.Errorf("empty text expected no sections, got %v", got)
	}
}

func TestSplitSectionsJSONFallback(t *testing.T) {
	// No markers at all, but repairable JSON with the section keys.
	text := `{summary: 'All fine', impact_analysis: 'Costs rise', recommendations: 'Negotiate'}`

	sections := SplitSections(text)
	if got := sections[SectionSummary]; got != "All fine" {
		t.Errorf("summary from JSON expected %q, got %q", "All fine", got)
	}
	if got := sections[SectionImpactAnalysis]; got != "Costs rise" {
		t.Errorf("impact analysis from JSON expected %q, got %q", "Costs rise", got)
	}
	if got := sections[SectionRecommendations]; got != "Negotiate" {
		t.Errorf("recommendations from JSON expected %q, got %q", "Negotiate", got)
	}
}

func TestSplitSectionsPlainProse(t *testing.T) {
	sections := SplitSections("The model ignored all formatting instructions entirely.")
	if len(sections) != 0 {
		t.Errorf("prose without markers expected no sections, got %v", sections)
	}
}

package utils

import "testing"

func TestCleanMarkdown(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "**SUMMARY**\nFine.", "**SUMMARY**\nFine."},
		{"markdown fence stripped", "```markdown\n**SUMMARY**\nFine.\n```", "**SUMMARY**\nFine."},
		{"bare fence stripped", "```\nFine.\n```", "Fine."},
		{"surrounding whitespace trimmed", "  Fine.  ", "Fine."},
	}
	for _, tc := range testCases {
		if got := CleanMarkdown(tc.input); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("**EXECUTIVE SUMMARY**\nAll good.") {
		t.Error("a normal narrative must validate")
	}
	if !ValidateMarkdown("plain prose without any markup") {
		t.Error("plain prose is still one paragraph block")
	}
	if ValidateMarkdown("") {
		t.Error("an empty narrative must not validate")
	}
	if ValidateMarkdown("   \n\t\n") {
		t.Error("a blank narrative must not validate")
	}
}

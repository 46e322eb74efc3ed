package prompt

import (
	"strings"
	"testing"
)

func TestRenderSubstitutesContext(t *testing.T) {
	got := Render(GapAnalysis, "  launch a blog by March  ")
	if !strings.Contains(got, "launch a blog by March") {
		t.Error("context not substituted")
	}
	if strings.Contains(got, "{context}") {
		t.Error("placeholder left in rendered prompt")
	}
}

func TestAllPromptsHaveContextSlot(t *testing.T) {
	prompts := map[string]string{
		"structure": Structure,
		"actions":   Actions,
		"summary":   ExecutiveSummary,
		"gap":       GapAnalysis,
		"comments":  StrategicComments,
	}
	for name, p := range prompts {
		if !strings.Contains(p, "{context}") {
			t.Errorf("prompt %s has no {context} slot", name)
		}
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"
	"testing"
)

func TestExtractQuestionsFromIntroduction(t *testing.T) {
	text := `Introduction
` + strings.Repeat("This study concerns model calibration under distribution shift. ", 3) + `
Our research question is: how does calibration degrade under covariate shift?
We hypothesize that temperature scaling loses effectiveness as shift grows.
The objective is to quantify calibration error across shift magnitudes.
`
	got := extractQuestions(text)

	if got.TotalQuestions == 0 {
		t.Fatalf("no questions found: %+v", got)
	}
	joined := strings.Join(got.ResearchQuestions, " | ")
	if !strings.Contains(joined, "calibration degrade") {
		t.Errorf("stated question not captured: %q", joined)
	}
	if got.TotalHypotheses != 1 {
		t.Errorf("TotalHypotheses = %d, want 1", got.TotalHypotheses)
	}
	if !strings.Contains(got.Hypotheses[0], "temperature scaling") {
		t.Errorf("hypothesis = %q", got.Hypotheses[0])
	}
	if len(got.Objectives) != 1 || !strings.HasPrefix(got.Objectives[0], "To ") {
		t.Errorf("objectives = %v", got.Objectives)
	}
}

func TestExtractQuestionsDefaults(t *testing.T) {
	text := strings.Repeat("Plain declarative prose with no stated questions or aims. ", 10)
	got := extractQuestions(text)

	if len(got.ResearchQuestions) != 1 || got.ResearchQuestions[0] != notStated {
		t.Errorf("ResearchQuestions = %v", got.ResearchQuestions)
	}
	if len(got.Hypotheses) != 1 || got.Hypotheses[0] != notStated {
		t.Errorf("Hypotheses = %v", got.Hypotheses)
	}
	if len(got.Objectives) != 1 || got.Objectives[0] != notStated {
		t.Errorf("Objectives = %v", got.Objectives)
	}
	if got.TotalQuestions != 0 || got.TotalHypotheses != 0 {
		t.Errorf("totals should stay zero for placeholders: %+v", got)
	}
}

func TestExtractQuestionsCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("Introduction\n")
	b.WriteString(strings.Repeat("Context sentence padding the section to minimum length. ", 3))
	for i := 0; i < 10; i++ {
		b.WriteString("Why does the effect persist under noise? ")
	}
	got := extractQuestions(b.String())

	if len(got.ResearchQuestions) > maxQuestions {
		t.Errorf("questions not capped: %d", len(got.ResearchQuestions))
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/internal/sample"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// notStated is the placeholder for question lists with no matches. The totals
// stay at zero so consumers can tell placeholders from findings.
const notStated = "Not explicitly stated"

const (
	maxQuestions       = 5
	maxHypotheses      = 5
	maxObjectives      = 3
	maxDirectQuestions = 3
	questionWindowLen  = 3000
)

var (
	statedQuestionRe = regexp.MustCompile(`(?i)research questions?\s+(?:is|are)[\s:]+([^.?]+[?.])`)
	directQuestionRe = regexp.MustCompile(`[A-Z][^.!?\n]*\?`)
	hypothesisRe     = regexp.MustCompile(`(?i)(?:we hypothesize|hypothesis|hypothesized|we predict)(?:\s+that)?[\s:]+([^.]+\.)`)
	objectiveRe      = regexp.MustCompile(`(?i)(?:aim|objective|purpose|goal)\s+(?:is|was|are|were)\s+to\s+([^.]+\.)`)
)

// extractQuestions pulls stated research questions, hypotheses, and
// objectives out of the introduction, or the document head when no
// introduction section is found.
func extractQuestions(text string) types.ResearchQuestions {
	window := sample.ExtractSection(text, "introduction", "background")
	if window == "" {
		window = sample.Prefix(text, questionWindowLen)
	}

	var questions []string
	for _, m := range statedQuestionRe.FindAllStringSubmatch(window, maxQuestions) {
		questions = append(questions, strings.TrimSpace(m[1]))
	}
	for _, q := range directQuestionRe.FindAllString(window, maxDirectQuestions) {
		questions = append(questions, strings.TrimSpace(q))
	}

	var hypotheses []string
	for _, m := range hypothesisRe.FindAllStringSubmatch(window, maxHypotheses) {
		if body := strings.TrimSpace(m[1]); body != "" {
			hypotheses = append(hypotheses, body)
		}
	}

	var objectives []string
	for _, m := range objectiveRe.FindAllStringSubmatch(window, maxObjectives) {
		objectives = append(objectives, "To "+strings.TrimSpace(m[1]))
	}

	out := types.ResearchQuestions{
		ResearchQuestions: capList(questions, maxQuestions),
		Hypotheses:        capList(hypotheses, maxHypotheses),
		Objectives:        capList(objectives, maxObjectives),
		TotalQuestions:    len(questions),
		TotalHypotheses:   len(hypotheses),
	}
	if len(out.ResearchQuestions) == 0 {
		out.ResearchQuestions = []string{notStated}
	}
	if len(out.Hypotheses) == 0 {
		out.Hypotheses = []string{notStated}
	}
	if len(out.Objectives) == 0 {
		out.Objectives = []string{notStated}
	}
	return out
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

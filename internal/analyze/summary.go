// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/internal/sample"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

const (
	summarySourceWords = 2000
	minSummaryWords    = 50
	maxKeyFindings     = 5
	minFindingLen      = 30
)

const tooShortForSummary = "Text too short for summarization"

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// findingIndicators mark sentences that report a result.
var findingIndicators = []string{
	"found", "showed", "demonstrated", "revealed", "indicated",
	"significant", "suggests", "evidence",
}

// buildSummary produces extractive summaries at three lengths plus key
// findings. The abstract is preferred as source text; otherwise the document
// head is used.
func buildSummary(text string) types.Summary {
	source := sample.ExtractSection(text, "abstract", "summary")
	if source == "" {
		source = sample.Truncate(text, summarySourceWords)
	}
	source = strings.Join(strings.Fields(source), " ")

	if len(strings.Fields(source)) < minSummaryWords {
		return types.Summary{
			OneSentence:      tooShortForSummary,
			ShortSummary:     tooShortForSummary,
			ExecutiveSummary: tooShortForSummary,
			KeyFindings:      []string{"Key findings not extracted"},
		}
	}

	return types.Summary{
		OneSentence:      extractiveSummary(source, 1),
		ShortSummary:     extractiveSummary(source, 3),
		ExecutiveSummary: extractiveSummary(source, 5),
		KeyFindings:      keyFindings(text),
	}
}

// extractiveSummary returns the first n substantial sentences of text joined
// back into prose.
func extractiveSummary(text string, n int) string {
	var kept []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 {
			kept = append(kept, s)
		}
		if len(kept) == n {
			break
		}
	}
	if len(kept) == 0 {
		return tooShortForSummary
	}
	return strings.Join(kept, ". ") + "."
}

// keyFindings scans the results or conclusion section for sentences carrying
// a finding indicator.
func keyFindings(text string) []string {
	section := sample.ExtractSection(text, "results", "findings", "conclusion")
	if section == "" {
		return []string{"Key findings not extracted"}
	}

	var findings []string
	for _, s := range sentenceSplitRe.Split(section, -1) {
		s = strings.TrimSpace(s)
		if len(s) <= minFindingLen {
			continue
		}
		lower := strings.ToLower(s)
		for _, indicator := range findingIndicators {
			if strings.Contains(lower, indicator) {
				findings = append(findings, s+".")
				break
			}
		}
		if len(findings) == maxKeyFindings {
			break
		}
	}
	if len(findings) == 0 {
		return []string{"Key findings not extracted"}
	}
	return findings
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze runs the per-document analysis pipeline: it normalizes raw
// text into a Document, fans the configured tasks out over a bounded worker
// pool, and merges their payloads into an AnalysisRecord. Task failures and
// timeouts degrade into documented default payloads; only invalid input
// aborts a run.
package analyze

import (
	"errors"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// minDocumentLen is the minimum normalized text length accepted for analysis.
const minDocumentLen = 100

// ErrInputTooShort is returned by NewDocument for text under the minimum
// length. No tasks run for such input.
var ErrInputTooShort = errors.New("document text too short for analysis")

// NewDocument normalizes raw text and derives document statistics. Horizontal
// whitespace is collapsed within each line; line structure is preserved so
// header-based tasks (sections, citations) keep working. Runs of more than
// one blank line collapse to one.
func NewDocument(raw string) (types.Document, error) {
	text := normalize(raw)
	if len(text) < minDocumentLen {
		return types.Document{}, ErrInputTooShort
	}
	return types.Document{
		Text: text,
		Stats: types.DocumentStats{
			WordCount:      len(strings.Fields(text)),
			CharacterCount: len(text),
		},
	}, nil
}

func normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

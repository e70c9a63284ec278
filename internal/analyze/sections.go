// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/internal/sample"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// Section detection scans at most this many leading lines; headers past that
// point belong to appendix-scale material that does not affect structure.
const maxSectionScanLines = 500

const sectionSnippetLen = 200

// standardSections lists the seven standard sections in canonical order,
// each with the header pattern that detects it.
var standardSections = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"abstract", regexp.MustCompile(`(?i)^(abstract|summary)\b`)},
	{"introduction", regexp.MustCompile(`(?i)^(introduction|background)\b`)},
	{"methodology", regexp.MustCompile(`(?i)^(methods?|methodology|materials and methods|experimental setup)\b`)},
	{"results", regexp.MustCompile(`(?i)^(results|findings)\b`)},
	{"discussion", regexp.MustCompile(`(?i)^(discussion|analysis)\b`)},
	{"conclusion", regexp.MustCompile(`(?i)^(conclusions?|summary|future work)\b`)},
	{"references", regexp.MustCompile(`(?i)^(references|bibliography|works cited)\b`)},
}

// detectSections finds standard section headers by line matching. A header
// must be a short line; long lines matching a pattern are body text.
func detectSections(text string) types.SectionAnalysis {
	lines := strings.Split(text, "\n")
	if len(lines) > maxSectionScanLines {
		lines = lines[:maxSectionScanLines]
	}

	found := make([]string, 0, len(standardSections))
	details := make(map[string]types.SectionDetail)

	for _, section := range standardSections {
		for i, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || len(trimmed) >= 50 {
				continue
			}
			header := strings.TrimLeft(trimmed, "0123456789. ")
			if !section.pattern.MatchString(header) {
				continue
			}
			found = append(found, section.name)
			details[section.name] = types.SectionDetail{
				Found:    true,
				Position: i,
				Snippet:  sectionSnippet(lines, i+1),
			}
			break
		}
	}

	return types.SectionAnalysis{
		SectionsFound: found,
		TotalSections: len(found),
		Details:       details,
	}
}

// sectionSnippet joins the lines following a header into a single-line
// preview of at most sectionSnippetLen characters.
func sectionSnippet(lines []string, start int) string {
	var b strings.Builder
	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)
		if b.Len() >= sectionSnippetLen {
			break
		}
	}
	return sample.Prefix(b.String(), sectionSnippetLen)
}

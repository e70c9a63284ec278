// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations parses a document's references section into structured
// citation data: individual reference entries, the detected citation style,
// and author/year frequency tables. It is a deterministic rule engine; the
// patterns and their precedence are fixed, and every extraction step is
// capped to bound worst-case cost on pathological input.
package citations

import (
	"regexp"
	"sort"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// Processing caps.
const (
	maxSectionChars    = 5000
	maxEntriesScanned  = 50
	maxEntriesReturned = 20
	maxTopAuthors      = 10
	minEntryLen        = 20
)

// Entry-start patterns, tested per line in order: bracket-numbered ([1]),
// plain-numbered (1.), and author-start (Surname, I.).
var (
	bracketStartRe = regexp.MustCompile(`^\[\d+\]`)
	numberStartRe  = regexp.MustCompile(`^\d+\.\s`)
	authorStartRe  = regexp.MustCompile(`^[A-Z][a-z]+,\s*[A-Z]`)
)

// Style detection patterns. The APA pattern is anchored to a non-bracket
// start so bracket-numbered entries fall through to the IEEE check.
var (
	apaStyleRe = regexp.MustCompile(`^[^\[\n]*\([12]\d{3}\)`)
	mlaStyleRe = regexp.MustCompile(`["\x{201C}]\w[^"\x{201D}]*["\x{201D}]`)
)

var (
	surnameRe = regexp.MustCompile(`^([A-Z][a-z]+)`)
	yearRe    = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// sectionHeaderRe matches a references-section header line.
var sectionHeaderRe = regexp.MustCompile(`(?i)^\s*(?:\d+\.?\s*)?(references|bibliography|works cited)\s*:?\s*$`)

// Parse extracts the citation analysis from full document text. A missing
// references section yields a zero-result payload, never an error.
func Parse(text string) types.CitationAnalysis {
	section := findReferencesSection(text)
	if section == "" {
		return types.CitationAnalysis{
			References:    []string{},
			CitationStyle: "Not detected",
			TopAuthors:    []types.AuthorCount{},
		}
	}

	entries := splitEntries(section)
	if len(entries) == 0 {
		return types.CitationAnalysis{
			References:    []string{},
			CitationStyle: "Not detected",
			TopAuthors:    []types.AuthorCount{},
		}
	}

	returned := entries
	if len(returned) > maxEntriesReturned {
		returned = returned[:maxEntriesReturned]
	}

	return types.CitationAnalysis{
		TotalReferences:  len(entries),
		References:       returned,
		CitationStyle:    DetectStyle(entries),
		TopAuthors:       topAuthors(entries),
		YearDistribution: yearDistribution(section),
	}
}

// findReferencesSection returns the text following a references or
// bibliography header, capped at maxSectionChars. Returns "" if no header
// is found.
func findReferencesSection(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if sectionHeaderRe.MatchString(line) {
			start = i + 1
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}

	section := strings.Join(lines[start:], "\n")
	if len(section) > maxSectionChars {
		section = section[:maxSectionChars]
	}
	return section
}

// splitEntries breaks the section into reference entries using line-start
// heuristics. A line matching an entry-start pattern opens a new entry;
// other lines continue the current one. At most maxEntriesScanned entries
// are collected and entries shorter than minEntryLen are dropped.
func splitEntries(section string) []string {
	var entries []string
	var current strings.Builder

	flush := func() {
		entry := strings.TrimSpace(current.String())
		if len(entry) >= minEntryLen {
			entries = append(entries, entry)
		}
		current.Reset()
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isEntryStart(trimmed) && current.Len() > 0 {
			flush()
			if len(entries) >= maxEntriesScanned {
				return entries
			}
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(trimmed)
	}
	flush()

	if len(entries) > maxEntriesScanned {
		entries = entries[:maxEntriesScanned]
	}
	return entries
}

func isEntryStart(line string) bool {
	return bracketStartRe.MatchString(line) ||
		numberStartRe.MatchString(line) ||
		authorStartRe.MatchString(line)
}

// DetectStyle reports the citation style of the entries: APA for
// parenthesized years, IEEE for bracket-numbered prefixes, MLA for quoted
// titles, and Unknown otherwise. At most five entries are consulted.
func DetectStyle(entries []string) string {
	if len(entries) == 0 {
		return "Unknown"
	}
	sample := entries
	if len(sample) > 5 {
		sample = sample[:5]
	}

	for _, entry := range sample {
		if apaStyleRe.MatchString(entry) {
			return "APA"
		}
	}
	for _, entry := range sample {
		if bracketStartRe.MatchString(entry) {
			return "IEEE"
		}
	}
	for _, entry := range sample {
		if mlaStyleRe.MatchString(entry) {
			return "MLA"
		}
	}
	return "Unknown"
}

// topAuthors extracts the leading author surname of each entry and returns
// the most frequent ones, ties broken alphabetically.
func topAuthors(entries []string) []types.AuthorCount {
	counts := make(map[string]int)
	for _, entry := range entries {
		stripped := stripEntryMarker(entry)
		if m := surnameRe.FindStringSubmatch(stripped); m != nil {
			counts[m[1]]++
		}
	}

	authors := make([]types.AuthorCount, 0, len(counts))
	for author, count := range counts {
		authors = append(authors, types.AuthorCount{Author: author, Count: count})
	}
	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Count != authors[j].Count {
			return authors[i].Count > authors[j].Count
		}
		return authors[i].Author < authors[j].Author
	})
	if len(authors) > maxTopAuthors {
		authors = authors[:maxTopAuthors]
	}
	return authors
}

// stripEntryMarker removes a leading [n] or n. marker so the author pattern
// can anchor to the name.
func stripEntryMarker(entry string) string {
	entry = bracketStartRe.ReplaceAllString(entry, "")
	entry = numberStartRe.ReplaceAllString(entry, "")
	return strings.TrimSpace(entry)
}

// yearDistribution counts 4-digit years in the 1900-2099 range across the
// section text.
func yearDistribution(section string) map[string]int {
	years := make(map[string]int)
	for _, m := range yearRe.FindAllStringSubmatch(section, -1) {
		years[m[1]]++
	}
	if len(years) == 0 {
		return nil
	}
	return years
}

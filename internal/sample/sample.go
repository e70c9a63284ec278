// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample derives bounded-size text windows from arbitrarily long
// document text. All functions are pure: they never mutate input and never
// fail, returning an empty string when nothing suitable is found.
package sample

import "strings"

// Truncate returns the first maxWords words of text, or the text unchanged
// when it is already short enough. Truncate is idempotent for a fixed
// maxWords.
func Truncate(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ")
}

// Prefix returns the first maxChars characters of text without splitting a
// multi-byte rune.
func Prefix(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if len(text) <= maxChars {
		return text
	}
	cut := maxChars
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

const (
	// Section bodies shorter than minSectionLen are treated as not found;
	// longer bodies are cut at maxSectionLen.
	minSectionLen = 100
	maxSectionLen = 2000

	// Header lines longer than this are body text, not headers.
	maxHeaderLen = 50
)

// knownHeaders are the section labels that terminate a body capture.
var knownHeaders = []string{
	"abstract", "summary", "introduction", "background", "related work",
	"method", "methodology", "materials", "results", "findings",
	"discussion", "analysis", "conclusion", "references", "bibliography",
	"acknowledgments", "appendix",
}

// ExtractSection locates a labeled section via case-insensitive header
// matching against the given aliases and returns its body, bounded to
// 100-2000 characters and cut at the next blank line or next known header.
// Returns "" when no section matches.
func ExtractSection(text string, aliases ...string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isHeaderLine(line, aliases) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}

	var body []string
	size := 0
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && size > 0 {
			break
		}
		if isHeaderLine(line, knownHeaders) {
			break
		}
		if trimmed == "" {
			continue
		}
		body = append(body, trimmed)
		size += len(trimmed) + 1
		if size >= maxSectionLen {
			break
		}
	}

	section := strings.Join(body, " ")
	if len(section) < minSectionLen {
		return ""
	}
	if len(section) > maxSectionLen {
		section = Prefix(section, maxSectionLen)
	}
	return section
}

// isHeaderLine reports whether the trimmed line is a section header matching
// one of the labels: it starts with the label, is short enough to be a
// header, and carries at most punctuation after the label.
func isHeaderLine(line string, labels []string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return false
	}
	lower := strings.ToLower(trimmed)
	lower = strings.TrimLeft(lower, "0123456789. ")
	for _, label := range labels {
		if !strings.HasPrefix(lower, label) {
			continue
		}
		rest := strings.TrimPrefix(lower, label)
		rest = strings.Trim(rest, " :.-")
		if rest == "" {
			return true
		}
	}
	return false
}

// Window sizes for Representative: head covers abstract-like content,
// middle covers body content, tail covers conclusion-like content.
const (
	headWords   = 300
	middleWords = 150
	tailWords   = 150
)

// Representative returns a composite sample of long text: a head window, a
// middle window, and a tail window, re-truncated to targetWords. Text at or
// under targetWords is returned unchanged.
func Representative(text string, targetWords int) string {
	if targetWords <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= targetWords {
		return text
	}

	head := words[:min(headWords, len(words))]
	mid := len(words) / 2
	middle := words[mid:min(mid+middleWords, len(words))]
	tail := words[max(0, len(words)-tailWords):]

	combined := make([]string, 0, len(head)+len(middle)+len(tail))
	combined = append(combined, head...)
	combined = append(combined, middle...)
	combined = append(combined, tail...)
	if len(combined) > targetWords {
		combined = combined[:targetWords]
	}
	return strings.Join(combined, " ")
}

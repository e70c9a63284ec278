// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWords int
		want     string
	}{
		{
			name:     "short text unchanged",
			text:     "one two three",
			maxWords: 10,
			want:     "one two three",
		},
		{
			name:     "truncates at word boundary",
			text:     "one two three four five",
			maxWords: 3,
			want:     "one two three",
		},
		{
			name:     "zero max words",
			text:     "one two",
			maxWords: 0,
			want:     "",
		},
		{
			name:     "empty text",
			text:     "",
			maxWords: 5,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.text, tt.maxWords)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxWords, got, tt.want)
			}
		})
	}
}

func TestTruncateIdempotent(t *testing.T) {
	text := strings.Repeat("word ", 500)
	for _, n := range []int{1, 10, 100, 499, 500, 1000} {
		once := Truncate(text, n)
		twice := Truncate(once, n)
		if once != twice {
			t.Errorf("Truncate not idempotent at n=%d", n)
		}
	}
}

func TestExtractSection(t *testing.T) {
	body := strings.Repeat("This paper studies orchestration of analysis tasks. ", 5)
	doc := "Title of the Paper\n\nAbstract\n" + body + "\n\nIntroduction\nIntro text here."

	t.Run("finds abstract body", func(t *testing.T) {
		got := ExtractSection(doc, "abstract")
		if got == "" {
			t.Fatal("expected abstract section, got empty string")
		}
		if !strings.HasPrefix(got, "This paper studies") {
			t.Errorf("unexpected section start: %q", got[:40])
		}
	})

	t.Run("case-insensitive header", func(t *testing.T) {
		upper := strings.Replace(doc, "Abstract", "ABSTRACT:", 1)
		if ExtractSection(upper, "abstract") == "" {
			t.Error("expected match on upper-case header")
		}
	})

	t.Run("missing section returns empty", func(t *testing.T) {
		if got := ExtractSection(doc, "appendix"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("body shorter than minimum is not found", func(t *testing.T) {
		short := "Abstract\nToo short.\n\nIntroduction\nText."
		if got := ExtractSection(short, "abstract"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("capture stops at next known header", func(t *testing.T) {
		got := ExtractSection(doc, "abstract")
		if strings.Contains(got, "Intro text") {
			t.Error("section body crossed into the next section")
		}
	})

	t.Run("long body is bounded", func(t *testing.T) {
		long := "Abstract\n" + strings.Repeat("filler words here ", 500)
		got := ExtractSection(long, "abstract")
		if len(got) > maxSectionLen {
			t.Errorf("section body length %d exceeds %d", len(got), maxSectionLen)
		}
	})
}

func TestRepresentative(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		text := "a few words only"
		if got := Representative(text, 400); got != text {
			t.Errorf("Representative changed short text: %q", got)
		}
	})

	t.Run("long text bounded to target", func(t *testing.T) {
		words := make([]string, 2000)
		for i := range words {
			words[i] = "w"
		}
		got := Representative(strings.Join(words, " "), 400)
		if n := len(strings.Fields(got)); n != 400 {
			t.Errorf("sample has %d words, want 400", n)
		}
	})

	t.Run("contains head middle and tail content", func(t *testing.T) {
		words := make([]string, 1000)
		for i := range words {
			words[i] = "w"
		}
		words[0] = "HEAD"
		words[500] = "MIDDLE"
		words[999] = "TAIL"
		got := Representative(strings.Join(words, " "), 600)
		for _, marker := range []string{"HEAD", "MIDDLE", "TAIL"} {
			if !strings.Contains(got, marker) {
				t.Errorf("sample missing %s window", marker)
			}
		}
	})
}

func TestPrefix(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		if got := Prefix("abc", 10); got != "abc" {
			t.Errorf("Prefix = %q", got)
		}
	})

	t.Run("does not split runes", func(t *testing.T) {
		text := strings.Repeat("é", 10) // 2 bytes each
		got := Prefix(text, 5)
		if got != "éé" {
			t.Errorf("Prefix split a rune: %q", got)
		}
	})
}

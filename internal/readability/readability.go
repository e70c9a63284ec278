// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability computes Flesch reading ease and Flesch-Kincaid grade
// level over a bounded text sample. Syllables are estimated with a vowel-group
// heuristic, which is accurate enough for the score bands the quality
// aggregator consumes.
package readability

import (
	"math"
	"strings"
	"unicode"

	"github.com/harsh1d/research-paper-analyzer/internal/sample"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// sampleWords bounds the analyzed window; readability converges well before
// full-document length.
const sampleWords = 3000

// Analyze computes the readability payload for the document text. Empty or
// sentence-free text yields a zero payload rather than an error.
func Analyze(text string) types.ReadabilityAnalysis {
	window := sample.Truncate(text, sampleWords)

	words := countableWords(window)
	sentences := countSentences(window)
	if len(words) == 0 || sentences == 0 {
		return types.ReadabilityAnalysis{Interpretation: "Not analyzable", AcademicLevel: "Unknown"}
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	ease := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	return types.ReadabilityAnalysis{
		FleschReadingEase:       round2(ease),
		FleschKincaidGrade:      round2(grade),
		Interpretation:          interpret(ease),
		AcademicLevel:           academicLevel(grade),
		SentenceCount:           sentences,
		WordCount:               len(words),
		AverageSentenceLength:   round2(wordsPerSentence),
		AverageSyllablesPerWord: round2(syllablesPerWord),
	}
}

func interpret(ease float64) string {
	switch {
	case ease >= 50:
		return "Fairly Difficult (College)"
	case ease >= 30:
		return "Difficult (Graduate)"
	default:
		return "Very Difficult (Professional)"
	}
}

func academicLevel(grade float64) string {
	if grade >= 16 {
		return "Graduate/Professional"
	}
	return "Undergraduate"
}

// countableWords returns the alphabetic word tokens of the text.
func countableWords(text string) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		field = strings.TrimFunc(field, func(r rune) bool { return !unicode.IsLetter(r) })
		if field != "" {
			words = append(words, field)
		}
	}
	return words
}

// countSentences counts terminal punctuation runs.
func countSentences(text string) int {
	count := 0
	inTerminal := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inTerminal {
				count++
			}
			inTerminal = true
		} else {
			inTerminal = false
		}
	}
	return count
}

// countSyllables estimates syllables as vowel groups, discounting a silent
// trailing e. Every word counts at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score derives a quality assessment from a completed analysis
// record. Compute is a pure function of the record; degraded or zeroed task
// payloads produce low sub-scores, never errors.
package score

import (
	"math"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// Sub-score weights. They sum to 1 so the overall score stays in [0, 100].
const (
	weightStructure   = 0.25
	weightClarity     = 0.25
	weightCitations   = 0.20
	weightMethodology = 0.30
)

const standardSectionCount = 7

// Ideal bands. Flesch reading ease between the clarity bounds scores 100;
// a reference count between the citation bounds scores 100.
const (
	clarityBandLow   = 30.0
	clarityBandHigh  = 50.0
	citationBandLow  = 20
	citationBandHigh = 60
)

// Compute assembles the quality score from the record's section, readability,
// citation, and methodology payloads.
func Compute(record *types.AnalysisRecord) types.QualityScore {
	components := types.ComponentScores{
		Structure:   structureScore(record.Sections),
		Clarity:     clarityScore(record.Readability),
		Citations:   citationScore(record.Citations),
		Methodology: round2(record.Methodology.Confidence),
	}

	overall := components.Structure*weightStructure +
		components.Clarity*weightClarity +
		components.Citations*weightCitations +
		components.Methodology*weightMethodology

	return types.QualityScore{
		OverallScore:    round2(overall),
		Rating:          rating(overall),
		ComponentScores: components,
		Strengths:       strengths(components),
		Improvements:    improvements(components),
	}
}

func structureScore(sections types.SectionAnalysis) float64 {
	score := float64(len(sections.SectionsFound)) / standardSectionCount * 100
	return round2(min(score, 100))
}

// clarityScore treats moderately difficult prose as ideal. Easier text is
// penalized harder than denser text, since academic writing trends dense.
func clarityScore(readability types.ReadabilityAnalysis) float64 {
	flesch := readability.FleschReadingEase
	var score float64
	switch {
	case flesch >= clarityBandLow && flesch <= clarityBandHigh:
		score = 100
	case flesch < clarityBandLow:
		score = 70 + flesch/clarityBandLow*30
	default:
		score = 100 - (flesch-clarityBandHigh)/50*30
	}
	return round2(max(score, 0))
}

func citationScore(citations types.CitationAnalysis) float64 {
	refs := citations.TotalReferences
	var score float64
	switch {
	case refs >= citationBandLow && refs <= citationBandHigh:
		score = 100
	case refs < citationBandLow:
		score = float64(refs) / citationBandLow * 100
	default:
		score = max(70, 100-float64(refs-citationBandHigh)/40*30)
	}
	return round2(score)
}

func rating(overall float64) string {
	switch {
	case overall >= 85:
		return "Excellent"
	case overall >= 70:
		return "Good"
	case overall >= 55:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func strengths(c types.ComponentScores) []string {
	var out []string
	if c.Structure >= 80 {
		out = append(out, "Well-structured document with clear sections")
	}
	if c.Clarity >= 75 {
		out = append(out, "Clear and readable writing style")
	}
	if c.Citations >= 80 {
		out = append(out, "Comprehensive literature review")
	}
	if c.Methodology >= 75 {
		out = append(out, "Clear and well-defined methodology")
	}
	if len(out) == 0 {
		out = []string{"Standard academic quality"}
	}
	return out
}

func improvements(c types.ComponentScores) []string {
	var out []string
	if c.Structure < 60 {
		out = append(out, "Add missing standard sections (Abstract, Conclusion, etc.)")
	}
	if c.Clarity < 60 {
		out = append(out, "Simplify complex sentences for better readability")
	}
	if c.Citations < 60 {
		out = append(out, "Expand literature review with more references")
	}
	if c.Methodology < 60 {
		out = append(out, "Provide more detailed methodology description")
	}
	if len(out) == 0 {
		out = []string{"Maintain current quality standards"}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

func recordWith(sections int, flesch float64, refs int, methodConf float64) *types.AnalysisRecord {
	names := []string{"abstract", "introduction", "literature review", "methodology", "results", "discussion", "conclusion"}
	return &types.AnalysisRecord{
		Sections:    types.SectionAnalysis{SectionsFound: names[:sections], TotalSections: sections},
		Readability: types.ReadabilityAnalysis{FleschReadingEase: flesch},
		Citations:   types.CitationAnalysis{TotalReferences: refs},
		Methodology: types.MethodologyClassification{Confidence: methodConf},
	}
}

func TestComputeAllSectionsScoresFullStructure(t *testing.T) {
	got := Compute(recordWith(7, 40, 30, 80))
	assert.Equal(t, 100.0, got.ComponentScores.Structure)
}

func TestComputeIdealBands(t *testing.T) {
	got := Compute(recordWith(7, 40, 30, 100))
	assert.Equal(t, 100.0, got.ComponentScores.Clarity)
	assert.Equal(t, 100.0, got.ComponentScores.Citations)
	assert.Equal(t, 100.0, got.OverallScore)
	assert.Equal(t, "Excellent", got.Rating)
}

func TestComputeZeroRecord(t *testing.T) {
	got := Compute(&types.AnalysisRecord{})
	assert.Equal(t, 0.0, got.ComponentScores.Structure)
	assert.Equal(t, 0.0, got.ComponentScores.Citations)
	assert.Equal(t, 0.0, got.ComponentScores.Methodology)
	// Flesch 0 sits below the band floor, partial credit only.
	assert.Equal(t, 70.0, got.ComponentScores.Clarity)
	assert.Equal(t, "Needs Improvement", got.Rating)
	assert.NotEmpty(t, got.Strengths)
	assert.NotEmpty(t, got.Improvements)
	assert.Equal(t, []string{"Standard academic quality"}, got.Strengths)
}

func TestComputeScoreInRange(t *testing.T) {
	cases := []*types.AnalysisRecord{
		recordWith(0, -20, 0, 0),
		recordWith(3, 85, 200, 50),
		recordWith(7, 100, 10, 100),
		recordWith(5, 45, 40, 90),
	}
	for _, rec := range cases {
		got := Compute(rec)
		assert.GreaterOrEqual(t, got.OverallScore, 0.0)
		assert.LessOrEqual(t, got.OverallScore, 100.0)
	}
}

func TestComputeMonotonicInEachComponent(t *testing.T) {
	base := Compute(recordWith(3, 20, 10, 50)).OverallScore

	assert.GreaterOrEqual(t, Compute(recordWith(5, 20, 10, 50)).OverallScore, base)
	assert.GreaterOrEqual(t, Compute(recordWith(3, 35, 10, 50)).OverallScore, base)
	assert.GreaterOrEqual(t, Compute(recordWith(3, 20, 25, 50)).OverallScore, base)
	assert.GreaterOrEqual(t, Compute(recordWith(3, 20, 10, 90)).OverallScore, base)
}

func TestRatingBuckets(t *testing.T) {
	tests := []struct {
		overall float64
		want    string
	}{
		{90, "Excellent"},
		{85, "Excellent"},
		{84.99, "Good"},
		{70, "Good"},
		{60, "Fair"},
		{55, "Fair"},
		{54, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rating(tt.overall), "overall %.2f", tt.overall)
	}
}

func TestCitationBandSlopes(t *testing.T) {
	// Below the band the score scales linearly to zero.
	assert.Equal(t, 50.0, citationScore(types.CitationAnalysis{TotalReferences: 10}))
	// Far above the band the score floors at 70.
	assert.Equal(t, 70.0, citationScore(types.CitationAnalysis{TotalReferences: 500}))
}

func TestStrengthsAndImprovements(t *testing.T) {
	high := Compute(recordWith(7, 40, 30, 95))
	assert.Contains(t, high.Strengths, "Well-structured document with clear sections")
	assert.Contains(t, high.Strengths, "Comprehensive literature review")
	assert.Equal(t, []string{"Maintain current quality standards"}, high.Improvements)

	low := Compute(recordWith(1, 40, 2, 10))
	assert.Contains(t, low.Improvements, "Expand literature review with more references")
	assert.Contains(t, low.Improvements, "Provide more detailed methodology description")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

func sampleRecord() *types.AnalysisRecord {
	return &types.AnalysisRecord{
		RunID:      "run-1",
		Statistics: types.DocumentStats{WordCount: 4200, CharacterCount: 28000},
		Topic:      types.TopicClassification{PrimaryTopic: "computer science and software", Confidence: 91.2},
		Sections: types.SectionAnalysis{
			SectionsFound: []string{"abstract", "introduction", "results"},
			TotalSections: 3,
		},
		Methodology: types.MethodologyClassification{PrimaryMethodology: "experimental study", Confidence: 74.5},
		Citations:   types.CitationAnalysis{TotalReferences: 28, CitationStyle: "IEEE"},
		Readability: types.ReadabilityAnalysis{FleschReadingEase: 38.2},
		Outcomes: map[types.TaskName]types.TaskOutcome{
			types.TaskTopic: {Status: types.StatusSuccess},
		},
	}
}

func TestNewDerivesQuality(t *testing.T) {
	rep := New("paper.txt", sampleRecord(), 1500*time.Millisecond)

	assert.Len(t, rep.ReportID, 8)
	assert.Equal(t, "paper.txt", rep.Filename)
	assert.Equal(t, 1.5, rep.ProcessingSeconds)
	assert.False(t, rep.GeneratedAt.IsZero())
	// Ideal bands hit for clarity and citations.
	assert.Equal(t, 100.0, rep.Quality.ComponentScores.Clarity)
	assert.Equal(t, 100.0, rep.Quality.ComponentScores.Citations)
	assert.Equal(t, "run-1", rep.Analysis.RunID)
	assert.NotEmpty(t, rep.Quality.Strengths)
	assert.NotEmpty(t, rep.Quality.Improvements)
}

func TestWriteYAML(t *testing.T) {
	dir := t.TempDir()
	rep := New("paper.txt", sampleRecord(), time.Second)

	path, err := Write(rep, dir, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report-"+rep.ReportID+".yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, rep.ReportID, decoded.ReportID)
	assert.Equal(t, rep.Quality.OverallScore, decoded.Quality.OverallScore)
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	rep := New("", sampleRecord(), time.Second)

	path, err := Write(rep, dir, FormatJSON)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "IEEE", decoded.Analysis.Citations.CitationStyle)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	_, err := Write(New("", sampleRecord(), 0), t.TempDir(), "xml")
	assert.Error(t, err)
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	_, err := Write(New("", sampleRecord(), 0), dir, "")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

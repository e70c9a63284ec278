// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles the final analysis report and writes it to disk
// as YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/harsh1d/research-paper-analyzer/internal/score"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// New builds a report from a completed analysis record, deriving the quality
// score on the way.
func New(filename string, record *types.AnalysisRecord, elapsed time.Duration) *types.Report {
	return &types.Report{
		ReportID:          uuid.NewString()[:8],
		Filename:          filename,
		GeneratedAt:       time.Now().UTC(),
		ProcessingSeconds: elapsed.Seconds(),
		Analysis:          *record,
		Quality:           score.Compute(record),
	}
}

// Write serializes the report in the given format into dir, creating the
// directory if needed, and returns the written path.
func Write(rep *types.Report, dir, format string) (string, error) {
	var (
		data []byte
		err  error
		ext  string
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(rep, "", "  ")
		ext = "json"
	case FormatYAML, "":
		data, err = yaml.Marshal(rep)
		ext = "yaml"
	default:
		return "", fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report-%s.%s", rep.ReportID, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

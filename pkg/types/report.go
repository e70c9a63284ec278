// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ComponentScores holds the four quality sub-scores, each on a 0-100 scale.
type ComponentScores struct {
	// Structure is the proportion of standard sections detected.
	Structure float64 `json:"structure" yaml:"structure"`

	// Clarity is derived from the Flesch reading ease against the
	// academic-difficulty band.
	Clarity float64 `json:"clarity" yaml:"clarity"`

	// Citations is scaled against the ideal reference-count band.
	Citations float64 `json:"citations" yaml:"citations"`

	// Methodology is the methodology classifier's confidence, used directly.
	Methodology float64 `json:"methodology" yaml:"methodology"`
}

// QualityScore is derived from an AnalysisRecord; it has no independent
// lifecycle and is recomputed rather than stored.
type QualityScore struct {
	// OverallScore is the weighted sum of the sub-scores, rounded to two
	// decimals, in [0, 100].
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`

	// Rating buckets the overall score: Excellent, Good, Fair, or
	// Needs Improvement.
	Rating string `json:"rating" yaml:"rating"`

	// ComponentScores holds the sub-scores the overall score was built from.
	ComponentScores ComponentScores `json:"component_scores" yaml:"component_scores"`

	// Strengths lists human-readable strengths. Never empty.
	Strengths []string `json:"strengths" yaml:"strengths"`

	// Improvements lists human-readable suggestions. Never empty.
	Improvements []string `json:"improvements" yaml:"improvements"`
}

// Report is the final artifact of one analysis run: the combined record,
// the derived quality score, and run metadata.
type Report struct {
	// ReportID is a short unique identifier for this report.
	ReportID string `json:"report_id" yaml:"report_id"`

	// Filename is the name of the analyzed source file, when known.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// ProcessingSeconds is the end-to-end analysis duration in seconds.
	ProcessingSeconds float64 `json:"processing_seconds" yaml:"processing_seconds"`

	// Analysis is the combined record for every configured task.
	Analysis AnalysisRecord `json:"analysis" yaml:"analysis"`

	// Quality is the score derived from Analysis.
	Quality QualityScore `json:"quality_score" yaml:"quality_score"`
}

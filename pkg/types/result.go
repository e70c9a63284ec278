// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the paper analyzer:
// documents, task results, analysis payloads, reports, and configuration.
package types

import "time"

// TaskName identifies one unit of orchestrated analysis work.
type TaskName string

const (
	TaskTopic        TaskName = "topic_classification"
	TaskSections     TaskName = "section_analysis"
	TaskMethodology  TaskName = "methodology_classification"
	TaskSentiment    TaskName = "sentiment_analysis"
	TaskKeywords     TaskName = "keywords"
	TaskEntities     TaskName = "named_entities"
	TaskContribution TaskName = "contribution_type"
	TaskCitations    TaskName = "citations_analysis"
	TaskReadability  TaskName = "readability_analysis"
	TaskQuestions    TaskName = "research_questions"
	TaskSummary      TaskName = "summary"
)

// AllTasks returns every configured task name in canonical order.
func AllTasks() []TaskName {
	return []TaskName{
		TaskTopic, TaskSections, TaskMethodology, TaskSentiment,
		TaskKeywords, TaskEntities, TaskContribution, TaskCitations,
		TaskReadability, TaskQuestions, TaskSummary,
	}
}

// TaskStatus is the terminal state of one task within an analysis run.
// Exactly one status is recorded per task per run; a non-success status
// never aborts the run.
type TaskStatus string

const (
	// StatusSuccess means the task produced a normalized payload.
	StatusSuccess TaskStatus = "success"

	// StatusUnavailable means the capability failed or returned malformed
	// output; the record carries the task's default payload.
	StatusUnavailable TaskStatus = "unavailable"

	// StatusTimedOut means the task exceeded the per-task deadline. Treated
	// identically to StatusUnavailable during aggregation.
	StatusTimedOut TaskStatus = "timed_out"
)

// TaskOutcome records how one task reached its terminal state.
type TaskOutcome struct {
	// Status is the terminal state: success, unavailable, or timed_out.
	Status TaskStatus `json:"status" yaml:"status"`

	// Reason carries the failure description for non-success outcomes.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// CacheHit reports whether the payload was served from the result cache.
	CacheHit bool `json:"cache_hit,omitempty" yaml:"cache_hit,omitempty"`

	// Elapsed is the wall-clock duration of the task.
	Elapsed time.Duration `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// Degraded reports whether the task finished without a real payload.
func (o TaskOutcome) Degraded() bool {
	return o.Status != StatusSuccess
}

// LabelScore pairs a classification label with a 0-100 confidence.
type LabelScore struct {
	Label      string  `json:"label" yaml:"label"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// TopicClassification is the payload of the topic task.
type TopicClassification struct {
	// PrimaryTopic is the highest-scoring candidate label, or
	// "Unable to classify" when the capability was unavailable.
	PrimaryTopic string `json:"primary_topic" yaml:"primary_topic"`

	// Confidence is the primary label's score scaled to 0-100.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// SecondaryTopics lists up to two runner-up labels.
	SecondaryTopics []LabelScore `json:"secondary_topics" yaml:"secondary_topics"`
}

// MethodologyClassification is the payload of the methodology task.
type MethodologyClassification struct {
	PrimaryMethodology     string       `json:"primary_methodology" yaml:"primary_methodology"`
	Confidence             float64      `json:"confidence" yaml:"confidence"`
	SecondaryMethodologies []LabelScore `json:"secondary_methodologies" yaml:"secondary_methodologies"`
}

// SentimentAnalysis is the payload of the sentiment task.
type SentimentAnalysis struct {
	// Sentiment is the capability's label, e.g. "POSITIVE" or "NEGATIVE".
	Sentiment string `json:"sentiment" yaml:"sentiment"`

	// Confidence is the label score scaled to 0-100.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// AcademicTone maps the raw label onto an academic register.
	AcademicTone string `json:"academic_tone" yaml:"academic_tone"`
}

// Keyword pairs an extracted keyword with a 0-100 relevance score.
type Keyword struct {
	Keyword        string  `json:"keyword" yaml:"keyword"`
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// EntityMap groups recognized entity texts by entity label
// (e.g. "PERSON" -> ["Smith", "Doe"]). At most five entities per label.
type EntityMap map[string][]string

// ContributionType is the payload of the contribution task.
type ContributionType struct {
	ContributionType string  `json:"contribution_type" yaml:"contribution_type"`
	Confidence       float64 `json:"confidence" yaml:"confidence"`
}

// SectionDetail describes one detected standard section.
type SectionDetail struct {
	// Found is always true for recorded details.
	Found bool `json:"found" yaml:"found"`

	// Position is the line index where the section header matched.
	Position int `json:"position" yaml:"position"`

	// Snippet is up to 200 characters following the header.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// SectionAnalysis is the payload of the section-detection task.
type SectionAnalysis struct {
	// SectionsFound lists detected standard section names in canonical order.
	SectionsFound []string `json:"sections_found" yaml:"sections_found"`

	// TotalSections is len(SectionsFound), out of seven standard sections.
	TotalSections int `json:"total_sections" yaml:"total_sections"`

	// Details maps section name to where and how it was detected.
	Details map[string]SectionDetail `json:"details" yaml:"details"`
}

// AuthorCount pairs a cited author surname with its occurrence count.
type AuthorCount struct {
	Author string `json:"author" yaml:"author"`
	Count  int    `json:"count" yaml:"count"`
}

// CitationAnalysis is the payload of the citation-parsing task.
type CitationAnalysis struct {
	// TotalReferences counts parsed reference entries.
	TotalReferences int `json:"total_references" yaml:"total_references"`

	// References holds up to twenty raw reference entries.
	References []string `json:"references" yaml:"references"`

	// CitationStyle is the detected style: APA, IEEE, MLA, or Unknown.
	// "Not detected" is reported when no references section exists.
	CitationStyle string `json:"citation_style" yaml:"citation_style"`

	// TopAuthors lists the most frequently cited leading authors.
	TopAuthors []AuthorCount `json:"top_authors" yaml:"top_authors"`

	// YearDistribution maps publication year to citation count.
	YearDistribution map[string]int `json:"year_distribution,omitempty" yaml:"year_distribution,omitempty"`
}

// ReadabilityAnalysis is the payload of the readability task.
type ReadabilityAnalysis struct {
	FleschReadingEase       float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade      float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	Interpretation          string  `json:"interpretation" yaml:"interpretation"`
	AcademicLevel           string  `json:"academic_level" yaml:"academic_level"`
	SentenceCount           int     `json:"sentence_count" yaml:"sentence_count"`
	WordCount               int     `json:"word_count" yaml:"word_count"`
	AverageSentenceLength   float64 `json:"average_sentence_length" yaml:"average_sentence_length"`
	AverageSyllablesPerWord float64 `json:"average_syllables_per_word" yaml:"average_syllables_per_word"`
}

// ResearchQuestions is the payload of the research-question task.
type ResearchQuestions struct {
	ResearchQuestions []string `json:"research_questions" yaml:"research_questions"`
	Hypotheses        []string `json:"hypotheses" yaml:"hypotheses"`
	Objectives        []string `json:"objectives" yaml:"objectives"`
	TotalQuestions    int      `json:"total_questions" yaml:"total_questions"`
	TotalHypotheses   int      `json:"total_hypotheses" yaml:"total_hypotheses"`
}

// Summary is the payload of the summary task.
type Summary struct {
	OneSentence      string   `json:"one_sentence" yaml:"one_sentence"`
	ShortSummary     string   `json:"short_summary" yaml:"short_summary"`
	ExecutiveSummary string   `json:"executive_summary" yaml:"executive_summary"`
	KeyFindings      []string `json:"key_findings" yaml:"key_findings"`
}

// AnalysisRecord is the per-document aggregate of all task results. It is
// built incrementally as tasks complete and finalized once every task has
// reported or timed out. Non-success tasks carry their documented default
// payloads.
type AnalysisRecord struct {
	// RunID identifies this analysis run.
	RunID string `json:"run_id" yaml:"run_id"`

	// Statistics holds the document's scalar stats.
	Statistics DocumentStats `json:"statistics" yaml:"statistics"`

	Topic        TopicClassification       `json:"topic_classification" yaml:"topic_classification"`
	Sections     SectionAnalysis           `json:"section_analysis" yaml:"section_analysis"`
	Methodology  MethodologyClassification `json:"methodology_classification" yaml:"methodology_classification"`
	Sentiment    SentimentAnalysis         `json:"sentiment_analysis" yaml:"sentiment_analysis"`
	Keywords     []Keyword                 `json:"keywords" yaml:"keywords"`
	Entities     EntityMap                 `json:"named_entities" yaml:"named_entities"`
	Contribution ContributionType          `json:"contribution_type" yaml:"contribution_type"`
	Citations    CitationAnalysis          `json:"citations_analysis" yaml:"citations_analysis"`
	Readability  ReadabilityAnalysis       `json:"readability_analysis" yaml:"readability_analysis"`
	Questions    ResearchQuestions         `json:"research_questions" yaml:"research_questions"`
	Summary      Summary                   `json:"summary" yaml:"summary"`

	// Outcomes records the terminal state of every configured task.
	Outcomes map[TaskName]TaskOutcome `json:"task_outcomes" yaml:"task_outcomes"`
}

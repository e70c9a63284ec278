// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package capability defines the boundary to the external text-analysis
// capabilities. Each capability is consumed as an opaque scoring or labeling
// function; the adapters in internal/analyze normalize their output and
// absorb their failures. Implementations live in the lexical and inference
// subpackages.
package capability

import "context"

// Classification is the raw output of a zero-shot classification call:
// candidate labels with scores in [0, 1], ordered by descending score.
type Classification struct {
	Labels []string
	Scores []float64
}

// Sentiment is the raw output of a sentiment scoring call.
type Sentiment struct {
	// Label is the sentiment class, e.g. "POSITIVE" or "NEGATIVE".
	Label string

	// Score is the label's probability in [0, 1].
	Score float64
}

// RankedKeyword pairs a keyword with a distance score; lower distance means
// higher relevance.
type RankedKeyword struct {
	Keyword  string
	Distance float64
}

// Entity is one recognized named entity.
type Entity struct {
	Text  string
	Label string
}

// Classifier scores a text sample against candidate labels.
type Classifier interface {
	Classify(ctx context.Context, sample string, labels []string, multiLabel bool) (Classification, error)
}

// SentimentScorer assigns a sentiment label and score to a text sample.
type SentimentScorer interface {
	Score(ctx context.Context, sample string) (Sentiment, error)
}

// KeywordExtractor ranks keywords found in a text sample.
type KeywordExtractor interface {
	Extract(ctx context.Context, sample string) ([]RankedKeyword, error)
}

// EntityRecognizer tags named entities in a text sample.
type EntityRecognizer interface {
	Recognize(ctx context.Context, sample string) ([]Entity, error)
}

// Set bundles one implementation of every capability. Constructed once at
// startup and injected into the orchestrator; capabilities hold no
// per-request state.
type Set struct {
	Classifier Classifier
	Sentiment  SentimentScorer
	Keywords   KeywordExtractor
	Entities   EntityRecognizer
}

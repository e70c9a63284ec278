// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/harsh1d/research-paper-analyzer/internal/capability"
	"github.com/harsh1d/research-paper-analyzer/internal/sample"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

// Sample sizes per task. Classification capabilities take short windows;
// keyword and entity capabilities are cheaper per character and take more.
const (
	classifySampleWords  = 400
	sentimentSampleWords = 300
	keywordSampleWords   = 2000
	entitySampleChars    = 20000
)

const (
	maxSecondaryTopics  = 2
	maxSecondaryMethods = 2
	maxKeywords         = 15
	maxEntitiesPerLabel = 5
)

// unableToClassify is the default primary label for unavailable
// classification tasks.
const unableToClassify = "Unable to classify"

var topicLabels = []string{
	"artificial intelligence and machine learning",
	"healthcare and medicine",
	"finance and economics",
	"biology and life sciences",
	"engineering and technology",
	"physics and astronomy",
	"chemistry and materials science",
	"computer science and software",
	"environmental science",
	"social sciences and psychology",
}

var methodologyLabels = []string{
	"qualitative research",
	"quantitative research",
	"experimental study",
	"simulation and modeling",
	"survey and questionnaire",
	"case study",
	"literature review",
	"mixed methods",
}

var contributionLabels = []string{
	"literature review and survey",
	"original empirical research",
	"case study analysis",
	"comparative analysis",
	"theoretical framework",
	"experimental validation",
	"meta-analysis",
}

// academicTones maps raw sentiment labels onto an academic register.
var academicTones = map[string]string{
	"POSITIVE": "Optimistic/Constructive",
	"NEGATIVE": "Critical/Cautionary",
}

const neutralTone = "Neutral/Analytical"

func (o *Orchestrator) classifyTopic(ctx context.Context, text string) (types.TopicClassification, error) {
	window := abstractSample(text, classifySampleWords)
	cls, err := o.caps.Classifier.Classify(ctx, window, topicLabels, false)
	if err != nil {
		return types.TopicClassification{}, fmt.Errorf("topic classification: %w", err)
	}
	if err := validateClassification(cls); err != nil {
		return types.TopicClassification{}, fmt.Errorf("topic classification: %w", err)
	}

	out := types.TopicClassification{
		PrimaryTopic: cls.Labels[0],
		Confidence:   pct(cls.Scores[0]),
	}
	for i := 1; i < len(cls.Labels) && i <= maxSecondaryTopics; i++ {
		out.SecondaryTopics = append(out.SecondaryTopics, types.LabelScore{
			Label:      cls.Labels[i],
			Confidence: pct(cls.Scores[i]),
		})
	}
	return out, nil
}

func (o *Orchestrator) classifyMethodology(ctx context.Context, text string) (types.MethodologyClassification, error) {
	window := sample.ExtractSection(text, "method", "methodology", "materials and methods", "experimental setup")
	if window == "" {
		window = middleSample(text, classifySampleWords)
	} else {
		window = sample.Truncate(window, classifySampleWords)
	}

	cls, err := o.caps.Classifier.Classify(ctx, window, methodologyLabels, true)
	if err != nil {
		return types.MethodologyClassification{}, fmt.Errorf("methodology classification: %w", err)
	}
	if err := validateClassification(cls); err != nil {
		return types.MethodologyClassification{}, fmt.Errorf("methodology classification: %w", err)
	}

	out := types.MethodologyClassification{
		PrimaryMethodology: cls.Labels[0],
		Confidence:         pct(cls.Scores[0]),
	}
	for i := 1; i < len(cls.Labels) && i <= maxSecondaryMethods; i++ {
		out.SecondaryMethodologies = append(out.SecondaryMethodologies, types.LabelScore{
			Label:      cls.Labels[i],
			Confidence: pct(cls.Scores[i]),
		})
	}
	return out, nil
}

func (o *Orchestrator) analyzeSentiment(ctx context.Context, text string) (types.SentimentAnalysis, error) {
	window := abstractSample(text, sentimentSampleWords)
	sent, err := o.caps.Sentiment.Score(ctx, window)
	if err != nil {
		return types.SentimentAnalysis{}, fmt.Errorf("sentiment analysis: %w", err)
	}
	if sent.Label == "" {
		return types.SentimentAnalysis{}, fmt.Errorf("sentiment analysis: empty label")
	}

	tone, ok := academicTones[sent.Label]
	if !ok {
		tone = neutralTone
	}
	return types.SentimentAnalysis{
		Sentiment:    sent.Label,
		Confidence:   pct(sent.Score),
		AcademicTone: tone,
	}, nil
}

func (o *Orchestrator) extractKeywords(ctx context.Context, text string) ([]types.Keyword, error) {
	window := sample.Truncate(text, keywordSampleWords)
	ranked, err := o.caps.Keywords.Extract(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}

	out := make([]types.Keyword, 0, min(len(ranked), maxKeywords))
	for _, kw := range ranked {
		if len(out) == maxKeywords {
			break
		}
		out = append(out, types.Keyword{
			Keyword:        kw.Keyword,
			RelevanceScore: pct(1 - kw.Distance),
		})
	}
	return out, nil
}

func (o *Orchestrator) recognizeEntities(ctx context.Context, text string) (types.EntityMap, error) {
	window := sample.Prefix(text, entitySampleChars)
	entities, err := o.caps.Entities.Recognize(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("entity recognition: %w", err)
	}

	out := make(types.EntityMap)
	for _, ent := range entities {
		if ent.Label == "" || ent.Text == "" {
			continue
		}
		seen := out[ent.Label]
		if len(seen) >= maxEntitiesPerLabel || slices.Contains(seen, ent.Text) {
			continue
		}
		out[ent.Label] = append(seen, ent.Text)
	}
	return out, nil
}

func (o *Orchestrator) classifyContribution(ctx context.Context, text string) (types.ContributionType, error) {
	window := abstractSample(text, classifySampleWords)
	cls, err := o.caps.Classifier.Classify(ctx, window, contributionLabels, false)
	if err != nil {
		return types.ContributionType{}, fmt.Errorf("contribution classification: %w", err)
	}
	if err := validateClassification(cls); err != nil {
		return types.ContributionType{}, fmt.Errorf("contribution classification: %w", err)
	}
	return types.ContributionType{
		ContributionType: cls.Labels[0],
		Confidence:       pct(cls.Scores[0]),
	}, nil
}

// abstractSample prefers the abstract section, bounded to the given word
// count; without one it falls back to a representative composite of the
// whole document.
func abstractSample(text string, words int) string {
	if s := sample.ExtractSection(text, "abstract", "summary"); s != "" {
		return sample.Truncate(s, words)
	}
	return sample.Representative(text, words)
}

// middleSample pulls a window starting a quarter of the way in, where
// methods-like content usually sits in papers without a labeled section.
func middleSample(text string, n int) string {
	words := strings.Fields(text)
	start := len(words) / 4
	end := min(start+n, len(words))
	return strings.Join(words[start:end], " ")
}

// validateClassification rejects malformed capability output so it degrades
// into the default payload instead of panicking downstream.
func validateClassification(cls capability.Classification) error {
	if len(cls.Labels) == 0 {
		return fmt.Errorf("no labels returned")
	}
	if len(cls.Labels) != len(cls.Scores) {
		return fmt.Errorf("labels and scores length mismatch: %d vs %d", len(cls.Labels), len(cls.Scores))
	}
	return nil
}

// Default payloads recorded for unavailable or timed-out tasks.

func defaultTopic() types.TopicClassification {
	return types.TopicClassification{PrimaryTopic: unableToClassify, SecondaryTopics: []types.LabelScore{}}
}

func defaultMethodology() types.MethodologyClassification {
	return types.MethodologyClassification{PrimaryMethodology: unableToClassify, SecondaryMethodologies: []types.LabelScore{}}
}

func defaultSentiment() types.SentimentAnalysis {
	return types.SentimentAnalysis{Sentiment: "NEUTRAL", Confidence: 50, AcademicTone: neutralTone}
}

func defaultContribution() types.ContributionType {
	return types.ContributionType{ContributionType: unableToClassify}
}

// pct scales a 0-1 score to 0-100, rounded to two decimals.
func pct(score float64) float64 {
	return math.Round(score*10000) / 100
}

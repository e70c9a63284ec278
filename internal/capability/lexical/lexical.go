// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexical implements the analysis capabilities with deterministic
// keyword scoring, so the analyzer runs offline without a model-serving
// endpoint. Accuracy is deliberately modest; the adapters treat this
// backend exactly like any other opaque capability.
package lexical

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/harsh1d/research-paper-analyzer/internal/capability"
)

// labelKeywords carries related terms per known candidate label. Labels
// without an entry are scored on their own words only.
var labelKeywords = map[string][]string{
	"artificial intelligence": {"neural", "learning", "model", "training", "ai", "deep", "agent"},
	"healthcare and medicine": {"patient", "clinical", "disease", "treatment", "medical", "health"},
	"engineering":             {"design", "system", "mechanical", "structural", "manufacturing"},
	"biology":                 {"cell", "gene", "protein", "organism", "species", "dna"},
	"computer science":        {"algorithm", "software", "computation", "data structure", "complexity"},
	"physics":                 {"quantum", "particle", "energy", "relativity", "field", "photon"},
	"chemistry":               {"molecule", "reaction", "compound", "catalyst", "synthesis"},
	"social sciences":         {"society", "survey", "participants", "behavior", "policy", "interview"},

	"qualitative":   {"interview", "thematic", "narrative", "ethnograph", "coding"},
	"quantitative":  {"statistical", "regression", "sample size", "p-value", "measurement"},
	"experimental":  {"experiment", "control group", "trial", "randomized", "treatment"},
	"simulation":    {"simulation", "monte carlo", "numerical", "solver", "discretization"},
	"survey":        {"questionnaire", "respondents", "likert", "survey"},
	"case study":    {"case study", "single case", "in-depth"},
	"review":        {"systematic review", "literature", "meta-analysis", "survey of"},

	"literature review":     {"review", "prior work", "survey", "synthesis"},
	"original research":     {"we propose", "novel", "experiment", "our approach", "we present"},
	"comparative study":     {"compare", "comparison", "versus", "benchmark", "baseline"},
	"theoretical framework": {"theorem", "framework", "formalism", "proof", "axiom"},
}

// Classifier scores candidate labels by weighted keyword occurrence and
// normalizes the counts into pseudo-probabilities.
type Classifier struct{}

func (Classifier) Classify(_ context.Context, sample string, labels []string, multiLabel bool) (capability.Classification, error) {
	lower := strings.ToLower(sample)

	type scored struct {
		label string
		hits  int
	}
	results := make([]scored, 0, len(labels))
	total := 0
	for _, label := range labels {
		hits := countOccurrences(lower, strings.ToLower(label)) * 2
		for _, kw := range labelKeywords[strings.ToLower(label)] {
			hits += countOccurrences(lower, kw)
		}
		results = append(results, scored{label: label, hits: hits})
		total += hits
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].hits > results[j].hits })

	out := capability.Classification{
		Labels: make([]string, len(results)),
		Scores: make([]float64, len(results)),
	}
	for i, r := range results {
		out.Labels[i] = r.label
		switch {
		case total == 0:
			out.Scores[i] = 1.0 / float64(len(results))
		case multiLabel:
			// Independent per-label scores, capped below certainty.
			out.Scores[i] = min(0.95, float64(r.hits)/10.0)
		default:
			out.Scores[i] = float64(r.hits) / float64(total)
		}
	}
	return out, nil
}

func countOccurrences(text, term string) int {
	if term == "" {
		return 0
	}
	return strings.Count(text, term)
}

// Sentiment polarity wordlists, tuned for academic prose.
var (
	positiveTerms = []string{
		"improve", "outperform", "effective", "robust", "significant",
		"novel", "successful", "advantage", "efficient", "promising", "best",
	}
	negativeTerms = []string{
		"fail", "limitation", "weak", "poor", "problem", "risk",
		"concern", "drawback", "insufficient", "worse", "difficult",
	}
)

// Sentiment labels a sample POSITIVE or NEGATIVE by polarity term counts.
type Sentiment struct{}

func (Sentiment) Score(_ context.Context, sample string) (capability.Sentiment, error) {
	lower := strings.ToLower(sample)
	pos, neg := 0, 0
	for _, term := range positiveTerms {
		pos += strings.Count(lower, term)
	}
	for _, term := range negativeTerms {
		neg += strings.Count(lower, term)
	}

	total := pos + neg
	if total == 0 {
		return capability.Sentiment{Label: "POSITIVE", Score: 0.5}, nil
	}
	if pos >= neg {
		return capability.Sentiment{Label: "POSITIVE", Score: float64(pos) / float64(total)}, nil
	}
	return capability.Sentiment{Label: "NEGATIVE", Score: float64(neg) / float64(total)}, nil
}

// stopwords excluded from keyword candidates.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"in": true, "on": true, "to": true, "for": true, "with": true, "by": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"this": true, "that": true, "these": true, "those": true, "we": true,
	"our": true, "it": true, "its": true, "as": true, "at": true, "from": true,
	"can": true, "which": true, "have": true, "has": true, "not": true,
	"their": true, "also": true, "such": true, "than": true, "more": true,
	"results": true, "paper": true, "using": true, "used": true, "based": true,
}

// Keywords ranks unigrams and bigrams by frequency. Distance is
// 1 - freq/maxFreq so that, like the external extractor it stands in for,
// lower distance means higher relevance.
type Keywords struct{}

func (Keywords) Extract(_ context.Context, sample string) ([]capability.RankedKeyword, error) {
	tokens := tokenize(sample)

	counts := make(map[string]int)
	for i, tok := range tokens {
		if stopwords[tok] || len(tok) < 3 {
			continue
		}
		counts[tok]++
		if i+1 < len(tokens) {
			next := tokens[i+1]
			if !stopwords[next] && len(next) >= 3 {
				counts[tok+" "+next]++
			}
		}
	}

	maxFreq := 0
	for _, c := range counts {
		if c > maxFreq {
			maxFreq = c
		}
	}
	if maxFreq == 0 {
		return nil, nil
	}

	ranked := make([]capability.RankedKeyword, 0, len(counts))
	for kw, c := range counts {
		if c < 2 {
			continue
		}
		ranked = append(ranked, capability.RankedKeyword{
			Keyword:  kw,
			Distance: 1 - float64(c)/float64(maxFreq),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Distance != ranked[j].Distance {
			return ranked[i].Distance < ranked[j].Distance
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	if len(ranked) > 15 {
		ranked = ranked[:15]
	}
	return ranked, nil
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Entity tagging patterns, applied in order.
var (
	personRe = regexp.MustCompile(`\b(?:Dr|Prof|Professor|Mr|Ms|Mrs)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	orgRe    = regexp.MustCompile(`\b([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*\s+(?:University|Institute|Laboratory|Laboratories|College|Corporation|Foundation))\b`)
	dateRe   = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b|\b(?:19|20)\d{2}\b`)
	pctRe    = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
	moneyRe  = regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|thousand))?`)
)

// Entities recognizes a small set of entity labels with regular expressions:
// PERSON (titled names), ORG (institutional suffixes), DATE, PERCENT, MONEY.
type Entities struct{}

func (Entities) Recognize(_ context.Context, sample string) ([]capability.Entity, error) {
	var out []capability.Entity
	appendMatches := func(re *regexp.Regexp, label string, group int) {
		for _, m := range re.FindAllStringSubmatch(sample, -1) {
			text := m[0]
			if group < len(m) && m[group] != "" {
				text = m[group]
			}
			out = append(out, capability.Entity{Text: strings.TrimSpace(text), Label: label})
		}
	}
	appendMatches(personRe, "PERSON", 1)
	appendMatches(orgRe, "ORG", 1)
	appendMatches(dateRe, "DATE", 0)
	appendMatches(pctRe, "PERCENT", 0)
	appendMatches(moneyRe, "MONEY", 0)
	return out, nil
}

// Set returns the full lexical capability set.
func Set() capability.Set {
	return capability.Set{
		Classifier: Classifier{},
		Sentiment:  Sentiment{},
		Keywords:   Keywords{},
		Entities:   Entities{},
	}
}

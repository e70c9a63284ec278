// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"context"
	"strings"
	"testing"
)

func TestClassifierRanksByKeywordHits(t *testing.T) {
	sample := strings.Repeat("The neural network model improves deep learning training. ", 5)
	labels := []string{"physics", "artificial intelligence", "chemistry"}

	got, err := Classifier{}.Classify(context.Background(), sample, labels, false)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Labels[0] != "artificial intelligence" {
		t.Errorf("top label = %q, want artificial intelligence", got.Labels[0])
	}
	if len(got.Labels) != len(labels) || len(got.Scores) != len(labels) {
		t.Fatalf("got %d labels / %d scores, want %d", len(got.Labels), len(got.Scores), len(labels))
	}
	for i := 1; i < len(got.Scores); i++ {
		if got.Scores[i] > got.Scores[i-1] {
			t.Errorf("scores not descending at %d: %v", i, got.Scores)
		}
	}
}

func TestClassifierNoSignalIsUniform(t *testing.T) {
	got, err := Classifier{}.Classify(context.Background(), "zzz qqq", []string{"physics", "biology"}, false)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Scores[0] != got.Scores[1] {
		t.Errorf("expected uniform scores, got %v", got.Scores)
	}
}

func TestSentimentPolarity(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   string
	}{
		{"positive prose", "The method is effective, robust, and outperforms the baseline.", "POSITIVE"},
		{"negative prose", "A major limitation is the poor and insufficient sample; results are worse.", "NEGATIVE"},
		{"neutral prose defaults positive", "The document describes a procedure.", "POSITIVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sentiment{}.Score(context.Background(), tt.sample)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if got.Label != tt.want {
				t.Errorf("label = %q, want %q", got.Label, tt.want)
			}
			if got.Score < 0 || got.Score > 1 {
				t.Errorf("score %f out of [0,1]", got.Score)
			}
		})
	}
}

func TestKeywordsLowerDistanceIsMoreFrequent(t *testing.T) {
	sample := strings.Repeat("quantum computing ", 6) + strings.Repeat("error correction ", 3)
	got, err := Keywords{}.Extract(context.Background(), sample)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected keywords")
	}
	if got[0].Keyword != "quantum" && got[0].Keyword != "computing" && got[0].Keyword != "quantum computing" {
		t.Errorf("unexpected top keyword %q", got[0].Keyword)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Errorf("distances not ascending at %d", i)
		}
	}
}

func TestEntitiesPatterns(t *testing.T) {
	sample := "Prof. Alice Smith of Stanford University reported a 12.5% gain in March 2021 at a cost of $3 million."
	got, err := Entities{}.Recognize(context.Background(), sample)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	byLabel := map[string][]string{}
	for _, e := range got {
		byLabel[e.Label] = append(byLabel[e.Label], e.Text)
	}
	for label, want := range map[string]string{
		"PERSON":  "Alice Smith",
		"ORG":     "Stanford University",
		"PERCENT": "12.5%",
		"DATE":    "March 2021",
	} {
		found := false
		for _, text := range byLabel[label] {
			if strings.Contains(text, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %s entity %q in %v", label, want, byLabel)
		}
	}
	if len(byLabel["MONEY"]) == 0 {
		t.Error("missing MONEY entity")
	}
}

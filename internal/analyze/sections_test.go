// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"
	"testing"
)

const fullPaper = `Deep Learning for Time Series

Abstract
This paper presents a systematic approach to forecasting with deep networks.

1. Introduction
Forecasting is a long-standing problem in applied statistics.

2. Methodology
We train recurrent models on three public benchmarks.

3. Results
The proposed model outperforms all baselines.

4. Discussion
The gains concentrate on long-horizon targets.

5. Conclusion
Deep models are competitive when tuned carefully.

References
[1] Smith, J. (2020). Forecasting at scale.
`

func TestDetectSectionsAllSeven(t *testing.T) {
	got := detectSections(fullPaper)

	want := []string{"abstract", "introduction", "methodology", "results", "discussion", "conclusion", "references"}
	if got.TotalSections != len(want) {
		t.Fatalf("TotalSections = %d, want %d (found %v)", got.TotalSections, len(want), got.SectionsFound)
	}
	for i, name := range want {
		if got.SectionsFound[i] != name {
			t.Errorf("SectionsFound[%d] = %q, want %q", i, got.SectionsFound[i], name)
		}
	}

	detail, ok := got.Details["methodology"]
	if !ok || !detail.Found {
		t.Fatal("methodology detail missing")
	}
	if !strings.Contains(detail.Snippet, "recurrent models") {
		t.Errorf("methodology snippet = %q", detail.Snippet)
	}
	if detail.Position == 0 {
		t.Error("methodology position should not be the first line")
	}
}

func TestDetectSectionsLongLineIsNotHeader(t *testing.T) {
	text := "The results of this study, while promising in several respects, must be interpreted with caution.\nSome body text follows here."
	got := detectSections(text)
	if len(got.SectionsFound) != 0 {
		t.Errorf("long prose line detected as header: %v", got.SectionsFound)
	}
}

func TestDetectSectionsAliases(t *testing.T) {
	text := "Background\nPrior work covers this area.\n\nFindings\nWe observe a consistent effect.\n\nWorks Cited\n[1] Doe, A. (2019). Title."
	got := detectSections(text)

	found := map[string]bool{}
	for _, name := range got.SectionsFound {
		found[name] = true
	}
	for _, name := range []string{"introduction", "results", "references"} {
		if !found[name] {
			t.Errorf("alias for %q not detected: %v", name, got.SectionsFound)
		}
	}
}

func TestDetectSectionsSnippetBounded(t *testing.T) {
	text := "Abstract\n" + strings.Repeat("word ", 200)
	got := detectSections(text)
	if d := got.Details["abstract"]; len(d.Snippet) > 200 {
		t.Errorf("snippet length %d exceeds cap", len(d.Snippet))
	}
}

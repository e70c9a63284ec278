// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is the normalized input to one analysis run. Horizontal
// whitespace is collapsed once at construction, line structure is kept, and
// the text is treated as immutable for the lifetime of the run.
type Document struct {
	// Text is the normalized document text.
	Text string `json:"-" yaml:"-"`

	// Stats holds scalar statistics derived from the normalized text.
	Stats DocumentStats `json:"statistics" yaml:"statistics"`
}

// DocumentStats holds scalar statistics about a document.
type DocumentStats struct {
	// WordCount is the number of whitespace-separated words.
	WordCount int `json:"word_count" yaml:"word_count"`

	// CharacterCount is the length of the normalized text in bytes.
	CharacterCount int `json:"character_count" yaml:"character_count"`
}

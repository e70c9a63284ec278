// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textload is the boundary to document text extraction. Plain-text
// and markdown files are handled in-process; PDF and DOCX extraction belongs
// to external conversion tooling and is rejected here with a pointer to it.
package textload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Result mirrors the extraction contract: text plus success or a reason,
// with method metadata.
type Result struct {
	Text             string
	Success          bool
	Error            string
	ExtractionMethod string
}

// Provider extracts analyzable text from raw file bytes of a declared
// format.
type Provider interface {
	Extract(data []byte, format string) Result
}

// Plain handles txt and markdown input. UTF-8 is assumed; invalid UTF-8
// falls back to a Latin-1 interpretation, which always decodes.
type Plain struct{}

func (Plain) Extract(data []byte, format string) Result {
	switch format {
	case "txt", "md", "markdown", "text":
	case "pdf", "docx":
		return Result{
			Success:          false,
			Error:            fmt.Sprintf("%s extraction requires external conversion tooling; convert to txt first", format),
			ExtractionMethod: "Failed",
		}
	default:
		return Result{
			Success:          false,
			Error:            fmt.Sprintf("unsupported format %q", format),
			ExtractionMethod: "Failed",
		}
	}

	if len(data) == 0 {
		return Result{Success: false, Error: "empty input", ExtractionMethod: "Failed"}
	}

	if utf8.Valid(data) {
		return Result{Text: string(data), Success: true, ExtractionMethod: "UTF-8 decode"}
	}
	return Result{Text: decodeLatin1(data), Success: true, ExtractionMethod: "Latin-1 decode"}
}

// LoadFile reads a file from disk and extracts its text, inferring the
// format from the extension.
func LoadFile(path string, provider Provider) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return provider.Extract(data, ext), nil
}

// decodeLatin1 maps each byte to the code point of the same value.
func decodeLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

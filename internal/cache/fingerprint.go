// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"crypto/sha256"
	"fmt"
)

// fingerprintWindow is the number of leading characters hashed into the
// cache key. Two documents identical across this window share cache entries;
// that collision is a documented approximation, not a bug, so the window
// must not be changed silently.
const fingerprintWindow = 1000

// Fingerprint returns a stable key for the document text: the first 16 hex
// characters of SHA-256 over the first 1000 bytes of normalized text.
func Fingerprint(text string) string {
	window := text
	if len(window) > fingerprintWindow {
		window = window[:fingerprintWindow]
	}
	h := sha256.Sum256([]byte(window))
	return fmt.Sprintf("%x", h)[:16]
}

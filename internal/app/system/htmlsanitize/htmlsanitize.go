// Package htmlsanitize strips markup from user-entered free text before it
// is persisted. Assessment fields like remarks and venue are re-rendered in
// the tracker table, so anything that survives storage reaches innerHTML.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every HTML element and returns the trimmed text content.
func Text(s string) string {
	if s == "" {
		return ""
	}
	// StrictPolicy escapes entities while stripping tags; unescape so the
	// stored value is plain text, not HTML-encoded text.
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Fields applies Text to each element, dropping ones that clean to empty.
// Used for tag-style inputs such as question types.
func Fields(in []string) []string {
	var out []string
	for _, s := range in {
		if cleaned := Text(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

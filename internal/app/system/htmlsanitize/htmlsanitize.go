// Package htmlsanitize cleans untrusted form input before it is
// stored or rendered.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps safe user-generated markup (paragraphs, emphasis,
// links, tables) and removes scripts, event handlers, and dangerous
// URLs.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// Strip removes all markup, returning trimmed plain text. Use for
// fields that must never contain HTML, like names and codes.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

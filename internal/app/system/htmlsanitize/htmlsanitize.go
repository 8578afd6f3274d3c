// Package htmlsanitize strips dangerous markup from user-supplied HTML
// before it is persisted or rendered.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	// ugc allows the formatting tags reasonable in user-generated content
	// (paragraphs, emphasis, links) while stripping scripts and event
	// handlers.
	ugc = bluemonday.UGCPolicy()

	// strict strips all markup, leaving plain text.
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans user-supplied HTML, keeping safe formatting tags.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// StripTags removes all markup, returning plain text only. Used for
// single-line fields like chat messages and names.
func StripTags(s string) string {
	return strict.Sanitize(s)
}

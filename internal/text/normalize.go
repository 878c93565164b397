// Package text provides the normalization primitives shared by search and
// feed scoring.
package text

import (
	"regexp"
	"strings"
)

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)

	// Feed content carries a small, predictable entity set; anything beyond
	// it passes through untouched.
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// Normalize lowercases and trims s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// StripMarkup removes tag-like substrings, decodes the common HTML entity
// set, collapses whitespace runs to a single space and trims.
func StripMarkup(s string) string {
	s = entityReplacer.Replace(s)
	s = tagRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

package domain

import (
	"fmt"
	"strings"

	gslug "github.com/gosimple/slug"
)

// maxSlugLen bounds generated slugs; long feed titles are truncated.
const maxSlugLen = 80

// Slugify derives a URL-safe slug from a title.
func Slugify(title string) string {
	s := gslug.Make(title)
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	if s == "" {
		s = "untitled"
	}
	return s
}

// UniqueSlug derives a slug from title and appends a numeric suffix until
// taken reports it free.
func UniqueSlug(title string, taken func(string) bool) string {
	base := Slugify(title)
	candidate := base
	for n := 1; taken(candidate); n++ {
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return candidate
}

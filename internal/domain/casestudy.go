package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Format enumerates the content formats a case study can take.
type Format string

const (
	FormatArticle Format = "article"
	FormatVideo   Format = "video"
	FormatPDF     Format = "pdf"
	FormatPodcast Format = "podcast"
	FormatSlides  Format = "slides"
)

// Access is the access tier of a record.
type Access string

const (
	AccessFree Access = "free"
	AccessPaid Access = "paid"
)

// DateUnknown is stored in DatePublished when the original publish date
// could not be determined.
const DateUnknown = "Unknown"

// MaxDescriptionLen bounds CaseStudy.Description.
const MaxDescriptionLen = 300

// CaseStudy is a canonical catalog entry.
//
// ID and Slug are immutable once created; Slug is unique across the catalog
// at all times. Records are never deleted by the service, only appended or
// enriched (Summary, Access).
type CaseStudy struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	DatePublished string   `json:"datePublished"`
	Source        string   `json:"source"`
	Format        Format   `json:"format"`
	Company       string   `json:"company"`
	CreatedAt     string   `json:"createdAt"`
	Access        Access   `json:"access"`
	Summary       string   `json:"summary,omitempty"`
}

// Validate checks the record against the fixed enumerations and field
// bounds. It returns a *ValidationError describing the first offending
// field, so callers can reject before any mutation.
func (c *CaseStudy) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if !ValidURL(c.URL) {
		return &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}
	if !ValidCategory(c.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category slug %q", c.Category)}
	}
	if !ValidFormat(string(c.Format)) {
		return &ValidationError{Field: "format", Reason: fmt.Sprintf("unknown format %q", c.Format)}
	}
	if c.Access != "" && !ValidAccess(string(c.Access)) {
		return &ValidationError{Field: "access", Reason: fmt.Sprintf("unknown access tier %q", c.Access)}
	}
	if utf8.RuneCountInString(c.Description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "exceeds maximum length"}
	}
	return nil
}

// ValidURL reports whether raw parses as an absolute URL.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// ValidFormat reports whether s is one of the fixed format values.
func ValidFormat(s string) bool {
	switch Format(s) {
	case FormatArticle, FormatVideo, FormatPDF, FormatPodcast, FormatSlides:
		return true
	}
	return false
}

// ValidAccess reports whether s is one of the fixed access tiers.
func ValidAccess(s string) bool {
	switch Access(s) {
	case AccessFree, AccessPaid:
		return true
	}
	return false
}

// TruncateRunes clamps s to at most n runes.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

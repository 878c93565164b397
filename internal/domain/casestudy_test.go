package domain

import (
	"strings"
	"testing"
)

func TestCaseStudyValidate(t *testing.T) {
	valid := func() *CaseStudy {
		return &CaseStudy{
			ID:       "cs-1",
			Slug:     "how-airbnb-scaled",
			Title:    "How Airbnb Scaled",
			URL:      "https://example.com/airbnb",
			Category: "growth-acquisition",
			Format:   FormatArticle,
			Access:   AccessFree,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*CaseStudy)
		wantField string
	}{
		{
			name:   "valid record",
			mutate: func(c *CaseStudy) {},
		},
		{
			name:      "missing title",
			mutate:    func(c *CaseStudy) { c.Title = "  " },
			wantField: "title",
		},
		{
			name:      "relative url",
			mutate:    func(c *CaseStudy) { c.URL = "/airbnb" },
			wantField: "url",
		},
		{
			name:      "unknown category",
			mutate:    func(c *CaseStudy) { c.Category = "nonsense" },
			wantField: "category",
		},
		{
			name:      "unknown format",
			mutate:    func(c *CaseStudy) { c.Format = "hologram" },
			wantField: "format",
		},
		{
			name:      "unknown access",
			mutate:    func(c *CaseStudy) { c.Access = "freemium" },
			wantField: "access",
		},
		{
			name:      "description too long",
			mutate:    func(c *CaseStudy) { c.Description = strings.Repeat("x", MaxDescriptionLen+1) },
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid()
			tt.mutate(rec)

			err := rec.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter than limit", input: "abc", n: 5, expected: "abc"},
		{name: "exactly at limit", input: "abcde", n: 5, expected: "abcde"},
		{name: "truncated", input: "abcdef", n: 3, expected: "abc"},
		{name: "multibyte runes", input: "héllo wörld", n: 5, expected: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.n); got != tt.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

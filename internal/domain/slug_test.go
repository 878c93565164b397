package domain

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "How Airbnb Scaled Internationally",
			expected: "how-airbnb-scaled-internationally",
		},
		{
			name:     "punctuation stripped",
			title:    "Notion's Growth: $10M ARR!",
			expected: "notions-growth-10m-arr",
		},
		{
			name:     "empty title falls back",
			title:    "",
			expected: "untitled",
		},
		{
			name:     "symbols only falls back",
			title:    "???",
			expected: "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestSlugifyTruncatesLongTitles(t *testing.T) {
	title := strings.Repeat("very long title ", 20)
	slug := Slugify(title)
	if len(slug) > maxSlugLen {
		t.Errorf("Slugify() length = %d, want <= %d", len(slug), maxSlugLen)
	}
	if strings.HasSuffix(slug, "-") {
		t.Errorf("Slugify() = %q, should not end with a dash", slug)
	}
}

func TestUniqueSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		taken    map[string]bool
		expected string
	}{
		{
			name:     "free slug unchanged",
			title:    "Growth at Figma",
			taken:    map[string]bool{},
			expected: "growth-at-figma",
		},
		{
			name:     "first collision gets suffix 1",
			title:    "Growth at Figma",
			taken:    map[string]bool{"growth-at-figma": true},
			expected: "growth-at-figma-1",
		},
		{
			name:  "suffix increments past further collisions",
			title: "Growth at Figma",
			taken: map[string]bool{
				"growth-at-figma":   true,
				"growth-at-figma-1": true,
				"growth-at-figma-2": true,
			},
			expected: "growth-at-figma-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueSlug(tt.title, func(s string) bool { return tt.taken[s] })
			if got != tt.expected {
				t.Errorf("UniqueSlug() = %q, want %q", got, tt.expected)
			}
		})
	}
}

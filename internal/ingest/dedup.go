package ingest

import (
	"net/url"
	"strings"
)

// NormalizeURL reduces a URL to a comparison key: lowercased host plus path
// with any trailing slash removed. Scheme, query and fragment are ignored so
// that http/https and tracking-parameter variants of the same page collide.
// A malformed URL falls back to its lowercased raw form.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.ToLower(raw)
	}
	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Host + path)
}

// URLSet tracks normalized URLs seen so far.
type URLSet struct {
	seen map[string]bool
}

// NewURLSet builds a set from raw URLs.
func NewURLSet(urls ...[]string) *URLSet {
	s := &URLSet{seen: make(map[string]bool)}
	for _, group := range urls {
		for _, u := range group {
			s.Add(u)
		}
	}
	return s
}

// Has reports whether raw's normalized form is present.
func (s *URLSet) Has(raw string) bool {
	return s.seen[NormalizeURL(raw)]
}

// Add records raw's normalized form.
func (s *URLSet) Add(raw string) {
	s.seen[NormalizeURL(raw)] = true
}

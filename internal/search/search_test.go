package search

import (
	"testing"

	"github.com/casefolio/casefolio/internal/domain"
)

func fixtures() []*domain.CaseStudy {
	return []*domain.CaseStudy{
		{
			ID:          "cs-1",
			Slug:        "how-airbnb-scaled-internationally",
			Title:       "How Airbnb Scaled Internationally",
			Description: "Airbnb's expansion into new markets",
			Company:     "Airbnb",
			Category:    "internationalization",
			Format:      domain.FormatArticle,
			Tags:        []string{"growth", "marketplace"},
		},
		{
			ID:          "cs-2",
			Slug:        "notions-path-to-product-market-fit",
			Title:       "Notion's Path to Product-Market Fit",
			Description: "How Notion found its audience after a near-death reset",
			Company:     "Notion",
			Category:    "product-launch",
			Format:      domain.FormatArticle,
			Tags:        []string{"pmf", "productivity"},
		},
		{
			ID:          "cs-3",
			Slug:        "spotify-discover-weekly",
			Title:       "Behind Discover Weekly",
			Description: "Personalization at scale",
			Company:     "Spotify",
			Category:    "retention-engagement",
			Format:      domain.FormatVideo,
			Tags:        []string{"personalization", "retention"},
		},
	}
}

func TestSearchEmptyQueryIsIdentity(t *testing.T) {
	records := fixtures()

	for _, q := range []string{"", "   ", "\t"} {
		got := Search(records, q)
		if len(got) != len(records) {
			t.Fatalf("Search(records, %q) returned %d records, want %d", q, len(got), len(records))
		}
		for i := range got {
			if got[i] != records[i] {
				t.Errorf("Search(records, %q)[%d] = %v, want input order preserved", q, i, got[i].ID)
			}
		}
	}
}

func TestSearchReturnsSubset(t *testing.T) {
	records := fixtures()
	got := Search(records, "airbnb")

	if len(got) > len(records) {
		t.Fatalf("Search() returned %d records, more than the %d input records", len(got), len(records))
	}
	byID := make(map[string]bool, len(records))
	for _, rec := range records {
		byID[rec.ID] = true
	}
	for _, rec := range got {
		if !byID[rec.ID] {
			t.Errorf("Search() returned record %q not present in input", rec.ID)
		}
	}
}

func TestSearchExactTitleMatchRanksFirst(t *testing.T) {
	got := Search(fixtures(), "airbnb")
	if len(got) == 0 {
		t.Fatal("Search() returned no results for exact company term")
	}
	if got[0].ID != "cs-1" {
		t.Errorf("Search() top result = %q, want cs-1", got[0].ID)
	}
}

func TestSearchToleratesMisspelling(t *testing.T) {
	got := Search(fixtures(), "airbmb")
	if len(got) == 0 {
		t.Fatal("Search() returned no results for a one-letter misspelling")
	}
	if got[0].ID != "cs-1" {
		t.Errorf("Search() top result = %q, want cs-1", got[0].ID)
	}
}

func TestSearchExcludesUnrelatedRecords(t *testing.T) {
	got := Search(fixtures(), "notion")
	for _, rec := range got {
		if rec.ID == "cs-3" {
			t.Errorf("Search(\"notion\") should not return the Spotify record")
		}
	}
}

func TestSearchScoresAreSorted(t *testing.T) {
	records := fixtures()
	tokens := []string{"growth"}

	got := Search(records, "growth")
	var prev float64 = -1
	for _, rec := range got {
		score, _ := scoreRecord(rec, tokens)
		if score < prev {
			t.Fatalf("Search() results not sorted: %q scored %.3f after %.3f", rec.ID, score, prev)
		}
		prev = score
	}
}

func TestTokenScore(t *testing.T) {
	tests := []struct {
		name  string
		tok   string
		field string
		want  float64
	}{
		{name: "substring hit scores zero", tok: "air", field: "how airbnb scaled", want: 0},
		{name: "unrelated token scores high", tok: "zzzz", field: "how airbnb scaled", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenScore(tt.tok, tt.field, []string{"how", "airbnb", "scaled"})
			if got != tt.want {
				t.Errorf("tokenScore(%q) = %.3f, want %.3f", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenScoreNearMiss(t *testing.T) {
	got := tokenScore("airbmb", "how airbnb scaled", []string{"how", "airbnb", "scaled"})
	if got > MaxDissimilarity {
		t.Errorf("tokenScore(\"airbmb\") = %.3f, want <= %.3f", got, MaxDissimilarity)
	}
}

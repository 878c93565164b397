package ingest

import (
	"testing"

	"github.com/casefolio/casefolio/internal/sources"
)

func testSource() sources.Source {
	return sources.Source{
		Name:     "First Round Review",
		FeedURL:  "https://review.firstround.com/feed.xml",
		Category: "product-launch",
		Quality:  sources.QualityHigh,
		Keywords: []string{"product-market fit", "founder", "startup", "growth", "strategy"},
	}
}

func TestScoreAcceptsStrongCaseStudy(t *testing.T) {
	s := NewScorer(DefaultThreshold)
	entry := FeedEntry{
		Title:       "How Notion Built Its Path to Product-Market Fit",
		Description: "A case study in growth from 0 to 1M users",
	}

	res := s.Score(entry, testSource())

	// Two indicator patterns ("how .* built", "case study", "path to
	// product-market fit", "from \d+ to \d+") plus keyword and quality hits
	// put this well above the threshold.
	if res.Score < 30 {
		t.Errorf("Score() = %d, want >= 30", res.Score)
	}
	if !s.Accept(res.Score) {
		t.Errorf("Accept(%d) = false, want true", res.Score)
	}
	if len(res.MatchedKeywords) == 0 {
		t.Error("Score() recorded no matched keywords")
	}
}

func TestScoreRejectsExcludedContent(t *testing.T) {
	s := NewScorer(DefaultThreshold)
	entry := FeedEntry{
		Title:       "Job posting: growth PM wanted at our startup",
		Description: "We're looking for a founder-minded product person",
	}

	res := s.Score(entry, testSource())

	// Keyword hits cannot outweigh two exclusion penalties.
	if res.Score >= DefaultThreshold {
		t.Errorf("Score() = %d, want < %d", res.Score, DefaultThreshold)
	}
	if s.Accept(res.Score) {
		t.Errorf("Accept(%d) = true, want false", res.Score)
	}
}

func TestScoreIsUnbounded(t *testing.T) {
	s := NewScorer(DefaultThreshold)
	entry := FeedEntry{
		Title: "Sponsor roundup: webinar and conference announcement",
	}

	res := s.Score(entry, testSource())
	if res.Score >= 0 {
		t.Errorf("Score() = %d, want negative for heavily excluded content", res.Score)
	}
}

func TestScoreQualityBonus(t *testing.T) {
	s := NewScorer(DefaultThreshold)
	entry := FeedEntry{Title: "A case study"}

	high := testSource()
	medium := testSource()
	medium.Quality = sources.QualityMedium

	diff := s.Score(entry, high).Score - s.Score(entry, medium).Score
	if diff != QualityBonus {
		t.Errorf("quality bonus = %d, want %d", diff, QualityBonus)
	}
}

func TestScoreCustomThreshold(t *testing.T) {
	strict := NewScorer(100)
	entry := FeedEntry{Title: "A case study about growth"}

	res := strict.Score(entry, testSource())
	if strict.Accept(res.Score) {
		t.Errorf("Accept(%d) with threshold 100 = true, want false", res.Score)
	}
}

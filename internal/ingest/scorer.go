package ingest

import (
	"regexp"
	"strings"

	"github.com/casefolio/casefolio/internal/sources"
)

// Scoring parameters. Scores are intentionally unbounded in both directions;
// a single exclusion keyword outweighs two indicator hits.
const (
	IndicatorPoints  = 20
	KeywordPoints    = 10
	ExclusionPenalty = 50
	QualityBonus     = 5

	// DefaultThreshold is the minimum score an entry needs to enter the
	// moderation queue.
	DefaultThreshold = 15
)

// caseStudyIndicators are patterns that strongly suggest an entry covers a
// real company case study rather than general advice.
var caseStudyIndicators = compilePatterns([]string{
	"case study",
	"how .* built",
	"how .* grew",
	"how .* scaled",
	"how .* achieved",
	"behind the scenes at",
	"path to product-market fit",
	"founding story",
	"growth story",
	"inside .*'s",
	"the story of how",
	"deep dive into",
	"breakdown of",
	`\$\d+.*revenue`,
	`\d+% growth`,
	`from \d+ to \d+`,
})

// exclusionKeywords mark content that is categorically not a case study.
var exclusionKeywords = []string{
	"job posting",
	"hiring",
	"we're looking for",
	"podcast episode",
	"roundup",
	"newsletter digest",
	"weekly links",
	"sponsor",
	"tips for",
	"how to become",
	"career advice",
	"interview questions",
	"best practices",
	"guide to",
	"introduction to",
	"what is a",
	"framework for",
	"template",
	"checklist",
	"book review",
	"book summary",
	"announcement",
	"webinar",
	"event",
	"conference",
}

type indicator struct {
	pattern string
	re      *regexp.Regexp
}

func compilePatterns(patterns []string) []indicator {
	out := make([]indicator, len(patterns))
	for i, p := range patterns {
		out[i] = indicator{pattern: p, re: regexp.MustCompile("(?i)" + p)}
	}
	return out
}

// Result is the scorer's verdict on one entry.
type Result struct {
	Score           int
	MatchedKeywords []string
}

// Scorer rates feed entries for case study likelihood.
type Scorer struct {
	threshold int
}

// NewScorer creates a scorer with the given acceptance threshold.
func NewScorer(threshold int) *Scorer {
	return &Scorer{threshold: threshold}
}

// Score rates an entry against the indicator patterns, the source's own
// keywords and the exclusion list. Matched indicators and keywords are
// recorded verbatim for moderators.
func (s *Scorer) Score(entry FeedEntry, src sources.Source) Result {
	haystack := strings.ToLower(entry.Title + " " + entry.Description + " " + entry.Content)

	var res Result
	for _, ind := range caseStudyIndicators {
		if ind.re.MatchString(haystack) {
			res.Score += IndicatorPoints
			res.MatchedKeywords = append(res.MatchedKeywords, ind.pattern)
		}
	}
	for _, kw := range src.Keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			res.Score += KeywordPoints
			res.MatchedKeywords = append(res.MatchedKeywords, kw)
		}
	}
	for _, kw := range exclusionKeywords {
		if strings.Contains(haystack, kw) {
			res.Score -= ExclusionPenalty
		}
	}
	if src.Quality == sources.QualityHigh {
		res.Score += QualityBonus
	}
	return res
}

// Accept reports whether a score clears the threshold.
func (s *Scorer) Accept(score int) bool {
	return score >= s.threshold
}

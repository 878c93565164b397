// Package search implements relevance ranking and structured filtering over
// the in-memory catalog.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/text"
)

// Field weights. Titles dominate relevance, tags contribute least. A match
// against any single tag contributes at the tag weight.
const (
	WeightTitle       = 0.40
	WeightDescription = 0.25
	WeightCompany     = 0.20
	WeightTags        = 0.15
)

// MaxDissimilarity is the normalized edit-distance threshold above which a
// field no longer counts as a match (0 = exact, 1 = no similarity).
const MaxDissimilarity = 0.4

type scoredRecord struct {
	record *domain.CaseStudy
	score  float64
}

// Search returns the records matching query, best match first. Ties keep
// their input order. An empty or whitespace-only query returns records
// unchanged so that filters alone still produce a stable, complete listing.
func Search(records []*domain.CaseStudy, query string) []*domain.CaseStudy {
	q := text.Normalize(query)
	if q == "" {
		return records
	}
	tokens := strings.Fields(q)

	matches := make([]scoredRecord, 0, len(records))
	for _, rec := range records {
		score, ok := scoreRecord(rec, tokens)
		if !ok {
			continue
		}
		matches = append(matches, scoredRecord{record: rec, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]*domain.CaseStudy, len(matches))
	for i, m := range matches {
		out[i] = m.record
	}
	return out
}

// scoreRecord computes the weighted dissimilarity of a record for the query
// tokens and reports whether at least one field cleared the match threshold.
// Fields above the threshold contribute full dissimilarity so that a strong
// title match on one record still outranks a weak tag match on another.
func scoreRecord(rec *domain.CaseStudy, tokens []string) (float64, bool) {
	fields := []struct {
		score  float64
		weight float64
	}{
		{fieldScore(rec.Title, tokens), WeightTitle},
		{fieldScore(rec.Description, tokens), WeightDescription},
		{fieldScore(rec.Company, tokens), WeightCompany},
		{tagScore(rec.Tags, tokens), WeightTags},
	}

	matched := false
	var total float64
	for _, f := range fields {
		s := f.score
		if s <= MaxDissimilarity {
			matched = true
		} else {
			s = 1.0
		}
		total += s * f.weight
	}
	return total, matched
}

// fieldScore averages the best dissimilarity of each query token against the
// field. A substring hit counts as exact regardless of where in the field it
// occurs.
func fieldScore(field string, tokens []string) float64 {
	f := text.Normalize(field)
	if f == "" {
		return 1.0
	}
	words := strings.Fields(f)

	var sum float64
	for _, tok := range tokens {
		sum += tokenScore(tok, f, words)
	}
	return sum / float64(len(tokens))
}

// tokenScore is the dissimilarity of one query token against one field:
// 0 for a substring hit, otherwise the minimum normalized edit distance
// against the field's words.
func tokenScore(tok, field string, words []string) float64 {
	if strings.Contains(field, tok) {
		return 0.0
	}

	best := 1.0
	tokLen := len([]rune(tok))
	for _, w := range words {
		maxLen := tokLen
		if l := len([]rune(w)); l > maxLen {
			maxLen = l
		}
		if maxLen == 0 {
			continue
		}
		d := levenshtein.ComputeDistance(tok, w)
		if s := float64(d) / float64(maxLen); s < best {
			best = s
		}
	}
	return best
}

// tagScore is the best field score across all tags.
func tagScore(tags []string, tokens []string) float64 {
	best := 1.0
	for _, tag := range tags {
		if s := fieldScore(tag, tokens); s < best {
			best = s
		}
	}
	return best
}

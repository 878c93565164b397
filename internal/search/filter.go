package search

import (
	"strings"

	"github.com/casefolio/casefolio/internal/domain"
)

// Criteria narrows a listing. Zero-value fields impose no constraint; all
// provided criteria must hold (AND semantics).
type Criteria struct {
	Category string // exact slug match
	Format   string // exact enum match
	Company  string // case-insensitive exact match
	Access   string // exact enum match
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.Category == "" && c.Format == "" && c.Company == "" && c.Access == ""
}

// Filter returns the records satisfying every provided criterion. Unknown
// criterion values are not an error; they simply match nothing.
func Filter(records []*domain.CaseStudy, c Criteria) []*domain.CaseStudy {
	if c.Empty() {
		return records
	}

	out := make([]*domain.CaseStudy, 0, len(records))
	for _, rec := range records {
		if c.Category != "" && rec.Category != c.Category {
			continue
		}
		if c.Format != "" && string(rec.Format) != c.Format {
			continue
		}
		if c.Company != "" && !strings.EqualFold(rec.Company, c.Company) {
			continue
		}
		if c.Access != "" && string(rec.Access) != c.Access {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SearchAndFilter applies the structured filter first, then ranks the
// filtered subset. The order is fixed: filtering shrinks the candidate set
// before the more expensive fuzzy pass and guarantees filters stay exact,
// never loosened by fuzzy scoring.
func SearchAndFilter(records []*domain.CaseStudy, query string, c Criteria) []*domain.CaseStudy {
	return Search(Filter(records, c), query)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/search"
)

// relatedLimit bounds the related records returned alongside a single
// case study.
const relatedLimit = 3

type listResponse struct {
	Count   int                 `json:"count"`
	Results []*domain.CaseStudy `json:"results"`
}

type caseStudyResponse struct {
	CaseStudy *domain.CaseStudy   `json:"caseStudy"`
	Related   []*domain.CaseStudy `json:"related"`
}

// ListCaseStudies returns the filtered catalog, optionally ranked by a
// fuzzy query. Without a limit parameter the full result set is returned.
func ListCaseStudies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		criteria := search.Criteria{
			Category: r.URL.Query().Get("category"),
			Format:   r.URL.Query().Get("format"),
			Company:  r.URL.Query().Get("company"),
			Access:   r.URL.Query().Get("access"),
		}

		results := search.SearchAndFilter(d.Catalog.All(), q, criteria)
		if limit := parseLimit(r.URL.Query().Get("limit"), 0); limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		writeJSON(w, http.StatusOK, listResponse{
			Count:   len(results),
			Results: results,
		})
	}
}

// GetCaseStudy returns one record by slug plus up to three related records.
func GetCaseStudy(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		rec, ok := d.Catalog.BySlug(slug)
		if !ok {
			writeError(w, d, &domain.NotFoundError{Kind: "case study", ID: slug})
			return
		}

		related := d.Catalog.Related(rec, relatedLimit)
		if related == nil {
			related = []*domain.CaseStudy{}
		}
		writeJSON(w, http.StatusOK, caseStudyResponse{
			CaseStudy: rec,
			Related:   related,
		})
	}
}

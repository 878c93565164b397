package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/search"
)

// defaultSearchLimit caps /search results unless the caller asks otherwise.
const defaultSearchLimit = 10

type searchResponse struct {
	Query   string              `json:"query"`
	Count   int                 `json:"count"`
	Results []*domain.CaseStudy `json:"results"`
}

// Search ranks catalog records against a fuzzy query with optional
// category and format filters.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		criteria := search.Criteria{
			Category: r.URL.Query().Get("category"),
			Format:   r.URL.Query().Get("format"),
		}
		limit := parseLimit(r.URL.Query().Get("limit"), defaultSearchLimit)

		results := search.SearchAndFilter(d.Catalog.All(), q, criteria)
		if len(results) > limit {
			results = results[:limit]
		}

		d.Logger.Debug("search request",
			logger.String("query", q),
			logger.Int("results", len(results)))

		writeJSON(w, http.StatusOK, searchResponse{
			Query:   q,
			Count:   len(results),
			Results: results,
		})
	}
}

// parseLimit returns def when raw is missing or not a positive integer.
func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

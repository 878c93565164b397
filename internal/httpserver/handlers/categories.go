package handlers

import (
	"net/http"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
)

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// Categories returns the fixed category set with live record counts.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, categoriesResponse{
			Categories: d.Catalog.CategoriesWithCounts(),
		})
	}
}

package handlers

import (
	"net/http"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
)

type companiesResponse struct {
	Companies []string `json:"companies"`
}

// Companies returns the sorted distinct company names in the catalog.
func Companies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies := d.Catalog.Companies()
		if companies == nil {
			companies = []string{}
		}
		writeJSON(w, http.StatusOK, companiesResponse{Companies: companies})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes. Anything unmapped
// is a 500 with a generic body; the real error goes to the log only.
func writeError(w http.ResponseWriter, d deps.Deps, err error) {
	var (
		notFound     *domain.NotFoundError
		validation   *domain.ValidationError
		duplicate    *domain.DuplicateError
		invalidState *domain.InvalidStateError
	)

	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &duplicate):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &invalidState):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		d.Logger.Error("request failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

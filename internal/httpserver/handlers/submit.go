package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/moderation"
)

type submitResponse struct {
	Submission *domain.PendingSubmission `json:"submission"`
}

// Submit queues a community submission for moderation.
func Submit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moderation.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d, &domain.ValidationError{Field: "body", Reason: "invalid JSON"})
			return
		}

		sub, err := d.Moderation.Submit(req)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, submitResponse{Submission: sub})
	}
}

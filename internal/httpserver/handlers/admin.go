package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/moderation"
)

// ListSubmissions returns the moderation queue. A status query parameter
// narrows the list; pending is the usual view.
func ListSubmissions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.Status(r.URL.Query().Get("status"))
		switch status {
		case "", domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		default:
			writeError(w, d, &domain.ValidationError{Field: "status", Reason: "unknown status"})
			return
		}
		writeJSON(w, http.StatusOK, d.Moderation.List(status))
	}
}

type decideRequest struct {
	ID        string               `json:"id"`
	Action    moderation.Action    `json:"action"`
	Overrides moderation.Overrides `json:"overrides"`
}

// DecideSubmission applies a moderator approve/reject decision.
func DecideSubmission(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d, &domain.ValidationError{Field: "body", Reason: "invalid JSON"})
			return
		}
		if req.ID == "" {
			writeError(w, d, &domain.ValidationError{Field: "id", Reason: "required"})
			return
		}

		decision, err := d.Moderation.Decide(req.ID, req.Action, req.Overrides)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, decision)
	}
}

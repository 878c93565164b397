package handlers

import (
	"net/http"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/logger"
)

// CheckFeeds triggers an immediate feed check. The trigger channel holds
// one pending trigger; a send that would block means a check is already
// queued.
func CheckFeeds(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.CheckTrigger <- struct{}{}:
			d.Logger.Info("manual feed check triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, map[string]string{
				"status": "feed check triggered",
			})
		default:
			d.Logger.Warn("feed check already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"status": "feed check already in progress",
			})
		}
	}
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/httpserver/handlers"
	"github.com/casefolio/casefolio/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AdminCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)
	guarded.Get("/admin/submissions", handlers.ListSubmissions(d))
	guarded.Post("/admin/submissions/decide", handlers.DecideSubmission(d))
	guarded.Post("/admin/check-feeds", handlers.CheckFeeds(d))
}

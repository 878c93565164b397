package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/httpserver/handlers"
	"github.com/casefolio/casefolio/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
	guarded := r.With(mw.AllowOnlyCIDRS(d.AdminCIDRS, d.TrustProxy, d.Logger))
	guarded.Get("/readyz", handlers.Readyz(d))
	guarded.Get("/infra", handlers.Infra(d))
}

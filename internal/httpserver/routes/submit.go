package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/httpserver/handlers"
	"github.com/casefolio/casefolio/internal/httpserver/mw"
)

func init() { Register(registerSubmit) }

func registerSubmit(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.SubmitBurst,
		RefillPerIPPerMin: d.SubmitPerMin,
		MaxEntries:        10000,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})).Post("/submit", handlers.Submit(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/httpserver/handlers"
)

func init() { Register(registerCaseStudies) }

func registerCaseStudies(r chi.Router, d deps.Deps) {
	r.Get("/case-studies", handlers.ListCaseStudies(d))
	r.Get("/case-studies/{slug}", handlers.GetCaseStudy(d))
}

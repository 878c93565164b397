package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/httpserver/handlers"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	r.Get("/categories", handlers.Categories(d))
	r.Get("/companies", handlers.Companies(d))
}

package routers

import (
	"problemhub/catalog/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func ProblemRoutes(r *chi.Mux, problemHandler *handlers.ProblemHandler) {
	r.Route("/problems", func(r chi.Router) {
		r.Get("/", problemHandler.ListProblemsHandler)
		r.Get("/random", problemHandler.GetRandomProblemHandler)
		r.Get("/{slug}/next", problemHandler.GetNextProblemHandler)
		r.Get("/{slug}/prev", problemHandler.GetPrevProblemHandler)
		r.Get("/{slug}", problemHandler.GetProblemBySlugHandler)
	})
}

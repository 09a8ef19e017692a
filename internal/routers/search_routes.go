package routers

import (
	"problemhub/catalog/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func SearchRoutes(r *chi.Mux, searchHandler *handlers.SearchHandler) {
	r.Route("/problem", func(r chi.Router) {
		r.Get("/search", searchHandler.SearchProblemsHandler)
	})
}

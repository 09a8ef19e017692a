package routers

import (
	"problemhub/catalog/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(r *chi.Mux, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.HealthzHandler)
	r.Get("/readyz", healthHandler.ReadyzHandler)
}

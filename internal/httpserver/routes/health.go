package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	internal := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	internal.Get("/healthz", handlers.Healthz(d))
	internal.Get("/readyz", handlers.Readyz(d))
	internal.Get("/infra", handlers.Infra(d))
}

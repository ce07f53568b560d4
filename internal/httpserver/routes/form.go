package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/mw"
)

func init() { Register(registerForm) }

func registerForm(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})

	r.Route("/api/form", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))
		r.Get("/", handlers.GetForm(d))

		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Put("/fields/{field}", handlers.SetField(d))
			r.Post("/genres/{genre}/toggle", handlers.ToggleGenre(d))
			r.Post("/submit", handlers.Submit(d))
			r.Post("/reset", handlers.ResetForm(d))
		})
	})
}

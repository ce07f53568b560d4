package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/mw"
)

func init() { Register(registerMovies) }

func registerMovies(r chi.Router, d deps.Deps) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))
		r.Get("/", handlers.ListMovies(d))
		r.Get("/favorites", handlers.ListFavorites(d))
		r.Get("/{id}", handlers.GetMovie(d))
		r.Post("/{id}/favorite", handlers.ToggleFavorite(d))
	})
}

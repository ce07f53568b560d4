package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

type moviesResponse struct {
	Count  int            `json:"count"`
	Movies []domain.Movie `json:"movies"`
}

// ListMovies returns the whole catalog in order.
func ListMovies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies := d.Catalog.Movies()
		writeJSON(w, http.StatusOK, moviesResponse{Count: len(movies), Movies: movies})
	}
}

// ListFavorites returns the favorite movies in catalog order.
func ListFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies := d.Catalog.Favorites()
		writeJSON(w, http.StatusOK, moviesResponse{Count: len(movies), Movies: movies})
	}
}

func GetMovie(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movie, ok := d.Catalog.Find(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

// ToggleFavorite flips the favorite flag. The catalog ignores unknown ids;
// the API reports them as 404 so clients can tell.
func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Catalog.ToggleFavorite(id) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}

		movie, _ := d.Catalog.Find(id)
		d.Logger.Debug("favorite toggled",
			logger.String("id", id),
			logger.Bool("favorite", movie.IsFavorite))
		writeJSON(w, http.StatusOK, movie)
	}
}

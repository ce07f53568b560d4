package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready  bool `json:"ready"`
	Movies int  `json:"movies"`
}

// Readyz reports ready once the catalog has been seeded and the form exists.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Catalog == nil || d.Form == nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:  true,
			Movies: d.Catalog.Count(),
		})
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	MoviesLoaded  *int   `json:"movies_loaded,omitempty"`
	Favorites     *int   `json:"favorites,omitempty"`
	SeededAt      string `json:"seeded_at,omitempty"`
	Source        string `json:"source,omitempty"`
	Mode          string `json:"mode,omitempty"`
	SubmitEnabled *bool  `json:"submit_enabled,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies := d.Catalog.Count()
		favorites := len(d.Catalog.Favorites())
		seededAt := "never"
		if t := d.Catalog.SeededAt(); !t.IsZero() {
			seededAt = t.Format("2006-01-02 15:04:05")
		}
		submitEnabled := d.Form.SubmitEnabled()

		components := map[string]componentStatus{
			"catalog": {
				OK:           movies > 0,
				MoviesLoaded: &movies,
				Favorites:    &favorites,
				SeededAt:     seededAt,
				Source:       d.SeedSource,
			},
			"form": {
				OK:            true,
				SubmitEnabled: &submitEnabled,
			},
			"redis": checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "empty" // nothing seeded, the form still works
	}
	if c, ok := components["redis"]; ok && c.Mode != "disabled" && !c.OK {
		return "degraded"
	}
	return "ok"
}

func checkRedis(parent context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(parent, 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Mode: "seed-source", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: "seed-source"}
}

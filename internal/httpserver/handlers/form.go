package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/form"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

type setFieldRequest struct {
	Value string `json:"value"`
}

type submitResponse struct {
	Movie domain.Movie `json:"movie"`
	Form  form.State   `json:"form"`
}

func GetForm(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Form.State())
	}
}

// SetField stores the value of one buffer and runs that field's validator.
func SetField(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, err := form.ParseField(chi.URLParam(r, "field"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		var req setFieldRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := d.Form.SetField(field, req.Value); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if err := d.Form.Validate(field); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, d.Form.State())
	}
}

// ToggleGenre flips one genre and runs the genre validator.
func ToggleGenre(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "genre")
		if !d.Form.ToggleGenre(name) {
			writeError(w, http.StatusNotFound, "genre not found")
			return
		}
		d.Form.ValidateGenres()

		writeJSON(w, http.StatusOK, d.Form.State())
	}
}

// Submit commits the form into the catalog when the gate is open.
func Submit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movie, err := d.Form.SubmitIfEnabled()
		switch {
		case errors.Is(err, form.ErrSubmitDisabled):
			writeError(w, http.StatusConflict, err.Error())
			return
		case err != nil:
			d.Logger.Warn("submit rejected", logger.Error(err))
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{Movie: movie, Form: d.Form.State()})
	}
}

func ResetForm(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Form.Reset()
		writeJSON(w, http.StatusOK, d.Form.State())
	}
}

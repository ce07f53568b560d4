package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/moviedb/internal/catalog"
	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/form"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

type testEnv struct {
	handler http.Handler
	catalog *catalog.Store
	form    *form.Form
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	log := logger.NewNop()
	store := catalog.New([]*domain.Movie{
		{ID: "m1", Title: "Alien", Year: "1979", Genres: []domain.Genre{domain.GenreHorror}, Rating: 8.5, Images: []string{}},
		{ID: "m2", Title: "Heat", Year: "1995", Genres: []domain.Genre{domain.GenreCrime}, Rating: 8.3, Images: []string{}},
	}, log)
	f := form.New(store, log, form.WithIDGenerator(func() string { return "new-id" }))
	t.Cleanup(func() {
		store.Close()
		f.Close()
	})

	d := deps.Deps{
		Logger:          log,
		StartTime:       time.Now(),
		Version:         "test",
		RateLimitBurst:  100,
		RateLimitPerMin: 100,
		Catalog:         store,
		Form:            f,
		SeedSource:      "file",
	}
	return testEnv{handler: NewRouter(d), catalog: store, form: f}
}

func (e testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type moviesBody struct {
	Count  int            `json:"count"`
	Movies []domain.Movie `json:"movies"`
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/healthz", "/readyz", "/infra"} {
		t.Run(path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestInfraReportsRedisDisabled(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/infra", "")
	body := decode[map[string]any](t, rec)

	assert.Equal(t, "ok", body["status"])
	components := body["components"].(map[string]any)
	assert.Equal(t, "disabled", components["redis"].(map[string]any)["mode"])
	assert.Equal(t, float64(2), components["catalog"].(map[string]any)["movies_loaded"])
}

func TestListMovies(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[moviesBody](t, rec)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "m1", body.Movies[0].ID)
	assert.Equal(t, "m2", body.Movies[1].ID)
}

func TestGetMovie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/movies/m2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Heat", decode[domain.Movie](t, rec).Title)

	rec = env.do(t, http.MethodGet, "/api/movies/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleFavoriteEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/movies/m2/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.Movie](t, rec).IsFavorite)

	rec = env.do(t, http.MethodGet, "/api/movies/favorites", "")
	body := decode[moviesBody](t, rec)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "m2", body.Movies[0].ID)

	rec = env.do(t, http.MethodPost, "/api/movies/unknown/favorite", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, env.catalog.Favorites(), 1)
}

func TestSetFieldValidates(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/form/fields/title", `{"value":"   "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[form.State](t, rec)
	assert.Equal(t, "   ", state.Fields.Title)
	assert.False(t, state.Validation.IsTitleValid)
	assert.Equal(t, domain.MsgTitleRequired, state.Validation.TitleErrMsg)
}

func TestSetFieldErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"unknown field", "/api/form/fields/budget", `{"value":"1"}`, http.StatusNotFound},
		{"malformed body", "/api/form/fields/title", `{"value":`, http.StatusBadRequest},
		{"unknown property", "/api/form/fields/title", `{"val":"x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestToggleGenreEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/form/genres/WESTERN/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"WESTERN"}, env.form.SelectedGenres())

	rec = env.do(t, http.MethodPost, "/api/form/genres/POLKA/toggle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/form/submit", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	fields := map[string]string{
		"title":    "Dune",
		"year":     "2021",
		"director": "Denis Villeneuve",
		"actors":   "Timothée Chalamet",
		"plot":     "  Spice.  ",
		"rating":   "8.0",
	}
	for field, value := range fields {
		body, err := json.Marshal(map[string]string{"value": value})
		require.NoError(t, err)
		rec := env.do(t, http.MethodPut, "/api/form/fields/"+field, string(body))
		require.Equal(t, http.StatusOK, rec.Code, field)
	}
	env.do(t, http.MethodPost, "/api/form/genres/SCIFI/toggle", "")

	rec = env.do(t, http.MethodGet, "/api/form", "")
	require.True(t, decode[form.State](t, rec).SubmitEnabled)

	rec = env.do(t, http.MethodPost, "/api/form/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Movie domain.Movie `json:"movie"`
		Form  form.State   `json:"form"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "new-id", body.Movie.ID)
	assert.Equal(t, "Spice.", body.Movie.Plot)
	assert.Equal(t, []domain.Genre{domain.GenreScifi}, body.Movie.Genres)
	assert.False(t, body.Form.SubmitEnabled)
	assert.Empty(t, body.Form.Fields.Title)

	assert.Equal(t, 3, env.catalog.Count())
	last := env.catalog.Movies()[2]
	assert.Equal(t, "Dune", last.Title)
}

func TestResetEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPut, "/api/form/fields/title", `{"value":"Dune"}`)
	rec := env.do(t, http.MethodPost, "/api/form/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[form.State](t, rec)
	assert.Empty(t, state.Fields.Title)
	assert.Equal(t, domain.ValidationResult{}, state.Validation)
}

func TestFormRoutesAreRateLimited(t *testing.T) {
	log := logger.NewNop()
	store := catalog.New(nil, log)
	f := form.New(store, log)
	t.Cleanup(func() {
		store.Close()
		f.Close()
	})

	h := NewRouter(deps.Deps{Logger: log, Catalog: store, Form: f, RateLimitBurst: 1, RateLimitPerMin: 1})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/form/reset", nil)
		req.RemoteAddr = "10.0.0.9:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

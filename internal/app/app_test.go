package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/seed"
)

const seedYAML = `
movies:
  - id: tt0078748
    title: Alien
    year: "1979"
    genres: [HORROR, SCIFI]
    director: Ridley Scott
    actors: Sigourney Weaver
    rating: 8.5
  - id: tt0113277
    title: Heat
    year: "1995"
    genres: [CRIME, DRAMA]
    director: Michael Mann
    actors: Al Pacino, Robert De Niro
    rating: 8.3
    is_favorite: true
`

func newTestApp(t *testing.T) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	t.Setenv("MOVIEDB_SEED_FILE", path)
	t.Setenv("MOVIEDB_REDIS_ADDR", "")
	t.Setenv("MOVIEDB_LOG_LEVEL", "error")
	t.Setenv("MOVIEDB_PRETTY_LOG", "false")

	a, err := New()
	require.NoError(t, err)
	t.Cleanup(func() {
		a.form.Close()
		a.catalog.Close()
	})
	return a
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewSeedsCatalogFromFile(t *testing.T) {
	a := newTestApp(t)

	assert.Nil(t, a.redisClient)
	require.Equal(t, 2, a.catalog.Count())

	movies := a.catalog.Movies()
	assert.Equal(t, "tt0078748", movies[0].ID)
	assert.Equal(t, []domain.Genre{domain.GenreHorror, domain.GenreScifi}, movies[0].Genres)

	favorites := a.catalog.Favorites()
	require.Len(t, favorites, 1)
	assert.Equal(t, "Heat", favorites[0].Title)
}

func TestCreateMovieThroughAPI(t *testing.T) {
	a := newTestApp(t)
	h := a.server.Handler()

	for field, value := range map[string]string{
		"title":    "Blade Runner",
		"year":     "1982",
		"director": "Ridley Scott",
		"actors":   "Harrison Ford",
		"rating":   "8.1",
	} {
		rec := call(t, h, http.MethodPut, "/api/form/fields/"+field, `{"value":"`+value+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, field)
	}
	rec := call(t, h, http.MethodPost, "/api/form/genres/SCIFI/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/form/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count  int            `json:"count"`
		Movies []domain.Movie `json:"movies"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, 3, body.Count)

	created := body.Movies[2]
	assert.Equal(t, "Blade Runner", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 8.1, created.Rating)
	assert.False(t, created.IsFavorite)
	assert.Empty(t, created.Images)
}

func TestInfraReportsSeedSource(t *testing.T) {
	a := newTestApp(t)

	rec := call(t, a.server.Handler(), http.MethodGet, "/infra", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"`+seed.SourceFile+`"`)
}

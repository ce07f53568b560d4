package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
)

// ErrNoMovies is returned when a seed source yields no usable movie.
var ErrNoMovies = errors.New("no valid movies found in seed")

// Mapper converts seed file entries to domain movies
type Mapper struct {
	newID func() string
}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{newID: uuid.NewString}
}

// Skipped describes a seed entry that could not be mapped.
type Skipped struct {
	Index  int
	Title  string
	Reason string
}

// MapMovies converts the seed file to movies, in file order.
//
// Entries without a title or with an unknown genre are skipped and reported.
// Entries without an ID get a generated one; duplicated IDs keep the first.
func (m *Mapper) MapMovies(file File) ([]*domain.Movie, []Skipped, error) {
	movies := make([]*domain.Movie, 0, len(file.Movies))
	var skipped []Skipped
	seen := make(map[string]bool, len(file.Movies))

	for i, props := range file.Movies {
		title := strings.TrimSpace(props.Title)
		if title == "" {
			skipped = append(skipped, Skipped{Index: i, Reason: "missing title"})
			continue
		}

		genres, err := parseGenres(props.Genres)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Title: title, Reason: err.Error()})
			continue
		}

		id := strings.TrimSpace(props.ID)
		if id == "" {
			id = m.newID()
		}
		if seen[id] {
			skipped = append(skipped, Skipped{Index: i, Title: title, Reason: "duplicate id " + id})
			continue
		}
		seen[id] = true

		images := props.Images
		if images == nil {
			images = []string{}
		}

		movies = append(movies, &domain.Movie{
			ID:         id,
			Title:      title,
			Year:       strings.TrimSpace(props.Year),
			Director:   props.Director,
			Actors:     props.Actors,
			Plot:       strings.TrimSpace(props.Plot),
			Genres:     genres,
			Rating:     props.Rating,
			Images:     images,
			IsFavorite: props.IsFavorite,
		})
	}

	if len(movies) == 0 {
		return nil, skipped, ErrNoMovies
	}

	return movies, skipped, nil
}

func parseGenres(names []string) ([]domain.Genre, error) {
	genres := make([]domain.Genre, 0, len(names))
	for _, name := range names {
		g, err := domain.ParseGenre(strings.ToUpper(strings.TrimSpace(name)))
		if err != nil {
			return nil, fmt.Errorf("invalid genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, nil
}

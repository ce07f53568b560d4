package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
)

// ErrMovieNotFound is returned when a movie key does not exist.
var ErrMovieNotFound = errors.New("movie not found")

// Store reads a published catalog from Redis.
//
// Layout: KeyCatalogOrder is a list of IDs in display order and each ID has
// a JSON document under MovieKey(id). The store never writes.
type Store struct {
	client redis.Cmdable
}

// NewStore creates a new Redis store
func NewStore(client redis.Cmdable) *Store {
	return &Store{
		client: client,
	}
}

// GetMovie retrieves a movie from Redis by ID
func (s *Store) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	data, err := s.client.Get(ctx, MovieKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, id)
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return decodeMovie(id, data)
}

// GetAllMovies retrieves every movie listed in the catalog order, in order.
// IDs whose document is missing or unreadable are skipped.
func (s *Store) GetAllMovies(ctx context.Context) ([]*domain.Movie, error) {
	ids, err := s.client.LRange(ctx, CatalogOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get movie IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Movie{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = MovieKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	movies := make([]*domain.Movie, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok || seen[ids[i]] {
			continue
		}
		movie, err := decodeMovie(ids[i], []byte(raw))
		if err != nil {
			continue
		}
		seen[ids[i]] = true
		movies = append(movies, movie)
	}

	return movies, nil
}

// decodeMovie unmarshals a stored document. The key's ID wins over any ID
// inside the document.
func decodeMovie(id string, data []byte) (*domain.Movie, error) {
	var movie domain.Movie
	if err := json.Unmarshal(data, &movie); err != nil {
		return nil, fmt.Errorf("failed to unmarshal movie %s: %w", id, err)
	}

	for _, g := range movie.Genres {
		if !g.IsValid() {
			return nil, fmt.Errorf("movie %s: %w: %q", id, domain.ErrUnknownGenre, g)
		}
	}

	movie.ID = id
	if movie.Images == nil {
		movie.Images = []string{}
	}
	return &movie, nil
}

package catalog

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/events"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

// Store owns the ordered movie catalog for the lifetime of the process.
// Every mutation publishes the full new sequence to subscribers.
type Store struct {
	mu       sync.RWMutex
	movies   []*domain.Movie // insertion order is display order
	seededAt time.Time
	stream   *events.Broadcaster[[]domain.Movie]
	logger   logger.Logger
}

// New creates a store holding the given seed, in order.
func New(seed []*domain.Movie, log logger.Logger) *Store {
	movies := make([]*domain.Movie, 0, len(seed))
	for _, m := range seed {
		if m == nil {
			continue
		}
		cp := m.Clone()
		movies = append(movies, &cp)
	}

	return &Store{
		movies:   movies,
		seededAt: time.Now(),
		stream:   events.NewBroadcaster[[]domain.Movie](events.DefaultBuffer),
		logger:   log.With(logger.String("component", "catalog")),
	}
}

// Movies returns a snapshot of the whole catalog in order.
func (s *Store) Movies() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Find retrieves a movie by ID
func (s *Store) Find(id string) (domain.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m := s.findLocked(id); m != nil {
		return m.Clone(), true
	}
	return domain.Movie{}, false
}

// Favorites returns the movies currently flagged as favorite.
// It is derived from the current state on each call.
func (s *Store) Favorites() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]domain.Movie, 0)
	for _, m := range s.movies {
		if m.IsFavorite {
			favorites = append(favorites, m.Clone())
		}
	}
	return favorites
}

// ToggleFavorite flips the favorite flag of the movie with the given ID.
// An unknown ID is a no-op; the return value only reports whether it matched.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findLocked(id)
	if m == nil {
		s.logger.Debug("toggle favorite on unknown movie ignored", logger.String("id", id))
		return false
	}

	m.IsFavorite = !m.IsFavorite
	s.logger.Debug("favorite toggled",
		logger.String("id", id),
		logger.Bool("is_favorite", m.IsFavorite))

	s.stream.Publish(s.snapshotLocked())
	return true
}

// Append adds a movie at the end of the catalog.
// The caller is responsible for supplying a fresh ID.
func (s *Store) Append(movie domain.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := movie.Clone()
	s.movies = append(s.movies, &cp)
	s.logger.Debug("movie appended",
		logger.String("id", movie.ID),
		logger.String("title", movie.Title),
		logger.Int("count", len(s.movies)))

	s.stream.Publish(s.snapshotLocked())
}

// Count returns the number of movies in the catalog
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.movies)
}

// SeededAt returns when the catalog was built from its seed.
func (s *Store) SeededAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.seededAt
}

// Subscribe returns a channel receiving the full catalog after every change.
// The current catalog is delivered first.
func (s *Store) Subscribe() <-chan []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.snapshotLocked()
	return s.stream.Subscribe(&current)
}

// Unsubscribe stops delivery and closes the channel.
func (s *Store) Unsubscribe(ch <-chan []domain.Movie) {
	s.stream.Unsubscribe(ch)
}

// Close releases all subscribers.
func (s *Store) Close() {
	s.stream.Close()
}

func (s *Store) findLocked(id string) *domain.Movie {
	for _, m := range s.movies {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Store) snapshotLocked() []domain.Movie {
	out := make([]domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m.Clone())
	}
	return out
}

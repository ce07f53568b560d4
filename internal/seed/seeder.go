package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

// Seed sources.
const (
	SourceRedis = "redis"
	SourceFile  = "file"
)

// ErrNoSource is returned when neither Redis nor a seed file is configured.
var ErrNoSource = errors.New("no seed source configured")

// MovieReader reads a previously published catalog.
type MovieReader interface {
	GetAllMovies(ctx context.Context) ([]*domain.Movie, error)
}

// Result is the initial catalog and where it came from.
type Result struct {
	Movies []*domain.Movie
	Source string
}

// Seeder supplies the initial catalog once at startup.
// Redis is tried first when configured; the seed file is the fallback.
type Seeder struct {
	reader MovieReader
	loader *Loader
	mapper *Mapper
	logger logger.Logger
}

// NewSeeder creates a seeder. reader may be nil; seedFile may be empty.
func NewSeeder(seedFile string, reader MovieReader, log logger.Logger) *Seeder {
	s := &Seeder{
		reader: reader,
		mapper: NewMapper(),
		logger: log,
	}
	if seedFile != "" {
		s.loader = NewLoader(seedFile)
	}
	return s
}

// Seed returns the initial catalog.
func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	if s.reader != nil {
		movies, err := s.fromRedis(ctx)
		switch {
		case err != nil && s.loader != nil:
			s.logger.Warn("failed to read seed from redis, falling back to seed file",
				logger.Error(err))
		case err != nil:
			return Result{}, err
		case len(movies) > 0:
			return Result{Movies: movies, Source: SourceRedis}, nil
		default:
			s.logger.Info("no movies found in redis")
		}
	}

	if s.loader == nil {
		if s.reader != nil {
			return Result{}, fmt.Errorf("redis holds no movies and no seed file is configured: %w", ErrNoMovies)
		}
		return Result{}, ErrNoSource
	}

	movies, err := s.fromFile()
	if err != nil {
		return Result{}, err
	}
	return Result{Movies: movies, Source: SourceFile}, nil
}

func (s *Seeder) fromRedis(ctx context.Context) ([]*domain.Movie, error) {
	s.logger.Info("reading seed catalog from redis")

	movies, err := s.reader.GetAllMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read movies from redis: %w", err)
	}

	if len(movies) > 0 {
		s.logger.Info("seed catalog read from redis",
			logger.Int("count", len(movies)))
	}
	return movies, nil
}

func (s *Seeder) fromFile() ([]*domain.Movie, error) {
	s.logger.Info("loading seed catalog from file")

	file, err := s.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	movies, skipped, err := s.mapper.MapMovies(file)
	for _, sk := range skipped {
		s.logger.Warn("skipping seed entry",
			logger.Int("index", sk.Index),
			logger.String("title", sk.Title),
			logger.String("reason", sk.Reason))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to map seed: %w", err)
	}

	s.logger.Info("seed catalog loaded from file",
		logger.Int("count", len(movies)),
		logger.Int("skipped", len(skipped)))

	return movies, nil
}

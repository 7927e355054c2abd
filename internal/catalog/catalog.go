// Package catalog implements the read-only movie use cases: paginated listing
// and lookup by identifier.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/domain"
	"github.com/Clark-Hu/theater-movies/internal/pagination"
	"github.com/Clark-Hu/theater-movies/internal/repository"
)

var (
	// ErrNoMovies is returned when the requested page holds no movies.
	ErrNoMovies = errors.New("catalog: no movies found")
	// ErrMovieNotFound is returned when no movie has the requested id.
	ErrMovieNotFound = errors.New("catalog: movie not found")
)

// MovieStore is the data-access contract the catalog reads through.
type MovieStore interface {
	List(ctx context.Context, offset, limit int) ([]domain.Movie, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (domain.Movie, error)
}

// Service serves movie listings and lookups.
type Service struct {
	movies   MovieStore
	basePath string
	log      zerolog.Logger
}

// New builds a Service. basePath is the listing path rendered into prev/next
// links; empty means pagination.DefaultBasePath.
func New(movies MovieStore, basePath string, logger zerolog.Logger) *Service {
	if basePath == "" {
		basePath = pagination.DefaultBasePath
	}
	return &Service{
		movies:   movies,
		basePath: basePath,
		log:      logger.With().Str("component", "catalog").Logger(),
	}
}

// ListMovies returns one page of movies ordered by id. The request must already
// be validated.
func (s *Service) ListMovies(ctx context.Context, req pagination.Request) (pagination.Page[domain.Movie], error) {
	start := time.Now()

	// pages this far out cannot hold rows and their offset would overflow
	if req.PerPage > 0 && req.Page-1 > math.MaxInt32/req.PerPage {
		return pagination.Page[domain.Movie]{}, ErrNoMovies
	}

	items, err := s.movies.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return pagination.Page[domain.Movie]{}, fmt.Errorf("list movies: %w", err)
	}
	total, err := s.movies.Count(ctx)
	if err != nil {
		return pagination.Page[domain.Movie]{}, fmt.Errorf("count movies: %w", err)
	}

	page, err := pagination.Build(req, items, total, s.basePath)
	if err != nil {
		if errors.Is(err, pagination.ErrEmptyPage) {
			s.log.Debug().Int("page", req.Page).Int("per_page", req.PerPage).Int("total", total).Msg("empty page")
			return pagination.Page[domain.Movie]{}, ErrNoMovies
		}
		return pagination.Page[domain.Movie]{}, err
	}

	s.log.Debug().
		Int("page", req.Page).
		Int("per_page", req.PerPage).
		Int("returned", len(page.Items)).
		Int("total", total).
		Dur("took", time.Since(start)).
		Msg("movies listed")
	return page, nil
}

// GetMovie returns the movie with the given id.
func (s *Service) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Movie{}, fmt.Errorf("%w: id=%d", ErrMovieNotFound, id)
		}
		return domain.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie, nil
}

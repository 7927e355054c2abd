package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/theater-movies/internal/store"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrAlreadyExists is returned when an insert hits a unique constraint.
	ErrAlreadyExists = errors.New("repository: already exists")
	// ErrConflict is returned when an insert breaks a check or foreign key.
	ErrConflict = errors.New("repository: conflict")
)

// Repository aggregates all domain-specific repositories.
type Repository struct {
	Movies *MoviesRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Movies: &MoviesRepository{pool: pool},
	}
}

// MapPgError translates the Postgres error codes callers handle explicitly;
// everything else passes through untouched.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation, pgerrcode.NotNullViolation:
			return ErrConflict
		}
	}
	return err
}

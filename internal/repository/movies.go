package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/theater-movies/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `
    id,
    name,
    date,
    score,
    genre,
    overview,
    crew,
    orig_title,
    status,
    orig_lang,
    budget,
    revenue,
    country
`

// MovieCreateParams bundles the fields required to insert a movie.
type MovieCreateParams struct {
	Name      string
	Date      time.Time
	Score     float64
	Genre     string
	Overview  string
	Crew      string
	OrigTitle string
	Status    string
	OrigLang  string
	Budget    float64
	Revenue   float64
	Country   string
}

// List returns up to limit movies ordered by id, skipping the first offset rows.
func (r *MoviesRepository) List(ctx context.Context, offset, limit int) ([]domain.Movie, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("invalid window offset=%d limit=%d", offset, limit)
	}

	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id LIMIT $1 OFFSET $2`, movieColumns)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Movie, 0, limit)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the total number of movies.
func (r *MoviesRepository) Count(ctx context.Context) (int, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM movies`).Scan(&total); err != nil {
		return 0, err
	}
	return int(total), nil
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// Create inserts a single movie row and returns the stored entity.
func (r *MoviesRepository) Create(ctx context.Context, params MovieCreateParams) (domain.Movie, error) {
	return insertMovie(ctx, r.pool, params)
}

// CreateMany inserts all rows in one transaction. Either every row is stored
// or none is.
func (r *MoviesRepository) CreateMany(ctx context.Context, params []MovieCreateParams) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for i, p := range params {
			if _, err := insertMovie(ctx, tx, p); err != nil {
				return fmt.Errorf("insert row %d (%q): %w", i, p.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertMovie(ctx context.Context, q queryRower, params MovieCreateParams) (domain.Movie, error) {
	query := fmt.Sprintf(`
        INSERT INTO movies (name, date, score, genre, overview, crew, orig_title, status, orig_lang, budget, revenue, country)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING %s
    `, movieColumns)

	row := q.QueryRow(ctx, query,
		params.Name, params.Date, params.Score, params.Genre, params.Overview, params.Crew,
		params.OrigTitle, params.Status, params.OrigLang, params.Budget, params.Revenue, params.Country,
	)
	movie, err := scanMovie(row)
	if err != nil {
		return domain.Movie{}, MapPgError(err)
	}
	return movie, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.Date,
		&movie.Score,
		&movie.Genre,
		&movie.Overview,
		&movie.Crew,
		&movie.OrigTitle,
		&movie.Status,
		&movie.OrigLang,
		&movie.Budget,
		&movie.Revenue,
		&movie.Country,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

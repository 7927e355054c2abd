package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/catalog"
	"github.com/Clark-Hu/theater-movies/internal/config"
	"github.com/Clark-Hu/theater-movies/internal/pagination"
	"github.com/Clark-Hu/theater-movies/internal/repository"
	"github.com/Clark-Hu/theater-movies/internal/testutil"
)

const seededMovies = 23

func buildIntegrationServer(t *testing.T) (*Server, *repository.Repository) {
	t.Helper()
	pg := testutil.StartPostgres(t, "movies_test_handlers")
	repo := repository.NewWithPool(pg.Pool)

	params := make([]repository.MovieCreateParams, 0, seededMovies)
	for i := 1; i <= seededMovies; i++ {
		params = append(params, repository.MovieCreateParams{
			Name:      fmt.Sprintf("Seeded Movie %02d", i),
			Date:      time.Date(2000+i, time.January, i, 0, 0, 0, 0, time.UTC),
			Score:     float64(50 + i),
			Genre:     "Drama",
			Overview:  "overview",
			Crew:      "crew",
			OrigTitle: fmt.Sprintf("Seeded Movie %02d", i),
			Status:    "Released",
			OrigLang:  "English",
			Budget:    1_000_000,
			Revenue:   2_000_000,
			Country:   "US",
		})
	}
	if _, err := repo.Movies.CreateMany(context.Background(), params); err != nil {
		t.Fatalf("seed movies: %v", err)
	}

	cfg := config.Config{APIPrefix: "/api/v1/theater"}
	svc := catalog.New(repo.Movies, pagination.DefaultBasePath, zerolog.Nop())
	return New(cfg, nil, svc, zerolog.Nop()), repo
}

func TestMoviesAPI_AgainstPostgres(t *testing.T) {
	srv, repo := buildIntegrationServer(t)

	t.Run("custom page size", func(t *testing.T) {
		rec := doGet(t, srv, "/api/v1/theater/movies/?page=2&per_page=5")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := decode[movieListResponse](t, rec)
		if len(body.Movies) > 5 {
			t.Fatalf("len(movies) = %d, want <= 5", len(body.Movies))
		}
		if body.TotalItems != seededMovies || body.TotalPages != 5 {
			t.Fatalf("totals = %d/%d", body.TotalItems, body.TotalPages)
		}
		if body.Movies[0].Name != "Seeded Movie 06" {
			t.Fatalf("first movie = %s, want Seeded Movie 06", body.Movies[0].Name)
		}
	})

	t.Run("max page size", func(t *testing.T) {
		rec := doGet(t, srv, "/api/v1/theater/movies/?page=1&per_page=20")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if body := decode[movieListResponse](t, rec); len(body.Movies) != 20 {
			t.Fatalf("len(movies) = %d, want 20", len(body.Movies))
		}
	})

	t.Run("last page has no next link", func(t *testing.T) {
		rec := doGet(t, srv, "/movies/?page=3&per_page=10")
		body := decode[movieListResponse](t, rec)
		if len(body.Movies) != 3 || body.NextPage != nil || body.PrevPage == nil {
			t.Fatalf("unexpected last page %+v", body)
		}
	})

	t.Run("page exceeds maximum", func(t *testing.T) {
		perPage := 10
		maxPage := (seededMovies + perPage - 1) / perPage
		rec := doGet(t, srv, fmt.Sprintf("/api/v1/theater/movies/?page=%d&per_page=%d", maxPage+1, perPage))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if body := decode[detailResponse](t, rec); body.Detail != "No movies found." {
			t.Fatalf("detail = %q", body.Detail)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		movies, err := repo.Movies.List(context.Background(), 4, 1)
		if err != nil || len(movies) != 1 {
			t.Fatalf("lookup seeded movie: %v", err)
		}
		expected := movies[0]

		rec := doGet(t, srv, fmt.Sprintf("/api/v1/theater/movies/%d/", expected.ID))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := decode[movieResponse](t, rec)
		if body.ID != expected.ID || body.Name != expected.Name || body.Date != expected.Date.Format("2006-01-02") {
			t.Fatalf("movie = %+v, want %+v", body, expected)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		rec := doGet(t, srv, "/api/v1/theater/movies/100000/")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if body := decode[detailResponse](t, rec); body.Detail != "Movie with the given ID was not found." {
			t.Fatalf("detail = %q", body.Detail)
		}
	})
}

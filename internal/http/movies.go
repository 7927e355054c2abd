package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Clark-Hu/theater-movies/internal/catalog"
	"github.com/Clark-Hu/theater-movies/internal/domain"
)

const (
	detailNoMovies      = "No movies found."
	detailMovieNotFound = "Movie with the given ID was not found."
	detailInternal      = "Internal server error"
)

type movieResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	Genre     string  `json:"genre"`
	Overview  string  `json:"overview"`
	Crew      string  `json:"crew"`
	OrigTitle string  `json:"orig_title"`
	Status    string  `json:"status"`
	OrigLang  string  `json:"orig_lang"`
	Budget    float64 `json:"budget"`
	Revenue   float64 `json:"revenue"`
	Country   string  `json:"country"`
}

type movieListResponse struct {
	Movies     []movieResponse `json:"movies"`
	PrevPage   *string         `json:"prev_page"`
	NextPage   *string         `json:"next_page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	req, issues := parseListQuery(r.URL.Query())
	if len(issues) > 0 {
		s.respondValidation(w, issues)
		return
	}

	page, err := s.movies.ListMovies(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrNoMovies) {
			s.respondDetail(w, http.StatusNotFound, detailNoMovies)
			return
		}
		s.logger.Error().Err(err).Int("page", req.Page).Int("per_page", req.PerPage).Msg("list movies failed")
		s.respondDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	items := make([]movieResponse, 0, len(page.Items))
	for _, movie := range page.Items {
		items = append(items, toMovieResponse(movie))
	}
	s.respondJSON(w, http.StatusOK, movieListResponse{
		Movies:     items,
		PrevPage:   page.PrevPage,
		NextPage:   page.NextPage,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	})
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, issues := parseMovieID(chi.URLParam(r, "movie_id"))
	if len(issues) > 0 {
		s.respondValidation(w, issues)
		return
	}

	movie, err := s.movies.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			s.respondDetail(w, http.StatusNotFound, detailMovieNotFound)
			return
		}
		s.logger.Error().Err(err).Int64("movie_id", id).Msg("get movie failed")
		s.respondDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:        movie.ID,
		Name:      movie.Name,
		Date:      movie.Date.Format("2006-01-02"),
		Score:     movie.Score,
		Genre:     movie.Genre,
		Overview:  movie.Overview,
		Crew:      movie.Crew,
		OrigTitle: movie.OrigTitle,
		Status:    movie.Status,
		OrigLang:  movie.OrigLang,
		Budget:    movie.Budget,
		Revenue:   movie.Revenue,
		Country:   movie.Country,
	}
}

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/config"
	"github.com/Clark-Hu/theater-movies/internal/domain"
	"github.com/Clark-Hu/theater-movies/internal/pagination"
)

// MovieService is the catalog behaviour the handlers depend on.
type MovieService interface {
	ListMovies(ctx context.Context, req pagination.Request) (pagination.Page[domain.Movie], error)
	GetMovie(ctx context.Context, id int64) (domain.Movie, error)
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg     config.Config
	health  HealthChecker
	movies  MovieService
	logger  zerolog.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, health HealthChecker, movies MovieService, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "http").Logger()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	s := &Server{
		cfg:    cfg,
		health: health,
		movies: movies,
		logger: logger,
		router: r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)

	mountMovies := func(r chi.Router) {
		r.Get("/movies", s.handleListMovies)
		r.Get("/movies/{movie_id}", s.handleGetMovie)
	}
	mountMovies(s.router)
	if s.cfg.APIPrefix != "" {
		s.router.Route(s.cfg.APIPrefix, mountMovies)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is cancelled or listening fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.health == nil {
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	if err := s.health.HealthCheck(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("health check failed")
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger emits one zerolog event per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("query", r.URL.RawQuery).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("took", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/catalog"
	"github.com/Clark-Hu/theater-movies/internal/config"
	httpserver "github.com/Clark-Hu/theater-movies/internal/http"
	"github.com/Clark-Hu/theater-movies/internal/logger"
	"github.com/Clark-Hu/theater-movies/internal/pagination"
	"github.com/Clark-Hu/theater-movies/internal/repository"
	"github.com/Clark-Hu/theater-movies/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fatal(zerolog.New(os.Stderr), err, "config error")
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Env:         cfg.AppEnv,
		ServiceName: "movies-api",
	})
	if err != nil {
		fatal(zerolog.New(os.Stderr), err, "logger error")
	}

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	st, err := store.New(dbCtx, cfg.DBURL, store.Options{
		MaxConns:               int32(cfg.DBMaxConns),
		MinConns:               int32(cfg.DBMinConns),
		MaxConnIdleTime:        time.Duration(cfg.DBMaxIdleSecs) * time.Second,
		MaxConnLifetime:        time.Duration(cfg.DBMaxLifeSecs) * time.Second,
		ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
		StatementCacheCapacity: cfg.DBStatementCache,
		Logger:                 log,
	})
	if err != nil {
		fatal(log, err, "connect database")
	}
	defer st.Close()

	repo := repository.New(st)
	svc := catalog.New(repo.Movies, pagination.DefaultBasePath, log)
	server := httpserver.New(cfg, st, svc, log)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	log.Info().Msg("server stopped")
}

func fatal(log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	os.Exit(1)
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/config"
	"github.com/Clark-Hu/theater-movies/internal/logger"
	"github.com/Clark-Hu/theater-movies/internal/repository"
	"github.com/Clark-Hu/theater-movies/internal/store"
)

func main() {
	var (
		csvPath string
		limit   int
		force   bool
	)
	flag.StringVar(&csvPath, "csv", "imdb_movies.csv", "Path to the movies CSV export")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.BoolVar(&force, "force", false, "Import even when the movies table already has rows")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("load config failed")
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Env: cfg.AppEnv, ServiceName: "movies-seed"})
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("build logger failed")
		os.Exit(1)
	}

	st, err := store.New(ctx, cfg.DBURL, store.Options{
		MaxConns:               2,
		ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
		StatementCacheCapacity: cfg.DBStatementCache,
		Logger:                 log,
	})
	if err != nil {
		log.Error().Err(err).Msg("cannot open postgres connection")
		os.Exit(1)
	}
	defer st.Close()

	movies := repository.New(st).Movies

	existing, err := movies.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("count movies failed")
		os.Exit(1)
	}
	if existing > 0 && !force {
		log.Info().Int("existing", existing).Msg("movies table already seeded, pass -force to import anyway")
		return
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Error().Err(err).Str("csv", csvPath).Msg("open csv failed")
		os.Exit(1)
	}
	defer file.Close()

	rows, skipped, err := readMovies(file, limit)
	if err != nil {
		log.Error().Err(err).Msg("parse csv failed")
		os.Exit(1)
	}

	count, err := movies.CreateMany(ctx, rows)
	if err != nil {
		log.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}

	log.Info().Int("rows", count).Int("skipped", skipped).Msg("import completed")
}

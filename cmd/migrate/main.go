package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/Clark-Hu/theater-movies/internal/config"
	"github.com/Clark-Hu/theater-movies/internal/logger"
	"github.com/Clark-Hu/theater-movies/internal/migrations"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("cannot load config")
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Env: cfg.AppEnv, ServiceName: "movies-migrate"})
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("cannot build logger")
		os.Exit(1)
	}

	var total int
	switch *direction {
	case "up":
		total, err = migrations.Up(cfg.DBURL)
	case "down":
		total, err = migrations.Down(cfg.DBURL)
	default:
		log.Error().Str("direction", *direction).Msg("direction must be up or down")
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("cannot execute migration")
		os.Exit(1)
	}

	log.Info().Str("direction", *direction).Int("total", total).Msg("applied migrations")
}

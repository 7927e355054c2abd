package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	DBURL             string `envconfig:"DB_URL"`
	APIPrefix         string `envconfig:"API_PREFIX" default:"/api/v1/theater"`
	AppEnv            string `envconfig:"APP_ENV" default:"prod"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
	LogFormat         string `envconfig:"LOG_FORMAT"`
	ReadTimeoutSecs   int    `envconfig:"SERVER_READ_TIMEOUT" default:"15"`
	WriteTimeoutSecs  int    `envconfig:"SERVER_WRITE_TIMEOUT" default:"15"`
	IdleTimeoutSecs   int    `envconfig:"SERVER_IDLE_TIMEOUT" default:"60"`
	DBMaxConns        int    `envconfig:"DB_MAX_CONNS" default:"20"`
	DBMinConns        int    `envconfig:"DB_MIN_CONNS" default:"2"`
	DBMaxIdleSecs     int    `envconfig:"DB_MAX_CONN_IDLE_SECS" default:"300"`
	DBMaxLifeSecs     int    `envconfig:"DB_MAX_CONN_LIFETIME_SECS" default:"3600"`
	DBConnTimeoutSecs int    `envconfig:"DB_CONN_TIMEOUT_SECS" default:"10"`
	DBStatementCache  int    `envconfig:"DB_STATEMENT_CACHE_CAPACITY" default:"256"`
}

// Load reads configuration from an optional .env file and the environment,
// applying defaults and validation.
func Load() (Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.APIPrefix = strings.TrimRight(strings.TrimSpace(cfg.APIPrefix), "/")

	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.APIPrefix != "" && !strings.HasPrefix(cfg.APIPrefix, "/") {
		return Config{}, fmt.Errorf("API_PREFIX must start with /")
	}
	if cfg.DBMaxConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}
	if cfg.ReadTimeoutSecs <= 0 || cfg.WriteTimeoutSecs <= 0 || cfg.IdleTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_*_TIMEOUT values must be positive")
	}

	return cfg, nil
}

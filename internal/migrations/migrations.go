// Package migrations embeds the database schema and applies it with sql-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql/*.sql
var files embed.FS

const dialect = "postgres"

// Source returns the embedded migration set.
func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       "sql",
	}
}

// Apply runs every pending migration in the given direction and reports how
// many were applied.
func Apply(db *sql.DB, dir migrate.MigrationDirection) (int, error) {
	n, err := migrate.Exec(db, dialect, Source(), dir)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}
	return n, nil
}

// Up opens dsn through the pgx stdlib driver and migrates it to the latest version.
func Up(dsn string) (int, error) {
	return run(dsn, migrate.Up)
}

// Down rolls back every applied migration.
func Down(dsn string) (int, error) {
	return run(dsn, migrate.Down)
}

func run(dsn string, dir migrate.MigrationDirection) (int, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return Apply(db, dir)
}

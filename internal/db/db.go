package db

import (
	"database/sql"
	"fmt"

	"bulk-be/internal/config"

	_ "github.com/lib/pq"
)

// Init opens the postgres pool. A failed ping is returned to the caller
// instead of aborting: read endpoints degrade to sample data while the
// database is unreachable.
func Init(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err = database.Ping(); err != nil {
		return database, fmt.Errorf("failed to ping db: %w", err)
	}

	return database, nil
}

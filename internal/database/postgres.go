package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/rahullath/serializd-ai/internal/config"
)

// NewPostgres opens the tracking database and runs migrations.
func NewPostgres(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single user, single process.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Migrations creates the watch log, recommendation and watchlist tables.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS watch_logs (
		id SERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		season INTEGER,
		episode INTEGER,
		watch_date TIMESTAMP NOT NULL DEFAULT NOW(),
		rating INTEGER CHECK (rating BETWEEN 1 AND 10),
		review_text TEXT NOT NULL DEFAULT '',
		tmdb_id INTEGER,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id SERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		tmdb_id INTEGER NOT NULL,
		recommendation_score DOUBLE PRECISION NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		score_reasons TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT '',
		vote_average DOUBLE PRECISION DEFAULT 0,
		popularity DOUBLE PRECISION DEFAULT 0,
		overview TEXT NOT NULL DEFAULT '',
		first_air_date VARCHAR(10) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'Recommended',
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS watchlist (
		id SERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		tmdb_id INTEGER,
		added_date TIMESTAMP NOT NULL DEFAULT NOW(),
		priority INTEGER NOT NULL DEFAULT 5 CHECK (priority BETWEEN 1 AND 10),
		notes TEXT NOT NULL DEFAULT '',
		watched BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	// Indexes for common query patterns
	`CREATE INDEX IF NOT EXISTS idx_watch_logs_watch_date ON watch_logs(watch_date)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_score ON recommendations(recommendation_score DESC) WHERE NOT watched`,
	`CREATE INDEX IF NOT EXISTS idx_watchlist_priority ON watchlist(priority DESC, added_date) WHERE NOT watched`,
}

// Migrate applies every migration in order. Each statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, m := range Migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}

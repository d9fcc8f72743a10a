// Package db opens the client's local sqlite database and applies embedded
// migrations. The database holds only small client-side state (see the
// session storage), not the link list itself: the server stays the sole
// source of truth for links.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tinylink/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Init opens the database at dsn and brings the schema up to date.
func Init(ctx context.Context, dsn string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, database); err != nil {
		_ = database.Close()
		return nil, err
	}

	return database, nil
}

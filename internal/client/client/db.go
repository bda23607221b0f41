package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/migrations"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/repositories/documents"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB        *sql.DB
	Documents documents.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn, brings its schema up to date and
// returns the repositories built on it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &Repositories{
		DB:        db,
		Documents: documents.NewSQLiteRepository(db),
	}, nil
}

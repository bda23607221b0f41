package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/dbx"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, a *models.Asset) error {
	query :=
		`INSERT INTO assets (id, owner, metadata, created_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Owner, a.Metadata, a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("asset %s: %w", a.ID, common.ErrAlreadyExists)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	query :=
		`SELECT id, owner, metadata, created_at FROM assets
		 WHERE id = $1
		 `

	a := &models.Asset{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Owner, &a.Metadata, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error) {
	query :=
		`SELECT id, owner, metadata, created_at FROM assets
		 WHERE owner = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Asset, 0)
	for rows.Next() {
		a := &models.Asset{}
		if err := rows.Scan(&a.ID, &a.Owner, &a.Metadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

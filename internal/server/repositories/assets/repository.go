// Package assets stores minted assets for the registry server.
package assets

import (
	"context"

	"github.com/ProgrammedByHussain/LandLocks/internal/server/models"
)

// Repository persists Asset records. GetByID returns common.ErrorNotFound for
// unknown ids and Insert returns common.ErrAlreadyExists for a reused id.
// ListByOwner returns oldest first and never nil.
type Repository interface {
	Insert(ctx context.Context, a *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error)
}

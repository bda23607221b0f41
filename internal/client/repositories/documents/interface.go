package documents

import (
	"context"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
)

// Repository is the client-side persistent key-value store for encoded
// documents. Set overwrites silently; there is no namespacing beyond the key.
type Repository interface {
	Set(ctx context.Context, key string, value string) error
	Get(ctx context.Context, key string) (*models.Document, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

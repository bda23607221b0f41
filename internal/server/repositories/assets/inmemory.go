package assets

import (
	"context"
	"fmt"
	"sync"

	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/models"
)

// InMemoryRepository keeps assets for the lifetime of the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Asset
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*models.Asset)}
}

func clone(a *models.Asset) *models.Asset {
	c := *a
	c.Metadata = append([]byte(nil), a.Metadata...)
	return &c
}

func (r *InMemoryRepository) Insert(ctx context.Context, a *models.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; ok {
		return fmt.Errorf("asset %s: %w", a.ID, common.ErrAlreadyExists)
	}
	r.byID[a.ID] = clone(a)
	r.order = append(r.order, a.ID)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(a), nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Asset, 0)
	for _, id := range r.order {
		if a := r.byID[id]; a.Owner == owner {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

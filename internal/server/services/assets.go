// Package services implements the registry server use cases.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/repositories/assets"
	"github.com/google/uuid"
)

// IDPrefix starts every NFT id issued by the registry.
const IDPrefix = "nft-"

type AssetService struct {
	repo  assets.Repository
	newID func() string
	now   func() time.Time
}

func NewAssetService(repo assets.Repository) *AssetService {
	return &AssetService{
		repo:  repo,
		newID: func() string { return IDPrefix + uuid.NewString() },
		now:   time.Now,
	}
}

// Mint records a new asset owned by owner and returns its id. An empty owner
// or title is rejected before anything is stored.
func (s *AssetService) Mint(ctx context.Context, owner string, md models.AssetMetadata) (string, error) {
	if strings.TrimSpace(owner) == "" {
		return "", common.ErrMissingOwner
	}
	if strings.TrimSpace(md.Title) == "" {
		return "", fmt.Errorf("%w: title is required", common.ErrIncorrectMintInput)
	}

	raw, err := json.Marshal(md)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	a := &models.Asset{
		ID:        s.newID(),
		Owner:     owner,
		Metadata:  raw,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// Get returns the asset and its decoded metadata.
func (s *AssetService) Get(ctx context.Context, id string) (*models.Asset, models.AssetMetadata, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, models.AssetMetadata{}, err
	}
	md, err := a.DecodeMetadata()
	if err != nil {
		return nil, models.AssetMetadata{}, err
	}
	return a, md, nil
}

// ListByOwner returns the assets minted to owner, oldest first.
func (s *AssetService) ListByOwner(ctx context.Context, owner string) ([]*models.Asset, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, common.ErrMissingOwner
	}
	return s.repo.ListByOwner(ctx, owner)
}

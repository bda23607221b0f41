package client

import (
	"context"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
)

// Minter is the remote mint operation. One call is one round trip; there is
// no idempotency key, so repeated calls may create distinct records.
type Minter interface {
	Mint(ctx context.Context, req models.MintRequest) (string, error)
	Close() error
}

// Registry reads back what was minted. GetNFT returns common.ErrorNotFound
// for an unknown id.
type Registry interface {
	GetNFT(ctx context.Context, id string) (models.Asset, error)
	ListNFTs(ctx context.Context, owner string) ([]models.Asset, error)
}

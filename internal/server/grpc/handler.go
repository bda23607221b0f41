package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/registryapi"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) MintNFT(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	in, err := registryapi.MintRequestFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := s.assets.Mint(ctx, in.Owner, toAssetMetadata(in.Metadata))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingOwner), errors.Is(err, common.ErrIncorrectMintInput):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrAlreadyExists):
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		s.logger.Error(ctx, "mint failed", "owner", in.Owner, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Minted", "nft_id", id, "owner", in.Owner, "title", in.Metadata.Title)
	return wrapperspb.String(id), nil
}

func (s *GRPCServer) GetNFT(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := strings.TrimSpace(req.GetValue())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "nft id is required")
	}

	a, md, err := s.assets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Errorf(codes.NotFound, "nft %s not found", id)
		}
		s.logger.Error(ctx, "get failed", "nft_id", id, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	out, err := toNFT(a, md).ToStruct()
	if err != nil {
		s.logger.Error(ctx, "encode failed", "nft_id", id, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func (s *GRPCServer) ListNFTs(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	owner := req.GetValue()

	list, err := s.assets.ListByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, common.ErrMissingOwner) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "list failed", "owner", owner, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	nfts := make([]registryapi.NFT, 0, len(list))
	for _, a := range list {
		md, err := a.DecodeMetadata()
		if err != nil {
			s.logger.Warn(ctx, "skipping asset with unreadable metadata", "nft_id", a.ID, "error", err)
			continue
		}
		nfts = append(nfts, toNFT(a, md))
	}

	out, err := registryapi.EncodeNFTList(nfts)
	if err != nil {
		s.logger.Error(ctx, "encode failed", "owner", owner, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func toNFT(a *models.Asset, md models.AssetMetadata) registryapi.NFT {
	return registryapi.NFT{
		ID:        a.ID,
		Owner:     a.Owner,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		Metadata: registryapi.Metadata{
			Title:           md.Title,
			Description:     md.Description,
			Price:           md.Price,
			Category:        md.Category,
			Location:        md.Location,
			ContactInfo:     md.ContactInfo,
			FileName:        md.FileName,
			FileSize:        md.FileSize,
			UploadTimestamp: md.UploadTimestamp,
		},
	}
}

func toAssetMetadata(m registryapi.Metadata) models.AssetMetadata {
	return models.AssetMetadata{
		Title:           m.Title,
		Description:     m.Description,
		Price:           m.Price,
		Category:        m.Category,
		Location:        m.Location,
		ContactInfo:     m.ContactInfo,
		FileName:        m.FileName,
		FileSize:        m.FileSize,
		UploadTimestamp: m.UploadTimestamp,
	}
}

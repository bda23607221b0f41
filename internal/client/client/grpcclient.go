package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
	"github.com/ProgrammedByHussain/LandLocks/internal/registryapi"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// RequestIDHeaderName carries a per-call correlation id to the registry.
const RequestIDHeaderName = registryapi.RequestIDHeader

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      registryapi.RegistryClient
	logger      logging.Logger
}

func withRequestID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(RequestIDHeaderName, id)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	id := uuid.NewString()
	ctx = withRequestID(ctx, id)

	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	s.logger.Debug(ctx, "rpc finished", "method", method, "request_id", id,
		"duration", time.Since(start), "code", status.Code(err).String())

	return err
}

func NewRegistryClient(endpointURL string, l logging.Logger) (*GRPCClient, error) {
	if l == nil {
		l = logging.Nop{}
	}
	c := &GRPCClient{endpointURL: endpointURL, logger: l.With("module", "registry_client")}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = registryapi.NewRegistryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Mint sends req to the registry and returns the minted NFT id.
func (s *GRPCClient) Mint(ctx context.Context, req models.MintRequest) (string, error) {
	m := req.Metadata
	msg, err := registryapi.MintRequest{
		Owner: req.Owner,
		Metadata: registryapi.Metadata{
			Title:           m.Title,
			Description:     m.Description,
			Price:           m.Price,
			Category:        m.Category,
			Location:        m.Location,
			ContactInfo:     m.ContactInfo,
			FileName:        m.FileName,
			FileSize:        m.FileSize,
			UploadTimestamp: m.UploadTimestamp.Format(time.RFC3339Nano),
		},
	}.ToStruct()
	if err != nil {
		return "", err
	}

	resp, err := s.client.MintNFT(ctx, msg)
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.GetValue() == "" {
		return "", ErrEmptyID
	}

	return resp.GetValue(), nil
}

func (s *GRPCClient) GetNFT(ctx context.Context, id string) (models.Asset, error) {
	resp, err := s.client.GetNFT(ctx, wrapperspb.String(id))
	if err != nil {
		return models.Asset{}, s.mapError(err)
	}
	n, err := registryapi.NFTFromStruct(resp)
	if err != nil {
		return models.Asset{}, err
	}
	return toAsset(n), nil
}

func (s *GRPCClient) ListNFTs(ctx context.Context, owner string) ([]models.Asset, error) {
	resp, err := s.client.ListNFTs(ctx, wrapperspb.String(owner))
	if err != nil {
		return nil, s.mapError(err)
	}
	list, err := registryapi.DecodeNFTList(resp)
	if err != nil {
		return nil, err
	}
	out := make([]models.Asset, 0, len(list))
	for _, n := range list {
		out = append(out, toAsset(n))
	}
	return out, nil
}

// parseTime returns the zero time for values that are not RFC 3339.
func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toAsset(n registryapi.NFT) models.Asset {
	m := n.Metadata
	return models.Asset{
		ID:        n.ID,
		Owner:     n.Owner,
		CreatedAt: parseTime(n.CreatedAt),
		Metadata: models.MetadataRecord{
			Title:           m.Title,
			Description:     m.Description,
			Price:           m.Price,
			Category:        m.Category,
			Location:        m.Location,
			ContactInfo:     m.ContactInfo,
			FileName:        m.FileName,
			FileSize:        m.FileSize,
			UploadTimestamp: parseTime(m.UploadTimestamp),
		},
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

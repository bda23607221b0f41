package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
	"github.com/ProgrammedByHussain/LandLocks/internal/registryapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

/*************
 * Fake registry client
 *************/

type fakeRegistry struct {
	lastReq *structpb.Struct
	lastArg string

	resp *wrapperspb.StringValue
	nfts *structpb.Struct
	err  error
}

func (f *fakeRegistry) MintNFT(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	f.lastReq = in
	return f.resp, f.err
}

func (f *fakeRegistry) GetNFT(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	f.lastArg = in.GetValue()
	return f.nfts, f.err
}

func (f *fakeRegistry) ListNFTs(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	f.lastArg = in.GetValue()
	return f.nfts, f.err
}

func sampleMintRequest() models.MintRequest {
	return models.MintRequest{
		Owner: "0xowner",
		Metadata: models.MetadataRecord{
			Title:           "Lot 12",
			Description:     "2-acre parcel",
			Price:           "50000",
			Category:        "residential",
			Location:        "Springfield",
			ContactInfo:     "a@b.com",
			FileName:        "doc.pdf",
			FileSize:        1024,
			UploadTimestamp: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestMint_EncodesRequestAndReturnsID(t *testing.T) {
	f := &fakeRegistry{resp: wrapperspb.String("nft-001")}
	c := &GRPCClient{client: f, logger: logging.Nop{}}

	id, err := c.Mint(context.Background(), sampleMintRequest())
	require.NoError(t, err)
	assert.Equal(t, "nft-001", id)

	got, err := registryapi.MintRequestFromStruct(f.lastReq)
	require.NoError(t, err)
	assert.Equal(t, "0xowner", got.Owner)
	assert.Equal(t, "Lot 12", got.Metadata.Title)
	assert.Equal(t, "a@b.com", got.Metadata.ContactInfo)
	assert.EqualValues(t, 1024, got.Metadata.FileSize)
	assert.Equal(t, "2026-10-14T09:30:00Z", got.Metadata.UploadTimestamp)
}

func TestMint_EmptyIDIsAnError(t *testing.T) {
	c := &GRPCClient{client: &fakeRegistry{resp: wrapperspb.String("")}, logger: logging.Nop{}}

	_, err := c.Mint(context.Background(), sampleMintRequest())
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestMint_MapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		message string
	}{
		{name: "unavailable", err: status.Error(codes.Unavailable, "network timeout"), target: ErrUnavailable, message: "network timeout"},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "context deadline exceeded"), target: ErrUnavailable, message: "deadline"},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "title is required"), target: ErrRejected, message: "title is required"},
		{name: "internal", err: status.Error(codes.Internal, "boom"), message: "boom"},
		{name: "plain error", err: errors.New("socket closed"), message: "socket closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &GRPCClient{client: &fakeRegistry{err: tt.err}, logger: logging.Nop{}}

			_, err := c.Mint(context.Background(), sampleMintRequest())
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	c := &GRPCClient{}
	assert.NoError(t, c.mapError(nil))
}

/*************
 * requestIDInterceptor
 *************/

func TestInterceptor_AddsRequestID(t *testing.T) {
	c := &GRPCClient{logger: logging.Nop{}}

	var ids []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		ids = append(ids, md.Get(RequestIDHeaderName)...)
		return nil
	}

	ctx := metadata.NewOutgoingContext(context.Background(), metadata.Pairs("other", "v"))
	require.NoError(t, c.requestIDInterceptor(ctx, "/svc/M", nil, nil, nil, invoker))
	require.NoError(t, c.requestIDInterceptor(ctx, "/svc/M", nil, nil, nil, invoker))

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1], "each call gets its own id")
}

func TestInterceptor_PassesErrorThrough(t *testing.T) {
	c := &GRPCClient{logger: logging.Nop{}}
	want := status.Error(codes.Internal, "boom")

	err := c.requestIDInterceptor(context.Background(), "/svc/M", nil, nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error { return want })
	assert.Equal(t, want, err)
}

func TestListNFTs_DecodesAssets(t *testing.T) {
	list, err := registryapi.EncodeNFTList([]registryapi.NFT{{
		ID:        "nft-1",
		Owner:     "0xowner",
		CreatedAt: "2026-10-14T09:30:00Z",
		Metadata:  registryapi.Metadata{Title: "Lot 12", FileSize: 1024, UploadTimestamp: "not a time"},
	}})
	require.NoError(t, err)
	f := &fakeRegistry{nfts: list}
	c := &GRPCClient{client: f, logger: logging.Nop{}}

	got, err := c.ListNFTs(context.Background(), "0xowner")
	require.NoError(t, err)
	assert.Equal(t, "0xowner", f.lastArg)
	require.Len(t, got, 1)
	assert.Equal(t, "nft-1", got[0].ID)
	assert.Equal(t, "Lot 12", got[0].Metadata.Title)
	assert.True(t, got[0].CreatedAt.Equal(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)))
	assert.True(t, got[0].Metadata.UploadTimestamp.IsZero())
}

func TestGetNFT_NotFound(t *testing.T) {
	f := &fakeRegistry{err: status.Error(codes.NotFound, "nft nft-9 not found")}
	c := &GRPCClient{client: f, logger: logging.Nop{}}

	_, err := c.GetNFT(context.Background(), "nft-9")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, "nft-9", f.lastArg)
}

func TestGetNFT_Decodes(t *testing.T) {
	one, err := registryapi.NFT{ID: "nft-1", Owner: "0xowner", Metadata: registryapi.Metadata{Title: "Lot 12"}}.ToStruct()
	require.NoError(t, err)
	c := &GRPCClient{client: &fakeRegistry{nfts: one}, logger: logging.Nop{}}

	a, err := c.GetNFT(context.Background(), "nft-1")
	require.NoError(t, err)
	assert.Equal(t, "Lot 12", a.Metadata.Title)
	assert.True(t, a.CreatedAt.IsZero())
}

/*************
 * End to end over a real listener
 *************/

type stubServer struct {
	requestIDs chan string
}

func (s *stubServer) MintNFT(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeaderName); len(v) > 0 {
			s.requestIDs <- v[0]
		}
	}
	return wrapperspb.String("nft-e2e"), nil
}

func (s *stubServer) GetNFT(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.NotFound, "nft not found")
}

func (s *stubServer) ListNFTs(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	return registryapi.EncodeNFTList(nil)
}

func TestNewRegistryClient_MintsAgainstServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	stub := &stubServer{requestIDs: make(chan string, 1)}
	srv := grpc.NewServer()
	registryapi.RegisterRegistryServer(srv, stub)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewRegistryClient(lis.Addr().String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := c.Mint(ctx, sampleMintRequest())
	require.NoError(t, err)
	assert.Equal(t, "nft-e2e", id)
	select {
	case rid := <-stub.requestIDs:
		assert.NotEmpty(t, rid)
	case <-time.After(time.Second):
		t.Fatal("server did not see a request id")
	}
}

func TestClose_WithoutConnection(t *testing.T) {
	assert.NoError(t, (&GRPCClient{}).Close())
}

package registryapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName   = "landlocks.registry.v1.RegistryService"
	MintNFTMethod  = "/" + ServiceName + "/MintNFT"
	GetNFTMethod   = "/" + ServiceName + "/GetNFT"
	ListNFTsMethod = "/" + ServiceName + "/ListNFTs"

	// RequestIDHeader is the metadata key carrying a per-call correlation id.
	RequestIDHeader = "x-request-id"
)

// RegistryClient is the client API for the registry service.
type RegistryClient interface {
	MintNFT(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	// GetNFT takes an NFT id and returns one encoded NFT.
	GetNFT(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	// ListNFTs takes an owner address and returns an encoded NFT list.
	ListNFTs(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type registryClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryClient(cc grpc.ClientConnInterface) RegistryClient {
	return &registryClient{cc: cc}
}

func (c *registryClient) MintNFT(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, MintNFTMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) GetNFT(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetNFTMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) ListNFTs(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListNFTsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegistryServer is the server API for the registry service.
type RegistryServer interface {
	MintNFT(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error)
	GetNFT(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
	ListNFTs(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
}

func mintNFTHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).MintNFT(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MintNFTMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegistryServer).MintNFT(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getNFTHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).GetNFT(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetNFTMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegistryServer).GetNFT(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listNFTsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).ListNFTs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListNFTsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegistryServer).ListNFTs(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc describes the registry service for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "MintNFT", Handler: mintNFTHandler},
		{MethodName: "GetNFT", Handler: getNFTHandler},
		{MethodName: "ListNFTs", Handler: listNFTsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "landlocks/registry/v1/registry.proto",
}

func RegisterRegistryServer(s grpc.ServiceRegistrar, srv RegistryServer) {
	s.RegisterService(&ServiceDesc, srv)
}

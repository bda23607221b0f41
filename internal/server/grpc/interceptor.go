package grpc

import (
	"context"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/registryapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func requestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(registryapi.RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}

// requestLoggingInterceptor logs every unary call with the caller's request
// id, outcome code and duration.
func (s *GRPCServer) requestLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"request_id", requestID(ctx),
		"code", status.Code(err).String(),
		"duration", time.Since(start))

	return resp, err
}

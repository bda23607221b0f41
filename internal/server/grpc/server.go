package grpc

import (
	"context"
	"net"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
	"github.com/ProgrammedByHussain/LandLocks/internal/registryapi"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address         string
	assets          *services.AssetService
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, as *services.AssetService, shutdownTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		assets:          as,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully. A stop that takes longer than the shutdown timeout
// is forced.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLoggingInterceptor))
	registryapi.RegisterRegistryServer(srv, s)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(context.Background(), "graceful stop timed out, forcing")
		srv.Stop()
	}
}

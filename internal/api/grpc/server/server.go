package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/dtroode/users-server/internal/model"
)

var _ model.Server = (*GRPCServer)(nil)

// GRPCServer wraps a gRPC server with address and lifecycle methods.
type GRPCServer struct {
	server *grpc.Server
	addr   string
}

// NewGRPCServer creates a GRPCServer with given server and address.
func NewGRPCServer(
	server *grpc.Server,
	addr string,
) *GRPCServer {
	return &GRPCServer{server: server, addr: addr}
}

// Start starts serving on the configured address using the provided security layer.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	if err := s.server.Serve(listener); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Stop gracefully stops the server, forcing it closed when ctx ends first.
func (s *GRPCServer) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		<-done
		return fmt.Errorf("forced grpc shutdown: %w", ctx.Err())
	}
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}

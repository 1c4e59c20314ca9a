package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/users-server/internal/api/grpc/health"
	"github.com/dtroode/users-server/internal/api/grpc/middleware"
	"github.com/dtroode/users-server/internal/logger"
)

// Router builds the gRPC server exposing the health service.
type Router struct {
	checker *health.Checker
	logger  *logger.Logger
}

// New creates new gRPC Router instance.
func New(checker *health.Checker, logger *logger.Logger) *Router {
	return &Router{
		checker: checker,
		logger:  logger,
	}
}

// Register sets up interceptors and registers the health and reflection services.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.Recovery(r.logger),
			logging.UnaryInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(s, r.checker.Server())
	reflection.Register(s)

	return s
}

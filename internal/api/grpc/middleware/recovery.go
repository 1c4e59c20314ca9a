package middleware

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/users-server/internal/logger"
)

// Recovery turns a handler panic into codes.Internal.
func Recovery(logger *logger.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("grpc handler panicked", "panic", p)
		return status.Error(codes.Internal, "internal error")
	}))
}

package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/dtroode/users-server/internal/logger"
)

// Logging adapts the service logger to the go-grpc-middleware logging interceptor.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Logger returns a go-grpc-middleware logger writing through slog.
func (l *Logging) Logger() logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.logger.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// UnaryInterceptor logs method, duration and code of each finished unary call.
func (l *Logging) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(l.Logger(), logging.WithLogOnEvents(logging.FinishCall))
}

// StreamInterceptor logs each finished stream, such as health Watch.
func (l *Logging) StreamInterceptor() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(l.Logger(), logging.WithLogOnEvents(logging.FinishCall))
}

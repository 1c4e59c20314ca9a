package middleware

import (
	"context"
	"time"

	"github.com/dtroode/users-server/internal/api/http/handler"
	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
)

// Logging logs each request and its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Wrap logs method, path, status and duration around next.
func (l *Logging) Wrap(next handler.Func) handler.Func {
	return func(ctx context.Context, req *request.Request) response.Response {
		start := time.Now()
		connID, _ := request.ConnIDFromContext(ctx)

		l.logger.Debug("request started",
			"conn_id", connID,
			"method", req.Method,
			"path", req.Path)

		resp := next(ctx, req)

		l.logger.Info("request completed",
			"conn_id", connID,
			"method", req.Method,
			"path", req.Path,
			"status", resp.Status.Code(),
			"duration_ms", time.Since(start).Milliseconds())

		return resp
	}
}

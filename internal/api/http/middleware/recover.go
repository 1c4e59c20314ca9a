package middleware

import (
	"context"
	"runtime/debug"

	"github.com/dtroode/users-server/internal/api/http/handler"
	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
)

// Recover turns a panic in next into an internal error response.
func Recover(logger *logger.Logger) func(handler.Func) handler.Func {
	return func(next handler.Func) handler.Func {
		return func(ctx context.Context, req *request.Request) (resp response.Response) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("panic while handling request",
						"method", req.Method,
						"path", req.Path,
						"panic", p,
						"stack", string(debug.Stack()))
					resp = response.InternalError(response.MsgInternalError)
				}
			}()

			return next(ctx, req)
		}
	}
}

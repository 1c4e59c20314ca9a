package handler

import (
	"context"

	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
)

// Func serves one parsed request.
type Func func(ctx context.Context, req *request.Request) response.Response

package handler

import (
	"errors"

	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/model"
)

func mutationError(err error) response.Response {
	if errors.Is(err, model.ErrNotFound) {
		return response.NotFound(response.MsgNotFound)
	}
	return response.InternalError(response.MsgInternalError)
}

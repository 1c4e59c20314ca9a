package handler

import (
	"context"

	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

// UserService defines business operations for user management.
type UserService interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	Get(ctx context.Context, id int32) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id int32) error
}

// User handles the users collection routes.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Create inserts the user from the body and returns the stored row.
func (h *User) Create(ctx context.Context, req *request.Request) response.Response {
	user, err := req.User()
	if err != nil {
		h.logger.Error("User handler: failed to parse create body", "error", err)
		return response.InternalError(response.MsgInternalError)
	}

	saved, err := h.userService.Create(ctx, user)
	if err != nil {
		h.logger.Error("User handler: failed to create user", "error", err)
		return response.InternalError("Error: " + err.Error())
	}

	return h.encode(saved)
}

// ReadOne returns the user addressed by the trailing segment.
func (h *User) ReadOne(ctx context.Context, req *request.Request) response.Response {
	id, err := req.ID()
	if err != nil {
		h.logger.Error("User handler: failed to parse id", "error", err)
		return response.InternalError(response.MsgInternalError)
	}

	user, err := h.userService.Get(ctx, id)
	if err != nil {
		h.logger.Info("User handler: unable to find user", "id", id, "error", err)
		return response.NotFound(response.MsgNotFound)
	}

	return h.encode(user)
}

// ReadAll returns every user in store order.
func (h *User) ReadAll(ctx context.Context, _ *request.Request) response.Response {
	users, err := h.userService.List(ctx)
	if err != nil {
		h.logger.Error("User handler: failed to list users", "error", err)
		return response.InternalError(response.MsgInternalError)
	}

	return h.encode(users)
}

// Update overwrites name and email of the addressed user.
func (h *User) Update(ctx context.Context, req *request.Request) response.Response {
	id, err := req.ID()
	if err != nil {
		h.logger.Error("User handler: failed to parse id", "error", err)
		return response.InternalError(response.MsgInternalError)
	}

	user, err := req.User()
	if err != nil {
		h.logger.Error("User handler: failed to parse update body", "error", err)
		return response.InternalError(response.MsgInternalError)
	}
	user.ID = id

	if err := h.userService.Update(ctx, user); err != nil {
		h.logger.Error("User handler: failed to update user", "id", id, "error", err)
		return mutationError(err)
	}

	return response.OK(response.MsgUserUpdated)
}

// Delete removes the addressed user.
func (h *User) Delete(ctx context.Context, req *request.Request) response.Response {
	id, err := req.ID()
	if err != nil {
		h.logger.Error("User handler: failed to parse id", "error", err)
		return response.InternalError(response.MsgUnableToDelete)
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		h.logger.Error("User handler: failed to delete user", "id", id, "error", err)
		return mutationError(err)
	}

	return response.OK(response.MsgUserDeleted)
}

func (h *User) encode(v any) response.Response {
	resp, err := response.JSON(v)
	if err != nil {
		h.logger.Error("User handler: failed to serialize response", "error", err)
	}
	return resp
}

package service

import (
	"context"
	"fmt"

	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

// User implements user CRUD on top of a UserStore.
//
// In strict mode Update and Delete report model.ErrNotFound when no row was
// affected; otherwise a missing row is still a success.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
	strict    bool
}

func NewUser(userStore model.UserStore, logger *logger.Logger, strict bool) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
		strict:    strict,
	}
}

// Create stores name and email and returns the persisted row. Any ID on the input is ignored.
func (s *User) Create(ctx context.Context, user model.User) (model.User, error) {
	saved, err := s.userStore.Create(ctx, model.User{Name: user.Name, Email: user.Email})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Debug("User service: user created", "id", saved.ID)

	return saved, nil
}

func (s *User) Get(ctx context.Context, id int32) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return user, nil
}

func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}

	return users, nil
}

func (s *User) Update(ctx context.Context, user model.User) error {
	affected, err := s.userStore.Update(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}

	return s.checkAffected("update", user.ID, affected)
}

func (s *User) Delete(ctx context.Context, id int32) error {
	affected, err := s.userStore.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	return s.checkAffected("delete", id, affected)
}

func (s *User) checkAffected(op string, id int32, affected int64) error {
	if affected > 0 {
		return nil
	}

	s.logger.Debug("User service: no rows affected", "op", op, "id", id, "strict", s.strict)
	if s.strict {
		return model.ErrNotFound
	}

	return nil
}

package model

import (
	"context"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int32) (User, error)
	List(ctx context.Context) ([]User, error)
	// Update and Delete report the number of affected rows.
	Update(ctx context.Context, user User) (int64, error)
	Delete(ctx context.Context, id int32) (int64, error)
}

// User represents a stored user. ID is assigned by the store on insert.
type User struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

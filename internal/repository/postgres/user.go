package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/users-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, name, email`

	var saved model.User
	err := r.db.QueryRow(ctx, query, user.Name, user.Email).Scan(&saved.ID, &saved.Name, &saved.Email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int32) (model.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// List returns every user in the store's natural order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, name, email FROM users`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (int64, error) {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, user.Name, user.Email, user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int32) (int64, error) {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	return tag.RowsAffected(), nil
}

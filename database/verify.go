package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch is returned when the users table lacks a required column.
var ErrSchemaMismatch = errors.New("users table schema mismatch")

const columnsQuery = `SELECT column_name FROM information_schema.columns WHERE table_name = $1`

var requiredColumns = []string{"id", "name", "email"}

// VerifySchema checks that the users table exposes id, name and email.
func VerifySchema(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, columnsQuery, "users")
	if err != nil {
		return fmt.Errorf("failed to query users columns: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan column name: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate users columns: %w", err)
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/users-server/database"
)

// ConnectionOptions tunes the pool and the startup reachability check.
type ConnectionOptions struct {
	MaxConns       int32
	ConnectRetries uint64
}

type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens the pool, waits for the store to answer and applies migrations.
func NewConnection(ctx context.Context, dsn string, opts ConnectionOptions) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		conf.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), opts.ConnectRetries),
		ctx,
	)
	if err := backoff.Retry(func() error { return pool.Ping(ctx) }, policy); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{
		Pool: pool,
	}, nil
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}

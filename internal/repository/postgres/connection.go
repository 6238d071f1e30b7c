package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storefront/server/database"
)

// Config contains connection pool parameters.
type Config struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

// Connection wraps a pgx connection pool shared by all repositories.
type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens the pool, applies schema migrations and verifies
// the database is reachable.
func NewConnection(ctx context.Context, cfg Config) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	if cfg.MaxConns > 0 {
		conf.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		conf.MinConns = cfg.MinConns
	}
	if cfg.ConnectTimeout > 0 {
		conf.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	conf.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := database.Migrate(ctx, cfg.DSN); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
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

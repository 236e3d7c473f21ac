package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"humspot-backend/internal/config"
)

// Conn is one pooled connection. Every acquired Conn must be released exactly once.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Release()
}

// Pool hands out connections from a bounded set.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
	Close()
}

// PgxPool is the process-wide pgxpool-backed Pool
type PgxPool struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the connection pool from config and verifies connectivity
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*PgxPool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Int32("max_conns", poolCfg.MaxConns).
		Dur("connect_timeout", poolCfg.ConnConfig.ConnectTimeout).
		Msg("Database connection established")

	return &PgxPool{pool: pool}, nil
}

// PoolConfig translates DatabaseConfig into a pgxpool config
func PoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	return poolCfg, nil
}

// Acquire takes a connection from the pool, waiting until ctx is done
func (p *PgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Ping checks database connectivity
func (p *PgxPool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close waits for acquired connections to be released and closes the pool
func (p *PgxPool) Close() {
	stat := p.pool.Stat()
	log.Info().
		Int64("acquire_count", stat.AcquireCount()).
		Int32("acquired_conns", stat.AcquiredConns()).
		Msg("Closing database pool")
	p.pool.Close()
}

// Stat exposes pool counters
func (p *PgxPool) Stat() *pgxpool.Stat {
	return p.pool.Stat()
}

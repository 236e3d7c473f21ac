package query

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"humspot-backend/internal/database"
)

// Statement is a named SQL template with positional ($n) parameters.
type Statement struct {
	Name string
	SQL  string
}

// Executor runs single statements on connections borrowed from a pool.
// Each call acquires one connection and releases it before returning.
type Executor struct {
	pool           database.Pool
	acquireTimeout time.Duration
}

// Option configures an Executor
type Option func(*Executor)

// WithAcquireTimeout bounds how long a call waits for a free connection.
// Zero leaves acquisition bounded only by the caller's context.
func WithAcquireTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.acquireTimeout = d
	}
}

// NewExecutor creates a new executor over pool
func NewExecutor(pool database.Pool, opts ...Option) *Executor {
	e := &Executor{pool: pool}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ping checks that the pool can reach the database
func (e *Executor) Ping(ctx context.Context) error {
	return e.pool.Ping(ctx)
}

func (e *Executor) withConn(ctx context.Context, stmt Statement, fn func(database.Conn) error) error {
	acquireCtx := ctx
	if e.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, e.acquireTimeout)
		defer cancel()
	}

	conn, err := e.pool.Acquire(acquireCtx)
	if err != nil {
		return fmt.Errorf("%s: failed to acquire connection: %w", stmt.Name, err)
	}
	defer conn.Release()

	if err := fn(conn); err != nil {
		return fmt.Errorf("%s: %w", stmt.Name, err)
	}
	return nil
}

// List runs a query and maps every row onto T by column name (db tags).
// An empty result is a non-nil empty slice.
func List[T any](ctx context.Context, e *Executor, stmt Statement, args ...any) ([]T, error) {
	var items []T
	err := e.withConn(ctx, stmt, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, stmt.SQL, args...)
		if err != nil {
			return err
		}
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// One runs a query expected to return a single row.
// Zero rows yields an error wrapping pgx.ErrNoRows.
func One[T any](ctx context.Context, e *Executor, stmt Statement, args ...any) (T, error) {
	var item T
	err := e.withConn(ctx, stmt, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, stmt.SQL, args...)
		if err != nil {
			return err
		}
		item, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
		return err
	})
	return item, err
}

// Value runs a query returning one row with one column, e.g. COUNT(*) or RETURNING id.
func Value[T any](ctx context.Context, e *Executor, stmt Statement, args ...any) (T, error) {
	var v T
	err := e.withConn(ctx, stmt, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, stmt.SQL, args...)
		if err != nil {
			return err
		}
		v, err = pgx.CollectOneRow(rows, pgx.RowTo[T])
		return err
	})
	return v, err
}

// Exec runs a statement that returns no rows and reports the affected row count.
func Exec(ctx context.Context, e *Executor, stmt Statement, args ...any) (int64, error) {
	var affected int64
	err := e.withConn(ctx, stmt, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, stmt.SQL, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

// Package testutil provides in-memory stand-ins for the database pool.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"humspot-backend/internal/database"
)

// Call records one statement executed through the fake pool.
type Call struct {
	SQL  string
	Args []any
}

// QueryFunc answers a Query. Returning nil rows and nil error yields an empty result.
type QueryFunc func(sql string, args []any) (pgx.Rows, error)

// ExecFunc answers an Exec.
type ExecFunc func(sql string, args []any) (pgconn.CommandTag, error)

// Pool is a database.Pool that counts acquisitions and releases.
type Pool struct {
	OnQuery    QueryFunc
	OnExec     ExecFunc
	AcquireErr error
	PingErr    error

	mu       sync.Mutex
	acquired int
	released int
	doubles  int
	calls    []Call
}

var _ database.Pool = (*Pool)(nil)

// NewPool returns a fake pool with no canned answers
func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) Acquire(ctx context.Context) (database.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.AcquireErr != nil {
		return nil, p.AcquireErr
	}
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	return &conn{pool: p}, nil
}

func (p *Pool) Ping(context.Context) error {
	return p.PingErr
}

func (p *Pool) Close() {}

// Acquired reports how many connections were handed out
func (p *Pool) Acquired() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired
}

// Released reports how many connections were given back
func (p *Pool) Released() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// DoubleReleases reports releases of an already released connection
func (p *Pool) DoubleReleases() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doubles
}

// Calls returns every statement executed so far
func (p *Pool) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// LastCall returns the most recent statement, or a zero Call
func (p *Pool) LastCall() Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.calls) == 0 {
		return Call{}
	}
	return p.calls[len(p.calls)-1]
}

func (p *Pool) record(sql string, args []any) {
	p.mu.Lock()
	p.calls = append(p.calls, Call{SQL: sql, Args: args})
	p.mu.Unlock()
}

type conn struct {
	pool     *Pool
	released bool
}

func (c *conn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	if c.released {
		return nil, errors.New("testutil: query on released connection")
	}
	c.pool.record(sql, args)
	if c.pool.OnQuery == nil {
		return NewRows(nil), nil
	}
	rows, err := c.pool.OnQuery(sql, args)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = NewRows(nil)
	}
	return rows, nil
}

func (c *conn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if c.released {
		return pgconn.CommandTag{}, errors.New("testutil: exec on released connection")
	}
	c.pool.record(sql, args)
	if c.pool.OnExec == nil {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return c.pool.OnExec(sql, args)
}

func (c *conn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	if c.released {
		c.pool.doubles++
		return
	}
	c.released = true
	c.pool.released++
}

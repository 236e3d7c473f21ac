package query_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"humspot-backend/internal/database"
	"humspot-backend/internal/query"
	"humspot-backend/internal/testutil"
)

type tagRow struct {
	TagID   int64   `db:"tagid"`
	TagName string  `db:"tagname"`
	Color   *string `db:"color"`
}

var listTags = query.Statement{
	Name: "list tags",
	SQL:  `SELECT tagid, tagname, color FROM tags ORDER BY tagname LIMIT $1 OFFSET $2`,
}

func TestList_MapsRowsAndBindsArgs(t *testing.T) {
	pool := testutil.NewPool()
	green := "green"
	pool.OnQuery = func(sql string, args []any) (pgx.Rows, error) {
		return testutil.RowsFromStructs(
			tagRow{TagID: 1, TagName: "hiking", Color: &green},
			tagRow{TagID: 2, TagName: "music"},
		), nil
	}
	exec := query.NewExecutor(pool)

	tags, err := query.List[tagRow](context.Background(), exec, listTags, 10, 20)
	require.NoError(t, err)

	require.Len(t, tags, 2)
	assert.Equal(t, "hiking", tags[0].TagName)
	require.NotNil(t, tags[0].Color)
	assert.Equal(t, "green", *tags[0].Color)
	assert.Nil(t, tags[1].Color)

	call := pool.LastCall()
	assert.Equal(t, listTags.SQL, call.SQL)
	assert.Equal(t, []any{10, 20}, call.Args)
	assert.Equal(t, 1, pool.Acquired())
	assert.Equal(t, 1, pool.Released())
}

func TestList_EmptyResultIsEmptySlice(t *testing.T) {
	pool := testutil.NewPool()
	exec := query.NewExecutor(pool)

	tags, err := query.List[tagRow](context.Background(), exec, listTags, 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestOne_NoRows(t *testing.T) {
	pool := testutil.NewPool()
	exec := query.NewExecutor(pool)

	_, err := query.One[tagRow](context.Background(), exec, listTags, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.Contains(t, err.Error(), "list tags")
	assert.Equal(t, pool.Acquired(), pool.Released())
}

func TestValue_Scalar(t *testing.T) {
	pool := testutil.NewPool()
	pool.OnQuery = func(string, []any) (pgx.Rows, error) {
		return testutil.Scalar("count", int64(3)), nil
	}
	exec := query.NewExecutor(pool)

	n, err := query.Value[int64](context.Background(), exec, query.Statement{Name: "count", SQL: "SELECT COUNT(*) FROM tags"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestExec_RowsAffected(t *testing.T) {
	pool := testutil.NewPool()
	pool.OnExec = func(string, []any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 2"), nil
	}
	exec := query.NewExecutor(pool)

	n, err := query.Exec(context.Background(), exec, query.Statement{Name: "delete tags", SQL: "DELETE FROM tags WHERE tagid = $1"}, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestExecutor_ReleasesOnEveryPath(t *testing.T) {
	pool := testutil.NewPool()
	exec := query.NewExecutor(pool)
	ctx := context.Background()
	boom := errors.New("connection reset by peer")

	// success
	_, err := query.List[tagRow](ctx, exec, listTags, 10, 0)
	require.NoError(t, err)

	// query error
	pool.OnQuery = func(string, []any) (pgx.Rows, error) { return nil, boom }
	_, err = query.List[tagRow](ctx, exec, listTags, 10, 0)
	assert.ErrorIs(t, err, boom)

	// iteration error
	pool.OnQuery = func(string, []any) (pgx.Rows, error) {
		rows := testutil.RowsFromStructs(tagRow{TagID: 1}, tagRow{TagID: 2})
		rows.FailAfter = 1
		rows.FailErr = boom
		return rows, nil
	}
	_, err = query.List[tagRow](ctx, exec, listTags, 10, 0)
	assert.ErrorIs(t, err, boom)

	// scan error: projection does not match the struct
	pool.OnQuery = func(string, []any) (pgx.Rows, error) {
		return testutil.NewRows([]string{"unexpected"}, []any{"x"}), nil
	}
	_, err = query.List[tagRow](ctx, exec, listTags, 10, 0)
	assert.Error(t, err)

	// exec error
	pool.OnExec = func(string, []any) (pgconn.CommandTag, error) { return pgconn.CommandTag{}, boom }
	_, err = query.Exec(ctx, exec, query.Statement{Name: "delete tags", SQL: "DELETE FROM tags"})
	assert.ErrorIs(t, err, boom)

	// panic inside row mapping
	pool.OnQuery = func(string, []any) (pgx.Rows, error) { panic("driver bug") }
	assert.Panics(t, func() {
		_, _ = query.List[tagRow](ctx, exec, listTags, 10, 0)
	})

	assert.Equal(t, 6, pool.Acquired())
	assert.Equal(t, pool.Acquired(), pool.Released())
	assert.Zero(t, pool.DoubleReleases())
}

func TestExecutor_AcquireFailure(t *testing.T) {
	pool := testutil.NewPool()
	pool.AcquireErr = errors.New("too many clients already")
	exec := query.NewExecutor(pool)

	_, err := query.List[tagRow](context.Background(), exec, listTags, 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire connection")
	assert.Zero(t, pool.Acquired())
	assert.Zero(t, pool.Released())
	assert.Empty(t, pool.Calls())
}

func TestExecutor_AcquireTimeout(t *testing.T) {
	pool := &blockingPool{Pool: testutil.NewPool()}
	exec := query.NewExecutor(pool, query.WithAcquireTimeout(10*time.Millisecond))

	_, err := query.List[tagRow](context.Background(), exec, listTags, 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// blockingPool never has a free slot
type blockingPool struct {
	*testutil.Pool
}

func (p *blockingPool) Acquire(ctx context.Context) (database.Conn, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

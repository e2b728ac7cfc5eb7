package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

type fakeQuerier struct {
	rows map[string]fakeRow
	sql  string
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	if row, ok := q.rows[args[0].(string)]; ok {
		return row
	}
	return fakeRow{err: pgx.ErrNoRows}
}

func TestSelectPreferenceQuery(t *testing.T) {
	sql, args, err := selectPreferenceQuery("balance")

	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM widget_preferences WHERE key = $1", sql)
	assert.Equal(t, []any{"balance"}, args)
}

func TestWidgetPreferenceRepository_GetString(t *testing.T) {
	db := &fakeQuerier{rows: map[string]fakeRow{
		"balance": {value: "$250.000"},
		"updated": {err: errors.New("connection reset")},
	}}
	repo := NewWidgetPreferenceRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()

	value, found, err := repo.GetString(ctx, "balance")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "$250.000", value)
	assert.Contains(t, db.sql, "widget_preferences")

	_, found, err = repo.GetString(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = repo.GetString(ctx, "updated")
	assert.ErrorContains(t, err, "connection reset")
}

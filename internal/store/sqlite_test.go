package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/store"
	"github.com/nhle/architect-board/tests/testutil"
)

func setupMockDB(t *testing.T, opts ...store.Option) (*store.SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.NewSQLiteStoreFromDB(sqlx.NewDb(db, "sqlite"), opts...), mock
}

func TestSQLiteStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx,
		store.Entry{Key: "a", Value: []byte("1")},
		store.Entry{Key: "b", Value: []byte("2")},
	))
	require.NoError(t, s.Put(ctx, store.Entry{Key: "a", Value: []byte("3")}))

	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3", string(v))

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	v, _, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))
}

func TestSQLiteStoreQuotaChecksWholeBatch(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t, store.WithMaxValueBytes(4))

	err := s.Put(ctx,
		store.Entry{Key: "small", Value: []byte("ok")},
		store.Entry{Key: "big", Value: []byte("too large")},
	)

	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
	_, ok, err := s.Get(ctx, "small")
	require.NoError(t, err)
	assert.False(t, ok, "no entry of a rejected batch is written")
}

func TestSQLiteStoreReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/board.db"

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, store.Entry{Key: "k", Value: []byte("v")}))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", string(v))
}

func TestSQLiteStorePutRollsBackOnExecError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT OR REPLACE INTO kv`)
	prep.ExpectExec().
		WithArgs("ns_tasks", "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("ns_timeEntries", "[]", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Put(context.Background(),
		store.Entry{Key: "ns_tasks", Value: []byte("[]")},
		store.Entry{Key: "ns_timeEntries", Value: []byte("[]")},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ns_timeEntries")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreGetQueryError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \?`).
		WithArgs("k").
		WillReturnError(errors.New("database is locked"))

	_, ok, err := s.Get(context.Background(), "k")

	require.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreGetFromMock(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \?`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"a":1}`))

	v, ok, err := s.Get(context.Background(), "k")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(v))
	assert.NoError(t, mock.ExpectationsWereMet())
}

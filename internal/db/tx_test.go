package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func countSnapshots(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM pace_snapshots`).Scan(&n)
	}))
	return n
}

func insertSnapshot(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO pace_snapshots (id, taken_at, hours_passed, total_work_time,
		picked_actual, packed_actual, expected_picking, expected_packing, deviation_picking, deviation_packing)
		VALUES (?, '2025-06-15T12:00:00Z', 4, 8, 0, 0, 0, 0, 0, 0)`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSnapshot(ctx, tx, "s1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countSnapshots(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSnapshot(ctx, tx, "s2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countSnapshots(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSnapshot(ctx, tx, "s3")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countSnapshots(t, uow))
}

package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get_NotFoundBeforeSave(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	cfg := testutil.NewTestConfig(
		testutil.WithBreaks(domain.Interval{Start: "12:00", End: "12:30"}, domain.Interval{Start: "14:00", End: "14:15"}),
		testutil.WithControlPoints("10:00", "12:00", "14:00"),
		testutil.WithSpeeds(30, 22.5),
	)
	require.NoError(t, repo.Save(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.ShiftStart)
	assert.Equal(t, "16:00", got.ShiftEnd)
	assert.Equal(t, 800, got.ExpectedOrders)
	assert.Equal(t, 30.0, got.AvgPickingSpeed)
	assert.Equal(t, 22.5, got.AvgPackingSpeed)
	assert.Equal(t, 2, got.StaffForLastPeriod)
	assert.Equal(t, cfg.Breaks, got.Breaks)
	assert.Equal(t, cfg.ControlPoints, got.ControlPoints)
	assert.True(t, cfg.UpdatedAt.Equal(got.UpdatedAt))
}

func TestSettingsRepo_Save_ReplacesChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestConfig(testutil.WithControlPoints("10:00", "12:00", "14:00"))))

	trimmed := testutil.NewTestConfig(testutil.WithControlPoints("11:00"), testutil.WithExpectedOrders(1200))
	require.NoError(t, repo.Save(ctx, trimmed))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1200, got.ExpectedOrders)
	require.Len(t, got.ControlPoints, 1)
	assert.Equal(t, "11:00", got.ControlPoints[0].Time)
	assert.Empty(t, got.Breaks)
}

func TestSettingsRepo_Reset_CascadesChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	cfg := testutil.NewTestConfig(
		testutil.WithBreaks(domain.Interval{Start: "12:00", End: "12:30"}),
		testutil.WithControlPoints("10:00"),
	)
	require.NoError(t, repo.Save(ctx, cfg))
	require.NoError(t, repo.Reset(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shift_breaks`).Scan(&n))
	assert.Equal(t, 0, n)
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM control_points`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSettingsRepo_Save_RejectsNegativeOrders(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	err := repo.Save(context.Background(), testutil.NewTestConfig(testutil.WithExpectedOrders(-1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upserting shift settings")
}

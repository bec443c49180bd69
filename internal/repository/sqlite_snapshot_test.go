package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var snapBase = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

func TestSnapshotRepo_CreateAndListSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	late := testutil.NewTestSnapshot(snapBase.Add(3*time.Hour), testutil.WithPaceLevel(domain.PaceBehind), testutil.WithDeviations(-20, -45.5))
	early := testutil.NewTestSnapshot(snapBase.Add(time.Hour))
	old := testutil.NewTestSnapshot(snapBase.Add(-time.Hour))
	for _, s := range []*domain.PaceSnapshot{late, early, old} {
		require.NoError(t, repo.Create(ctx, s))
	}

	got, err := repo.ListSince(ctx, snapBase)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
	assert.Equal(t, domain.PaceBehind, got[1].PaceLevel)
	assert.Equal(t, -45.5, got[1].DeviationPacking)
	assert.True(t, late.TakenAt.Equal(got[1].TakenAt))
}

func TestSnapshotRepo_Create_DuplicateID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSnapshot(snapBase)
	require.NoError(t, repo.Create(ctx, s))
	assert.Error(t, repo.Create(ctx, s))
}

func TestSnapshotRepo_DeleteBefore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestSnapshot(snapBase.Add(time.Duration(i)*time.Hour))))
	}

	n, err := repo.DeleteBefore(ctx, snapBase.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActuals(t *testing.T, cps ...string) (testRepos, ActualsService) {
	t.Helper()
	r := setupRepos(t)
	settings := NewSettingsService(r.settings, r.uow)
	require.NoError(t, settings.Save(context.Background(), testutil.NewTestConfig(testutil.WithControlPoints(cps...))))
	return r, NewActualsService(r.actuals, r.uow)
}

func TestActualsService_Get_SeedsCheckpoints(t *testing.T) {
	r, svc := setupActuals(t, "10:00", "12:00")
	ctx := context.Background()

	a, err := svc.Get(ctx, at(9, 0))
	require.NoError(t, err)
	require.Len(t, a.CPData, 2)
	assert.Equal(t, "10:00", a.CPData[0].Time)
	assert.InDelta(t, 1500.0/7, a.CPData[0].PlannedPicking, delta)
	assert.InDelta(t, 3000.0/7, a.CPData[1].PlannedPacking, delta)
	assert.Zero(t, a.CPData[0].ActualPicked)

	stored, err := r.actuals.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, stored.CPData, 2)
}

func TestActualsService_Get_NoControlPoints(t *testing.T) {
	r := setupRepos(t)
	svc := NewActualsService(r.actuals, r.uow)

	a, err := svc.Get(context.Background(), at(9, 0))
	require.NoError(t, err)
	assert.Empty(t, a.CPData)
	assert.Zero(t, a.PickedActual)
}

func TestActualsService_UpdateTotals(t *testing.T) {
	r, svc := setupActuals(t)
	obs := &recordingObserver{}
	svc = NewActualsService(r.actuals, r.uow, obs)
	ctx := context.Background()

	a, err := svc.UpdateTotals(ctx, 450, 400, at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, 450, a.PickedActual)

	stored, err := r.actuals.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400, stored.PackedActual)

	_, err = svc.UpdateTotals(ctx, -1, 10, at(12, 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")

	stored, err = r.actuals.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 450, stored.PickedActual, "rejected update leaves the record alone")

	assert.Equal(t, []string{"update-actuals", "update-actuals"}, obs.names())
	assert.False(t, obs.events[1].Success)
}

func TestActualsService_EditCheckpoint_TimeChangeReplans(t *testing.T) {
	_, svc := setupActuals(t, "10:00")
	ctx := context.Background()

	newTime := "12:00 PM"
	picked := 410
	rec, err := svc.EditCheckpoint(ctx, 0, app.CheckpointEdit{Time: &newTime, ActualPicked: &picked}, at(12, 5))
	require.NoError(t, err)
	assert.Equal(t, "12:00", rec.Time)
	assert.InDelta(t, 3000.0/7, rec.PlannedPicking, delta)
	assert.Equal(t, 410, rec.ActualPicked)

	a, err := svc.Get(ctx, at(12, 10))
	require.NoError(t, err)
	assert.Equal(t, *rec, a.CPData[0])
}

func TestActualsService_EditCheckpoint_ActualsOnlyKeepsPlan(t *testing.T) {
	_, svc := setupActuals(t, "10:00")
	ctx := context.Background()

	packed := 190
	rec, err := svc.EditCheckpoint(ctx, 0, app.CheckpointEdit{ActualPacked: &packed}, at(10, 5))
	require.NoError(t, err)
	assert.Equal(t, "10:00", rec.Time)
	assert.InDelta(t, 1500.0/7, rec.PlannedPacking, delta)
	assert.Equal(t, 190, rec.ActualPacked)
}

func TestActualsService_EditCheckpoint_Errors(t *testing.T) {
	_, svc := setupActuals(t, "10:00")
	ctx := context.Background()
	bad := "25:00"
	neg := -4
	one := 1

	_, err := svc.EditCheckpoint(ctx, 3, app.CheckpointEdit{ActualPicked: &one}, at(10, 0))
	assert.ErrorIs(t, err, domain.ErrCheckpointOutOfRange)

	_, err = svc.EditCheckpoint(ctx, 0, app.CheckpointEdit{Time: &bad}, at(10, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidTime)

	_, err = svc.EditCheckpoint(ctx, 0, app.CheckpointEdit{ActualPacked: &neg}, at(10, 0))
	assert.Error(t, err)

	_, err = svc.EditCheckpoint(ctx, 0, app.CheckpointEdit{}, at(10, 0))
	assert.Error(t, err)
}

func TestActualsService_DeleteCheckpoint(t *testing.T) {
	_, svc := setupActuals(t, "10:00", "12:00", "14:00")
	ctx := context.Background()

	require.NoError(t, svc.DeleteCheckpoint(ctx, 1, at(9, 0)))
	a, err := svc.Get(ctx, at(9, 0))
	require.NoError(t, err)
	require.Len(t, a.CPData, 2)
	assert.Equal(t, "10:00", a.CPData[0].Time)
	assert.Equal(t, "14:00", a.CPData[1].Time)

	assert.ErrorIs(t, svc.DeleteCheckpoint(ctx, 2, at(9, 0)), domain.ErrCheckpointOutOfRange)
}

func TestActualsService_SaveAndReset(t *testing.T) {
	r, svc := setupActuals(t, "10:00")
	ctx := context.Background()

	_, err := svc.UpdateTotals(ctx, 120, 80, at(11, 0))
	require.NoError(t, err)

	ack, err := svc.Save(ctx, at(11, 1))
	require.NoError(t, err)
	assert.Equal(t, at(11, 1), ack.SavedAt)
	assert.Equal(t, 120, ack.PickedActual)
	assert.Equal(t, 1, ack.Checkpoints)
	assert.Equal(t, "Data saved at 11:01:00", ack.Message())

	stored, err := r.actuals.Get(ctx)
	require.NoError(t, err)
	assert.True(t, at(11, 1).Equal(stored.UpdatedAt))

	require.NoError(t, svc.Reset(ctx))
	a, err := svc.Get(ctx, at(11, 5))
	require.NoError(t, err)
	assert.Zero(t, a.PickedActual)
	assert.Len(t, a.CPData, 1, "checkpoints are reseeded after a reset")
}

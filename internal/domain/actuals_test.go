package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestSetTotals(t *testing.T) {
	a := &ActualsState{}
	require.NoError(t, a.SetTotals(120, 95, testNow))
	assert.Equal(t, 120, a.Actual(ProcessPicking))
	assert.Equal(t, 95, a.Actual(ProcessPacking))
	assert.Equal(t, testNow, a.UpdatedAt)
}

func TestSetTotals_RejectsNegative(t *testing.T) {
	a := &ActualsState{PickedActual: 10}
	err := a.SetTotals(-1, 0, testNow)
	require.Error(t, err)
	assert.Equal(t, 10, a.PickedActual, "counts should not change")
}

func TestNeedsSeed(t *testing.T) {
	cfg := &ShiftConfig{ControlPoints: []ControlPoint{{Time: "10:00"}}}

	assert.True(t, (&ActualsState{}).NeedsSeed(cfg))
	assert.False(t, (&ActualsState{CPData: []CheckpointRecord{{Time: "10:00"}}}).NeedsSeed(cfg))
	assert.False(t, (&ActualsState{}).NeedsSeed(&ShiftConfig{}))
	assert.False(t, (&ActualsState{}).NeedsSeed(nil))
}

func TestDeleteCheckpoint_ByPosition(t *testing.T) {
	a := &ActualsState{CPData: []CheckpointRecord{{Time: "10:00"}, {Time: "12:00"}, {Time: "14:00"}}}

	require.NoError(t, a.DeleteCheckpoint(1, testNow))
	require.Len(t, a.CPData, 2)
	assert.Equal(t, "10:00", a.CPData[0].Time)
	assert.Equal(t, "14:00", a.CPData[1].Time)
}

func TestDeleteCheckpoint_OutOfRange(t *testing.T) {
	a := &ActualsState{CPData: []CheckpointRecord{{Time: "10:00"}}}

	assert.ErrorIs(t, a.DeleteCheckpoint(1, testNow), ErrCheckpointOutOfRange)
	assert.ErrorIs(t, a.DeleteCheckpoint(-1, testNow), ErrCheckpointOutOfRange)
	assert.Len(t, a.CPData, 1)
}

func TestCheckpointRecord_ProcessAccessors(t *testing.T) {
	r := CheckpointRecord{PlannedPicking: 100, PlannedPacking: 90, ActualPicked: 80, ActualPacked: 70}
	assert.Equal(t, 100.0, r.Planned(ProcessPicking))
	assert.Equal(t, 90.0, r.Planned(ProcessPacking))
	assert.Equal(t, 80, r.Actual(ProcessPicking))
	assert.Equal(t, 70, r.Actual(ProcessPacking))
}

func TestShiftConfig_AvgSpeed(t *testing.T) {
	cfg := &ShiftConfig{}
	cfg.SetUniformSpeed(25)
	assert.Equal(t, 25.0, cfg.AvgSpeed(ProcessPicking))
	assert.Equal(t, 25.0, cfg.AvgSpeed(ProcessPacking))
	assert.Equal(t, 0.0, cfg.AvgSpeed(Process("sorting")))
}

func TestShiftConfig_IsConfigured(t *testing.T) {
	assert.False(t, (*ShiftConfig)(nil).IsConfigured())
	assert.False(t, (&ShiftConfig{ShiftStart: "08:00"}).IsConfigured())
	assert.True(t, (&ShiftConfig{ShiftStart: "08:00", ShiftEnd: "16:00"}).IsConfigured())
}

func TestInterval_Complete(t *testing.T) {
	assert.True(t, Interval{Start: "09:00", End: "09:15"}.Complete())
	assert.False(t, Interval{Start: "09:00"}.Complete())
	assert.False(t, Interval{End: "09:15"}.Complete())
}

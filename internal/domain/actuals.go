package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrCheckpointOutOfRange is returned when a checkpoint position does not exist.
var ErrCheckpointOutOfRange = errors.New("checkpoint position out of range")

// CheckpointRecord is the planned-vs-actual snapshot for one control point.
type CheckpointRecord struct {
	Time           string
	PlannedPicking float64
	PlannedPacking float64
	ActualPicked   int
	ActualPacked   int
}

// Planned returns the planned figure for a process.
func (r CheckpointRecord) Planned(p Process) float64 {
	if p == ProcessPacking {
		return r.PlannedPacking
	}
	return r.PlannedPicking
}

// Actual returns the recorded figure for a process.
func (r CheckpointRecord) Actual(p Process) int {
	if p == ProcessPacking {
		return r.ActualPacked
	}
	return r.ActualPicked
}

// ActualsState holds live shift progress (the updateData record).
type ActualsState struct {
	PickedActual int
	PackedActual int
	CPData       []CheckpointRecord
	UpdatedAt    time.Time
}

// Actual returns the cumulative count for a process.
func (a *ActualsState) Actual(p Process) int {
	if p == ProcessPacking {
		return a.PackedActual
	}
	return a.PickedActual
}

// SetTotals replaces the cumulative counts.
func (a *ActualsState) SetTotals(picked, packed int, now time.Time) error {
	if picked < 0 || packed < 0 {
		return fmt.Errorf("actual counts must be non-negative (picked=%d, packed=%d)", picked, packed)
	}
	a.PickedActual = picked
	a.PackedActual = packed
	a.UpdatedAt = now
	return nil
}

// NeedsSeed reports whether checkpoint records should be created from the
// configured control points.
func (a *ActualsState) NeedsSeed(cfg *ShiftConfig) bool {
	return len(a.CPData) == 0 && cfg != nil && len(cfg.ControlPoints) > 0
}

// Checkpoint returns the record at position.
func (a *ActualsState) Checkpoint(position int) (*CheckpointRecord, error) {
	if position < 0 || position >= len(a.CPData) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrCheckpointOutOfRange, position, len(a.CPData))
	}
	return &a.CPData[position], nil
}

// DeleteCheckpoint removes the record at position, preserving order.
func (a *ActualsState) DeleteCheckpoint(position int, now time.Time) error {
	if _, err := a.Checkpoint(position); err != nil {
		return err
	}
	a.CPData = append(a.CPData[:position], a.CPData[position+1:]...)
	a.UpdatedAt = now
	return nil
}

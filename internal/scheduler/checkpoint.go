package scheduler

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// ExpectedAt holds the planned cumulative output per process at an instant.
type ExpectedAt struct {
	Picking float64
	Packing float64
}

// For returns the planned figure for one process.
func (e ExpectedAt) For(p domain.Process) float64 {
	if p == domain.ProcessPacking {
		return e.Packing
	}
	return e.Picking
}

// ExpectedAtInstant projects the plan to ref without looking at actuals.
// It agrees with ComputeDeviations' ExpectedProcessed for the same ref.
func ExpectedAtInstant(cfg *domain.ShiftConfig, ref time.Time) ExpectedAt {
	clock := ComputeShiftClock(cfg, ref)
	if !clock.Configured || clock.TotalWorkTime <= 0 {
		return ExpectedAt{}
	}
	return ExpectedAt{
		Picking: expectedProcessed(PlanProcess(cfg, clock, domain.ProcessPicking), clock.HoursPassed, cfg.ExpectedOrders),
		Packing: expectedProcessed(PlanProcess(cfg, clock, domain.ProcessPacking), clock.HoursPassed, cfg.ExpectedOrders),
	}
}

// ComputeExpectedAtTime projects the plan to a checkpoint time-of-day on day.
// An unset checkpoint time yields zero.
func ComputeExpectedAtTime(cfg *domain.ShiftConfig, checkpointTime string, day time.Time) ExpectedAt {
	if !domain.IsTimeSet(checkpointTime) {
		return ExpectedAt{}
	}
	return ExpectedAtInstant(cfg, domain.ParseTime(checkpointTime).On(day))
}

// PlanCheckpoints creates one checkpoint record per configured control point
// with planned figures filled in and actuals at zero.
func PlanCheckpoints(cfg *domain.ShiftConfig, day time.Time) []domain.CheckpointRecord {
	records := make([]domain.CheckpointRecord, 0, len(cfg.ControlPoints))
	for _, cp := range cfg.ControlPoints {
		rec := domain.CheckpointRecord{Time: cp.Time}
		ReplanCheckpoint(cfg, &rec, day)
		records = append(records, rec)
	}
	return records
}

// ReplanCheckpoint refreshes a record's planned figures from its time.
func ReplanCheckpoint(cfg *domain.ShiftConfig, rec *domain.CheckpointRecord, day time.Time) {
	expected := ComputeExpectedAtTime(cfg, rec.Time, day)
	rec.PlannedPicking = expected.Picking
	rec.PlannedPacking = expected.Packing
}

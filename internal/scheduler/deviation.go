package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// ProcessDeviation is the expected-vs-actual position of one tracked process.
type ProcessDeviation struct {
	Process           domain.Process
	Plan              SpeedPlan
	ExpectedProcessed float64
	Actual            int
	Deviation         float64
	// Met is set once Actual reaches the shift target; Deviation is then 0.
	Met bool
}

// RequiredSpeed is the adjusted target rate for the process, units/hour.
func (d ProcessDeviation) RequiredSpeed() float64 {
	return d.Plan.RequiredSpeed
}

type DeviationResult struct {
	// Computed is false when the shift is not configured or has no
	// effective work time; every figure is then zero.
	Computed       bool
	At             time.Time
	Clock          ShiftClock
	HoursPassed    float64
	TotalWorkTime  float64
	ExpectedOrders int
	Picking        ProcessDeviation
	Packing        ProcessDeviation
}

// For returns the deviation of one process.
func (r DeviationResult) For(p domain.Process) ProcessDeviation {
	if p == domain.ProcessPacking {
		return r.Packing
	}
	return r.Picking
}

// Processes returns both process deviations in display order.
func (r DeviationResult) Processes() []ProcessDeviation {
	return []ProcessDeviation{r.Picking, r.Packing}
}

// ComputeDeviations applies the required-speed model to the actuals at ref.
func ComputeDeviations(cfg *domain.ShiftConfig, actuals *domain.ActualsState, ref time.Time) DeviationResult {
	result := DeviationResult{
		At:      ref,
		Picking: ProcessDeviation{Process: domain.ProcessPicking},
		Packing: ProcessDeviation{Process: domain.ProcessPacking},
	}

	clock := ComputeShiftClock(cfg, ref)
	if !clock.Configured || clock.TotalWorkTime <= 0 {
		return result
	}
	if actuals == nil {
		actuals = &domain.ActualsState{}
	}

	result.Computed = true
	result.Clock = clock
	result.HoursPassed = clock.HoursPassed
	result.TotalWorkTime = clock.TotalWorkTime
	result.ExpectedOrders = cfg.ExpectedOrders

	result.Picking = deviationFor(cfg, clock, domain.ProcessPicking, actuals.Actual(domain.ProcessPicking))
	result.Packing = deviationFor(cfg, clock, domain.ProcessPacking, actuals.Actual(domain.ProcessPacking))
	return result
}

// PlanProcess runs the required-speed model for one process against a clock.
func PlanProcess(cfg *domain.ShiftConfig, clock ShiftClock, p domain.Process) SpeedPlan {
	return ComputeRequiredSpeed(SpeedInput{
		ExpectedOrders:     float64(cfg.ExpectedOrders),
		TotalWorkTime:      clock.TotalWorkTime,
		StaffForLastPeriod: cfg.StaffForLastPeriod,
		AvgSpeed:           cfg.AvgSpeed(p),
	})
}

// expectedProcessed is required speed times effective hours, capped at target.
func expectedProcessed(plan SpeedPlan, hoursPassed float64, target int) float64 {
	return math.Min(plan.RequiredSpeed*hoursPassed, float64(target))
}

func deviationFor(cfg *domain.ShiftConfig, clock ShiftClock, p domain.Process, actual int) ProcessDeviation {
	plan := PlanProcess(cfg, clock, p)
	expected := expectedProcessed(plan, clock.HoursPassed, cfg.ExpectedOrders)

	d := ProcessDeviation{
		Process:           p,
		Plan:              plan,
		ExpectedProcessed: expected,
		Actual:            actual,
	}
	if actual >= cfg.ExpectedOrders {
		d.Met = true
		return d
	}
	d.Deviation = float64(actual) - expected
	return d
}

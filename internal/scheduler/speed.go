package scheduler

import "math"

type SpeedInput struct {
	ExpectedOrders     float64
	TotalWorkTime      float64
	StaffForLastPeriod int
	AvgSpeed           float64
}

// SpeedPlan is the output of the required-speed model, in units/hour
// (CapacityLastHour in units).
type SpeedPlan struct {
	BaseSpeed        float64
	CapacityLastHour float64
	CandidateSpeed   float64
	RequiredSpeed    float64
}

// ComputeRequiredSpeed front-loads the pace of the non-final hours so that
// exactly what the last-hour crew can clear is left for the final hour.
// The result never drops below the uniform rate. A non-positive work time
// yields a zero plan.
func ComputeRequiredSpeed(in SpeedInput) SpeedPlan {
	if in.TotalWorkTime <= 0 {
		return SpeedPlan{}
	}

	plan := SpeedPlan{
		BaseSpeed:        in.ExpectedOrders / in.TotalWorkTime,
		CapacityLastHour: float64(in.StaffForLastPeriod) * in.AvgSpeed,
	}

	plan.CandidateSpeed = plan.BaseSpeed
	if in.TotalWorkTime > 1 {
		plan.CandidateSpeed = (in.ExpectedOrders - plan.CapacityLastHour) / (in.TotalWorkTime - 1)
	}

	plan.RequiredSpeed = math.Max(plan.BaseSpeed, plan.CandidateSpeed)
	return plan
}

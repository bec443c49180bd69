package scheduler

import (
	"math"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// LastHourIndicator estimates whether the final-hour crew can finish a process.
type LastHourIndicator struct {
	Process   domain.Process
	HoursLeft float64
	// UnitsLeft is what the final hour will have to clear if the required
	// pace is held until then (or what is left now, inside the last hour).
	UnitsLeft     float64
	RequiredStaff float64
	PlannedStaff  int
	WillMeet      bool
}

// ComputeLastHourIndicators derives one indicator per tracked process.
// Returns nil when the deviation result was not computed.
func ComputeLastHourIndicators(cfg *domain.ShiftConfig, res DeviationResult) []LastHourIndicator {
	if !res.Computed {
		return nil
	}
	hoursLeft := res.Clock.HoursLeft()

	out := make([]LastHourIndicator, 0, len(domain.TrackedProcesses))
	for _, p := range domain.TrackedProcesses {
		dev := res.For(p)
		ind := LastHourIndicator{
			Process:      p,
			HoursLeft:    hoursLeft,
			PlannedStaff: cfg.StaffForLastPeriod,
		}
		remaining := math.Max(0, float64(res.ExpectedOrders-dev.Actual))
		speed := cfg.AvgSpeed(p)

		switch {
		case hoursLeft <= 0:
			ind.UnitsLeft = remaining
		case hoursLeft <= 1:
			ind.UnitsLeft = remaining
			ind.RequiredStaff = staffFor(remaining, speed*hoursLeft)
		default:
			ind.UnitsLeft = math.Max(0, remaining-dev.RequiredSpeed()*(hoursLeft-1))
			ind.RequiredStaff = staffFor(ind.UnitsLeft, speed)
		}

		if hoursLeft <= 0 {
			ind.WillMeet = remaining == 0
		} else {
			ind.WillMeet = speed > 0 && ind.RequiredStaff <= float64(cfg.StaffForLastPeriod)
			if remaining == 0 {
				ind.WillMeet = true
			}
		}
		out = append(out, ind)
	}
	return out
}

// staffFor converts a unit count into headcount at the given per-worker rate.
func staffFor(units, ratePerWorker float64) float64 {
	if ratePerWorker <= 0 {
		return 0
	}
	return units / ratePerWorker
}

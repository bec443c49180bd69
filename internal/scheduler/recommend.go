package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// NoDataMessage is shown for every process before the shift is configured.
const NoDataMessage = "No data available"

type AdviceAction string

const (
	AdviceAdd    AdviceAction = "add"
	AdviceRemove AdviceAction = "remove"
	AdviceHold   AdviceAction = "hold"
	AdviceNone   AdviceAction = "none"
)

// StaffingAdvice is the staffing guidance for one process.
type StaffingAdvice struct {
	Process   domain.Process
	Action    AdviceAction
	Employees float64
	Text      string
}

type Recommendations struct {
	Picking StaffingAdvice
	Packing StaffingAdvice
}

// For returns the advice for one process.
func (r Recommendations) For(p domain.Process) StaffingAdvice {
	if p == domain.ProcessPacking {
		return r.Packing
	}
	return r.Picking
}

// ComputeRecommendations maps each process deviation to staffing guidance.
// When lastHour is non-empty, each text gains the final-hour headcount.
func ComputeRecommendations(res DeviationResult, cfg *domain.ShiftConfig, lastHour []LastHourIndicator) Recommendations {
	return Recommendations{
		Picking: adviceFor(res, cfg, domain.ProcessPicking, lastHour),
		Packing: adviceFor(res, cfg, domain.ProcessPacking, lastHour),
	}
}

func adviceFor(res DeviationResult, cfg *domain.ShiftConfig, p domain.Process, lastHour []LastHourIndicator) StaffingAdvice {
	if !res.Computed {
		return StaffingAdvice{Process: p, Action: AdviceNone, Text: NoDataMessage}
	}

	dev := res.For(p).Deviation
	employees := staffFor(math.Abs(dev), cfg.AvgSpeed(p))

	advice := StaffingAdvice{Process: p, Employees: employees}
	switch {
	case dev < 0:
		advice.Action = AdviceAdd
		advice.Text = fmt.Sprintf("Add %.2f employees to %s", employees, p)
	case dev > 0:
		advice.Action = AdviceRemove
		advice.Text = fmt.Sprintf("You can remove %.2f employees from %s", employees, p)
	default:
		advice.Action = AdviceHold
		advice.Text = fmt.Sprintf("Plan is met exactly for %s", p)
	}

	for _, ind := range lastHour {
		if ind.Process != p {
			continue
		}
		advice.Text += fmt.Sprintf(". Last hour: %.2f employees needed (%d planned)", ind.RequiredStaff, ind.PlannedStaff)
	}
	return advice
}

package scheduler

import (
	"math"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// CriticalShortfallPct is the shortfall, as a fraction of expected output,
// beyond which a process is critical rather than just behind.
const CriticalShortfallPct = 0.10

// ClassifyPace buckets one process deviation into a pace level.
func ClassifyPace(dev ProcessDeviation, computed bool) domain.PaceLevel {
	if !computed {
		return domain.PaceUnknown
	}
	switch {
	case dev.Met || dev.Deviation == 0:
		return domain.PaceOnPlan
	case dev.Deviation > 0:
		return domain.PaceAhead
	case dev.ExpectedProcessed > 0 && math.Abs(dev.Deviation)/dev.ExpectedProcessed > CriticalShortfallPct:
		return domain.PaceCritical
	default:
		return domain.PaceBehind
	}
}

// PacePriority returns a sort priority (lower = more urgent).
func PacePriority(l domain.PaceLevel) int {
	switch l {
	case domain.PaceCritical:
		return 0
	case domain.PaceBehind:
		return 1
	case domain.PaceOnPlan:
		return 2
	case domain.PaceAhead:
		return 3
	default:
		return 4
	}
}

// OverallPace is the most urgent level across both processes.
func OverallPace(res DeviationResult) domain.PaceLevel {
	if !res.Computed {
		return domain.PaceUnknown
	}
	worst := domain.PaceAhead
	for _, dev := range res.Processes() {
		level := ClassifyPace(dev, true)
		if PacePriority(level) < PacePriority(worst) {
			worst = level
		}
	}
	return worst
}

// PaceMessage is the one-line summary shown under the status table.
func PaceMessage(l domain.PaceLevel) string {
	switch l {
	case domain.PaceCritical:
		return "Shift is well behind plan, add staff now"
	case domain.PaceBehind:
		return "Shift is slightly behind plan, monitor closely"
	case domain.PaceOnPlan:
		return "Shift is on plan"
	case domain.PaceAhead:
		return "Shift is ahead of plan"
	default:
		return NoDataMessage
	}
}

package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// ShiftClock is the effective-time view of a shift at a reference instant.
// All durations are in hours.
type ShiftClock struct {
	Configured      bool
	Start           time.Time
	End             time.Time
	TotalShiftHours float64
	BreakHours      float64
	TotalWorkTime   float64
	RawElapsedHours float64
	// HoursPassed is effective time worked so far, breaks excluded,
	// clamped to [0, TotalWorkTime].
	HoursPassed float64
}

// HoursLeft is the effective work time remaining after HoursPassed.
func (c ShiftClock) HoursLeft() float64 {
	return math.Max(0, c.TotalWorkTime-c.HoursPassed)
}

// ComputeShiftClock derives total and elapsed effective work time at ref.
// An unset or inverted shift window yields a zero clock with Configured=false.
func ComputeShiftClock(cfg *domain.ShiftConfig, ref time.Time) ShiftClock {
	if !cfg.IsConfigured() {
		return ShiftClock{}
	}

	start := domain.ParseTime(cfg.ShiftStart).On(ref)
	end := domain.ParseTime(cfg.ShiftEnd).On(ref)
	totalShift := end.Sub(start).Hours()
	if totalShift <= 0 {
		return ShiftClock{}
	}

	breaks := AccumulateIntervals(ref, cfg.Breaks)
	totalWork := totalShift - breaks.TotalHours

	rawElapsed := clamp(ref.Sub(start).Hours(), 0, totalShift)
	hoursPassed := math.Max(0, rawElapsed-breaks.ElapsedHours)
	hoursPassed = math.Min(hoursPassed, math.Max(0, totalWork))

	return ShiftClock{
		Configured:      true,
		Start:           start,
		End:             end,
		TotalShiftHours: totalShift,
		BreakHours:      breaks.TotalHours,
		TotalWorkTime:   totalWork,
		RawElapsedHours: rawElapsed,
		HoursPassed:     hoursPassed,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

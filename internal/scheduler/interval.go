package scheduler

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// IntervalTotals is the accumulated duration of a set of intervals, in hours.
type IntervalTotals struct {
	// TotalHours counts every interval in full, regardless of the reference.
	TotalHours float64
	// ElapsedHours counts only the part of each interval at or before the
	// reference instant.
	ElapsedHours float64
}

// AccumulateIntervals sums interval durations anchored to ref's calendar day.
// Intervals missing an endpoint, or whose end is not after their start,
// contribute nothing.
func AccumulateIntervals(ref time.Time, intervals []domain.Interval) IntervalTotals {
	var totals IntervalTotals
	for _, iv := range intervals {
		if !iv.Complete() {
			continue
		}
		start := domain.ParseTime(iv.Start).On(ref)
		end := domain.ParseTime(iv.End).On(ref)
		if !end.After(start) {
			continue
		}

		totals.TotalHours += end.Sub(start).Hours()

		switch {
		case !ref.Before(end):
			totals.ElapsedHours += end.Sub(start).Hours()
		case ref.After(start):
			totals.ElapsedHours += ref.Sub(start).Hours()
		}
	}
	return totals
}

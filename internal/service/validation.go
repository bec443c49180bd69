package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/scheduler"
)

// validateSettings lists every rule cfg breaks. An empty result means the
// record can be stored.
func validateSettings(cfg *domain.ShiftConfig) []string {
	var msgs []string

	start, startErr := domain.ParseTimeStrict(cfg.ShiftStart)
	if startErr != nil {
		msgs = append(msgs, fmt.Sprintf("shift start: %v", startErr))
	}
	end, endErr := domain.ParseTimeStrict(cfg.ShiftEnd)
	if endErr != nil {
		msgs = append(msgs, fmt.Sprintf("shift end: %v", endErr))
	}
	windowOK := startErr == nil && endErr == nil
	if windowOK && end.MinuteOfDay() <= start.MinuteOfDay() {
		msgs = append(msgs, fmt.Sprintf("shift end %s must be after shift start %s", end, start))
		windowOK = false
	}

	type span struct{ from, to, idx int }
	var spans []span
	for i, b := range cfg.Breaks {
		bs, errS := domain.ParseTimeStrict(b.Start)
		be, errE := domain.ParseTimeStrict(b.End)
		if errS != nil || errE != nil {
			msgs = append(msgs, fmt.Sprintf("break %d: start and end must be valid times", i+1))
			continue
		}
		if be.MinuteOfDay() <= bs.MinuteOfDay() {
			msgs = append(msgs, fmt.Sprintf("break %d: end %s must be after start %s", i+1, be, bs))
			continue
		}
		if windowOK && (bs.MinuteOfDay() < start.MinuteOfDay() || be.MinuteOfDay() > end.MinuteOfDay()) {
			msgs = append(msgs, fmt.Sprintf("break %d: %s-%s is outside the shift", i+1, bs, be))
			continue
		}
		spans = append(spans, span{bs.MinuteOfDay(), be.MinuteOfDay(), i + 1})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].from < spans[j].from })
	for i := 1; i < len(spans); i++ {
		if spans[i].from < spans[i-1].to {
			msgs = append(msgs, fmt.Sprintf("break %d overlaps break %d", spans[i].idx, spans[i-1].idx))
		}
	}

	for i, cp := range cfg.ControlPoints {
		t, err := domain.ParseTimeStrict(cp.Time)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("control point %d: %v", i+1, err))
			continue
		}
		if windowOK && (t.MinuteOfDay() < start.MinuteOfDay() || t.MinuteOfDay() > end.MinuteOfDay()) {
			msgs = append(msgs, fmt.Sprintf("control point %d: %s is outside the shift", i+1, t))
		}
	}

	if cfg.ExpectedOrders < 0 {
		msgs = append(msgs, "expected orders must be non-negative")
	}
	if cfg.AvgPickingSpeed < 0 || cfg.AvgPackingSpeed < 0 {
		msgs = append(msgs, "average speeds must be non-negative")
	}
	if cfg.StaffForLastPeriod < 0 {
		msgs = append(msgs, "staff for the last period must be non-negative")
	}

	if len(msgs) == 0 {
		// Any day works; only durations matter here.
		clock := scheduler.ComputeShiftClock(cfg, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		if clock.TotalWorkTime <= 0 {
			msgs = append(msgs, "breaks leave no effective work time")
		}
	}
	return msgs
}

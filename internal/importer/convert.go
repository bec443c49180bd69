package importer

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// Convert builds a shift configuration from a validated settings file.
// Times are normalised to HH:MM.
func Convert(f *SettingsFile, now time.Time) *domain.ShiftConfig {
	cfg := &domain.ShiftConfig{
		ShiftStart:     normalise(f.Shift.Start),
		ShiftEnd:       normalise(f.Shift.End),
		ExpectedOrders: f.Targets.ExpectedOrders,
		UpdatedAt:      now.UTC(),
	}

	for _, b := range f.Breaks {
		cfg.Breaks = append(cfg.Breaks, domain.Interval{Start: normalise(b.Start), End: normalise(b.End)})
	}
	for _, cp := range f.ControlPoints {
		cfg.ControlPoints = append(cfg.ControlPoints, domain.ControlPoint{Time: normalise(cp)})
	}

	// Per-process speeds override the uniform one.
	cfg.AvgPickingSpeed = domain.FirstSet(0, f.Speeds.Picking, f.Speeds.Uniform)
	cfg.AvgPackingSpeed = domain.FirstSet(0, f.Speeds.Packing, f.Speeds.Uniform)
	if f.LastHour != nil {
		cfg.StaffForLastPeriod = f.LastHour.Staff
	}
	return cfg
}

func normalise(s string) string {
	if s == "" {
		return ""
	}
	return domain.ParseTime(s).String()
}

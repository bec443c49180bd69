package domain

import "time"

// Interval is a start/end pair of stored time-of-day strings (a break).
type Interval struct {
	Start string
	End   string
}

// Complete reports whether both endpoints are filled in.
func (i Interval) Complete() bool {
	return IsTimeSet(i.Start) && IsTimeSet(i.End)
}

// ControlPoint marks an intra-shift checkpoint.
type ControlPoint struct {
	Time string
}

// ShiftConfig is the planning configuration for one shift (the settings record).
type ShiftConfig struct {
	ShiftStart    string
	ShiftEnd      string
	Breaks        []Interval
	ControlPoints []ControlPoint

	// ExpectedOrders is the target shared by picking and packing.
	ExpectedOrders int

	AvgPickingSpeed    float64
	AvgPackingSpeed    float64
	StaffForLastPeriod int

	UpdatedAt time.Time
}

// IsConfigured reports whether the shift window has been set.
func (c *ShiftConfig) IsConfigured() bool {
	return c != nil && IsTimeSet(c.ShiftStart) && IsTimeSet(c.ShiftEnd)
}

// AvgSpeed returns the per-worker throughput for a process, units/hour.
func (c *ShiftConfig) AvgSpeed(p Process) float64 {
	switch p {
	case ProcessPicking:
		return c.AvgPickingSpeed
	case ProcessPacking:
		return c.AvgPackingSpeed
	default:
		return 0
	}
}

// SetUniformSpeed collapses both processes onto one average speed.
func (c *ShiftConfig) SetUniformSpeed(speed float64) {
	c.AvgPickingSpeed = speed
	c.AvgPackingSpeed = speed
}

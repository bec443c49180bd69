package testutil

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/google/uuid"
)

// ConfigOption tweaks a fixture shift configuration.
type ConfigOption func(*domain.ShiftConfig)

func WithShiftWindow(start, end string) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.ShiftStart = start
		c.ShiftEnd = end
	}
}

func WithBreaks(breaks ...domain.Interval) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.Breaks = breaks
	}
}

func WithControlPoints(times ...string) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.ControlPoints = nil
		for _, t := range times {
			c.ControlPoints = append(c.ControlPoints, domain.ControlPoint{Time: t})
		}
	}
}

func WithExpectedOrders(n int) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.ExpectedOrders = n
	}
}

func WithSpeeds(picking, packing float64) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.AvgPickingSpeed = picking
		c.AvgPackingSpeed = packing
	}
}

func WithLastHourStaff(n int) ConfigOption {
	return func(c *domain.ShiftConfig) {
		c.StaffForLastPeriod = n
	}
}

// NewTestConfig returns an 08:00-16:00 shift with 800 expected orders,
// speeds of 25 units/hour and 2 staff in the last hour.
func NewTestConfig(opts ...ConfigOption) *domain.ShiftConfig {
	c := &domain.ShiftConfig{
		ShiftStart:         "08:00",
		ShiftEnd:           "16:00",
		ExpectedOrders:     800,
		AvgPickingSpeed:    25,
		AvgPackingSpeed:    25,
		StaffForLastPeriod: 2,
		UpdatedAt:          time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestActuals returns counters with no checkpoint rows.
func NewTestActuals(picked, packed int) *domain.ActualsState {
	return &domain.ActualsState{
		PickedActual: picked,
		PackedActual: packed,
		UpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

// SnapshotOption tweaks a fixture snapshot.
type SnapshotOption func(*domain.PaceSnapshot)

func WithPaceLevel(l domain.PaceLevel) SnapshotOption {
	return func(s *domain.PaceSnapshot) {
		s.PaceLevel = l
	}
}

func WithDeviations(picking, packing float64) SnapshotOption {
	return func(s *domain.PaceSnapshot) {
		s.DeviationPicking = picking
		s.DeviationPacking = packing
	}
}

func NewTestSnapshot(takenAt time.Time, opts ...SnapshotOption) *domain.PaceSnapshot {
	s := &domain.PaceSnapshot{
		ID:            uuid.New().String(),
		TakenAt:       takenAt.UTC().Truncate(time.Second),
		HoursPassed:   4,
		TotalWorkTime: 8,
		PaceLevel:     domain.PaceOnPlan,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

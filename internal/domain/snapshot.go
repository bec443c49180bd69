package domain

import "time"

// PaceSnapshot is a stored deviation reading, kept for the history chart.
type PaceSnapshot struct {
	ID               string
	TakenAt          time.Time
	HoursPassed      float64
	TotalWorkTime    float64
	PickedActual     int
	PackedActual     int
	ExpectedPicking  float64
	ExpectedPacking  float64
	DeviationPicking float64
	DeviationPacking float64
	PaceLevel        PaceLevel
}

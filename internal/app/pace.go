package app

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

type PaceRequest struct {
	Now *time.Time
	// At evaluates the shift at another time of the same day (HH:MM).
	At              string
	IncludeLastHour bool
	RecordSnapshot  bool
}

func NewPaceRequest() PaceRequest {
	return PaceRequest{IncludeLastHour: true}
}

type ClockView struct {
	ShiftStart    string
	ShiftEnd      string
	TotalWorkTime float64
	BreakHours    float64
	HoursPassed   float64
	HoursLeft     float64
	ProgressPct   float64
}

type LastHourView struct {
	HoursLeft     float64
	UnitsLeft     float64
	RequiredStaff float64
	PlannedStaff  int
	WillMeet      bool
}

type ProcessStatusView struct {
	Process          domain.Process
	Target           int
	Actual           int
	Expected         float64
	Deviation        float64
	BaseSpeed        float64
	RequiredSpeed    float64
	CapacityLastHour float64
	Met              bool
	PaceLevel        domain.PaceLevel
	Action           string
	Employees        float64
	Recommendation   string
	LastHour         *LastHourView
}

type CheckpointView struct {
	Position       int
	Time           string
	PlannedPicking float64
	PlannedPacking float64
	ActualPicked   int
	ActualPacked   int
	DeltaPicking   float64
	DeltaPacking   float64
	// Reached is set once the evaluation instant is at or past the checkpoint.
	Reached bool
}

type PaceResponse struct {
	GeneratedAt   time.Time
	EvaluatedAt   time.Time
	Configured    bool
	Clock         ClockView
	Processes     []ProcessStatusView
	Overall       domain.PaceLevel
	PolicyMessage string
	Checkpoints   []CheckpointView
	SnapshotID    string
	Warnings      []string
}

// Process returns the view for p, or nil when the shift is not configured.
func (r *PaceResponse) Process(p domain.Process) *ProcessStatusView {
	for i := range r.Processes {
		if r.Processes[i].Process == p {
			return &r.Processes[i]
		}
	}
	return nil
}

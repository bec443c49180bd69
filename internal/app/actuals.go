package app

import "time"

// CheckpointEdit is a partial update of one checkpoint record. Nil fields are
// left unchanged. A new Time recomputes the planned figures.
type CheckpointEdit struct {
	Time         *string
	ActualPicked *int
	ActualPacked *int
}

func (e CheckpointEdit) IsEmpty() bool {
	return e.Time == nil && e.ActualPicked == nil && e.ActualPacked == nil
}

// SaveAck confirms an explicit save of the actuals record.
type SaveAck struct {
	SavedAt      time.Time
	PickedActual int
	PackedActual int
	Checkpoints  int
}

func (a *SaveAck) Message() string {
	return "Data saved at " + a.SavedAt.Format("15:04:05")
}

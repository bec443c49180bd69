package app

import (
	"context"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// SettingsUseCase manages the shift configuration record.
type SettingsUseCase interface {
	// Get returns the stored configuration, or an empty one when the shift
	// has not been configured yet.
	Get(ctx context.Context) (*domain.ShiftConfig, error)
	Save(ctx context.Context, cfg *domain.ShiftConfig) error
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	Reset(ctx context.Context) error
}

type ImportResult struct {
	Settings        *domain.ShiftConfig
	BreakCount      int
	CheckpointCount int
}

// ActualsUseCase manages live shift progress and checkpoint records.
type ActualsUseCase interface {
	Get(ctx context.Context, now time.Time) (*domain.ActualsState, error)
	UpdateTotals(ctx context.Context, picked, packed int, now time.Time) (*domain.ActualsState, error)
	EditCheckpoint(ctx context.Context, position int, edit CheckpointEdit, now time.Time) (*domain.CheckpointRecord, error)
	DeleteCheckpoint(ctx context.Context, position int, now time.Time) error
	Save(ctx context.Context, now time.Time) (*SaveAck, error)
	Reset(ctx context.Context) error
}

type PaceUseCase interface {
	Status(ctx context.Context, req PaceRequest) (*PaceResponse, error)
}

type HistoryUseCase interface {
	History(ctx context.Context, since time.Time) ([]*domain.PaceSnapshot, error)
}

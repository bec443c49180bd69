package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that finds no row.
var ErrNotFound = errors.New("not found")

// SettingsRepo stores the single settings record.
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.ShiftConfig, error)
	Save(ctx context.Context, cfg *domain.ShiftConfig) error
	Reset(ctx context.Context) error
}

// ActualsRepo stores the single updateData record.
type ActualsRepo interface {
	Get(ctx context.Context) (*domain.ActualsState, error)
	Save(ctx context.Context, a *domain.ActualsState) error
	Reset(ctx context.Context) error
}

type SnapshotRepo interface {
	Create(ctx context.Context, s *domain.PaceSnapshot) error
	ListSince(ctx context.Context, since time.Time) ([]*domain.PaceSnapshot, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

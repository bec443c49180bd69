package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/repository"
	"github.com/alexanderramin/shiftpace/internal/scheduler"
)

type actualsService struct {
	actuals  repository.ActualsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewActualsService(actuals repository.ActualsRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ActualsService {
	return &actualsService{
		actuals:  actuals,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Get returns the actuals record, seeding checkpoint rows from the control
// points on first use.
func (s *actualsService) Get(ctx context.Context, now time.Time) (*domain.ActualsState, error) {
	var out *domain.ActualsState
	err := s.mutate(ctx, now, func(_ *domain.ShiftConfig, a *domain.ActualsState) (bool, error) {
		out = a
		return false, nil
	})
	return out, err
}

func (s *actualsService) UpdateTotals(ctx context.Context, picked, packed int, now time.Time) (state *domain.ActualsState, err error) {
	startedAt := time.Now()
	fields := map[string]any{"picked": picked, "packed": packed}
	defer func() { observe(ctx, s.observer, "update-actuals", startedAt, fields, err) }()

	err = s.mutate(ctx, now, func(_ *domain.ShiftConfig, a *domain.ActualsState) (bool, error) {
		if err := a.SetTotals(picked, packed, now.UTC()); err != nil {
			return false, err
		}
		state = a
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *actualsService) EditCheckpoint(ctx context.Context, position int, edit app.CheckpointEdit, now time.Time) (rec *domain.CheckpointRecord, err error) {
	startedAt := time.Now()
	fields := map[string]any{"position": position}
	defer func() { observe(ctx, s.observer, "edit-checkpoint", startedAt, fields, err) }()

	if edit.IsEmpty() {
		return nil, fmt.Errorf("checkpoint edit has no changes")
	}
	if edit.ActualPicked != nil && *edit.ActualPicked < 0 {
		return nil, fmt.Errorf("checkpoint picked count must be non-negative")
	}
	if edit.ActualPacked != nil && *edit.ActualPacked < 0 {
		return nil, fmt.Errorf("checkpoint packed count must be non-negative")
	}

	err = s.mutate(ctx, now, func(cfg *domain.ShiftConfig, a *domain.ActualsState) (bool, error) {
		r, err := a.Checkpoint(position)
		if err != nil {
			return false, err
		}
		if edit.Time != nil {
			tod, err := domain.ParseTimeStrict(*edit.Time)
			if err != nil {
				return false, err
			}
			r.Time = tod.String()
			scheduler.ReplanCheckpoint(cfg, r, now)
			fields["time"] = r.Time
		}
		if edit.ActualPicked != nil {
			r.ActualPicked = *edit.ActualPicked
		}
		if edit.ActualPacked != nil {
			r.ActualPacked = *edit.ActualPacked
		}
		a.UpdatedAt = now.UTC()
		copied := *r
		rec = &copied
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *actualsService) DeleteCheckpoint(ctx context.Context, position int, now time.Time) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "delete-checkpoint", startedAt, map[string]any{"position": position}, err)
	}()

	return s.mutate(ctx, now, func(_ *domain.ShiftConfig, a *domain.ActualsState) (bool, error) {
		if err := a.DeleteCheckpoint(position, now.UTC()); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *actualsService) Save(ctx context.Context, now time.Time) (ack *app.SaveAck, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "save-actuals", startedAt, nil, err) }()

	err = s.mutate(ctx, now, func(_ *domain.ShiftConfig, a *domain.ActualsState) (bool, error) {
		a.UpdatedAt = now.UTC()
		ack = &app.SaveAck{
			SavedAt:      now,
			PickedActual: a.PickedActual,
			PackedActual: a.PackedActual,
			Checkpoints:  len(a.CPData),
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ack, nil
}

func (s *actualsService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "reset-actuals", startedAt, nil, err) }()

	if err := s.actuals.Reset(ctx); err != nil {
		return fmt.Errorf("resetting actuals: %w", err)
	}
	return nil
}

// mutate loads settings and actuals in one transaction, seeds checkpoints if
// needed and persists when fn reports a change or seeding happened.
func (s *actualsService) mutate(ctx context.Context, now time.Time, fn func(cfg *domain.ShiftConfig, a *domain.ActualsState) (bool, error)) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActuals := repository.NewSQLiteActualsRepo(tx)

		cfg, err := loadSettings(ctx, repository.NewSQLiteSettingsRepo(tx))
		if err != nil {
			return err
		}
		a, err := loadActuals(ctx, txActuals)
		if err != nil {
			return err
		}

		seeded := seedCheckpoints(cfg, a, now)
		changed, err := fn(cfg, a)
		if err != nil {
			return err
		}
		if !seeded && !changed {
			return nil
		}
		if err := txActuals.Save(ctx, a); err != nil {
			return fmt.Errorf("saving actuals: %w", err)
		}
		return nil
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/repository"
	"github.com/alexanderramin/shiftpace/internal/scheduler"
)

// loadSettings returns the stored configuration or an empty one when none
// has been saved.
func loadSettings(ctx context.Context, repo repository.SettingsRepo) (*domain.ShiftConfig, error) {
	cfg, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.ShiftConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return cfg, nil
}

func loadActuals(ctx context.Context, repo repository.ActualsRepo) (*domain.ActualsState, error) {
	a, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.ActualsState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading actuals: %w", err)
	}
	return a, nil
}

// seedCheckpoints fills an empty checkpoint list from the configured control
// points, anchored to now's day. Reports whether anything was added.
func seedCheckpoints(cfg *domain.ShiftConfig, a *domain.ActualsState, now time.Time) bool {
	if !a.NeedsSeed(cfg) {
		return false
	}
	a.CPData = scheduler.PlanCheckpoints(cfg, now)
	a.UpdatedAt = now.UTC()
	return true
}

// normaliseTime rewrites a set time-of-day string to HH:MM.
func normaliseTime(s string) string {
	if !domain.IsTimeSet(s) {
		return ""
	}
	return domain.ParseTime(s).String()
}

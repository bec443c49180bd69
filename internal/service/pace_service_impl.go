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
	"github.com/google/uuid"
)

type paceService struct {
	settings  repository.SettingsRepo
	actuals   repository.ActualsRepo
	uow       db.UnitOfWork
	retention time.Duration
	observer  UseCaseObserver
}

// NewPaceService builds the pace status use case. Recorded snapshots older
// than retention are pruned; a non-positive retention keeps everything.
func NewPaceService(
	settings repository.SettingsRepo,
	actuals repository.ActualsRepo,
	uow db.UnitOfWork,
	retention time.Duration,
	observers ...UseCaseObserver,
) PaceService {
	return &paceService{
		settings:  settings,
		actuals:   actuals,
		uow:       uow,
		retention: retention,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *paceService) Status(ctx context.Context, req app.PaceRequest) (resp *app.PaceResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"record": req.RecordSnapshot}
	defer func() { observe(ctx, s.observer, "pace-status", startedAt, fields, err) }()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	at := now
	if req.At != "" {
		tod, err := domain.ParseTimeStrict(req.At)
		if err != nil {
			return nil, fmt.Errorf("evaluation time: %w", err)
		}
		at = tod.On(now)
	}

	cfg, err := loadSettings(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	actuals, err := loadActuals(ctx, s.actuals)
	if err != nil {
		return nil, err
	}

	res := scheduler.ComputeDeviations(cfg, actuals, at)
	var lastHour []scheduler.LastHourIndicator
	if req.IncludeLastHour {
		lastHour = scheduler.ComputeLastHourIndicators(cfg, res)
	}
	recs := scheduler.ComputeRecommendations(res, cfg, lastHour)
	overall := scheduler.OverallPace(res)
	fields["pace"] = string(overall)

	resp = &app.PaceResponse{
		GeneratedAt:   now,
		EvaluatedAt:   at,
		Configured:    res.Computed,
		Overall:       overall,
		PolicyMessage: scheduler.PaceMessage(overall),
	}
	if !res.Computed {
		if cfg.IsConfigured() {
			resp.Warnings = append(resp.Warnings, "shift has no effective work time")
		}
		return resp, nil
	}

	resp.Clock = buildClockView(cfg, res.Clock)
	for _, dev := range res.Processes() {
		resp.Processes = append(resp.Processes, buildProcessView(res, dev, recs.For(dev.Process), lastHour))
	}
	resp.Checkpoints = buildCheckpointViews(cfg, actuals, at)
	if cfg.ExpectedOrders == 0 {
		resp.Warnings = append(resp.Warnings, "expected orders is 0; every figure is trivially met")
	}

	if req.RecordSnapshot {
		snap := snapshotFrom(res, actuals, overall)
		if err := s.record(ctx, snap); err != nil {
			return nil, err
		}
		resp.SnapshotID = snap.ID
		fields["snapshot_id"] = snap.ID
	}
	return resp, nil
}

func (s *paceService) record(ctx context.Context, snap *domain.PaceSnapshot) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		snaps := repository.NewSQLiteSnapshotRepo(tx)
		if err := snaps.Create(ctx, snap); err != nil {
			return fmt.Errorf("recording pace snapshot: %w", err)
		}
		if s.retention <= 0 {
			return nil
		}
		if _, err := snaps.DeleteBefore(ctx, snap.TakenAt.Add(-s.retention)); err != nil {
			return err
		}
		return nil
	})
}

func snapshotFrom(res scheduler.DeviationResult, actuals *domain.ActualsState, level domain.PaceLevel) *domain.PaceSnapshot {
	return &domain.PaceSnapshot{
		ID:               uuid.New().String(),
		TakenAt:          res.At.UTC(),
		HoursPassed:      res.HoursPassed,
		TotalWorkTime:    res.TotalWorkTime,
		PickedActual:     actuals.PickedActual,
		PackedActual:     actuals.PackedActual,
		ExpectedPicking:  res.Picking.ExpectedProcessed,
		ExpectedPacking:  res.Packing.ExpectedProcessed,
		DeviationPicking: res.Picking.Deviation,
		DeviationPacking: res.Packing.Deviation,
		PaceLevel:        level,
	}
}

func buildClockView(cfg *domain.ShiftConfig, clock scheduler.ShiftClock) app.ClockView {
	v := app.ClockView{
		ShiftStart:    cfg.ShiftStart,
		ShiftEnd:      cfg.ShiftEnd,
		TotalWorkTime: clock.TotalWorkTime,
		BreakHours:    clock.BreakHours,
		HoursPassed:   clock.HoursPassed,
		HoursLeft:     clock.HoursLeft(),
	}
	if clock.TotalWorkTime > 0 {
		v.ProgressPct = clock.HoursPassed / clock.TotalWorkTime * 100
	}
	return v
}

func buildProcessView(res scheduler.DeviationResult, dev scheduler.ProcessDeviation, advice scheduler.StaffingAdvice, lastHour []scheduler.LastHourIndicator) app.ProcessStatusView {
	v := app.ProcessStatusView{
		Process:          dev.Process,
		Target:           res.ExpectedOrders,
		Actual:           dev.Actual,
		Expected:         dev.ExpectedProcessed,
		Deviation:        dev.Deviation,
		BaseSpeed:        dev.Plan.BaseSpeed,
		RequiredSpeed:    dev.Plan.RequiredSpeed,
		CapacityLastHour: dev.Plan.CapacityLastHour,
		Met:              dev.Met,
		PaceLevel:        scheduler.ClassifyPace(dev, res.Computed),
		Action:           string(advice.Action),
		Employees:        advice.Employees,
		Recommendation:   advice.Text,
	}
	for _, ind := range lastHour {
		if ind.Process != dev.Process {
			continue
		}
		v.LastHour = &app.LastHourView{
			HoursLeft:     ind.HoursLeft,
			UnitsLeft:     ind.UnitsLeft,
			RequiredStaff: ind.RequiredStaff,
			PlannedStaff:  ind.PlannedStaff,
			WillMeet:      ind.WillMeet,
		}
	}
	return v
}

// buildCheckpointViews compares checkpoint records with their plan. Before
// the records are seeded, the plan alone is shown.
func buildCheckpointViews(cfg *domain.ShiftConfig, actuals *domain.ActualsState, at time.Time) []app.CheckpointView {
	records := actuals.CPData
	if len(records) == 0 {
		records = scheduler.PlanCheckpoints(cfg, at)
	}

	views := make([]app.CheckpointView, 0, len(records))
	for i, rec := range records {
		v := app.CheckpointView{
			Position:       i,
			Time:           rec.Time,
			PlannedPicking: rec.PlannedPicking,
			PlannedPacking: rec.PlannedPacking,
			ActualPicked:   rec.ActualPicked,
			ActualPacked:   rec.ActualPacked,
			DeltaPicking:   float64(rec.ActualPicked) - rec.PlannedPicking,
			DeltaPacking:   float64(rec.ActualPacked) - rec.PlannedPacking,
		}
		if domain.IsTimeSet(rec.Time) {
			v.Reached = !domain.ParseTime(rec.Time).On(at).After(at)
		}
		views = append(views, v)
	}
	return views
}

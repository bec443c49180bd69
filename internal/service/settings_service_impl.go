package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/importer"
	"github.com/alexanderramin/shiftpace/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.ShiftConfig, error) {
	return loadSettings(ctx, s.settings)
}

func (s *settingsService) Save(ctx context.Context, cfg *domain.ShiftConfig) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"breaks":         len(cfg.Breaks),
		"control_points": len(cfg.ControlPoints),
	}
	defer func() { observe(ctx, s.observer, "save-settings", startedAt, fields, err) }()

	return s.save(ctx, cfg)
}

func (s *settingsService) save(ctx context.Context, cfg *domain.ShiftConfig) error {
	if msgs := validateSettings(cfg); len(msgs) > 0 {
		return &app.SettingsValidationError{Code: app.SettingsErrInvalid, Messages: msgs}
	}

	cfg.ShiftStart = normaliseTime(cfg.ShiftStart)
	cfg.ShiftEnd = normaliseTime(cfg.ShiftEnd)
	for i := range cfg.Breaks {
		cfg.Breaks[i].Start = normaliseTime(cfg.Breaks[i].Start)
		cfg.Breaks[i].End = normaliseTime(cfg.Breaks[i].End)
	}
	for i := range cfg.ControlPoints {
		cfg.ControlPoints[i].Time = normaliseTime(cfg.ControlPoints[i].Time)
	}
	cfg.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSettingsRepo(tx).Save(ctx, cfg); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	})
}

func (s *settingsService) Import(ctx context.Context, filePath string) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"file": filePath}
	defer func() { observe(ctx, s.observer, "import-settings", startedAt, fields, err) }()

	file, err := importer.LoadSettingsFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading settings file: %w", err)
	}
	if errs := importer.ValidateSettingsFile(file); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, &app.SettingsValidationError{Code: app.SettingsErrImportFormat, Messages: msgs}
	}

	cfg := importer.Convert(file, time.Now())
	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	fields["breaks"] = len(cfg.Breaks)
	fields["control_points"] = len(cfg.ControlPoints)

	return &app.ImportResult{
		Settings:        cfg,
		BreakCount:      len(cfg.Breaks),
		CheckpointCount: len(cfg.ControlPoints),
	}, nil
}

func (s *settingsService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "reset-settings", startedAt, nil, err) }()

	if err := s.settings.Reset(ctx); err != nil {
		return fmt.Errorf("resetting settings: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/shiftpace/internal/cli"
	"github.com/alexanderramin/shiftpace/internal/config"
	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/repository"
	"github.com/alexanderramin/shiftpace/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	actualsRepo := repository.NewSQLiteActualsRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Settings:        service.NewSettingsService(settingsRepo, uow, observer),
		Actuals:         service.NewActualsService(actualsRepo, uow, observer),
		Pace:            service.NewPaceService(settingsRepo, actualsRepo, uow, cfg.SnapshotRetention, observer),
		History:         service.NewHistoryService(snapshotRepo),
		RefreshInterval: cfg.RefreshInterval,
	}

	// Bare `shiftpace` opens the dashboard only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

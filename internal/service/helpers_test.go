package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/repository"
	"github.com/alexanderramin/shiftpace/internal/testutil"
)

// at returns hh:mm on the shared test shift day.
func at(h, m int) time.Time {
	return time.Date(2025, 6, 15, h, m, 0, 0, time.UTC)
}

const delta = 1e-6

type testRepos struct {
	db        *sql.DB
	settings  repository.SettingsRepo
	actuals   repository.ActualsRepo
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		settings:  repository.NewSQLiteSettingsRepo(database),
		actuals:   repository.NewSQLiteActualsRepo(database),
		snapshots: repository.NewSQLiteSnapshotRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/repository"
	"github.com/alexanderramin/shiftpace/internal/service"
	"github.com/alexanderramin/shiftpace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noon is the pinned wall clock for CLI tests, mid-way through the default
// 08:00-16:00 test shift.
var noon = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	settingsRepo := repository.NewSQLiteSettingsRepo(db)
	actualsRepo := repository.NewSQLiteActualsRepo(db)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(db)

	return &App{
		Settings:        service.NewSettingsService(settingsRepo, uow),
		Actuals:         service.NewActualsService(actualsRepo, uow),
		Pace:            service.NewPaceService(settingsRepo, actualsRepo, uow, 24*time.Hour),
		History:         service.NewHistoryService(snapshotRepo),
		RefreshInterval: time.Minute,
		IsInteractive:   func() bool { return false },
		Now:             func() time.Time { return noon },
	}
}

// seedShift stores the default test shift with the given control points.
func seedShift(t *testing.T, a *App, controlPoints ...string) {
	t.Helper()
	cfg := testutil.NewTestConfig(testutil.WithControlPoints(controlPoints...))
	require.NoError(t, a.Settings.Save(context.Background(), cfg))
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsStatus(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, out, "No data available")
}

// --- Settings ---

func TestSettingsSet_ThenShow(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "settings", "set",
		"--start", "08:00", "--end", "4:00 PM", "--orders", "800", "--speed", "25", "--staff", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "08:00 - 16:00")

	out, err = executeCmd(t, a, "settings", "set", "--packing-speed", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "30.00 units/h")

	cfg, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.ExpectedOrders)
	assert.Equal(t, 25.0, cfg.AvgPickingSpeed)
	assert.Equal(t, 30.0, cfg.AvgPackingSpeed)
	assert.Equal(t, 2, cfg.StaffForLastPeriod)

	out, err = executeCmd(t, a, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "08:00 - 16:00")
	assert.Contains(t, out, "800")
}

func TestSettingsSet_NoFlags(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "settings", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no settings changed")
}

func TestSettingsSet_ReportsEveryValidationMessage(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "settings", "set", "--start", "16:00", "--end", "08:00", "--orders", "-5")
	require.Error(t, err)

	var verr *app.SettingsValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, app.SettingsErrInvalid, verr.Code)
	assert.Contains(t, out, "Settings rejected")
	assert.Contains(t, out, "must be after shift start")
	assert.Contains(t, out, "expected orders must be non-negative")

	cfg, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
}

func TestSettingsBreakAndControlPoint_AddRemove(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)

	_, err := executeCmd(t, a, "settings", "break", "add", "12:00", "12:30")
	require.NoError(t, err)
	out, err := executeCmd(t, a, "settings", "cp", "add", "10:00")
	require.NoError(t, err)
	assert.Contains(t, out, "1. 12:00 - 12:30")
	assert.Contains(t, out, "1. 10:00")

	_, err = executeCmd(t, a, "settings", "break", "add", "17:00", "17:30")
	require.Error(t, err, "break outside the shift is rejected")

	_, err = executeCmd(t, a, "settings", "break", "rm", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no break #3")

	_, err = executeCmd(t, a, "settings", "break", "rm", "1")
	require.NoError(t, err)
	_, err = executeCmd(t, a, "settings", "cp", "rm", "1")
	require.NoError(t, err)

	cfg, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.Breaks)
	assert.Empty(t, cfg.ControlPoints)
}

func TestSettingsImport_YAML(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "shift.yaml")
	content := `shift:
  start: "08:00"
  end: "16:00"
breaks:
  - start: "12:00"
    end: "12:30"
control_points: ["10:00", "14:00"]
targets:
  expected_orders: 800
speeds:
  uniform: 25
last_hour:
  staff: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := executeCmd(t, a, "settings", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported shift 08:00 - 16:00 (1 breaks, 2 control points)")

	cfg, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.ExpectedOrders)
	assert.Len(t, cfg.ControlPoints, 2)
}

func TestSettingsImport_Invalid(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "shift.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shift": {"start": "08:00"}}`), 0o644))

	out, err := executeCmd(t, a, "settings", "import", path)
	require.Error(t, err)
	assert.Contains(t, out, "shift.end is required")
}

func TestSettingsReset(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)

	out, err := executeCmd(t, a, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Shift settings cleared")

	out, err = executeCmd(t, a, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Shift not configured")
}

func TestSettingsEdit_RequiresTerminal(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "settings", "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

// --- Actuals ---

func TestUpdate_PartialKeepsOtherTotal(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)

	out, err := executeCmd(t, a, "update", "--picked", "450", "--packed", "400")
	require.NoError(t, err)
	assert.Contains(t, out, "picked 450, packed 400")

	out, err = executeCmd(t, a, "update", "--picked", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "picked 500, packed 400")

	_, err = executeCmd(t, a, "update")
	require.Error(t, err)

	_, err = executeCmd(t, a, "update", "--packed", "-1")
	require.Error(t, err)
}

func TestSave_PrintsAck(t *testing.T) {
	a := testApp(t)
	seedShift(t, a, "10:00")
	_, err := executeCmd(t, a, "update", "--picked", "450", "--packed", "400")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "save")
	require.NoError(t, err)
	assert.Contains(t, out, "Data saved at 12:00:00")
	assert.Contains(t, out, "picked 450, packed 400, 1 checkpoints")
}

func TestReset_All(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)
	_, err := executeCmd(t, a, "update", "--picked", "10", "--packed", "5")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "reset", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Actuals and shift settings cleared")

	state, err := a.Actuals.Get(context.Background(), noon)
	require.NoError(t, err)
	assert.Zero(t, state.PickedActual)
	cfg, err := a.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
}

func TestCheckpoint_ListSetRemove(t *testing.T) {
	a := testApp(t)
	seedShift(t, a, "10:00", "14:00")

	out, err := executeCmd(t, a, "checkpoint", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "214.29")

	out, err = executeCmd(t, a, "checkpoint", "set", "1", "--picked", "200", "--packed", "190")
	require.NoError(t, err)
	assert.Contains(t, out, "Checkpoint #1 at 10:00: planned 214.29/214.29, actual 200/190.")

	_, err = executeCmd(t, a, "checkpoint", "set", "1")
	require.Error(t, err, "an edit with no flags is rejected")

	_, err = executeCmd(t, a, "checkpoint", "set", "0", "--picked", "1")
	require.Error(t, err)

	_, err = executeCmd(t, a, "checkpoint", "rm", "5")
	require.Error(t, err)

	out, err = executeCmd(t, a, "checkpoint", "rm", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Checkpoint #2 removed")

	state, err := a.Actuals.Get(context.Background(), noon)
	require.NoError(t, err)
	require.Len(t, state.CPData, 1)
	assert.Equal(t, 200, state.CPData[0].ActualPicked)
}

// --- Status, watch, history ---

func TestStatus_Unconfigured(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "NO DATA")
	assert.Contains(t, out, "No data available")
}

func TestStatus_Recommendations(t *testing.T) {
	a := testApp(t)
	seedShift(t, a, "10:00")
	_, err := executeCmd(t, a, "update", "--picked", "450", "--packed", "400")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "You can remove 0.86 employees from picking")
	assert.Contains(t, out, "Add 1.14 employees to packing")
	assert.Contains(t, out, "CHECKPOINTS")
	assert.Contains(t, out, "214.29")

	out, err = executeCmd(t, a, "status", "--at", "10:00", "--checkpoints=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Evaluated at")
	assert.Contains(t, out, "10:00")
	assert.NotContains(t, out, "CHECKPOINTS")

	_, err = executeCmd(t, a, "status", "--at", "25:00")
	require.Error(t, err)
}

func TestStatus_RecordThenHistory(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)
	_, err := executeCmd(t, a, "update", "--picked", "450", "--packed", "400")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No pace snapshots recorded")

	out, err = executeCmd(t, a, "status", "--record")
	require.NoError(t, err)
	assert.Contains(t, out, "recorded")

	out, err = executeCmd(t, a, "history", "--since", "2h")
	require.NoError(t, err)
	assert.Contains(t, out, "450")
	assert.Contains(t, out, "BEHIND")

	_, err = executeCmd(t, a, "history", "--since", "0s")
	require.Error(t, err)
}

func TestWatch_PrintsImmediately(t *testing.T) {
	a := testApp(t)
	seedShift(t, a)
	_, err := executeCmd(t, a, "update", "--picked", "450", "--packed", "400")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "watch", "--times", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "12:00:00")
	assert.Contains(t, out, "picking 450/429 (+21.43)")
	assert.Contains(t, out, "packing 400/429 (-28.57)")
}

func TestWatch_RejectsBadSchedule(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "watch", "--cron", "not a schedule", "--times", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid watch schedule")

	_, err = executeCmd(t, a, "watch", "--every", "100ms", "--times", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1s")
}

func TestWatchSchedule(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		every time.Duration
		want  string
	}{
		{"fallback", "", 0, "@every 1m0s"},
		{"explicit period", "", 30 * time.Second, "@every 30s"},
		{"cron wins", " */5 * * * * ", 0, "*/5 * * * *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := watchSchedule(tt.expr, tt.every, time.Minute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, err = watchParser.Parse(got)
			require.NoError(t, err)
		})
	}
}

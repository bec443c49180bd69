package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)

const shiftYAML = `
shift:
  start: "8:00 AM"
  end: "4:00 PM"
breaks:
  - start: "12:00"
    end: "12:30"
control_points: ["10:00", "2:00 PM"]
targets:
  expected_orders: 800
speeds:
  uniform: 25
  packing: 20
last_hour:
  staff: 3
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFile_YAML(t *testing.T) {
	f, err := LoadSettingsFile(writeFile(t, "shift.yaml", shiftYAML))
	require.NoError(t, err)
	require.Empty(t, ValidateSettingsFile(f))

	cfg := Convert(f, testNow)
	assert.Equal(t, "08:00", cfg.ShiftStart)
	assert.Equal(t, "16:00", cfg.ShiftEnd)
	assert.Equal(t, []domain.Interval{{Start: "12:00", End: "12:30"}}, cfg.Breaks)
	assert.Equal(t, []domain.ControlPoint{{Time: "10:00"}, {Time: "14:00"}}, cfg.ControlPoints)
	assert.Equal(t, 800, cfg.ExpectedOrders)
	assert.Equal(t, 25.0, cfg.AvgPickingSpeed)
	assert.Equal(t, 20.0, cfg.AvgPackingSpeed)
	assert.Equal(t, 3, cfg.StaffForLastPeriod)
	assert.Equal(t, testNow, cfg.UpdatedAt)
}

func TestLoadSettingsFile_JSON(t *testing.T) {
	body := `{
		"shift": {"start": "22:00", "end": "23:30"},
		"targets": {"expected_orders": 120},
		"speeds": {"picking": 30, "packing": 35}
	}`
	f, err := LoadSettingsFile(writeFile(t, "shift.JSON", body))
	require.NoError(t, err)
	require.Empty(t, ValidateSettingsFile(f))

	cfg := Convert(f, testNow)
	assert.Equal(t, "22:00", cfg.ShiftStart)
	assert.Equal(t, 30.0, cfg.AvgPickingSpeed)
	assert.Equal(t, 35.0, cfg.AvgPackingSpeed)
	assert.Zero(t, cfg.StaffForLastPeriod)
	assert.Empty(t, cfg.Breaks)
}

func TestLoadSettingsFile_Errors(t *testing.T) {
	_, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSettingsFile(writeFile(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings file")

	_, err = LoadSettingsFile(writeFile(t, "bad.yml", "shift: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings file")
}

func TestValidateSettingsFile(t *testing.T) {
	neg := -5.0
	tests := []struct {
		name    string
		file    SettingsFile
		wantErr string
	}{
		{
			name:    "missing shift start",
			file:    SettingsFile{Shift: ShiftImport{End: "16:00"}, Speeds: SpeedsImport{Uniform: ptr(25)}},
			wantErr: "shift.start is required",
		},
		{
			name:    "bad break time",
			file:    SettingsFile{Shift: ShiftImport{Start: "08:00", End: "16:00"}, Breaks: []BreakImport{{Start: "25:00", End: "12:30"}}, Speeds: SpeedsImport{Uniform: ptr(25)}},
			wantErr: "breaks[0].start: invalid time",
		},
		{
			name:    "bad meridiem",
			file:    SettingsFile{Shift: ShiftImport{Start: "8:00 XM", End: "16:00"}, Speeds: SpeedsImport{Uniform: ptr(25)}},
			wantErr: "shift.start: invalid time",
		},
		{
			name:    "negative orders",
			file:    SettingsFile{Shift: ShiftImport{Start: "08:00", End: "16:00"}, Targets: TargetsImport{ExpectedOrders: -1}, Speeds: SpeedsImport{Uniform: ptr(25)}},
			wantErr: "targets.expected_orders must be non-negative",
		},
		{
			name:    "negative speed",
			file:    SettingsFile{Shift: ShiftImport{Start: "08:00", End: "16:00"}, Speeds: SpeedsImport{Picking: &neg, Packing: ptr(1)}},
			wantErr: "speeds.picking must be non-negative",
		},
		{
			name:    "half-specified speeds",
			file:    SettingsFile{Shift: ShiftImport{Start: "08:00", End: "16:00"}, Speeds: SpeedsImport{Picking: ptr(1)}},
			wantErr: "set uniform or both picking and packing",
		},
		{
			name:    "negative last hour staff",
			file:    SettingsFile{Shift: ShiftImport{Start: "08:00", End: "16:00"}, Speeds: SpeedsImport{Uniform: ptr(25)}, LastHour: &LastHourImport{Staff: -2}},
			wantErr: "last_hour.staff must be non-negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSettingsFile(&tt.file)
			require.NotEmpty(t, errs)
			var msgs []string
			for _, e := range errs {
				msgs = append(msgs, e.Error())
			}
			assert.Contains(t, joinLines(msgs), tt.wantErr)
		})
	}
}

func ptr(v float64) *float64 { return &v }

func joinLines(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

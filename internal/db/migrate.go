package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shift_settings (
		id                    TEXT PRIMARY KEY DEFAULT 'default',
		shift_start           TEXT NOT NULL DEFAULT '',
		shift_end             TEXT NOT NULL DEFAULT '',
		expected_orders       INTEGER NOT NULL DEFAULT 0 CHECK(expected_orders >= 0),
		avg_picking_speed     REAL NOT NULL DEFAULT 0 CHECK(avg_picking_speed >= 0),
		avg_packing_speed     REAL NOT NULL DEFAULT 0 CHECK(avg_packing_speed >= 0),
		staff_for_last_period INTEGER NOT NULL DEFAULT 0 CHECK(staff_for_last_period >= 0),
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shift_breaks (
		settings_id TEXT NOT NULL REFERENCES shift_settings(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (settings_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS control_points (
		settings_id TEXT NOT NULL REFERENCES shift_settings(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		cp_time     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (settings_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS shift_actuals (
		id            TEXT PRIMARY KEY DEFAULT 'default',
		picked_actual INTEGER NOT NULL DEFAULT 0 CHECK(picked_actual >= 0),
		packed_actual INTEGER NOT NULL DEFAULT 0 CHECK(packed_actual >= 0),
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS checkpoint_records (
		actuals_id      TEXT NOT NULL REFERENCES shift_actuals(id) ON DELETE CASCADE,
		position        INTEGER NOT NULL,
		cp_time         TEXT NOT NULL DEFAULT '',
		planned_picking REAL NOT NULL DEFAULT 0,
		planned_packing REAL NOT NULL DEFAULT 0,
		actual_picked   INTEGER NOT NULL DEFAULT 0,
		actual_packed   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (actuals_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS pace_snapshots (
		id                TEXT PRIMARY KEY,
		taken_at          TEXT NOT NULL,
		hours_passed      REAL NOT NULL,
		total_work_time   REAL NOT NULL,
		picked_actual     INTEGER NOT NULL,
		packed_actual     INTEGER NOT NULL,
		expected_picking  REAL NOT NULL,
		expected_packing  REAL NOT NULL,
		deviation_picking REAL NOT NULL,
		deviation_packing REAL NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pace_snapshots_taken ON pace_snapshots(taken_at)`,

	// v2: overall pace level stored with each snapshot.
	`ALTER TABLE pace_snapshots ADD COLUMN pace_level TEXT NOT NULL DEFAULT 'unknown'`,
}

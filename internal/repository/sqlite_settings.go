package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.ShiftConfig, error) {
	query := `SELECT shift_start, shift_end, expected_orders, avg_picking_speed,
		avg_packing_speed, staff_for_last_period, updated_at
		FROM shift_settings WHERE id = ?`

	var cfg domain.ShiftConfig
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, recordID).Scan(
		&cfg.ShiftStart,
		&cfg.ShiftEnd,
		&cfg.ExpectedOrders,
		&cfg.AvgPickingSpeed,
		&cfg.AvgPackingSpeed,
		&cfg.StaffForLastPeriod,
		&updatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "shift settings")
	}
	if cfg.UpdatedAt, err = parseStoredTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	if cfg.Breaks, err = r.listBreaks(ctx); err != nil {
		return nil, err
	}
	if cfg.ControlPoints, err = r.listControlPoints(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the settings row and replaces breaks and control points.
// Run it inside a UnitOfWork to keep the record consistent.
func (r *SQLiteSettingsRepo) Save(ctx context.Context, cfg *domain.ShiftConfig) error {
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = time.Now().UTC()
	}

	query := `INSERT INTO shift_settings (id, shift_start, shift_end, expected_orders,
		avg_picking_speed, avg_packing_speed, staff_for_last_period, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			shift_start = excluded.shift_start,
			shift_end = excluded.shift_end,
			expected_orders = excluded.expected_orders,
			avg_picking_speed = excluded.avg_picking_speed,
			avg_packing_speed = excluded.avg_packing_speed,
			staff_for_last_period = excluded.staff_for_last_period,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		recordID,
		cfg.ShiftStart,
		cfg.ShiftEnd,
		cfg.ExpectedOrders,
		cfg.AvgPickingSpeed,
		cfg.AvgPackingSpeed,
		cfg.StaffForLastPeriod,
		formatTime(cfg.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting shift settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM shift_breaks WHERE settings_id = ?`, recordID); err != nil {
		return fmt.Errorf("clearing breaks: %w", err)
	}
	for i, b := range cfg.Breaks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO shift_breaks (settings_id, position, start_time, end_time) VALUES (?, ?, ?, ?)`,
			recordID, i, b.Start, b.End)
		if err != nil {
			return fmt.Errorf("inserting break %d: %w", i, err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM control_points WHERE settings_id = ?`, recordID); err != nil {
		return fmt.Errorf("clearing control points: %w", err)
	}
	for i, cp := range cfg.ControlPoints {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO control_points (settings_id, position, cp_time) VALUES (?, ?, ?)`,
			recordID, i, cp.Time)
		if err != nil {
			return fmt.Errorf("inserting control point %d: %w", i, err)
		}
	}
	return nil
}

// Reset removes the settings record; breaks and control points cascade.
func (r *SQLiteSettingsRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shift_settings WHERE id = ?`, recordID); err != nil {
		return fmt.Errorf("deleting shift settings: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) listBreaks(ctx context.Context) ([]domain.Interval, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_time, end_time FROM shift_breaks WHERE settings_id = ? ORDER BY position`, recordID)
	if err != nil {
		return nil, fmt.Errorf("listing breaks: %w", err)
	}
	defer rows.Close()

	var breaks []domain.Interval
	for rows.Next() {
		var b domain.Interval
		if err := rows.Scan(&b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("scanning break row: %w", err)
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breaks: %w", err)
	}
	return breaks, nil
}

func (r *SQLiteSettingsRepo) listControlPoints(ctx context.Context) ([]domain.ControlPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cp_time FROM control_points WHERE settings_id = ? ORDER BY position`, recordID)
	if err != nil {
		return nil, fmt.Errorf("listing control points: %w", err)
	}
	defer rows.Close()

	var cps []domain.ControlPoint
	for rows.Next() {
		var cp domain.ControlPoint
		if err := rows.Scan(&cp.Time); err != nil {
			return nil, fmt.Errorf("scanning control point row: %w", err)
		}
		cps = append(cps, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating control points: %w", err)
	}
	return cps, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/domain"
)

// SQLiteActualsRepo implements ActualsRepo using a SQLite database.
type SQLiteActualsRepo struct {
	db db.DBTX
}

// NewSQLiteActualsRepo creates a new SQLiteActualsRepo.
func NewSQLiteActualsRepo(conn db.DBTX) *SQLiteActualsRepo {
	return &SQLiteActualsRepo{db: conn}
}

func (r *SQLiteActualsRepo) Get(ctx context.Context) (*domain.ActualsState, error) {
	var a domain.ActualsState
	var updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT picked_actual, packed_actual, updated_at FROM shift_actuals WHERE id = ?`, recordID,
	).Scan(&a.PickedActual, &a.PackedActual, &updatedAt)
	if err != nil {
		return nil, notFoundOr(err, "shift actuals")
	}
	if a.UpdatedAt, err = parseStoredTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT cp_time, planned_picking, planned_packing, actual_picked, actual_packed
		FROM checkpoint_records WHERE actuals_id = ? ORDER BY position`, recordID)
	if err != nil {
		return nil, fmt.Errorf("listing checkpoint records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.CheckpointRecord
		if err := rows.Scan(&rec.Time, &rec.PlannedPicking, &rec.PlannedPacking, &rec.ActualPicked, &rec.ActualPacked); err != nil {
			return nil, fmt.Errorf("scanning checkpoint row: %w", err)
		}
		a.CPData = append(a.CPData, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkpoint records: %w", err)
	}
	return &a, nil
}

// Save upserts the totals and rewrites the checkpoint records in order.
func (r *SQLiteActualsRepo) Save(ctx context.Context, a *domain.ActualsState) error {
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}

	query := `INSERT INTO shift_actuals (id, picked_actual, packed_actual, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			picked_actual = excluded.picked_actual,
			packed_actual = excluded.packed_actual,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, recordID, a.PickedActual, a.PackedActual, formatTime(a.UpdatedAt)); err != nil {
		return fmt.Errorf("upserting shift actuals: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM checkpoint_records WHERE actuals_id = ?`, recordID); err != nil {
		return fmt.Errorf("clearing checkpoint records: %w", err)
	}
	for i, rec := range a.CPData {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO checkpoint_records (actuals_id, position, cp_time, planned_picking,
			planned_packing, actual_picked, actual_packed) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			recordID, i, rec.Time, rec.PlannedPicking, rec.PlannedPacking, rec.ActualPicked, rec.ActualPacked)
		if err != nil {
			return fmt.Errorf("inserting checkpoint record %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteActualsRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shift_actuals WHERE id = ?`, recordID); err != nil {
		return fmt.Errorf("deleting shift actuals: %w", err)
	}
	return nil
}

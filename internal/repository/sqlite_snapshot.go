package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/db"
	"github.com/alexanderramin/shiftpace/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

const snapshotColumns = `id, taken_at, hours_passed, total_work_time, picked_actual, packed_actual,
	expected_picking, expected_packing, deviation_picking, deviation_packing, pace_level`

func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *domain.PaceSnapshot) error {
	query := `INSERT INTO pace_snapshots (` + snapshotColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTime(s.TakenAt),
		s.HoursPassed,
		s.TotalWorkTime,
		s.PickedActual,
		s.PackedActual,
		s.ExpectedPicking,
		s.ExpectedPacking,
		s.DeviationPicking,
		s.DeviationPacking,
		string(s.PaceLevel),
	)
	if err != nil {
		return fmt.Errorf("inserting pace snapshot: %w", err)
	}
	return nil
}

// ListSince returns snapshots taken at or after since, oldest first.
func (r *SQLiteSnapshotRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.PaceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM pace_snapshots WHERE taken_at >= ? ORDER BY taken_at, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing pace snapshots: %w", err)
	}
	defer rows.Close()
	return r.scanSnapshots(rows)
}

// DeleteBefore prunes snapshots older than cutoff and reports how many went.
func (r *SQLiteSnapshotRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pace_snapshots WHERE taken_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("pruning pace snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned snapshots: %w", err)
	}
	return n, nil
}

func (r *SQLiteSnapshotRepo) scanSnapshots(rows *sql.Rows) ([]*domain.PaceSnapshot, error) {
	var snaps []*domain.PaceSnapshot
	for rows.Next() {
		var s domain.PaceSnapshot
		var takenAt, level string
		err := rows.Scan(
			&s.ID, &takenAt, &s.HoursPassed, &s.TotalWorkTime, &s.PickedActual, &s.PackedActual,
			&s.ExpectedPicking, &s.ExpectedPacking, &s.DeviationPicking, &s.DeviationPacking, &level,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if s.TakenAt, err = parseStoredTime(takenAt, "taken_at"); err != nil {
			return nil, err
		}
		s.PaceLevel = domain.PaceLevel(level)
		snaps = append(snaps, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return snaps, nil
}

package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// recordID is the key of the single-row settings and actuals tables.
const recordID = "default"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseStoredTime parses an RFC3339 column; field names the column in errors.
func parseStoredTime(s, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// notFoundOr maps sql.ErrNoRows onto ErrNotFound and wraps everything else.
func notFoundOr(err error, what string) error {
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("scanning %s: %w", what, err)
}

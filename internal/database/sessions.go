package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/google/uuid"
)

// AddSessionRecord appends a completed session. An empty ID is filled with a
// new UUID and a zero CompletedAt with the current time.
func (d *Database) AddSessionRecord(ctx context.Context, rec models.SessionRecord) (models.SessionRecord, error) {
	if strings.TrimSpace(string(rec.Kind)) == "" || rec.DurationSeconds < 0 {
		return rec, wrapSessionErr("add", rec.ID, ErrInvalidRecord)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}
	rec.CompletedAt = rec.CompletedAt.UTC()
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (id, kind, label, duration_seconds, completed_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, string(rec.Kind), nullableString(rec.Label), rec.DurationSeconds, rec.CompletedAt)
	return rec, wrapSessionErr("add", rec.ID, err)
}

// ListSessionRecords returns the newest records first. limit <= 0 returns all.
func (d *Database) ListSessionRecords(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	query := "SELECT id, kind, label, duration_seconds, completed_at FROM sessions ORDER BY completed_at DESC, rowid DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return d.querySessions(ctx, query, args...)
}

// SessionRecordsBetween returns records completed in [from, to), oldest first.
func (d *Database) SessionRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SessionRecord, error) {
	return d.querySessions(ctx,
		"SELECT id, kind, label, duration_seconds, completed_at FROM sessions WHERE completed_at >= ? AND completed_at < ? ORDER BY completed_at ASC, rowid ASC",
		from.UTC(), to.UTC())
}

// ClearSessionRecords drops all history.
func (d *Database) ClearSessionRecords(ctx context.Context) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM sessions")
	return wrapSessionErr("clear", "", err)
}

func (d *Database) querySessions(ctx context.Context, query string, args ...interface{}) ([]models.SessionRecord, error) {
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var out []models.SessionRecord
	for rows.Next() {
		var rec models.SessionRecord
		var kind string
		var label *string
		if err := rows.Scan(&rec.ID, &kind, &label, &rec.DurationSeconds, &rec.CompletedAt); err != nil {
			return nil, wrapSessionErr("scan", "", err)
		}
		rec.Kind = models.SessionKind(kind)
		if label != nil {
			rec.Label = *label
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

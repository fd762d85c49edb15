package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"timeclock.service/internal/core/model"
)

// TimeRecordRepository is the concrete implementation for a PostgreSQL database.
type TimeRecordRepository struct {
	DB *sql.DB
}

// NewTimeRecordRepository create new instance
func NewTimeRecordRepository(db *sql.DB) Repository {
	return &TimeRecordRepository{DB: db}
}

// CreateRecord inserts a punch event and returns it with its assigned id.
func (r *TimeRecordRepository) CreateRecord(ctx context.Context, record model.StampEvent) (model.StampEvent, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", record.UserID))

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `INSERT INTO time_records (id, user_id, kind, stamped_at)
              VALUES ($1, $2, $3, $4)`

	if _, err := r.DB.ExecContext(ctx, query, record.ID, record.UserID, record.Kind, record.Timestamp); err != nil {
		return model.StampEvent{}, fmt.Errorf("%w: insert time record: %v", ErrStoreUnavailable, err)
	}

	return record, nil
}

// ListRecords returns the full punch history of a user, oldest first.
func (r *TimeRecordRepository) ListRecords(ctx context.Context, userID string) ([]model.StampEvent, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", userID))

	query := `SELECT id, user_id, kind, stamped_at
              FROM time_records
              WHERE user_id = $1
              ORDER BY stamped_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list time records: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListRecordsInRange returns the user's punch events inside the inclusive
// [start, end] window, oldest first.
func (r *TimeRecordRepository) ListRecordsInRange(ctx context.Context, userID string, start, end time.Time) ([]model.StampEvent, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", userID))

	query := `SELECT id, user_id, kind, stamped_at
              FROM time_records
              WHERE user_id = $1 AND stamped_at >= $2 AND stamped_at <= $3
              ORDER BY stamped_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: list time records in range: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]model.StampEvent, error) {
	records := make([]model.StampEvent, 0)
	for rows.Next() {
		var rec model.StampEvent
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Kind, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scan time record: %v", ErrStoreUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate time records: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"timeclock.service/internal/core/model"
)

// GetHomeOfficeFlag looks up the stored home-office flag for one day.
func (r *TimeRecordRepository) GetHomeOfficeFlag(ctx context.Context, userID, dateKey string) (bool, bool, error) {
	query := `SELECT home_office FROM workdays WHERE user_id = $1 AND date_key = $2`

	var flag bool
	err := r.DB.QueryRowContext(ctx, query, userID, dateKey).Scan(&flag)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("%w: read home office flag: %v", ErrStoreUnavailable, err)
	}
	return flag, true, nil
}

// SetHomeOfficeFlag stores the flag for one day, creating the workday row if
// it does not exist yet. The hours column is left for the projection worker.
func (r *TimeRecordRepository) SetHomeOfficeFlag(ctx context.Context, userID, dateKey string, homeOffice bool) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", userID))

	query := `INSERT INTO workdays (user_id, date_key, hours_worked, home_office)
              VALUES ($1, $2, 0, $3)
              ON CONFLICT (user_id, date_key) DO UPDATE SET home_office = $3`

	if _, err := r.DB.ExecContext(ctx, query, userID, dateKey, homeOffice); err != nil {
		return fmt.Errorf("%w: set home office flag: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// UpsertWorkday writes the persisted daily summary. The stored row must agree
// with what the projector derives from the raw events, so the upsert always
// overwrites hours with the freshly recomputed value.
func (r *TimeRecordRepository) UpsertWorkday(ctx context.Context, workday model.Workday) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", workday.UserID))

	query := `INSERT INTO workdays (user_id, date_key, hours_worked, home_office)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (user_id, date_key)
              DO UPDATE SET hours_worked = $3, home_office = $4`

	if _, err := r.DB.ExecContext(ctx, query, workday.UserID, workday.Date, workday.HoursWorked, workday.HomeOffice); err != nil {
		return fmt.Errorf("%w: upsert workday: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetWorkday fetches the persisted daily summary, or nil when none exists.
func (r *TimeRecordRepository) GetWorkday(ctx context.Context, userID, dateKey string) (*model.Workday, error) {
	query := `SELECT user_id, date_key, hours_worked, home_office
              FROM workdays WHERE user_id = $1 AND date_key = $2`

	wd := &model.Workday{}
	err := r.DB.QueryRowContext(ctx, query, userID, dateKey).Scan(&wd.UserID, &wd.Date, &wd.HoursWorked, &wd.HomeOffice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read workday: %v", ErrStoreUnavailable, err)
	}
	return wd, nil
}

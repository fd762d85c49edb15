package repository

import (
	"context"
	"errors"
	"time"

	"timeclock.service/internal/core/model"
)

// ErrStoreUnavailable wraps transport-level failures of the backing store.
// It is propagated to callers unmodified; retries are not attempted here.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repository is the store-facing contract of the aggregation core. A user
// with no events yields an empty slice, not an error.
type Repository interface {
	CreateRecord(ctx context.Context, record model.StampEvent) (model.StampEvent, error)
	ListRecords(ctx context.Context, userID string) ([]model.StampEvent, error)
	ListRecordsInRange(ctx context.Context, userID string, start, end time.Time) ([]model.StampEvent, error)

	// GetHomeOfficeFlag reports the stored flag for a normalized date key and
	// whether one was stored at all.
	GetHomeOfficeFlag(ctx context.Context, userID, dateKey string) (flag bool, found bool, err error)
	SetHomeOfficeFlag(ctx context.Context, userID, dateKey string, homeOffice bool) error
	UpsertWorkday(ctx context.Context, workday model.Workday) error
	GetWorkday(ctx context.Context, userID, dateKey string) (*model.Workday, error)

	CreateProject(ctx context.Context, project model.Project) (model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	ListProjects(ctx context.Context, userID string) ([]model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) error
	DeleteProject(ctx context.Context, id string) error
}

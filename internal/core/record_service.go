package core

import (
	"context"
	"errors"
	"time"

	"timeclock.service/internal/core/model"
	"timeclock.service/internal/ports/repository"
)

// ErrInvalidRecordKind rejects a stamp that is neither Einstempeln nor Ausstempeln.
var ErrInvalidRecordKind = errors.New("invalid record kind")

// RecordService is the passthrough surface over the raw stamp log. It exists
// for the REST resource; the aggregation paths read the repository directly.
type RecordService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewRecordService(repo repository.Repository) *RecordService {
	return &RecordService{repo: repo, now: time.Now}
}

// CreateRecord stores a raw punch event. A missing timestamp defaults to now.
func (s *RecordService) CreateRecord(ctx context.Context, record model.StampEvent) (model.StampEvent, error) {
	if record.Kind != model.KindClockIn && record.Kind != model.KindClockOut {
		return model.StampEvent{}, ErrInvalidRecordKind
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = s.now()
	}
	return s.repo.CreateRecord(ctx, record)
}

// ListRecords returns the user's full punch history, oldest first.
func (s *RecordService) ListRecords(ctx context.Context, userID string) ([]model.StampEvent, error) {
	return s.repo.ListRecords(ctx, userID)
}

// ListRecordsInRange returns the user's punch events inside the inclusive window.
func (s *RecordService) ListRecordsInRange(ctx context.Context, userID string, start, end time.Time) ([]model.StampEvent, error) {
	return s.repo.ListRecordsInRange(ctx, userID, start, end)
}

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"timeclock.service/internal/core/dates"
	"timeclock.service/internal/core/model"
	"timeclock.service/internal/ports/messaging"
	"timeclock.service/internal/ports/repository"
	"timeclock.service/internal/ports/statestore"
)

var (
	// ErrAlreadyClockedIn rejects a clock-in while the user is Eingestempelt.
	ErrAlreadyClockedIn = errors.New("already clocked in")
	// ErrNotClockedIn rejects a clock-out while the user is Ausgestempelt.
	ErrNotClockedIn = errors.New("not clocked in")
)

// ClockService is the two-state clock machine. It trusts its own persisted
// transition history only; it does not cross-check the full stamp log, so an
// externally cleared state allows a second clock-in.
type ClockService struct {
	repo       repository.Repository
	states     statestore.StateStore
	producer   messaging.QueueProducer
	mailDomain string
	now        func() time.Time
}

// NewClockService creates the clock state machine, wiring up the record
// store, the session state store and the queue producer.
func NewClockService(repo repository.Repository, states statestore.StateStore, producer messaging.QueueProducer, mailDomain string) *ClockService {
	return &ClockService{
		repo:       repo,
		states:     states,
		producer:   producer,
		mailDomain: mailDomain,
		now:        time.Now,
	}
}

// ReadStatus reports the user's current status. A stored state from a
// previous calendar day reads as Ausgestempelt; the stale record is left in
// place until the next explicit transition, and no closing stamp is
// synthesized for the old day.
func (s *ClockService) ReadStatus(ctx context.Context, userID string) (model.ClockStatus, error) {
	state, err := s.states.ReadState(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("read clock status: %w", err)
	}
	if state == nil || !dates.SameDay(state.AsOfDate, s.now()) {
		return model.StatusClockedOut, nil
	}
	return state.Status, nil
}

// ClockIn emits a ClockIn stamp and transitions to Eingestempelt. Valid only
// from Ausgestempelt.
func (s *ClockService) ClockIn(ctx context.Context, userID string) (model.StampEvent, error) {
	status, err := s.ReadStatus(ctx, userID)
	if err != nil {
		return model.StampEvent{}, err
	}
	if status == model.StatusClockedIn {
		return model.StampEvent{}, ErrAlreadyClockedIn
	}

	now := s.now()
	event, err := s.repo.CreateRecord(ctx, model.StampEvent{
		UserID:    userID,
		Kind:      model.KindClockIn,
		Timestamp: now,
	})
	if err != nil {
		return model.StampEvent{}, fmt.Errorf("create clock-in record: %w", err)
	}

	if err := s.states.WriteState(ctx, userID, model.ClockState{Status: model.StatusClockedIn, AsOfDate: now}); err != nil {
		return model.StampEvent{}, fmt.Errorf("persist clock state: %w", err)
	}
	return event, nil
}

// ClockOut emits a ClockOut stamp, transitions to Ausgestempelt and triggers
// the asynchronous workday projection and summary email.
func (s *ClockService) ClockOut(ctx context.Context, userID string) (model.StampEvent, error) {
	status, err := s.ReadStatus(ctx, userID)
	if err != nil {
		return model.StampEvent{}, err
	}
	if status != model.StatusClockedIn {
		return model.StampEvent{}, ErrNotClockedIn
	}

	now := s.now()
	event, err := s.repo.CreateRecord(ctx, model.StampEvent{
		UserID:    userID,
		Kind:      model.KindClockOut,
		Timestamp: now,
	})
	if err != nil {
		return model.StampEvent{}, fmt.Errorf("create clock-out record: %w", err)
	}

	if err := s.states.WriteState(ctx, userID, model.ClockState{Status: model.StatusClockedOut, AsOfDate: now}); err != nil {
		return model.StampEvent{}, fmt.Errorf("persist clock state: %w", err)
	}

	emailEvent := messaging.EmailEvent{
		UserID:     userID,
		Email:      userID + "@" + s.mailDomain,
		OccurredAt: now,
	}
	if err := s.producer.PublishEmail(ctx, emailEvent); err != nil {
		// The summary mail is best effort; the clock-out itself stands.
		log.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("Failed to publish email event")
	}

	clockOutEvent := messaging.ClockOutEvent{
		UserID:       userID,
		ClockOutTime: now,
	}
	if err := s.producer.PublishWorkday(ctx, clockOutEvent); err != nil {
		return event, fmt.Errorf("publish clock-out event: %w", err)
	}

	return event, nil
}

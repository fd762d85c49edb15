// Package statestore persists the per-user clock state across sessions. The
// contract is a plain key-value record so any session-durable medium can sit
// behind it; the shipped implementation uses Redis.
package statestore

import (
	"context"

	"timeclock.service/internal/core/model"
)

// StateStore reads and writes the persisted {status, asOfDate} record.
// ReadState returns nil when nothing is stored for the user, which callers
// interpret as the default Ausgestempelt state.
type StateStore interface {
	ReadState(ctx context.Context, userID string) (*model.ClockState, error)
	WriteState(ctx context.Context, userID string, state model.ClockState) error
}

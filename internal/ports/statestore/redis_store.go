package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"timeclock.service/internal/core/model"
)

// RedisStore keeps clock states in Redis as JSON, one key per user. The
// records stay valid only for the day they were written, so a generous TTL
// just keeps stale keys from piling up.
type RedisStore struct {
	client *redis.Client
}

const stateTTL = 48 * time.Hour

// NewRedisStore connects to Redis with short timeouts.
func NewRedisStore(addr string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &RedisStore{client: client}
}

// Healthy verifies Redis connectivity.
func (s *RedisStore) Healthy(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	return s.client.Ping(ctx).Err() == nil
}

func stateKey(userID string) string {
	return "clockstate:" + userID
}

// ReadState returns the stored state for the user, or nil when absent.
func (s *RedisStore) ReadState(ctx context.Context, userID string) (*model.ClockState, error) {
	raw, err := s.client.Get(ctx, stateKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read clock state: %w", err)
	}

	var state model.ClockState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode clock state: %w", err)
	}
	return &state, nil
}

// WriteState overwrites the stored state for the user.
func (s *RedisStore) WriteState(ctx context.Context, userID string, state model.ClockState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode clock state: %w", err)
	}
	if err := s.client.Set(ctx, stateKey(userID), raw, stateTTL).Err(); err != nil {
		return fmt.Errorf("write clock state: %w", err)
	}
	return nil
}

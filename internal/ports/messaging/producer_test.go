package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	destinations []string
	bodies       [][]byte
	err          error
}

func (s *recordingSender) SendMessage(_ context.Context, destination string, body []byte) error {
	if s.err != nil {
		return s.err
	}
	s.destinations = append(s.destinations, destination)
	s.bodies = append(s.bodies, body)
	return nil
}

func TestProducerRoutesEventsToQueues(t *testing.T) {
	sender := &recordingSender{}
	producer := NewProducer(sender, "workday-queue", "email-queue")

	err := producer.PublishWorkday(context.Background(), ClockOutEvent{
		UserID:       "u-1",
		ClockOutTime: time.Date(2024, time.February, 13, 17, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = producer.PublishEmail(context.Background(), EmailEvent{
		UserID: "u-1",
		Email:  "u-1@example.com",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"workday-queue", "email-queue"}, sender.destinations)

	var clockOut ClockOutEvent
	require.NoError(t, json.Unmarshal(sender.bodies[0], &clockOut))
	assert.Equal(t, "u-1", clockOut.UserID)

	var email EmailEvent
	require.NoError(t, json.Unmarshal(sender.bodies[1], &email))
	assert.Equal(t, "u-1@example.com", email.Email)
}

func TestProducerWrapsSenderError(t *testing.T) {
	sender := &recordingSender{err: assert.AnError}
	producer := NewProducer(sender, "workday-queue", "email-queue")

	err := producer.PublishWorkday(context.Background(), ClockOutEvent{UserID: "u-1"})
	assert.ErrorIs(t, err, assert.AnError)
}

package messaging

import "time"

// ClockOutEvent is the JSON payload sent via SQS to the workday queue. The
// consumer reprojects the whole day from the stamp log, so the event only
// needs to name the user and the day that closed.
type ClockOutEvent struct {
	UserID       string    `json:"userId"`
	ClockOutTime time.Time `json:"clockOutTime"`
}

// EmailEvent is the JSON payload sent via SQS to the email queue.
type EmailEvent struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}

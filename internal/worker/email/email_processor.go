package email

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"

	"timeclock.service/internal/core"
	"timeclock.service/internal/core/dates"
	"timeclock.service/internal/ports/messaging"
	"timeclock.service/internal/worker"
)

// EmailProcessor handles jobs from the email queue: it projects the closed
// day and mails the user their daily summary. Delivery is at-least-once; a
// duplicate message just sends the same summary again.
type EmailProcessor struct {
	emailService core.EmailService
	workdays     *core.WorkdayService
}

// NewProcessor sets up a new processor for handling email jobs. It needs the
// projector to recompute the day's hours and an email service to send them.
func NewProcessor(emailService core.EmailService, workdays *core.WorkdayService) *EmailProcessor {
	return &EmailProcessor{
		emailService: emailService,
		workdays:     workdays,
	}
}

// Process is the main entry point for handling a message from the email
// queue. It tells the worker to retry with backoff if something goes wrong.
func (p *EmailProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.EmailEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal email event")
		return false, 0, err // Do not retry on malformed message
	}

	workday, err := p.workdays.ProjectWorkday(ctx, event.UserID, event.OccurredAt)
	if err != nil {
		delay := calculateBackoff(worker.ReceiveCount(msg))
		return true, delay, fmt.Errorf("project workday for email summary: %w", err)
	}

	if err := p.emailService.SendDailySummary(ctx, event.Email, workday.Date, workday.HoursWorked); err != nil {
		delay := calculateBackoff(worker.ReceiveCount(msg))
		return true, delay, err
	}

	log.Ctx(ctx).Info().Str("user_id", event.UserID).Str("date", dates.Normalize(event.OccurredAt)).
		Msg("Daily summary email sent")
	return false, 0, nil
}

// calculateBackoff determines how long to wait before retrying a failed job.
// It increases the delay exponentially with each delivery to avoid
// overwhelming a struggling service.
func calculateBackoff(receiveCount int) int32 {
	backoff := int32(math.Pow(2, float64(receiveCount)) * 10)
	if backoff > 3600 { // Cap at 1 hour
		return 3600
	}
	return backoff
}

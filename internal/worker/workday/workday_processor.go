package workday

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"timeclock.service/internal/core"
	"timeclock.service/internal/ports/messaging"
	"timeclock.service/internal/worker"
	"timeclock.service/internal/worker/legacyapi"
)

// WorkdayProcessor handles jobs from the workday queue: it reprojects the
// closed day from the stamp log, persists the summary, and exports it to the
// legacy HR system. The export goes through a circuit breaker so a struggling
// legacy system is not hammered.
type WorkdayProcessor struct {
	workdays *core.WorkdayService
	export   legacyapi.HRExportClient
	cb       *gobreaker.CircuitBreaker
}

// NewProcessor creates a new processor for the workday queue.
func NewProcessor(workdays *core.WorkdayService, export legacyapi.HRExportClient) *WorkdayProcessor {
	settings := gobreaker.Settings{
		Name:        "HR-Export",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate exceeds 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &WorkdayProcessor{
		workdays: workdays,
		export:   export,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Process handles one message from the workday queue. Reprojection and upsert
// are idempotent, so a retried message simply recomputes the same day.
func (p *WorkdayProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.ClockOutEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal clock-out event")
		return false, 0, err // Do not retry on malformed message
	}

	workday, err := p.workdays.PersistWorkday(ctx, event.UserID, event.ClockOutTime)
	if err != nil {
		delay := calculateBackoff(worker.ReceiveCount(msg))
		return true, delay, err
	}

	log.Ctx(ctx).Info().Str("user_id", workday.UserID).Str("date", workday.Date).
		Float64("hours_worked", workday.HoursWorked).Msg("Persisted workday projection")

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.export.ExportWorkday(ctx, workday)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping HR export call")
		}
		delay := calculateBackoff(worker.ReceiveCount(msg))
		return true, delay, err
	}

	return false, 0, nil
}

// calculateBackoff determines how long to wait before retrying a failed job.
// It increases the delay exponentially with each delivery.
func calculateBackoff(receiveCount int) int32 {
	backoff := int32(math.Pow(2, float64(receiveCount)) * 10)
	if backoff > 3600 {
		return 3600 // max at 1 hour
	}
	return backoff
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Producer routes domain events to their queues through a MessageSender.
type Producer struct {
	sender          MessageSender
	workdayQueueURL string
	emailQueueURL   string
}

func NewProducer(sender MessageSender, workdayQueueURL, emailQueueURL string) *Producer {
	return &Producer{
		sender:          sender,
		workdayQueueURL: workdayQueueURL,
		emailQueueURL:   emailQueueURL,
	}
}

// NewSQSProducer creates a Producer backed by an AWS SQS sender.
func NewSQSProducer(client SQSClient, workdayQueueURL, emailQueueURL string) *Producer {
	return NewProducer(&SQSSender{client: client}, workdayQueueURL, emailQueueURL)
}

func (p *Producer) PublishWorkday(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.workdayQueueURL, body)
}

func (p *Producer) PublishEmail(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.emailQueueURL, body)
}

func (p *Producer) publish(ctx context.Context, destination string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	// Enrich the current span with the user id if available
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		var payload struct {
			UserID string `json:"userId"`
		}
		if err := json.Unmarshal(b, &payload); err == nil && payload.UserID != "" {
			span.SetAttributes(attribute.String("app.user_id", payload.UserID))
		}
	}

	if err := p.sender.SendMessage(ctx, destination, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OutboxMessage is an order event waiting to be published outside the service.
// It is written in the same transaction as the change it describes.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores and hands out outbox messages.
type OutboxRepository interface {
	// Add stores messages. Called by the unit of work on commit.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished returns up to limit unpublished messages, oldest first, and
	// locks them; rows locked by a concurrent relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records the publication time of the given messages.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// MessagePublisher delivers outbox messages to the message broker.
type MessagePublisher interface {
	// Publish delivers all messages or returns an error; partial delivery is
	// reported as an error so the messages are retried.
	Publish(ctx context.Context, messages []OutboxMessage) error
}

package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// RelayOutboxCommandHandler publishes pending outbox messages to the broker.
//
// Messages are claimed with row locks that concurrent relays skip, published,
// and marked as published in the same transaction. A publish failure rolls the
// transaction back so the messages are picked up again by a later pass;
// delivery is therefore at least once.
//
// Example:
//
//	handler := NewRelayOutboxCommandHandler(uowFactory, publisher)
//	cmd, _ := NewRelayOutboxCommand(100)
//
//	relayed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Outbox relay failed: %v", err)
//	}
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
}

// NewRelayOutboxCommandHandler creates a relay handler bound to a publisher.
func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.MessagePublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle runs one relay pass and returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	messages, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	if err = outboxRepo.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(messages), nil
}

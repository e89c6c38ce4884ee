package outboxrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// Event types published for orders.
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// OrderEventPayload is the JSON body of an order event message.
type OrderEventPayload struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderEventMessage converts an order event into an outbox message. The
// message shares the event's id so that consumers can deduplicate redeliveries.
func NewOrderEventMessage(event order.Event) (ports.OutboxMessage, error) {
	if err := event.Validate(); err != nil {
		return ports.OutboxMessage{}, err
	}

	payload, err := json.Marshal(OrderEventPayload{
		EventID:    event.ID().String(),
		OrderID:    event.OrderID().String(),
		UserID:     event.UserID().String(),
		Status:     event.Status().String(),
		OccurredAt: event.OccurredAt().UTC(),
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	eventType := EventTypeOrderStatusChanged
	if event.Status() == order.Pending {
		eventType = EventTypeOrderPlaced
	}

	return ports.OutboxMessage{
		ID:          event.ID(),
		AggregateID: event.OrderID(),
		EventType:   eventType,
		Payload:     payload,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

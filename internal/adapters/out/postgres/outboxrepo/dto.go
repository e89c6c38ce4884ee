// Package outboxrepo stores order events in the transactional outbox until
// the relay job hands them to the message broker.
package outboxrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one outbox row. PublishedAt stays NULL until the relay
// has delivered the message.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the outbox table.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          message.ID.Bytes(),
		AggregateID: message.AggregateID.Bytes(),
		EventType:   message.EventType,
		Payload:     string(message.Payload),
		OccurredAt:  message.OccurredAt,
	}
}

func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}

// Package kafka publishes outbox messages to a Kafka topic.
//
// Messages are keyed by the aggregate id, so every event of one order lands
// on the same partition and consumers observe them in the order they were
// recorded. The message id travels in a header for deduplication.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Header names set on every published message.
const (
	HeaderEventType = "event-type"
	HeaderMessageID = "message-id"
)

var ErrPublisherClosed = errors.New("kafka publisher is closed")

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher on top of a synchronous kafka.Writer.
type Publisher struct {
	writer messageWriter
	topic  string
	closed atomic.Bool
}

// NewPublisher creates a publisher writing to topic on the given brokers.
// WriteMessages blocks until all brokers in the ISR acknowledged the batch.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher: at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka publisher: topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Transport: &kafka.Transport{
			Dial: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error(fmt.Sprintf(msg, args...), "component", "kafka-publisher", "topic", topic)
		}),
	}

	return newPublisher(writer, topic), nil
}

func newPublisher(writer messageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

// Publish writes messages in one batch. It returns only after the batch is
// acknowledged, or with the first error.
func (p *Publisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, message := range messages {
		batch = append(batch, toKafkaMessage(message))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("publish %d messages to %s: %w", len(batch), p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer. Repeated calls are no-ops.
func (p *Publisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

func toKafkaMessage(message ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(message.AggregateID.String()),
		Value: message.Payload,
		Time:  message.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(message.EventType)},
			{Key: HeaderMessageID, Value: []byte(message.ID.String())},
		},
	}
}

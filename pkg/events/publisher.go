package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"paintbooking/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

// Publisher emits domain events. Failures are the caller's to log, never to
// surface to the end user.
type Publisher interface {
	Publish(ctx context.Context, key, eventType string, payload any) error
	Close() error
}

// NewPublisher returns a Kafka-backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher(brokers []string, topic string, log *logger.Logger) Publisher {
	if len(brokers) == 0 {
		log.Info("No Kafka brokers configured, domain events disabled")
		return &NopPublisher{}
	}
	log.Info("Kafka event publisher enabled", "topic", topic, "brokers", len(brokers))
	return NewKafkaPublisher(brokers, topic)
}

type KafkaPublisher struct {
	writer *kafka.Writer
	mu     sync.Mutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by key for per-entity ordering
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 100 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
	}

	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key, eventType string, payload any) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPublisherClosed
	}
	p.mu.Unlock()

	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher drops every event. Used when eventing is not configured.
type NopPublisher struct{}

func (*NopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (*NopPublisher) Close() error { return nil }

package events

import (
	"context"
	"testing"

	"paintbooking/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
}

func TestNewPublisher_NoBrokersFallsBackToNop(t *testing.T) {
	p := NewPublisher(nil, "paintbooking.events", testLogger())

	if _, ok := p.(*NopPublisher); !ok {
		t.Fatalf("expected NopPublisher without brokers, got %T", p)
	}

	if err := p.Publish(context.Background(), "key", TypeBookingCreated, map[string]string{"id": "1"}); err != nil {
		t.Errorf("NopPublisher.Publish() should never fail, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("NopPublisher.Close() should never fail, got %v", err)
	}
}

func TestNewPublisher_WithBrokers(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "paintbooking.events", testLogger())

	kp, ok := p.(*KafkaPublisher)
	if !ok {
		t.Fatalf("expected KafkaPublisher with brokers, got %T", p)
	}

	// No messages are written here; just verify the closed guard.
	if err := kp.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := kp.Publish(context.Background(), "key", TypeUserRegistered, nil); err != ErrPublisherClosed {
		t.Errorf("Publish() after Close() = %v, want ErrPublisherClosed", err)
	}
}

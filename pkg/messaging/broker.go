package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Channel carries every domain event published by the services.
const Channel = "records.events"

// Event types
const (
	EventClientCreated       = "client.created"
	EventRegistrationCreated = "registration.created"
	EventRegistrationDeleted = "registration.deleted"
	EventPrescriptionCreated = "prescription.created"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// Publisher defines the interface for publishing messages
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

type Message struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewMessage stamps payload with an id and the current time.
func NewMessage(eventType string, payload interface{}) Message {
	return Message{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// BrokerPublisher publishes every event as a Message on Channel.
type BrokerPublisher struct {
	broker Broker
}

func NewBrokerPublisher(broker Broker) *BrokerPublisher {
	return &BrokerPublisher{broker: broker}
}

func (p *BrokerPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	return p.broker.Publish(ctx, Channel, NewMessage(eventType, payload))
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coffeeshop/coffee-system/shared/models"
)

// Metadata represents event metadata
type Metadata map[string]string

// Set stores a metadata value
func (m Metadata) Set(key string, value string) {
	m[key] = value
}

// Clone copies the metadata
func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event
type Event struct {
	ID          models.ID   `json:"id"`
	AggregateID string      `json:"aggregate_id"`
	EventType   string      `json:"event_type"`
	Version     string      `json:"version"`
	Data        interface{} `json:"data"`
	Metadata    Metadata    `json:"metadata"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// NewEvent creates a new domain event
func NewEvent(aggregateID string, eventType string, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now(),
	}
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}

	return json.Marshal(e.Data)
}

// Event Types Constants
const (
	// Order Events
	OrderAcceptedEvent      = "order.accepted"
	OrderCoffeeOrderedEvent = "order.coffee.ordered"
	OrderCoffeePayedEvent   = "order.coffee.payed"
	OrderNotPossibleEvent   = "order.not.possible"

	// Payment Events
	PaymentChargedEvent  = "payment.charged"
	PaymentDeclinedEvent = "payment.declined"

	// Barista Events
	CoffeeBrewedEvent = "coffee.brewed"
)

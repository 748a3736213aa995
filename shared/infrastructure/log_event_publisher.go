package infrastructure

import (
	"context"

	"github.com/coffeeshop/coffee-system/shared/events"
	"go.uber.org/zap"
)

var _ events.Publisher = (*LogEventPublisher)(nil)

// LogEventPublisher writes events to the log. Used when no event bus is configured.
type LogEventPublisher struct {
	logger *zap.Logger
}

// NewLogEventPublisher creates a new LogEventPublisher
func NewLogEventPublisher(logger *zap.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs every event at debug level
func (p *LogEventPublisher) Publish(_ context.Context, evts ...*events.Event) error {
	for _, event := range evts {
		p.logger.Debug("event published",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType),
			zap.String("aggregate_id", event.AggregateID),
			zap.Any("data", event.Data),
		)
	}
	return nil
}

// Close is a no-op
func (p *LogEventPublisher) Close() error {
	return nil
}

package application

import (
	"context"
	"strconv"
	"time"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/shared/events"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// BrewCoffeeCommand represents the command to brew a cup
type BrewCoffeeCommand struct {
	Flavor *string `json:"flavor"`
}

// BrewCoffee use case
type BrewCoffee struct {
	cupRepository  domain.CupRepository
	eventPublisher events.Publisher
	brewDelay      time.Duration
	logger         *zap.Logger
}

// NewBrewCoffee creates a new BrewCoffee use case. brewDelay slows every brew down.
func NewBrewCoffee(cupRepository domain.CupRepository, eventPublisher events.Publisher, brewDelay time.Duration, logger *zap.Logger) *BrewCoffee {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrewCoffee{
		cupRepository:  cupRepository,
		eventPublisher: eventPublisher,
		brewDelay:      brewDelay,
		logger:         logger,
	}
}

// Execute validates the flavor, brews and stores the cup
func (uc *BrewCoffee) Execute(ctx context.Context, cmd *BrewCoffeeCommand) (*domain.Cup, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "brew_coffee")
	defer span.End()

	var status = "error"
	defer func() {
		telemetry.RecordCounter(ctx, "coffees_brewed_total", "Total brew requests", 1,
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "coffee_brew_duration_seconds", "Brew duration", time.Since(start).Seconds(),
			attribute.String("status", status),
		)
	}()

	cup, err := domain.NewCup(cmd.Flavor)
	if err != nil {
		status = "rejected"
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("flavor", cup.Flavor))

	if uc.brewDelay > 0 {
		select {
		case <-time.After(uc.brewDelay):
		case <-ctx.Done():
			span.RecordError(ctx.Err())
			return nil, errors.Wrap(ctx.Err(), "brewing interrupted")
		}
	}

	if err := uc.cupRepository.Save(ctx, cup); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to save cup")
	}

	span.SetAttributes(attribute.Int64("cup_id", cup.ID))
	uc.logger.Info("coffee brewed", zap.Int64("cup_id", cup.ID), zap.String("flavor", cup.Flavor))

	if uc.eventPublisher != nil {
		event := events.NewEvent(strconv.FormatInt(cup.ID, 10), events.CoffeeBrewedEvent, cup).
			WithMetadata("service", "barista-service")
		if err := uc.eventPublisher.Publish(ctx, event); err != nil {
			uc.logger.Error("failed to publish coffee event", zap.Int64("cup_id", cup.ID), zap.Error(err))
		}
	}

	status = "success"
	return cup, nil
}

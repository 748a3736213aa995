package application

import (
	"context"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetCoffee use case
type GetCoffee struct {
	cupRepository domain.CupRepository
}

// NewGetCoffee creates a new GetCoffee use case
func NewGetCoffee(cupRepository domain.CupRepository) *GetCoffee {
	return &GetCoffee{cupRepository: cupRepository}
}

// Execute returns a served cup
func (uc *GetCoffee) Execute(ctx context.Context, id int64) (*domain.Cup, error) {
	ctx, span := telemetry.StartSpan(ctx, "get_coffee",
		trace.WithAttributes(attribute.Int64("cup_id", id)),
	)
	defer span.End()

	if id < 1 {
		return nil, &domain.ValidationError{Details: []string{domain.UnknownCoffee}}
	}

	cup, err := uc.cupRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find cup")
	}
	if cup == nil {
		return nil, &domain.CoffeeNotMadeHereError{ID: id}
	}

	return cup, nil
}

// ListCoffees use case
type ListCoffees struct {
	cupRepository domain.CupRepository
}

// NewListCoffees creates a new ListCoffees use case
func NewListCoffees(cupRepository domain.CupRepository) *ListCoffees {
	return &ListCoffees{cupRepository: cupRepository}
}

// Execute returns every served cup ordered by id
func (uc *ListCoffees) Execute(ctx context.Context) ([]*domain.Cup, error) {
	ctx, span := telemetry.StartSpan(ctx, "list_coffees")
	defer span.End()

	cups, err := uc.cupRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list cups")
	}
	if cups == nil {
		cups = []*domain.Cup{}
	}
	return cups, nil
}

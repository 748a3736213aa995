package application

import (
	"context"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/pkg/errors"
)

// UpdateCoffee changes the flavor of a served cup, or serves it under the given id
type UpdateCoffee struct {
	cupRepository domain.CupRepository
}

// NewUpdateCoffee creates a new UpdateCoffee use case
func NewUpdateCoffee(cupRepository domain.CupRepository) *UpdateCoffee {
	return &UpdateCoffee{cupRepository: cupRepository}
}

// Execute replaces the cup with the given id
func (uc *UpdateCoffee) Execute(ctx context.Context, id int64, cmd *BrewCoffeeCommand) (*domain.Cup, error) {
	if id < 1 {
		return nil, &domain.ValidationError{Details: []string{domain.UnknownCoffee}}
	}

	updated, err := domain.NewCup(cmd.Flavor)
	if err != nil {
		return nil, err
	}

	existing, err := uc.cupRepository.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cup")
	}
	if existing != nil {
		updated.ServedAt = existing.ServedAt
	}
	updated.ID = id

	if err := uc.cupRepository.Save(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save cup")
	}
	return updated, nil
}

// DeleteCoffee use case
type DeleteCoffee struct {
	cupRepository domain.CupRepository
}

// NewDeleteCoffee creates a new DeleteCoffee use case
func NewDeleteCoffee(cupRepository domain.CupRepository) *DeleteCoffee {
	return &DeleteCoffee{cupRepository: cupRepository}
}

// Execute removes a served cup
func (uc *DeleteCoffee) Execute(ctx context.Context, id int64) error {
	deleted, err := uc.cupRepository.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete cup")
	}
	if !deleted {
		return &domain.CoffeeNotMadeHereError{ID: id}
	}
	return nil
}

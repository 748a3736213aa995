package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coffeeshop/coffee-system/shared/models"
)

// NothingOrdered is the detail reported when no flavor was given
const NothingOrdered = "Please order something."

// UnknownCoffee is the detail reported for ids below 1
const UnknownCoffee = "Please tell us which coffee you are referring to."

// Cup is a coffee served by the barista
type Cup struct {
	ID       int64     `json:"id"`
	Flavor   string    `json:"flavor"`
	ServedAt time.Time `json:"-"`
}

// ValidationError lists why a cup cannot be made
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details, " ")
}

// CoffeeNotMadeHereError is returned when a cup id is unknown
type CoffeeNotMadeHereError struct {
	ID int64
}

func (e *CoffeeNotMadeHereError) Error() string {
	return fmt.Sprintf("Sorry. We never made coffee with %d", e.ID)
}

// NewCup validates the flavor and creates an unsaved cup
func NewCup(flavor *string) (*Cup, error) {
	if flavor == nil {
		return nil, &ValidationError{Details: []string{NothingOrdered}}
	}
	if !models.IsKnownFlavor(*flavor) {
		return nil, &ValidationError{Details: []string{models.FlavorNotOffered}}
	}
	return &Cup{
		Flavor:   *flavor,
		ServedAt: time.Now(),
	}, nil
}

// CupRepository persists served cups
type CupRepository interface {
	// Save stores the cup. Cups without an id get the next free one; cups with an id replace any stored cup.
	Save(ctx context.Context, cup *Cup) error
	// FindByID returns nil, nil for unknown ids
	FindByID(ctx context.Context, id int64) (*Cup, error)
	FindAll(ctx context.Context) ([]*Cup, error)
	// Delete reports whether a cup was removed
	Delete(ctx context.Context, id int64) (bool, error)
}

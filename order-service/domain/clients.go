package domain

import (
	"context"
	"fmt"

	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrBaristaUnavailable marks connection failures and server errors of the barista service
	ErrBaristaUnavailable = errors.New("barista service unavailable")
	// ErrPaymentUnreachable marks connection failures towards the payment service
	ErrPaymentUnreachable = errors.New("payment service unreachable")
	// ErrPaymentFailed marks any payment failure that is neither a decline nor unreachability
	ErrPaymentFailed = errors.New("payment failed")
)

// PaymentFailedMessage is the detail reported when a charge could not be evaluated
const PaymentFailedMessage = "Something went wrong while paying for your cup."

// BaristaClient brews cups with the barista service
type BaristaClient interface {
	Brew(ctx context.Context, flavor string) (Cup, error)
}

// PaymentClient charges credit cards with the payment service
type PaymentClient interface {
	Charge(ctx context.Context, price decimal.Decimal, creditCardNumber string) (Receipt, error)
}

// BaristaRejectedError is returned when the barista service refuses an order (4xx)
type BaristaRejectedError struct {
	StatusCode int
	Response   models.ErrorResponse
	// Readable is false when the error body was empty or malformed
	Readable bool
}

func (e *BaristaRejectedError) Error() string {
	if !e.Readable {
		return fmt.Sprintf("barista rejected order with status %d", e.StatusCode)
	}
	return fmt.Sprintf("barista rejected order with status %d: %s", e.StatusCode, e.Response.Error())
}

// PaymentDeclinedError is returned when the payment service declines a charge (4xx)
type PaymentDeclinedError struct {
	StatusCode int
	Response   models.ErrorResponse
	// Readable is false when the error body was empty or malformed
	Readable bool
}

func (e *PaymentDeclinedError) Error() string {
	if !e.Readable {
		return fmt.Sprintf("payment declined with status %d", e.StatusCode)
	}
	return fmt.Sprintf("payment declined with status %d: %s", e.StatusCode, e.Response.Error())
}

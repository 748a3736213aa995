package application

import (
	"context"
	"strconv"
	"time"

	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/shared/events"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultBrewTimeout bounds the wait for the barista service before the fallback barista takes over
const DefaultBrewTimeout = 100 * time.Millisecond

// Option configures an OrderOrchestrator
type Option func(*OrderOrchestrator)

// WithBrewTimeout overrides DefaultBrewTimeout
func WithBrewTimeout(timeout time.Duration) Option {
	return func(o *OrderOrchestrator) {
		if timeout > 0 {
			o.brewTimeout = timeout
		}
	}
}

// WithOrderNumbers sets the sequence order numbers are drawn from
func WithOrderNumbers(seq *models.Sequence) Option {
	return func(o *OrderOrchestrator) {
		o.orderNumbers = seq
	}
}

// WithFallbackBarista replaces the local barista
func WithFallbackBarista(barista *domain.FallbackBarista) Option {
	return func(o *OrderOrchestrator) {
		o.fallbackBarista = barista
	}
}

// WithFallbackCash replaces the local cash register
func WithFallbackCash(cash *domain.FallbackCash) Option {
	return func(o *OrderOrchestrator) {
		o.fallbackCash = cash
	}
}

// OrderOrchestrator runs the order saga: accept, brew, charge.
// Every status is written to the store before the saga moves on.
type OrderOrchestrator struct {
	store           domain.OrderStore
	barista         domain.BaristaClient
	payment         domain.PaymentClient
	prices          *domain.PriceCatalog
	publisher       events.Publisher
	logger          *zap.Logger
	fallbackBarista *domain.FallbackBarista
	fallbackCash    *domain.FallbackCash
	orderNumbers    *models.Sequence
	brewTimeout     time.Duration
}

// NewOrderOrchestrator creates a new OrderOrchestrator
func NewOrderOrchestrator(
	store domain.OrderStore,
	barista domain.BaristaClient,
	payment domain.PaymentClient,
	prices *domain.PriceCatalog,
	publisher events.Publisher,
	logger *zap.Logger,
	opts ...Option,
) *OrderOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &OrderOrchestrator{
		store:           store,
		barista:         barista,
		payment:         payment,
		prices:          prices,
		publisher:       publisher,
		logger:          logger,
		fallbackBarista: domain.NewFallbackBarista(nil),
		fallbackCash:    domain.NewFallbackCash(nil),
		orderNumbers:    models.NewSequence(1),
		brewTimeout:     DefaultBrewTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PlaceOrder runs the saga for a new order and returns its final status.
// Any order number on the incoming order is ignored. Once started the saga is not cancelled by ctx:
// downstream calls are bounded by the brew timeout and the clients' own timeouts.
func (o *OrderOrchestrator) PlaceOrder(ctx context.Context, order domain.Order) (domain.OrderStatus, error) {
	start := time.Now()
	ctx = context.WithoutCancel(ctx)
	ctx, span := telemetry.StartSpan(ctx, "place_order",
		trace.WithAttributes(
			attribute.String("flavor", order.Flavor),
		),
	)
	defer span.End()

	var outcome = "error"
	defer func() {
		duration := time.Since(start)
		telemetry.RecordCounter(ctx, "orders_total", "Total orders placed", 1,
			attribute.String("outcome", outcome),
		)
		telemetry.RecordHistogram(ctx, "order_saga_duration_seconds", "Order saga duration", duration.Seconds(),
			attribute.String("outcome", outcome),
		)
	}()

	accepted := domain.Accepted{Order: order.WithNumber(o.orderNumbers.Next())}
	span.SetAttributes(attribute.Int64("order_number", accepted.OrderNumber()))
	if err := o.record(ctx, accepted); err != nil {
		span.RecordError(err)
		return nil, err
	}
	o.logger.Info("order accepted, making coffee",
		zap.Int64("order_number", accepted.OrderNumber()),
		zap.String("flavor", order.Flavor),
	)

	brewed := o.brew(ctx, accepted.Order)
	if err := o.record(ctx, brewed); err != nil {
		span.RecordError(err)
		return nil, err
	}

	ordered, ok := brewed.(domain.CoffeeOrdered)
	if !ok {
		outcome = string(brewed.Kind())
		return brewed, nil
	}
	o.logger.Info("coffee ordered, paying for coffee",
		zap.Int64("order_number", ordered.OrderNumber()),
		zap.Int64("cup_id", ordered.Cup.ID),
	)

	charged := o.charge(ctx, ordered)
	if err := o.record(ctx, charged); err != nil {
		span.RecordError(err)
		return nil, err
	}

	outcome = string(charged.Kind())
	span.SetAttributes(attribute.String("order_status", outcome))
	return charged, nil
}

// GetStatus returns the latest status of an order, or nil when the number was never assigned
func (o *OrderOrchestrator) GetStatus(ctx context.Context, orderNumber int64) (domain.OrderStatus, error) {
	ctx, span := telemetry.StartSpan(ctx, "get_order_status",
		trace.WithAttributes(
			attribute.Int64("order_number", orderNumber),
		),
	)
	defer span.End()

	status, err := o.store.FindByNumber(ctx, orderNumber)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find order")
	}
	return status, nil
}

type brewResult struct {
	cup domain.Cup
	err error
}

// brew asks the barista service for a cup and falls back to the local barista
// when it is slow or unavailable.
func (o *OrderOrchestrator) brew(ctx context.Context, order domain.Order) domain.OrderStatus {
	ctx, span := telemetry.StartSpan(ctx, "brew_coffee")
	defer span.End()

	brewCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan brewResult, 1)
	go func() {
		cup, err := o.barista.Brew(brewCtx, order.Flavor)
		results <- brewResult{cup: cup, err: err}
	}()

	timer := time.NewTimer(o.brewTimeout)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.err == nil {
			return domain.CoffeeOrdered{Order: order, Cup: res.cup}
		}
		span.RecordError(res.err)
		return o.recoverBrew(ctx, order, res.err)
	case <-timer.C:
		cancel()
		o.logger.Warn("barista is too slow, asking the fallback barista to cover",
			zap.Int64("order_number", order.Number()),
			zap.Duration("timeout", o.brewTimeout),
		)
		o.recordFallback(ctx, "barista", "timeout")
		return o.fallbackBarista.MakeCoffee(order)
	}
}

func (o *OrderOrchestrator) recoverBrew(ctx context.Context, order domain.Order, err error) domain.OrderStatus {
	var rejected *domain.BaristaRejectedError
	switch {
	case errors.As(err, &rejected):
		if !rejected.Readable {
			o.logger.Warn("barista rejected order without a readable reason",
				zap.Int64("order_number", order.Number()),
				zap.Int("status_code", rejected.StatusCode),
			)
			return domain.UnknownFailure(order)
		}
		o.logger.Warn("barista rejected order",
			zap.Int64("order_number", order.Number()),
			zap.String("detail", rejected.Response.Detail()),
		)
		return domain.OrderNotPossible(order, domain.ReasonBaristaUnavailable, rejected.Response)
	case errors.Is(err, domain.ErrBaristaUnavailable):
		o.logger.Warn("barista cannot process the order, asking the fallback barista",
			zap.Int64("order_number", order.Number()),
			zap.Error(err),
		)
		o.recordFallback(ctx, "barista", "unavailable")
		return o.fallbackBarista.MakeCoffee(order)
	default:
		o.logger.Error("unexpected barista failure",
			zap.Int64("order_number", order.Number()),
			zap.Error(err),
		)
		return domain.UnknownFailure(order)
	}
}

// charge bills the cup. Unreachable payment falls back to cash; declines end the saga.
func (o *OrderOrchestrator) charge(ctx context.Context, ordered domain.CoffeeOrdered) domain.OrderStatus {
	ctx, span := telemetry.StartSpan(ctx, "charge_coffee")
	defer span.End()

	order := ordered.Order
	price, ok := o.prices.Lookup(order.Flavor)
	if !ok {
		o.logger.Error("no price configured for flavor",
			zap.Int64("order_number", order.Number()),
			zap.String("flavor", order.Flavor),
		)
		return paymentNotPossible(order)
	}
	span.SetAttributes(attribute.String("price", price.String()))

	receipt, err := o.payment.Charge(ctx, price, order.CreditCardNumber)
	if err == nil {
		return domain.CoffeePayed{Order: order, Cup: ordered.Cup, Receipt: receipt}
	}
	span.RecordError(err)

	var declined *domain.PaymentDeclinedError
	switch {
	case errors.Is(err, domain.ErrPaymentUnreachable):
		o.logger.Warn("payment provider unreachable, paying by cash",
			zap.Int64("order_number", order.Number()),
			zap.Error(err),
		)
		o.recordFallback(ctx, "cash", "unreachable")
		return o.fallbackCash.PayByCash(ordered, price)
	case errors.As(err, &declined):
		o.logger.Warn("payment declined",
			zap.Int64("order_number", order.Number()),
			zap.Int("status_code", declined.StatusCode),
		)
		if !declined.Readable {
			return domain.UnknownFailure(order)
		}
		if declined.Response.Message != models.ErrorCodeInsufficientFunds {
			// malformed charge request, not a funds decision
			return domain.OrderNotPossible(order, domain.ReasonPaymentNotPossible, declined.Response)
		}
		return domain.OrderNotPossible(order, domain.ReasonInsufficientFunds, declined.Response)
	default:
		o.logger.Error("something went wrong while paying",
			zap.Int64("order_number", order.Number()),
			zap.Error(err),
		)
		return paymentNotPossible(order)
	}
}

func paymentNotPossible(order domain.Order) domain.NotPossible {
	return domain.OrderNotPossible(order, domain.ReasonPaymentNotPossible,
		models.NewErrorResponse(models.ErrorCodeInternalServerError, domain.PaymentFailedMessage))
}

// record stores the status and announces the transition. Publish failures are only logged.
func (o *OrderOrchestrator) record(ctx context.Context, status domain.OrderStatus) error {
	if err := o.store.Save(ctx, status); err != nil {
		o.logger.Error("failed to store order status",
			zap.Int64("order_number", status.OrderNumber()),
			zap.String("status", string(status.Kind())),
			zap.Error(err),
		)
		return errors.Wrap(err, "failed to save order status")
	}

	if o.publisher == nil {
		return nil
	}

	event := events.NewEvent(strconv.FormatInt(status.OrderNumber(), 10), eventType(status), domain.NewStatusView(status)).
		WithMetadata("service", "order-service")
	if err := o.publisher.Publish(ctx, event); err != nil {
		o.logger.Error("failed to publish order event",
			zap.Int64("order_number", status.OrderNumber()),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
	}
	return nil
}

func (o *OrderOrchestrator) recordFallback(ctx context.Context, fallback, cause string) {
	telemetry.RecordCounter(ctx, "order_fallbacks_total", "Total fallbacks taken by the order saga", 1,
		attribute.String("fallback", fallback),
		attribute.String("cause", cause),
	)
}

func eventType(status domain.OrderStatus) string {
	switch status.(type) {
	case domain.Accepted:
		return events.OrderAcceptedEvent
	case domain.CoffeeOrdered:
		return events.OrderCoffeeOrderedEvent
	case domain.CoffeePayed:
		return events.OrderCoffeePayedEvent
	case domain.NotPossible:
		return events.OrderNotPossibleEvent
	default:
		return "order.unknown"
	}
}

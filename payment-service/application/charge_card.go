package application

import (
	"context"
	"strings"
	"time"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/coffeeshop/coffee-system/shared/events"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ChargeCardCommand represents the command to charge a credit card
type ChargeCardCommand struct {
	Price            decimal.Decimal `json:"price"`
	CreditCardNumber string          `json:"creditCardNumber"`
}

// ChargePolicy holds the balance rules applied to every card
type ChargePolicy struct {
	StartBalance decimal.Decimal
	DebtFloor    decimal.Decimal
}

// DefaultChargePolicy starts cards at 10 and lets them go down to -10
func DefaultChargePolicy() ChargePolicy {
	return ChargePolicy{
		StartBalance: decimal.NewFromInt(10),
		DebtFloor:    decimal.NewFromInt(-10),
	}
}

type chargedPayload struct {
	ReceiptID        int64           `json:"receiptId"`
	CreditCardNumber string          `json:"creditCardNumber"`
	Price            decimal.Decimal `json:"price"`
	Balance          decimal.Decimal `json:"balance"`
}

type declinedPayload struct {
	CreditCardNumber string          `json:"creditCardNumber"`
	Price            decimal.Decimal `json:"price"`
	Reason           string          `json:"reason"`
}

// ChargeCard use case
type ChargeCard struct {
	accountRepository domain.AccountRepository
	eventPublisher    events.Publisher
	policy            ChargePolicy
	receiptIDs        *models.Sequence
	logger            *zap.Logger
}

// NewChargeCard creates a new ChargeCard use case
func NewChargeCard(
	accountRepository domain.AccountRepository,
	eventPublisher events.Publisher,
	policy ChargePolicy,
	receiptIDs *models.Sequence,
	logger *zap.Logger,
) *ChargeCard {
	if receiptIDs == nil {
		receiptIDs = models.NewSequence(1)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeCard{
		accountRepository: accountRepository,
		eventPublisher:    eventPublisher,
		policy:            policy,
		receiptIDs:        receiptIDs,
		logger:            logger,
	}
}

// Execute charges the card atomically and returns a receipt with the new balance
func (uc *ChargeCard) Execute(ctx context.Context, cmd *ChargeCardCommand) (*domain.Receipt, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "charge_card",
		trace.WithAttributes(
			attribute.String("price", cmd.Price.String()),
		),
	)
	defer span.End()

	var status = "error"
	defer func() {
		duration := time.Since(start)
		telemetry.RecordCounter(ctx, "payment_operations_total", "Total payment operations", 1,
			attribute.String("operation", "charge"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "payment_operation_duration_seconds", "Payment operation duration", duration.Seconds(),
			attribute.String("operation", "charge"),
			attribute.String("status", status),
		)
	}()

	card := strings.TrimSpace(cmd.CreditCardNumber)
	if card == "" {
		span.RecordError(domain.ErrMissingCreditCard)
		return nil, domain.ErrMissingCreditCard
	}

	account, err := uc.accountRepository.Update(ctx, card, uc.policy.StartBalance, func(account *domain.Account) error {
		return account.Charge(cmd.Price, uc.policy.DebtFloor)
	})
	if err != nil {
		span.RecordError(err)

		var funds *domain.InsufficientFundsError
		if errors.As(err, &funds) {
			status = "declined"
			uc.logger.Warn("charge declined", zap.String("price", cmd.Price.String()), zap.Error(err))
			uc.publish(ctx, events.NewEvent(card, events.PaymentDeclinedEvent, declinedPayload{
				CreditCardNumber: card,
				Price:            cmd.Price,
				Reason:           funds.Error(),
			}))
			return nil, err
		}
		if errors.Is(err, domain.ErrInvalidPrice) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to charge credit card")
	}

	receipt := &domain.Receipt{
		ID:      uc.receiptIDs.Next(),
		Balance: account.Balance,
	}

	span.SetAttributes(attribute.Int64("receipt_id", receipt.ID))
	telemetry.RecordGauge(ctx, "payment_account_balance", "Balance after the last charge", account.Balance.InexactFloat64())

	uc.publish(ctx, events.NewEvent(card, events.PaymentChargedEvent, chargedPayload{
		ReceiptID:        receipt.ID,
		CreditCardNumber: card,
		Price:            cmd.Price,
		Balance:          receipt.Balance,
	}))

	status = "success"
	return receipt, nil
}

func (uc *ChargeCard) publish(ctx context.Context, event *events.Event) {
	if uc.eventPublisher == nil {
		return
	}
	if err := uc.eventPublisher.Publish(ctx, event.WithMetadata("service", "payment-service")); err != nil {
		uc.logger.Error("failed to publish payment event", zap.String("event_type", event.EventType), zap.Error(err))
	}
}

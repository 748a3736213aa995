package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type paymentCharge struct {
	Price            decimal.Decimal `json:"price"`
	CreditCardNumber string          `json:"creditCardNumber"`
}

// HTTPPaymentClient implements PaymentClient against the payment service
type HTTPPaymentClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPaymentClient creates a new HTTPPaymentClient
func NewHTTPPaymentClient(baseURL string, timeout time.Duration) *HTTPPaymentClient {
	return &HTTPPaymentClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// Charge bills the card. Connection failures wrap ErrPaymentUnreachable, 4xx responses are
// returned as *PaymentDeclinedError and everything else, including cancellation and unreadable
// responses, wraps ErrPaymentFailed.
func (c *HTTPPaymentClient) Charge(ctx context.Context, price decimal.Decimal, creditCardNumber string) (domain.Receipt, error) {
	charge := paymentCharge{Price: price, CreditCardNumber: creditCardNumber}
	status, body, err := postJSON(ctx, c.client, joinURL(c.baseURL, "/api/charge"), charge)
	if err != nil {
		if errors.Is(err, errTransport) {
			return domain.Receipt{}, fmt.Errorf("%w: %w", domain.ErrPaymentUnreachable, err)
		}
		return domain.Receipt{}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	switch {
	case isSuccess(status):
		var receipt domain.Receipt
		if err := json.Unmarshal(body, &receipt); err != nil {
			return domain.Receipt{}, errors.Wrapf(domain.ErrPaymentFailed, "failed to decode receipt: %v", err)
		}
		return receipt, nil
	case isClientError(status):
		resp, ok := models.ParseErrorResponse(body)
		return domain.Receipt{}, &domain.PaymentDeclinedError{
			StatusCode: status,
			Response:   resp,
			Readable:   ok,
		}
	default:
		return domain.Receipt{}, errors.Wrapf(domain.ErrPaymentFailed, "payment responded with status %d", status)
	}
}

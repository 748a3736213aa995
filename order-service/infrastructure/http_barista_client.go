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
)

type cupOrder struct {
	Flavor string `json:"flavor"`
}

// HTTPBaristaClient implements BaristaClient against the barista service
type HTTPBaristaClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBaristaClient creates a new HTTPBaristaClient
func NewHTTPBaristaClient(baseURL string, timeout time.Duration) *HTTPBaristaClient {
	return &HTTPBaristaClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// Brew orders a cup. Connection failures, unreadable or malformed responses and 5xx responses wrap
// ErrBaristaUnavailable; 4xx responses are returned as *BaristaRejectedError. Cancellation of ctx is
// returned as is.
func (c *HTTPBaristaClient) Brew(ctx context.Context, flavor string) (domain.Cup, error) {
	status, body, err := postJSON(ctx, c.client, joinURL(c.baseURL, "/api/coffees"), cupOrder{Flavor: flavor})
	if err != nil {
		if ctx.Err() != nil {
			return domain.Cup{}, err
		}
		return domain.Cup{}, fmt.Errorf("%w: %w", domain.ErrBaristaUnavailable, err)
	}

	switch {
	case isSuccess(status):
		var cup domain.Cup
		if err := json.Unmarshal(body, &cup); err != nil {
			return domain.Cup{}, errors.Wrapf(domain.ErrBaristaUnavailable, "failed to decode cup: %v", err)
		}
		return cup, nil
	case isClientError(status):
		resp, ok := models.ParseErrorResponse(body)
		return domain.Cup{}, &domain.BaristaRejectedError{
			StatusCode: status,
			Response:   resp,
			Readable:   ok,
		}
	default:
		return domain.Cup{}, errors.Wrapf(domain.ErrBaristaUnavailable, "barista responded with status %d", status)
	}
}

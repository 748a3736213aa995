package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coffeeshop/coffee-system/order-service/application"
	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/order-service/infrastructure"
	"github.com/coffeeshop/coffee-system/order-service/mocks"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerPrices = domain.NewPriceCatalog(map[string]decimal.Decimal{
	"espresso": decimal.RequireFromString("2.20"),
	"black":    decimal.RequireFromString("2.50"),
})

func newRouter(t *testing.T, setup func(*mocks.MockBaristaClient, *mocks.MockPaymentClient)) (*chi.Mux, *infrastructure.MemoryOrderStore) {
	barista := mocks.NewMockBaristaClient(t)
	payment := mocks.NewMockPaymentClient(t)
	setup(barista, payment)

	store := infrastructure.NewMemoryOrderStore()
	orchestrator := application.NewOrderOrchestrator(store, barista, payment, handlerPrices, nil, nil)

	r := chi.NewRouter()
	NewOrderHandlers(orchestrator, nil).RegisterRoutes(r)
	return r, store
}

func TestOrderHandlers_PlaceOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockBaristaClient, *mocks.MockPaymentClient)
		wantCode   int
		wantStatus domain.StatusKind
		wantReason domain.Reason
	}{
		{
			name: "coffee payed",
			body: `{"flavor":"Espresso","creditCardNumber":"4111"}`,
			setup: func(b *mocks.MockBaristaClient, p *mocks.MockPaymentClient) {
				b.EXPECT().Brew(mock.Anything, "Espresso").Return(domain.Cup{ID: 1, Flavor: "Espresso"}, nil).Once()
				p.EXPECT().Charge(mock.Anything, mock.Anything, "4111").
					Return(domain.Receipt{ID: 1, Balance: decimal.RequireFromString("7.80")}, nil).Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: domain.StatusCoffeePayed,
		},
		{
			name: "unknown flavor",
			body: `{"flavor":"Latte Macchiato","creditCardNumber":"4111"}`,
			setup: func(b *mocks.MockBaristaClient, p *mocks.MockPaymentClient) {
				b.EXPECT().Brew(mock.Anything, "Latte Macchiato").
					Return(domain.Cup{}, errors.Wrap(domain.ErrBaristaUnavailable, "down")).Once()
			},
			wantCode:   http.StatusBadRequest,
			wantStatus: domain.StatusNotPossible,
			wantReason: domain.ReasonBaristaUnavailable,
		},
		{
			name: "insufficient funds",
			body: `{"flavor":"Black","creditCardNumber":"4111"}`,
			setup: func(b *mocks.MockBaristaClient, p *mocks.MockPaymentClient) {
				b.EXPECT().Brew(mock.Anything, "Black").Return(domain.Cup{ID: 1, Flavor: "Black"}, nil).Once()
				p.EXPECT().Charge(mock.Anything, mock.Anything, "4111").
					Return(domain.Receipt{}, &domain.PaymentDeclinedError{
						StatusCode: 400,
						Response:   models.NewErrorResponse(models.ErrorCodeInsufficientFunds, "Insufficient funds for credit card: 4111"),
						Readable:   true,
					}).Once()
			},
			wantCode:   http.StatusBadRequest,
			wantStatus: domain.StatusNotPossible,
			wantReason: domain.ReasonInsufficientFunds,
		},
		{
			name: "payment not possible",
			body: `{"flavor":"Black","creditCardNumber":"4111"}`,
			setup: func(b *mocks.MockBaristaClient, p *mocks.MockPaymentClient) {
				b.EXPECT().Brew(mock.Anything, "Black").Return(domain.Cup{ID: 1, Flavor: "Black"}, nil).Once()
				p.EXPECT().Charge(mock.Anything, mock.Anything, "4111").
					Return(domain.Receipt{}, domain.ErrPaymentFailed).Once()
			},
			wantCode:   http.StatusInternalServerError,
			wantStatus: domain.StatusNotPossible,
			wantReason: domain.ReasonPaymentNotPossible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(t, tt.setup)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var view domain.StatusView
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
			assert.Equal(t, tt.wantStatus, view.Status)
			assert.Equal(t, tt.wantReason, view.Reason)
			assert.Equal(t, int64(1), view.Order.Number())
		})
	}
}

func TestOrderHandlers_PlaceOrder_InvalidBody(t *testing.T) {
	r, _ := newRouter(t, func(*mocks.MockBaristaClient, *mocks.MockPaymentClient) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, models.ErrorCodeBadRequest, resp.Message)
}

func TestOrderHandlers_GetOrderStatus(t *testing.T) {
	r, store := newRouter(t, func(*mocks.MockBaristaClient, *mocks.MockPaymentClient) {})
	order := domain.Order{Flavor: "Espresso", CreditCardNumber: "4111"}.WithNumber(5)
	require.NoError(t, store.Save(context.Background(), domain.CoffeeOrdered{
		Order: order,
		Cup:   domain.Cup{ID: 2, Flavor: "Espresso"},
	}))

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "known order", path: "/api/order/5", wantCode: http.StatusOK},
		{name: "unknown order", path: "/api/order/6", wantCode: http.StatusNotFound},
		{name: "invalid order number", path: "/api/order/abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var view domain.StatusView
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
				assert.Equal(t, domain.StatusCoffeeOrdered, view.Status)
				require.NotNil(t, view.Cup)
				assert.Equal(t, int64(2), view.Cup.ID)
				assert.Nil(t, view.Receipt)
			}
		})
	}
}

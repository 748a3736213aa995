package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coffeeshop/coffee-system/barista-service/application"
	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/barista-service/infrastructure"
	"github.com/coffeeshop/coffee-system/barista-service/mocks"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(repo domain.CupRepository) *chi.Mux {
	h := NewBaristaHandlers(
		application.NewBrewCoffee(repo, nil, 0, nil),
		application.NewGetCoffee(repo),
		application.NewListCoffees(repo),
		application.NewUpdateCoffee(repo),
		application.NewDeleteCoffee(repo),
		nil,
	)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, body))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestBaristaHandlers_BrewCoffee(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantFlavor  string
		wantDetails []string
	}{
		{
			name:       "known flavor",
			body:       `{"flavor":"Espresso"}`,
			wantCode:   http.StatusOK,
			wantFlavor: "Espresso",
		},
		{
			name:        "unknown flavor",
			body:        `{"flavor":"Latte Macchiato"}`,
			wantCode:    http.StatusBadRequest,
			wantDetails: []string{models.FlavorNotOffered},
		},
		{
			name:        "no flavor",
			body:        `{}`,
			wantCode:    http.StatusBadRequest,
			wantDetails: []string{domain.NothingOrdered},
		},
		{
			name:        "malformed body",
			body:        `{"flavor":`,
			wantCode:    http.StatusBadRequest,
			wantDetails: []string{"Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newRouter(infrastructure.NewMemoryCupRepository()), http.MethodPost, "/api/coffees", strings.NewReader(tt.body))
			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantDetails != nil {
				resp := decodeError(t, rec)
				assert.Equal(t, models.ErrorCodeBadRequest, resp.Message)
				assert.Equal(t, tt.wantDetails, resp.Details)
				return
			}

			var cup domain.Cup
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&cup))
			assert.Equal(t, int64(1), cup.ID)
			assert.Equal(t, tt.wantFlavor, cup.Flavor)
		})
	}
}

func TestBaristaHandlers_GetCoffee(t *testing.T) {
	r := newRouter(infrastructure.NewMemoryCupRepository())
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/coffees", strings.NewReader(`{"flavor":"Melange"}`)).Code)

	rec := do(r, http.MethodGet, "/api/coffees/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"flavor":"Melange"}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/coffees/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.NewErrorResponse(models.ErrorCodeIncorrectRequest, "Sorry. We never made coffee with 42"), decodeError(t, rec))

	for _, id := range []string{"0", "-1", "abc"} {
		rec = do(r, http.MethodGet, "/api/coffees/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestBaristaHandlers_ListCoffees(t *testing.T) {
	r := newRouter(infrastructure.NewMemoryCupRepository())

	rec := do(r, http.MethodGet, "/api/coffees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	do(r, http.MethodPost, "/api/coffees", strings.NewReader(`{"flavor":"Black"}`))
	do(r, http.MethodPost, "/api/coffees", strings.NewReader(`{"flavor":"Ristretto"}`))

	rec = do(r, http.MethodGet, "/api/coffees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"flavor":"Black"},{"id":2,"flavor":"Ristretto"}]`, rec.Body.String())
}

func TestBaristaHandlers_UpdateAndDeleteCoffee(t *testing.T) {
	r := newRouter(infrastructure.NewMemoryCupRepository())
	do(r, http.MethodPost, "/api/coffees", strings.NewReader(`{"flavor":"Black"}`))

	rec := do(r, http.MethodPut, "/api/coffees/1", strings.NewReader(`{"flavor":"Cappuccino"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"flavor":"Cappuccino"}`, rec.Body.String())

	rec = do(r, http.MethodPut, "/api/coffees/1", strings.NewReader(`{"flavor":"Tea"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodDelete, "/api/coffees/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodDelete, "/api/coffees/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBaristaHandlers_RepositoryFailure(t *testing.T) {
	repo := mocks.NewMockCupRepository(t)
	repo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("connection refused"))

	rec := do(newRouter(repo), http.MethodGet, "/api/coffees", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, models.ErrorCodeInternalServerError, decodeError(t, rec).Message)
}

package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestGetStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 101, want: "1xx"},
		{code: 200, want: "2xx"},
		{code: 302, want: "3xx"},
		{code: 404, want: "4xx"},
		{code: 500, want: "5xx"},
		{code: 0, want: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getStatusClass(tt.code))
	}
}

func TestMiddleware(t *testing.T) {
	tel := NewTelemetry(Config{ServiceName: "test-service", ServiceVersion: "test"})

	var seen *Telemetry
	r := chi.NewRouter()
	r.Use(Middleware(tel))
	r.Get("/api/order/{id}", func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order/7", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Same(t, tel, seen)
	assert.Equal(t, "test-service", GetServiceName(WithTelemetry(context.Background(), tel)))
}

func TestFromContext_WithoutTelemetry(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Equal(t, "unknown", GetServiceName(ctx))

	// Falls back to global providers instead of panicking
	_, span := StartSpan(ctx, "noop")
	span.End()
	RecordCounter(ctx, "test_counter_total", "test", 1)
}

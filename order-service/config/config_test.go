package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "order-service", cfg.ServiceName)
	assert.Equal(t, 100*time.Millisecond, cfg.Barista.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Payment.HTTPTimeout)
	assert.Equal(t, "2.20", cfg.Prices["espresso"])
	assert.Len(t, cfg.Prices, 5)
}

func TestReadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ORDER_PORT", "9090")
	t.Setenv("ORDER_BARISTA_TIMEOUT", "250ms")
	t.Setenv("ORDER_PAYMENT_ENDPOINT", "http://payment:8080")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Barista.Timeout)
	assert.Equal(t, "http://payment:8080", cfg.Payment.Endpoint)
}

func TestBuildDependencies(t *testing.T) {
	deps, err := BuildDependencies(context.Background(), &Config{
		LogLevel: "error",
		Prices:   map[string]string{"espresso": "2.20", "black": "2.50"},
	})
	require.NoError(t, err)
	defer deps.Close()

	assert.Equal(t, 2, deps.Prices.Len())
	assert.NotNil(t, deps.OrderHandlers)
	assert.Nil(t, deps.Telemetry)

	_, err = BuildDependencies(context.Background(), &Config{Prices: map[string]string{"black": "free"}})
	assert.ErrorContains(t, err, "failed to parse prices")
}

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
	t.Setenv("BARISTA_BREW_DELAY", "250ms")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "barista-service", cfg.ServiceName)
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 250*time.Millisecond, cfg.BrewDelay)
}

func TestBuildDependencies_Memory(t *testing.T) {
	deps, err := BuildDependencies(context.Background(), &Config{LogLevel: "error", Storage: StorageMemory})
	require.NoError(t, err)
	defer deps.Close()

	assert.NotNil(t, deps.BaristaHandlers)
	assert.Nil(t, deps.DB)
	assert.Nil(t, deps.Telemetry)
}

func TestBuildDependencies_UnknownStorage(t *testing.T) {
	_, err := BuildDependencies(context.Background(), &Config{Storage: "cassandra"})
	assert.EqualError(t, err, `unknown storage "cassandra"`)
}

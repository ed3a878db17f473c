package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("SECURE_DATA_ADDRESS", "gw.example.com:9000")
	t.Setenv("SECURE_DATA_TIMEOUT", "3s")

	cfg, rest, err := GetClientConfig([]string{"-a", "localhost:8080", "-t", "tok", "-p", "2", "execute", "event.json"})
	require.NoError(t, err)

	assert.Equal(t, "gw.example.com:9000", cfg.Address)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"execute", "event.json"}, rest)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, _, err := GetClientConfig([]string{"-a", "localhost:8080", "version"})
	require.NoError(t, err)
	assert.Equal(t, defaultClientParallelism, cfg.Parallelism)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	_, _, err := GetClientConfig([]string{"version"})
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-p", "many"})
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "SIM_LATENCY", "PAYMENT_FAILURE_RATE", "SEED_DATA", "CORS_ALLOWED_ORIGINS", "JWT_TTL"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, time.Second, env.SimLatency)
	assert.Equal(t, 2*time.Second, env.PaymentLatency)
	assert.InDelta(t, 0.1, env.PaymentFailureRate, 1e-9)
	assert.True(t, env.SeedData)
	assert.Equal(t, 24*time.Hour, env.JWTTTL)
	assert.Equal(t, defaultOrigins, env.CORSAllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SIM_LATENCY", "250")
	t.Setenv("PAYMENT_LATENCY", "1500ms")
	t.Setenv("PAYMENT_FAILURE_RATE", "2")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://zambus.co.zm , ,http://localhost:8081")

	env := LoadEnv()
	assert.Equal(t, 250*time.Millisecond, env.SimLatency)
	assert.Equal(t, 1500*time.Millisecond, env.PaymentLatency)
	assert.InDelta(t, 0.1, env.PaymentFailureRate, 1e-9, "out of range rates fall back")
	assert.False(t, env.SeedData)
	assert.Equal(t, []string{"https://zambus.co.zm", "http://localhost:8081"}, env.CORSAllowedOrigins)
}

func TestBlankOriginListFallsBack(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
	assert.Equal(t, defaultOrigins, LoadEnv().CORSAllowedOrigins)
}

func TestValidateRequiresSecretInRelease(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "release")
	env := LoadEnv()
	assert.Equal(t, DevJWTSecret, env.JWTSecret)
	assert.Error(t, env.Validate())

	t.Setenv("JWT_SECRET", "a-real-secret")
	assert.NoError(t, LoadEnv().Validate())

	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "debug")
	assert.NoError(t, LoadEnv().Validate(), "development keeps the built-in secret")
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ZAMBUS_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ZAMBUS_TEST_VALUE") })
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("ZAMBUS_TEST_VALUE"))
}

func TestConnectDBRequiresDSN(t *testing.T) {
	_, err := ConnectDB(t.Context(), " ")
	assert.Error(t, err)
}

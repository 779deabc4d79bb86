package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(10020030), cfg.RoutingNumber)
	assert.True(t, cfg.OverdraftLimit.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(1000000000), cfg.AccountNumberBase)
	assert.Equal(t, int64(2000000000), cfg.MaxAccountNumber)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestLoadZeroNumberBase(t *testing.T) {
	t.Setenv("ACCOUNT_NUMBER_BASE", "0")
	t.Setenv("MAX_ACCOUNT_NUMBER", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.AccountNumberBase)
	assert.Equal(t, int64(500), cfg.MaxAccountNumber)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OVERDRAFT_LIMIT", "250.50")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.OverdraftLimit.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "negative overdraft", env: map[string]string{"OVERDRAFT_LIMIT": "-1"}},
		{name: "ceiling below base", env: map[string]string{"ACCOUNT_NUMBER_BASE": "500", "MAX_ACCOUNT_NUMBER": "500"}},
		{name: "bad routing number", env: map[string]string{"ROUTING_NUMBER": "abc"}},
		{name: "bad overdraft", env: map[string]string{"OVERDRAFT_LIMIT": "lots"}},
		{name: "unknown currency", env: map[string]string{"CURRENCY": "XXQ"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config.Load")
		})
	}
}

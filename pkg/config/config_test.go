package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 500, cfg.RateLimitAPI)
	assert.Equal(t, 20, cfg.RateLimitAuth)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("RATE_LIMIT_AUTH", "5")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.RateLimitAuth)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabaseDriver:       DriverSQLite,
			DatabasePath:         "x.db",
			SessionTTL:           time.Hour,
			SessionSweepInterval: time.Hour,
			RateLimitWindow:      time.Minute,
			RateLimitAPI:         1,
			RateLimitAuth:        1,
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.DatabaseDriver = DriverPostgres
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg = valid()
	cfg.DatabaseDriver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "unsupported")

	cfg = valid()
	cfg.Environment = "production"
	cfg.SessionSecret = defaultSessionSecret
	assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")

	cfg = valid()
	cfg.RateLimitAPI = 0
	assert.ErrorContains(t, cfg.Validate(), "rate limits")
}

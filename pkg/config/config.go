package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSessionSecret = "change-me-in-production"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"APP_ENV"`
	CORSOrigin  string `mapstructure:"CORS_ORIGIN"`
	StaticDir   string `mapstructure:"STATIC_DIR"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	SessionSecret        string        `mapstructure:"SESSION_SECRET"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	RedisURL        string        `mapstructure:"REDIS_URL"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	RateLimitAPI    int           `mapstructure:"RATE_LIMIT_API"`
	RateLimitAuth   int           `mapstructure:"RATE_LIMIT_AUTH"`
	TrustedProxies  []string      `mapstructure:"TRUSTED_PROXIES"`

	DefaultMemberPassword string `mapstructure:"DEFAULT_MEMBER_PASSWORD"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// IsProduction reports whether the server runs behind the production proxy.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// SetDefaults registers every key with its default so AutomaticEnv and
// Unmarshal can see it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("STATIC_DIR", "dist")

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "data/liberty.db")
	v.SetDefault("DATABASE_URL", "")

	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", 7*24*time.Hour)
	v.SetDefault("SESSION_SWEEP_INTERVAL", time.Hour)

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("RATE_LIMIT_API", 500)
	v.SetDefault("RATE_LIMIT_AUTH", 20)
	v.SetDefault("TRUSTED_PROXIES", []string{"127.0.0.1"})

	v.SetDefault("DEFAULT_MEMBER_PASSWORD", "liberty")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads the optional dotenv files, then the environment, into a Config.
// Flags bound on v take precedence over both.
func Load(v *viper.Viper, envFiles ...string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(envFiles...)

	SetDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.SessionSweepInterval <= 0 {
		errs = append(errs, errors.New("SESSION_SWEEP_INTERVAL must be positive"))
	}
	if c.RateLimitWindow <= 0 || c.RateLimitAPI <= 0 || c.RateLimitAuth <= 0 {
		errs = append(errs, errors.New("rate limits must be positive"))
	}
	if c.IsProduction() && (c.SessionSecret == "" || c.SessionSecret == defaultSessionSecret) {
		errs = append(errs, errors.New("SESSION_SECRET must be set in production"))
	}

	return errors.Join(errs...)
}

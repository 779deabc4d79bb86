package config

import (
	"errors"
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	RoutingNumber     int64           `env:"ROUTING_NUMBER" envDefault:"10020030"`
	OverdraftLimit    decimal.Decimal `env:"OVERDRAFT_LIMIT" envDefault:"100"`
	AccountNumberBase int64           `env:"ACCOUNT_NUMBER_BASE" envDefault:"1000000000"`
	MaxAccountNumber  int64           `env:"MAX_ACCOUNT_NUMBER" envDefault:"2000000000"`

	Currency string `env:"CURRENCY" envDefault:"EUR"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.OverdraftLimit.IsNegative() {
		return errors.New("OVERDRAFT_LIMIT must not be negative")
	}
	if c.AccountNumberBase < 0 {
		return errors.New("ACCOUNT_NUMBER_BASE must not be negative")
	}
	if c.MaxAccountNumber <= c.AccountNumberBase {
		return errors.New("MAX_ACCOUNT_NUMBER must be above ACCOUNT_NUMBER_BASE")
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("CURRENCY: %w", err)
	}
	return nil
}

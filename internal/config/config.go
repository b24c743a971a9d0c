package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LEDGER"

// Environment represents the deployment environment of the client.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment normalises v. Unknown values fall back to Development.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

// APIConfig locates the remote product collection.
type APIConfig struct {
	BaseURL string        `split_words:"true" default:"http://localhost:8080"`
	Timeout time.Duration `default:"10s"`
	// UnitPriceKey is the JSON key new records carry their unit price under:
	// unitPrice, or quotedUnitPrice for the quote-desk backend.
	UnitPriceKey string `split_words:"true" default:"unitPrice"`
}

// Config is read from LEDGER_* environment variables, optionally seeded from a .env file.
type Config struct {
	Environment string `default:"development"`
	Currency    string `default:"OMR"`
	API         APIConfig
}

// Env returns the parsed environment.
func (c *Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

// Load reads envFile if it exists (variables already set win) and then the
// process environment. A missing envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if cfg.API.Timeout < 0 {
		return nil, fmt.Errorf("process env config: %s_API_TIMEOUT must not be negative", Prefix)
	}
	return &cfg, nil
}

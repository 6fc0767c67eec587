// Package config loads the process configuration from the environment, with
// an optional .env file applied first.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/walletmonitor/internal/chainregistry"
	"github.com/gabapcia/walletmonitor/internal/pkg/validator"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ChainConfig overrides the built-in settings of one chain.
type ChainConfig struct {
	APIKey string `envconfig:"API_KEY"`
	APIURL string `envconfig:"API_URL"`
	RPCURL string `envconfig:"RPC_URL"`
}

type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development" validate:"oneof=development production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Telemetry struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"walletmonitor"`
	} `envconfig:"OTEL"`

	Redis struct {
		Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`

		// LockTTL bounds how long a crashed process keeps the batch lock.
		LockTTL time.Duration `envconfig:"LOCK_TTL" default:"30s" validate:"gte=1s"`
	} `envconfig:"REDIS"`

	Postgres struct {
		DSN string `envconfig:"DSN" default:"postgres://localhost:5432/walletmonitor?sslmode=disable" validate:"required"`
	} `envconfig:"POSTGRES"`

	Etherscan ChainConfig `envconfig:"ETHERSCAN"`
	Bscscan   ChainConfig `envconfig:"BSCSCAN"`

	Explorer struct {
		RPS          float64       `envconfig:"RPS" default:"5"`
		Burst        int           `envconfig:"BURST" default:"1" validate:"gte=1"`
		PageSize     int           `envconfig:"PAGE_SIZE" default:"100" validate:"gte=1,lte=10000"`
		HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
		HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`
	} `envconfig:"EXPLORER"`

	Schedule struct {
		DailyHour     int `envconfig:"DAILY_HOUR" default:"2" validate:"gte=0,lte=23"`
		FrequentHours int `envconfig:"FREQUENT_HOURS" default:"4" validate:"gte=1,lte=23"`
		ProbeMinutes  int `envconfig:"PROBE_MINUTES" default:"5" validate:"gte=1,lte=59"`
	} `envconfig:"SCHEDULE"`

	Monitor struct {
		WalletDelay   time.Duration `envconfig:"WALLET_DELAY" default:"200ms" validate:"gte=0"`
		WalletTimeout time.Duration `envconfig:"WALLET_TIMEOUT" default:"2m" validate:"gt=0"`
	} `envconfig:"MONITOR"`
}

// IsProduction reports whether the process runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Chains returns the built-in chains with the configured keys and endpoints
// applied. Empty overrides keep the built-in values.
func (c Config) Chains() []chainregistry.Chain {
	overrides := map[int64]ChainConfig{
		chainregistry.Ethereum: c.Etherscan,
		chainregistry.BSC:      c.Bscscan,
	}

	chains := chainregistry.DefaultChains()
	for i, chain := range chains {
		o := overrides[chain.ID]

		chain.APIKey = o.APIKey
		chain.RPCURL = o.RPCURL
		if o.APIURL != "" {
			chain.APIURL = o.APIURL
		}

		chains[i] = chain
	}

	return chains
}

// Load reads the given .env files, falling back to ".env", and then the
// environment. Missing files are ignored and variables already set in the
// environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

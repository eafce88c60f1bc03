package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	applog "github.com/sheikh-saqib/account-ledger/internal/log"
	"github.com/sheikh-saqib/account-ledger/internal/models"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Opening balance, as text so Validate can report bad input
	InitialBalance string
}

// LoadEnvFile loads a .env file for local runs. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		LogLevel:       getEnv("LEDGER_LOG_LEVEL", "warn"),
		LogFormat:      getEnv("LEDGER_LOG_FORMAT", applog.FormatText),
		InitialBalance: getEnv("LEDGER_INITIAL_BALANCE", models.FormatAmount(models.InitialBalance)),
	}
}

// Validate returns every problem found, combined into one error.
func (c *Config) Validate() error {
	var errors []string

	if _, ok := applog.ParseLevel(c.LogLevel); !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if c.LogFormat != applog.FormatText && c.LogFormat != applog.FormatJSON {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if _, err := models.ParseAmount(c.InitialBalance); err != nil {
		errors = append(errors, fmt.Sprintf("invalid initial balance '%s': must be a non-negative decimal number", c.InitialBalance))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Opening returns the validated opening balance. Call Validate first.
func (c *Config) Opening() decimal.Decimal {
	d, err := models.ParseAmount(c.InitialBalance)
	if err != nil {
		return models.InitialBalance
	}
	return d
}

// Logger builds the application logger described by the config.
func (c *Config) Logger() *applog.Logger {
	cfg := applog.DefaultConfig()
	if level, ok := applog.ParseLevel(c.LogLevel); ok {
		cfg.Level = level
	}
	cfg.Format = c.LogFormat
	return applog.New(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

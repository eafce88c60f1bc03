package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "")
	t.Setenv("LEDGER_LOG_FORMAT", "")
	t.Setenv("LEDGER_INITIAL_BALANCE", "")

	cfg := Load()
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" || cfg.InitialBalance != "1000.00" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if !cfg.Opening().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("Opening() = %s, want 1000", cfg.Opening())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_LOG_FORMAT", "json")
	t.Setenv("LEDGER_INITIAL_BALANCE", "250.5")

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Opening().StringFixed(2) != "250.50" {
		t.Fatalf("Opening() = %s, want 250.50", cfg.Opening())
	}
	if cfg.Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			config:  Config{LogLevel: "info", LogFormat: "text", InitialBalance: "1000.00"},
			wantErr: false,
		},
		{
			name:    "zero opening balance",
			config:  Config{LogLevel: "error", LogFormat: "json", InitialBalance: "0"},
			wantErr: false,
		},
		{
			name:        "unknown log level",
			config:      Config{LogLevel: "loud", LogFormat: "text", InitialBalance: "1000.00"},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "unknown log format",
			config:      Config{LogLevel: "warn", LogFormat: "xml", InitialBalance: "1000.00"},
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "negative opening balance",
			config:      Config{LogLevel: "warn", LogFormat: "text", InitialBalance: "-1"},
			wantErr:     true,
			errorString: "invalid initial balance '-1'",
		},
		{
			name:        "non-numeric opening balance",
			config:      Config{LogLevel: "warn", LogFormat: "text", InitialBalance: "lots"},
			wantErr:     true,
			errorString: "invalid initial balance 'lots'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{LogLevel: "loud", LogFormat: "xml", InitialBalance: "abc"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", n, err)
	}
}

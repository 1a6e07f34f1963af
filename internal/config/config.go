package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime settings. Defaults are overridden by an
// optional TOML file, which is in turn overridden by environment
// variables.
type Config struct {
	// Storage
	DataBackend  string `toml:"data_backend"`
	DataFile     string `toml:"data_file"`
	SQLiteDBPath string `toml:"sqlite_db_path"`

	// Week and display
	WeekStartDay   string `toml:"week_start_day"`
	CurrencySymbol string `toml:"currency_symbol"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// DefaultConfigFile is looked up in the working directory when
// BUDGET_CONFIG is unset.
const DefaultConfigFile = "budget.toml"

func Load() (*Config, error) {
	cfg := &Config{
		DataBackend:    "file",
		DataFile:       "./data/budget.json",
		SQLiteDBPath:   "./data/budget.db",
		WeekStartDay:   "sunday",
		CurrencySymbol: "रु.",
		LogLevel:       "info",
	}

	path := os.Getenv("BUDGET_CONFIG")
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	cfg.DataBackend = getEnv("DATA_BACKEND", cfg.DataBackend)
	cfg.DataFile = getEnv("DATA_FILE", cfg.DataFile)
	cfg.SQLiteDBPath = getEnv("SQLITE_DB_PATH", cfg.SQLiteDBPath)
	cfg.WeekStartDay = getEnv("WEEK_START_DAY", cfg.WeekStartDay)
	cfg.CurrencySymbol = getEnv("CURRENCY_SYMBOL", cfg.CurrencySymbol)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// WeekStart returns the configured week-start weekday. Call Validate
// first; an unparseable value falls back to Sunday here.
func (c *Config) WeekStart() time.Weekday {
	d, err := ParseWeekday(c.WeekStartDay)
	if err != nil {
		return time.Sunday
	}
	return d
}

// ParseWeekday maps a lowercase English weekday name to time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", s)
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"file", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "file" && c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty when using file backend")
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if _, err := ParseWeekday(c.WeekStartDay); err != nil {
		errors = append(errors, fmt.Sprintf("invalid week start day '%s': must be an English weekday name", c.WeekStartDay))
	}

	if c.CurrencySymbol == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

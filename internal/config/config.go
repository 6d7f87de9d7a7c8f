// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/gridcal/internal/calendar"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// CalendarConfig selects the calendar all date math runs against.
type CalendarConfig struct {
	WeekStart string `toml:"week_start"` // "sunday" or "monday"
	TimeZone  string `toml:"time_zone"`  // "Local", "UTC" or an IANA name like "Europe/Berlin"
	Locale    string `toml:"locale"`     // e.g. "de_DE"; empty uses the process locale
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color  bool `toml:"color"`
	Months int  `toml:"months"` // months printed side by side
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text" or "json"
}

// MaxMonths bounds UIConfig.Months.
const MaxMonths = 12

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekStart: "sunday",
			TimeZone:  "Local",
			Locale:    "", // Empty means LC_ALL / LC_TIME / LANG
		},
		UI: UIConfig{
			Color:  true,
			Months: 1,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gridcal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFile loads configuration from path without environment overrides,
// as it is stored on disk. Use it when the result will be written back.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("GRIDCAL_WEEK_START"); v != "" {
		cfg.Calendar.WeekStart = v
	}
	if v := os.Getenv("GRIDCAL_TIME_ZONE"); v != "" {
		cfg.Calendar.TimeZone = v
	}
	if v := os.Getenv("GRIDCAL_LOCALE"); v != "" {
		cfg.Calendar.Locale = v
	}

	if v := os.Getenv("GRIDCAL_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GRIDCAL_COLOR: %w", err)
		}
		cfg.UI.Color = b
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.Color = false
	}
	if v := os.Getenv("GRIDCAL_MONTHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRIDCAL_MONTHS: %w", err)
		}
		cfg.UI.Months = n
	}

	if v := os.Getenv("GRIDCAL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GRIDCAL_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Calendar.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("week_start must be sunday or monday, got %q", c.Calendar.WeekStart)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.UI.Months < 1 || c.UI.Months > MaxMonths {
		return fmt.Errorf("months must be between 1 and %d, got %d", MaxMonths, c.UI.Months)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be text or json")
	}
	return nil
}

// StartWithMonday reports whether weeks begin on Monday.
func (c *Config) StartWithMonday() bool {
	return strings.EqualFold(c.Calendar.WeekStart, "monday")
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Calendar.TimeZone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Calendar.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time_zone %q: %w", c.Calendar.TimeZone, err)
	}
	return loc, nil
}

// Definition returns the calendar definition described by the config.
func (c *Config) Definition() (calendar.Definition, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return calendar.NewGregorian(loc), nil
}

// Formatter returns the name formatter for the configured locale, falling
// back to the process locale.
func (c *Config) Formatter() *calendar.LocaleFormatter {
	if c.Calendar.Locale == "" {
		return calendar.DefaultFormatter()
	}
	return calendar.NewFormatter(calendar.ParseLocale(c.Calendar.Locale))
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	path = expandPath(path)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

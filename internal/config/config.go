package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pippsza/clickup/internal/model"
)

// Config holds the environment-level application configuration. Billing
// defaults live in Settings; the preference store may further override
// them per user.
type Config struct {
	Token        string
	TeamID       string
	Port         string
	GinMode      string
	LogLevel     string
	LogJSON      bool
	ReportsDir   string
	DashboardDir string
	PrefsFile    string

	// Settings resolved from built-in defaults plus environment
	// overrides. Not yet merged with the saved preference file.
	Settings model.Settings
}

// Load reads configuration from the environment, trying .env files in
// the working directory and one level up. A malformed numeric override
// is a configuration error and refuses to load.
func Load() (*Config, error) {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := &Config{
		Token:        os.Getenv("CLICKUP_TOKEN"),
		TeamID:       os.Getenv("TEAM_ID"),
		Port:         envOr("PORT", "3001"),
		GinMode:      envOr("GIN_MODE", "release"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		LogJSON:      os.Getenv("LOG_JSON") == "true",
		ReportsDir:   envOr("REPORTS_DIR", "reports"),
		DashboardDir: os.Getenv("DASHBOARD_DIR"),
		PrefsFile:    os.Getenv("PREFERENCES_FILE"),
		Settings:     model.DefaultSettings(),
	}

	if err := applyEnvOverrides(&cfg.Settings); err != nil {
		return nil, err
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("environment settings: %w", err)
	}

	return cfg, nil
}

// RequireToken fails when no ClickUp token is configured. Commands that
// never touch the API (demo, config) skip this check.
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return model.ErrMissingToken
	}
	return nil
}

func applyEnvOverrides(s *model.Settings) error {
	if v := os.Getenv("HOURLY_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("HOURLY_RATE %q: %w", v, err)
		}
		s.HourlyRate = rate
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		s.Currency = v
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TAX_RATE %q: %w", v, err)
		}
		s.TaxRate = rate
	}
	if v := os.Getenv("ROUND_TO_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROUND_TO_MINUTES %q: %w", v, err)
		}
		s.RoundToMinutes = n
	}
	if v := os.Getenv("SORT_BY"); v != "" {
		s.SortBy = model.SortOrder(v)
	}
	if v := os.Getenv("DISPLAY_FORMAT"); v != "" {
		s.DisplayMode = model.DisplayMode(v)
	}
	if v := os.Getenv("PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRECISION %q: %w", v, err)
		}
		s.Precision = n
	}
	if v := os.Getenv("REPORT_TIMEZONE"); v != "" {
		s.Timezone = v
	}
	if v := os.Getenv("SHOW_COST"); v != "" {
		s.ShowCost = v == "true"
	}
	if v := os.Getenv("SHOW_TIME_ENTRIES"); v != "" {
		s.ShowTimeEntries = v == "true"
	}
	if v := os.Getenv("SHOW_DAILY_BREAKDOWN"); v != "" {
		s.ShowDays = v == "true"
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

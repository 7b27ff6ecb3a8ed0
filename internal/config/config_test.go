package config

import (
	"errors"
	"testing"

	"github.com/pippsza/clickup/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3001" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.ReportsDir != "reports" {
		t.Errorf("ReportsDir = %q, want reports", cfg.ReportsDir)
	}
	if cfg.Settings != model.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", cfg.Settings)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLICKUP_TOKEN", "pk_test")
	t.Setenv("HOURLY_RATE", "60.5")
	t.Setenv("CURRENCY", "EUR")
	t.Setenv("ROUND_TO_MINUTES", "30")
	t.Setenv("SHOW_COST", "false")
	t.Setenv("REPORT_TIMEZONE", "Europe/Kyiv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "pk_test" {
		t.Errorf("token = %q", cfg.Token)
	}
	s := cfg.Settings
	if s.HourlyRate != 60.5 || s.Currency != "EUR" || s.RoundToMinutes != 30 {
		t.Errorf("settings = %+v", s)
	}
	if s.ShowCost {
		t.Error("SHOW_COST=false not applied")
	}
	if s.Timezone != "Europe/Kyiv" {
		t.Errorf("timezone = %q", s.Timezone)
	}
}

func TestLoadMalformedOverride(t *testing.T) {
	t.Setenv("HOURLY_RATE", "a lot")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable HOURLY_RATE")
	}
}

func TestLoadInvalidOverrideValue(t *testing.T) {
	t.Setenv("TAX_RATE", "1.5")

	if _, err := Load(); !errors.Is(err, model.ErrInvalidTaxRate) {
		t.Errorf("err = %v, want ErrInvalidTaxRate", err)
	}
}

func TestRequireToken(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireToken(); !errors.Is(err, model.ErrMissingToken) {
		t.Errorf("err = %v, want ErrMissingToken", err)
	}
	cfg.Token = "pk_test"
	if err := cfg.RequireToken(); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

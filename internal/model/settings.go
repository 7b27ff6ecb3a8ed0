package model

import (
	"fmt"
	"time"
)

// SortOrder selects how task groups are ordered in a report.
type SortOrder string

const (
	SortTimeDesc SortOrder = "time_desc"
	SortTimeAsc  SortOrder = "time_asc"
	SortNameAsc  SortOrder = "name_asc"
	SortNameDesc SortOrder = "name_desc"
	SortCostDesc SortOrder = "cost_desc"
)

// DisplayMode selects how durations are rendered.
type DisplayMode string

const (
	DisplayHoursMinutes DisplayMode = "hours_minutes"
	DisplayDecimalHours DisplayMode = "decimal_hours"
	DisplayMinutes      DisplayMode = "minutes"
)

// Settings is the resolved configuration for one report run. It is merged
// once from defaults, environment and the saved preference file, validated,
// and then passed by value into every aggregation and costing function —
// nothing reads ambient configuration during a run.
type Settings struct {
	HourlyRate     float64     `json:"hourlyRate"`
	Currency       string      `json:"currency"`
	TaxRate        float64     `json:"taxRate"`
	RoundToMinutes int         `json:"roundToMinutes"`
	SortBy         SortOrder   `json:"sortBy"`
	DisplayMode    DisplayMode `json:"displayMode"`
	Precision      int         `json:"precision"`
	Timezone       string      `json:"timezone"`

	ShowCost        bool `json:"showCost"`
	ShowTimeEntries bool `json:"showTimeEntries"`
	ShowDays        bool `json:"showDays"`
	ShowTasks       bool `json:"showTasks"`
	ShowStatistics  bool `json:"showStatistics"`
}

// DefaultSettings mirrors the documented defaults of the original tool.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:      25,
		Currency:        "USD",
		TaxRate:         0.2,
		RoundToMinutes:  15,
		SortBy:          SortTimeDesc,
		DisplayMode:     DisplayHoursMinutes,
		Precision:       2,
		Timezone:        "UTC",
		ShowCost:        true,
		ShowTimeEntries: true,
		ShowDays:        false,
		ShowTasks:       true,
		ShowStatistics:  true,
	}
}

// Validate rejects out-of-range billing parameters before any aggregation
// work begins. A settings value that fails validation never reaches the
// cost calculator.
func (s Settings) Validate() error {
	if s.HourlyRate <= 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidHourlyRate, s.HourlyRate)
	}
	if s.TaxRate < 0 || s.TaxRate >= 1 {
		return fmt.Errorf("%w: %.2f", ErrInvalidTaxRate, s.TaxRate)
	}
	if s.RoundToMinutes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounding, s.RoundToMinutes)
	}
	if s.Precision < 0 || s.Precision > 6 {
		return fmt.Errorf("%w: precision %d", ErrInvalidPrecision, s.Precision)
	}
	switch s.SortBy {
	case SortTimeDesc, SortTimeAsc, SortNameAsc, SortNameDesc, SortCostDesc:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortOrder, s.SortBy)
	}
	switch s.DisplayMode {
	case DisplayHoursMinutes, DisplayDecimalHours, DisplayMinutes:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDisplayMode, s.DisplayMode)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, s.Timezone)
	}
	return nil
}

// DailyView returns a copy with the display toggles flipped to the
// days-only report layout. Billing parameters are untouched, so costs
// stay identical to the monthly view.
func (s Settings) DailyView() Settings {
	s.ShowTasks = false
	s.ShowDays = true
	s.ShowTimeEntries = false
	s.ShowStatistics = true
	return s
}

// Location resolves the day-bucketing timezone. Settings must have been
// validated first; an unloadable zone falls back to UTC so a report can
// still be produced.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

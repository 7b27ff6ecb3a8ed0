// Package prefs persists user report preferences as a small JSON
// document. Missing keys fall back to the caller-supplied base settings,
// so a file written by an older version still loads.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"

	"github.com/pippsza/clickup/internal/model"
)

const appDir = "clickup-time-report"

// ErrUnknownKey is returned when Update is asked to set a preference
// that does not exist.
var ErrUnknownKey = errors.New("unknown preference key")

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore creates a store for the given file path. An empty path uses
// the XDG default.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the XDG location of the preference file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "preferences.json")
}

// Path returns the file the store operates on.
func (st *Store) Path() string {
	return st.path
}

// filePrefs mirrors Settings with pointer fields so that absent keys are
// distinguishable from zero values when merging.
type filePrefs struct {
	HourlyRate      *float64           `json:"hourlyRate,omitempty"`
	Currency        *string            `json:"currency,omitempty"`
	TaxRate         *float64           `json:"taxRate,omitempty"`
	RoundToMinutes  *int               `json:"roundToMinutes,omitempty"`
	SortBy          *model.SortOrder   `json:"sortBy,omitempty"`
	DisplayMode     *model.DisplayMode `json:"displayMode,omitempty"`
	Precision       *int               `json:"precision,omitempty"`
	Timezone        *string            `json:"timezone,omitempty"`
	ShowCost        *bool              `json:"showCost,omitempty"`
	ShowTimeEntries *bool              `json:"showTimeEntries,omitempty"`
	ShowDays        *bool              `json:"showDays,omitempty"`
	ShowTasks       *bool              `json:"showTasks,omitempty"`
	ShowStatistics  *bool              `json:"showStatistics,omitempty"`
}

// Load merges the saved preference file over base and validates the
// result. A missing file is not an error: base is returned as-is.
func (st *Store) Load(base model.Settings) (model.Settings, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read preferences: %w", err)
	}

	var fp filePrefs
	if err := json.Unmarshal(data, &fp); err != nil {
		return base, fmt.Errorf("parse preferences %s: %w", st.path, err)
	}

	merged := merge(base, fp)
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("saved preferences: %w", err)
	}
	return merged, nil
}

// Save writes the full settings document, creating the directory when
// needed.
func (st *Store) Save(s model.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// Reset removes the preference file so the next load yields defaults.
func (st *Store) Reset() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove preferences: %w", err)
	}
	return nil
}

// Update applies a single key=value update on top of current, validates
// and returns the result without saving it. Keys use the JSON field
// names of Settings.
func Update(current model.Settings, key, value string) (model.Settings, error) {
	s := current
	var err error

	switch key {
	case "hourlyRate":
		s.HourlyRate, err = strconv.ParseFloat(value, 64)
	case "currency":
		s.Currency = value
	case "taxRate":
		s.TaxRate, err = strconv.ParseFloat(value, 64)
	case "roundToMinutes":
		s.RoundToMinutes, err = strconv.Atoi(value)
	case "sortBy":
		s.SortBy = model.SortOrder(value)
	case "displayMode":
		s.DisplayMode = model.DisplayMode(value)
	case "precision":
		s.Precision, err = strconv.Atoi(value)
	case "timezone":
		s.Timezone = value
	case "showCost":
		s.ShowCost, err = strconv.ParseBool(value)
	case "showTimeEntries":
		s.ShowTimeEntries, err = strconv.ParseBool(value)
	case "showDays":
		s.ShowDays, err = strconv.ParseBool(value)
	case "showTasks":
		s.ShowTasks, err = strconv.ParseBool(value)
	case "showStatistics":
		s.ShowStatistics, err = strconv.ParseBool(value)
	default:
		return current, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return current, fmt.Errorf("preference %s=%q: %w", key, value, err)
	}

	if err := s.Validate(); err != nil {
		return current, err
	}
	return s, nil
}

func merge(base model.Settings, fp filePrefs) model.Settings {
	s := base
	if fp.HourlyRate != nil {
		s.HourlyRate = *fp.HourlyRate
	}
	if fp.Currency != nil {
		s.Currency = *fp.Currency
	}
	if fp.TaxRate != nil {
		s.TaxRate = *fp.TaxRate
	}
	if fp.RoundToMinutes != nil {
		s.RoundToMinutes = *fp.RoundToMinutes
	}
	if fp.SortBy != nil {
		s.SortBy = *fp.SortBy
	}
	if fp.DisplayMode != nil {
		s.DisplayMode = *fp.DisplayMode
	}
	if fp.Precision != nil {
		s.Precision = *fp.Precision
	}
	if fp.Timezone != nil {
		s.Timezone = *fp.Timezone
	}
	if fp.ShowCost != nil {
		s.ShowCost = *fp.ShowCost
	}
	if fp.ShowTimeEntries != nil {
		s.ShowTimeEntries = *fp.ShowTimeEntries
	}
	if fp.ShowDays != nil {
		s.ShowDays = *fp.ShowDays
	}
	if fp.ShowTasks != nil {
		s.ShowTasks = *fp.ShowTasks
	}
	if fp.ShowStatistics != nil {
		s.ShowStatistics = *fp.ShowStatistics
	}
	return s
}

package model

import (
	"fmt"
	"time"
)

// TaskRef carries the task metadata attached to a time entry. The ClickUp
// API populates these fields inconsistently depending on where the entry
// was created, so every field may be empty; fallbacks are applied at the
// aggregation boundary, not in renderers.
type TaskRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	ListName   string `json:"list"`
	FolderName string `json:"folder"`
	SpaceName  string `json:"space"`
	URL        string `json:"url"`
}

// TimeEntry is a single recorded span of tracked time. DurationMs is the
// authoritative duration; EndMs is informational only (0 means the entry
// is still running) and is never re-derived into cost math.
type TimeEntry struct {
	ID          string   `json:"id"`
	Task        TaskRef  `json:"task"`
	Description string   `json:"description"`
	DurationMs  int64    `json:"duration"`
	StartMs     int64    `json:"start"`
	EndMs       int64    `json:"end,omitempty"`
}

// User identifies the ClickUp user a report is generated for.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Team is a ClickUp workspace the user belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Period selects the calendar month a report covers.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// Validate checks that the period denotes a real calendar month.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 2000 || p.Year > 2100 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Bounds returns the inclusive start and end of the month in epoch
// milliseconds, evaluated in loc so day bucketing and the fetch window
// agree on where midnight is.
func (p Period) Bounds(loc *time.Location) (startMs, endMs int64) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}

// CurrentPeriod returns the period for the month containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

// PreviousPeriod returns the period for the month before the one
// containing now.
func PreviousPeriod(now time.Time) Period {
	prev := now.AddDate(0, 0, -now.Day())
	return Period{Year: prev.Year(), Month: int(prev.Month())}
}

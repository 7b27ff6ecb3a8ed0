// Package timefmt renders tracked durations and timestamps for display.
package timefmt

import (
	"fmt"
	"time"

	"github.com/pippsza/clickup/internal/model"
)

const (
	msPerMinute = int64(60 * 1000)
	msPerHour   = int64(60 * 60 * 1000)
)

// StampLayout is the timestamp layout used for entry start/end columns.
const StampLayout = "02.01.2006 15:04"

// Duration formats a duration per the configured display mode. Negative
// durations are a caller contract violation and clamp to zero.
func Duration(ms int64, mode model.DisplayMode, precision int) string {
	if ms < 0 {
		ms = 0
	}

	switch mode {
	case model.DisplayDecimalHours:
		hours := float64(ms) / float64(msPerHour)
		return fmt.Sprintf("%.*fh", precision, hours)
	case model.DisplayMinutes:
		return fmt.Sprintf("%dm", ms/msPerMinute)
	default:
		h := ms / msPerHour
		m := (ms % msPerHour) / msPerMinute
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Stamp formats an epoch-millisecond timestamp in the given zone.
func Stamp(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format(StampLayout)
}

// DateKey returns the YYYY-MM-DD calendar date of an epoch-millisecond
// timestamp in the given zone. This is the single definition of "which
// day an entry belongs to"; day bucketing and statistics both use it.
func DateKey(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format("2006-01-02")
}

// Package billing derives billing figures from tracked durations. All
// functions are pure; invalid rates are rejected at settings resolution
// and never reach this package.
package billing

import (
	"math"

	"github.com/pippsza/clickup/internal/model"
)

const msPerHour = float64(60 * 60 * 1000)

// Calculate maps a duration to its cost breakdown under the given
// settings. Rounding happens here, once per aggregate total — callers
// must never sum already-rounded per-entry costs into a group cost.
func Calculate(durationMs int64, s model.Settings) model.CostBreakdown {
	hours := RoundHours(durationMs, s.RoundToMinutes)
	gross := hours * s.HourlyRate
	net := gross * (1 - s.TaxRate)

	return model.CostBreakdown{
		Hours:     hours,
		GrossCost: gross,
		NetCost:   net,
		Tax:       gross - net,
		Currency:  s.Currency,
	}
}

// RoundHours converts a duration to billable hours. With roundToMinutes=0
// the exact hour value is returned; otherwise the minute count is rounded
// up to the next multiple, so a 1-minute entry with a 15-minute
// granularity bills as 0.25h. That minimum-billing-increment behavior is
// deliberate.
func RoundHours(durationMs int64, roundToMinutes int) float64 {
	hours := float64(durationMs) / msPerHour
	if roundToMinutes <= 0 {
		return hours
	}

	minutes := hours * 60
	step := float64(roundToMinutes)
	return math.Ceil(minutes/step) * step / 60
}

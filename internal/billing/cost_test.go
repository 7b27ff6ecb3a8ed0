package billing

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/pippsza/clickup/internal/model"
)

func TestRoundHoursMinimumIncrement(t *testing.T) {
	// A single tracked minute bills as one full rounding step.
	got := RoundHours(60*1000, 15)
	if got != 0.25 {
		t.Errorf("RoundHours(1min, 15) = %v, want 0.25", got)
	}
}

func TestRoundHoursExactMode(t *testing.T) {
	// roundToMinutes=0 disables rounding entirely.
	got := RoundHours(90*60*1000, 0)
	if got != 1.5 {
		t.Errorf("RoundHours(90min, 0) = %v, want 1.5", got)
	}
}

func TestRoundHoursAlreadyOnBoundary(t *testing.T) {
	got := RoundHours(30*60*1000, 15)
	if got != 0.5 {
		t.Errorf("RoundHours(30min, 15) = %v, want 0.5", got)
	}
}

func TestRoundHoursZeroDuration(t *testing.T) {
	if got := RoundHours(0, 15); got != 0 {
		t.Errorf("RoundHours(0, 15) = %v, want 0", got)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	s := model.DefaultSettings()
	s.HourlyRate = 25
	s.TaxRate = 0.2
	s.RoundToMinutes = 0

	// 1.5h tracked at 25/h with 20% tax.
	cb := Calculate(5400000, s)
	if cb.Hours != 1.5 {
		t.Errorf("Hours = %v, want 1.5", cb.Hours)
	}
	if cb.GrossCost != 37.5 {
		t.Errorf("GrossCost = %v, want 37.5", cb.GrossCost)
	}
	if cb.NetCost != 30.0 {
		t.Errorf("NetCost = %v, want 30.0", cb.NetCost)
	}
	if cb.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cb.Currency)
	}
}

// TestCostProperties checks the billing identities over arbitrary
// durations and rates: rounding never decreases billable hours, gross
// splits exactly into net plus tax, and everything stays non-negative.
func TestCostProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("rounding never decreases hours", prop.ForAll(
		func(durationMs int64, step int) bool {
			exact := float64(durationMs) / (60 * 60 * 1000)
			rounded := RoundHours(durationMs, step)
			return rounded >= exact-1e-9
		},
		gen.Int64Range(0, 24*60*60*1000),
		gen.IntRange(1, 60),
	))

	properties.Property("rounded hours land on a step multiple", prop.ForAll(
		func(durationMs int64, step int) bool {
			rounded := RoundHours(durationMs, step)
			minutes := rounded * 60
			_, frac := math.Modf(minutes / float64(step))
			return frac < 1e-9 || frac > 1-1e-9
		},
		gen.Int64Range(0, 24*60*60*1000),
		gen.IntRange(1, 60),
	))

	properties.Property("gross equals net plus tax", prop.ForAll(
		func(durationMs int64, rate float64, taxRate float64) bool {
			s := model.DefaultSettings()
			s.HourlyRate = rate
			s.TaxRate = taxRate
			s.RoundToMinutes = 15

			cb := Calculate(durationMs, s)
			return math.Abs(cb.GrossCost-(cb.NetCost+cb.Tax)) < 1e-9 &&
				cb.GrossCost >= 0 && cb.NetCost >= 0 && cb.Tax >= 0
		},
		gen.Int64Range(0, 24*60*60*1000),
		gen.Float64Range(0.01, 1000),
		gen.Float64Range(0, 0.99),
	))

	properties.TestingRun(t)
}

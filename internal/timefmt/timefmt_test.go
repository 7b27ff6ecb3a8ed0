package timefmt

import (
	"testing"
	"time"

	"github.com/pippsza/clickup/internal/model"
)

func TestDurationModes(t *testing.T) {
	ms := int64(2*60*60*1000 + 25*60*1000) // 2h 25m

	cases := []struct {
		name      string
		mode      model.DisplayMode
		precision int
		want      string
	}{
		{"hours_minutes", model.DisplayHoursMinutes, 2, "2h 25m"},
		{"decimal_hours", model.DisplayDecimalHours, 2, "2.42h"},
		{"minutes", model.DisplayMinutes, 2, "145m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(ms, tc.mode, tc.precision); got != tc.want {
				t.Errorf("Duration(%d, %s) = %q, want %q", ms, tc.mode, got, tc.want)
			}
		})
	}
}

func TestDurationNegativeClampsToZero(t *testing.T) {
	if got := Duration(-5000, model.DisplayHoursMinutes, 2); got != "0h 0m" {
		t.Errorf("Duration(-5000) = %q, want \"0h 0m\"", got)
	}
}

func TestDurationZero(t *testing.T) {
	if got := Duration(0, model.DisplayDecimalHours, 1); got != "0.0h" {
		t.Errorf("Duration(0) = %q, want \"0.0h\"", got)
	}
}

func TestDateKeyUsesLocation(t *testing.T) {
	// 2025-03-01 01:30 in Kyiv is still 2025-02-28 in UTC.
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	ms := time.Date(2025, 3, 1, 1, 30, 0, 0, kyiv).UnixMilli()

	if got := DateKey(ms, kyiv); got != "2025-03-01" {
		t.Errorf("DateKey in Kyiv = %q, want 2025-03-01", got)
	}
	if got := DateKey(ms, time.UTC); got != "2025-02-28" {
		t.Errorf("DateKey in UTC = %q, want 2025-02-28", got)
	}
}

func TestStamp(t *testing.T) {
	ms := time.Date(2025, 6, 2, 9, 5, 0, 0, time.UTC).UnixMilli()
	if got := Stamp(ms, time.UTC); got != "02.06.2025 09:05" {
		t.Errorf("Stamp = %q, want \"02.06.2025 09:05\"", got)
	}
}

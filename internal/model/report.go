package model

// CostBreakdown is the billing figure derived from a duration and the
// resolved settings. Tax is always GrossCost - NetCost; it is never
// computed independently.
type CostBreakdown struct {
	Hours     float64 `json:"hours"`
	GrossCost float64 `json:"grossCost"`
	NetCost   float64 `json:"netCost"`
	Tax       float64 `json:"tax"`
	Currency  string  `json:"currency"`
}

// Statistics summarizes one report run.
type Statistics struct {
	TotalEntries   int           `json:"totalEntries"`
	TotalTime      int64         `json:"totalTime"`
	Cost           CostBreakdown `json:"cost"`
	AvgSessionTime int64         `json:"avgSessionTime"`
	WorkingDays    int           `json:"workingDays"`
	WeekdayTime    int64         `json:"weekdayTime"`
	WeekendTime    int64         `json:"weekendTime"`
	AvgDayTime     int64         `json:"avgDayTime"`
}

// EntryRow is the display projection of a single time entry.
type EntryRow struct {
	ID                string        `json:"id"`
	Description       string        `json:"description"`
	Duration          int64         `json:"duration"`
	DurationFormatted string        `json:"durationFormatted"`
	Cost              CostBreakdown `json:"cost"`
	Start             string        `json:"start"`
	End               string        `json:"end"`
}

// TaskRow is the display projection of one task group.
type TaskRow struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	URL                string        `json:"url"`
	Status             string        `json:"status"`
	List               string        `json:"list"`
	Folder             string        `json:"folder"`
	Space              string        `json:"space"`
	TotalTime          int64         `json:"totalTime"`
	TotalTimeFormatted string        `json:"totalTimeFormatted"`
	Cost               CostBreakdown `json:"cost"`
	EntriesCount       int           `json:"entriesCount"`
	Entries            []EntryRow    `json:"entries"`
}

// DayRow is the display projection of one calendar day.
type DayRow struct {
	Date               string        `json:"date"` // YYYY-MM-DD
	TotalTime          int64         `json:"totalTime"`
	TotalTimeFormatted string        `json:"totalTimeFormatted"`
	Tasks              []string      `json:"tasks"`
	DayOfWeek          string        `json:"dayOfWeek"`
	IsWeekend          bool          `json:"isWeekend"`
	Cost               CostBreakdown `json:"cost"`
}

// ReportUser is the user metadata echoed into the report.
type ReportUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ReportPeriod describes the covered month.
type ReportPeriod struct {
	Start string `json:"start"` // DD.MM.YYYY
	End   string `json:"end"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}

// Summary is the headline block of a report.
type Summary struct {
	TotalTasks         int           `json:"totalTasks"`
	TotalTime          int64         `json:"totalTime"`
	TotalTimeFormatted string        `json:"totalTimeFormatted"`
	Cost               CostBreakdown `json:"cost"`
}

// Report is the final, immutable structure every renderer consumes: the
// console printer, the JSON/CSV/Excel writers and the browser dashboard
// all receive this exact tree. It is a plain, cycle-free value that
// serializes directly.
type Report struct {
	User           ReportUser   `json:"user"`
	Period         ReportPeriod `json:"period"`
	Summary        Summary      `json:"summary"`
	Statistics     Statistics   `json:"statistics"`
	Preferences    Settings     `json:"preferences"`
	Tasks          []TaskRow    `json:"tasks"`
	Days           []DayRow     `json:"days"`
	SkippedEntries int          `json:"skippedEntries,omitempty"`
}

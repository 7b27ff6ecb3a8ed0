package report

import (
	"time"

	"github.com/pippsza/clickup/internal/billing"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/timefmt"
)

const periodLayout = "02.01.2006"

// Assemble projects an aggregation into the final report tree. This is a
// pure shaping step: formatted strings and per-aggregate costs are
// attached here, but no new grouping or summing happens.
func Assemble(agg Aggregation, period model.Period, user model.User, s model.Settings) *model.Report {
	loc := s.Location()
	startMs, endMs := period.Bounds(loc)

	rep := &model.Report{
		User: model.ReportUser{
			Username: user.Username,
			Email:    user.Email,
		},
		Period: model.ReportPeriod{
			Start: time.UnixMilli(startMs).In(loc).Format(periodLayout),
			End:   time.UnixMilli(endMs).In(loc).Format(periodLayout),
			Month: period.Month,
			Year:  period.Year,
		},
		Summary: model.Summary{
			TotalTasks:         len(agg.TaskGroups),
			TotalTime:          agg.Stats.TotalTime,
			TotalTimeFormatted: formatDur(agg.Stats.TotalTime, s),
			Cost:               billing.Calculate(agg.Stats.TotalTime, s),
		},
		Statistics:     agg.Stats,
		Preferences:    s,
		Tasks:          make([]model.TaskRow, 0, len(agg.TaskGroups)),
		Days:           make([]model.DayRow, 0, len(agg.DayGroups)),
		SkippedEntries: agg.Skipped,
	}

	for _, g := range agg.TaskGroups {
		row := model.TaskRow{
			ID:                 g.Task.ID,
			Name:               g.Task.Name,
			URL:                g.Task.URL,
			Status:             g.Task.Status,
			List:               g.Task.ListName,
			Folder:             g.Task.FolderName,
			Space:              g.Task.SpaceName,
			TotalTime:          g.TotalTimeMs,
			TotalTimeFormatted: formatDur(g.TotalTimeMs, s),
			Cost:               billing.Calculate(g.TotalTimeMs, s),
			EntriesCount:       len(g.Entries),
			Entries:            make([]model.EntryRow, 0, len(g.Entries)),
		}
		for _, e := range g.Entries {
			row.Entries = append(row.Entries, entryRow(e, s, loc))
		}
		rep.Tasks = append(rep.Tasks, row)
	}

	for _, d := range agg.DayGroups {
		day, _ := time.ParseInLocation("2006-01-02", d.Date, loc)
		rep.Days = append(rep.Days, model.DayRow{
			Date:               d.Date,
			TotalTime:          d.TotalTimeMs,
			TotalTimeFormatted: formatDur(d.TotalTimeMs, s),
			Tasks:              d.TaskNames,
			DayOfWeek:          day.Weekday().String(),
			IsWeekend:          d.Weekend,
			Cost:               billing.Calculate(d.TotalTimeMs, s),
		})
	}

	return rep
}

// Generate runs the full pipeline over an already-fetched entry list.
func Generate(entries []model.TimeEntry, period model.Period, user model.User, s model.Settings) (*model.Report, error) {
	agg, err := Aggregate(entries, period, s)
	if err != nil {
		return nil, err
	}
	return Assemble(agg, period, user, s), nil
}

func entryRow(e model.TimeEntry, s model.Settings, loc *time.Location) model.EntryRow {
	desc := e.Description
	if desc == "" {
		desc = fallbackDescription
	}
	end := "in progress"
	if e.EndMs > 0 {
		end = timefmt.Stamp(e.EndMs, loc)
	}
	return model.EntryRow{
		ID:                e.ID,
		Description:       desc,
		Duration:          e.DurationMs,
		DurationFormatted: formatDur(e.DurationMs, s),
		Cost:              billing.Calculate(e.DurationMs, s),
		Start:             timefmt.Stamp(e.StartMs, loc),
		End:               end,
	}
}

func formatDur(ms int64, s model.Settings) string {
	return timefmt.Duration(ms, s.DisplayMode, s.Precision)
}

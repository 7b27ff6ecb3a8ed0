// Package report implements the aggregation-and-costing pipeline shared
// by the CLI, the demo generator and the web dashboard. Every call site
// goes through Aggregate and Assemble; none of them re-implements any
// grouping or cost math.
package report

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pippsza/clickup/internal/billing"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/timefmt"
)

// UnassignedTaskID is the sentinel group key for entries whose task
// reference carries no id. Such entries are bucketed, not dropped, so
// the conservation invariant (sum of group totals == sum of entry
// durations) holds for them too.
const UnassignedTaskID = "unassigned"

// Metadata fallbacks applied when the API left a task field empty.
const (
	fallbackTaskName    = "Unassigned"
	fallbackStatus      = "unknown status"
	fallbackList        = "unassigned list"
	fallbackDescription = "no description"
)

// TaskGroup is the aggregate of all entries sharing a task id. Entries
// keep their input order; TotalTimeMs is always the sum of their
// durations.
type TaskGroup struct {
	Task        model.TaskRef
	Entries     []model.TimeEntry
	TotalTimeMs int64
}

// DayGroup is the aggregate of all entries starting on one calendar date
// in the report timezone.
type DayGroup struct {
	Date        string // YYYY-MM-DD
	TotalTimeMs int64
	TaskNames   []string // deduplicated, first-seen order
	Weekend     bool
}

// Aggregation is the intermediate result handed to Assemble.
type Aggregation struct {
	TaskGroups []TaskGroup
	DayGroups  []DayGroup
	Stats      model.Statistics
	Skipped    int // malformed entries excluded from every aggregate
}

// Aggregate groups a flat entry list by task and by calendar day and
// computes the report statistics. Settings are validated up front; an
// out-of-range billing configuration is refused before any grouping
// work. Entries with a negative duration are skipped and counted — the
// skip-and-count policy — never coerced to zero.
//
// The function is pure with respect to its inputs: calling it twice on
// the same arguments yields structurally identical output.
func Aggregate(entries []model.TimeEntry, period model.Period, s model.Settings) (Aggregation, error) {
	if err := s.Validate(); err != nil {
		return Aggregation{}, err
	}
	if err := period.Validate(); err != nil {
		return Aggregation{}, err
	}

	loc := s.Location()

	var (
		agg       Aggregation
		taskIndex = map[string]int{}
		dayIndex  = map[string]int{}
		dayTasks  = map[string]map[string]bool{}
		totalTime int64
	)

	for _, entry := range entries {
		if entry.DurationMs < 0 {
			agg.Skipped++
			continue
		}

		// Task grouping, keyed by task id with the sentinel bucket for
		// unassigned entries. The first entry seen seeds the group's
		// display metadata.
		key := entry.Task.ID
		if key == "" {
			key = UnassignedTaskID
		}
		idx, ok := taskIndex[key]
		if !ok {
			idx = len(agg.TaskGroups)
			taskIndex[key] = idx
			ref := normalizeTask(entry.Task, key)
			agg.TaskGroups = append(agg.TaskGroups, TaskGroup{Task: ref})
		}
		agg.TaskGroups[idx].Entries = append(agg.TaskGroups[idx].Entries, entry)
		agg.TaskGroups[idx].TotalTimeMs += entry.DurationMs

		// Day grouping by the calendar date of the entry start in the
		// report timezone.
		start := startIn(entry, loc)
		date := timefmt.DateKey(entry.StartMs, loc)
		didx, ok := dayIndex[date]
		if !ok {
			didx = len(agg.DayGroups)
			dayIndex[date] = didx
			dayTasks[date] = map[string]bool{}
			agg.DayGroups = append(agg.DayGroups, DayGroup{
				Date:    date,
				Weekend: isWeekend(start.Weekday()),
			})
		}
		agg.DayGroups[didx].TotalTimeMs += entry.DurationMs
		name := taskDisplayName(entry.Task)
		if !dayTasks[date][name] {
			dayTasks[date][name] = true
			agg.DayGroups[didx].TaskNames = append(agg.DayGroups[didx].TaskNames, name)
		}

		// Statistics pass.
		agg.Stats.TotalEntries++
		totalTime += entry.DurationMs
		if isWeekend(start.Weekday()) {
			agg.Stats.WeekendTime += entry.DurationMs
		} else {
			agg.Stats.WeekdayTime += entry.DurationMs
		}
	}

	agg.Stats.TotalTime = totalTime
	agg.Stats.WorkingDays = len(agg.DayGroups)
	agg.Stats.Cost = billing.Calculate(totalTime, s)
	if agg.Stats.TotalEntries > 0 {
		agg.Stats.AvgSessionTime = totalTime / int64(agg.Stats.TotalEntries)
	}
	if agg.Stats.WorkingDays > 0 {
		agg.Stats.AvgDayTime = totalTime / int64(agg.Stats.WorkingDays)
	}

	sortTaskGroups(agg.TaskGroups, s)
	sort.Slice(agg.DayGroups, func(i, j int) bool {
		return agg.DayGroups[i].Date < agg.DayGroups[j].Date
	})

	return agg, nil
}

// sortTaskGroups orders the groups per the configured sort order. All
// sorts are stable: equal keys keep their input order. cost_desc derives
// gross cost through the same calculator used everywhere else, so the
// ranking matches the displayed totals.
func sortTaskGroups(groups []TaskGroup, s model.Settings) {
	switch s.SortBy {
	case model.SortTimeAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalTimeMs < groups[j].TotalTimeMs
		})
	case model.SortNameAsc, model.SortNameDesc:
		c := collate.New(language.Und, collate.IgnoreCase)
		desc := s.SortBy == model.SortNameDesc
		sort.SliceStable(groups, func(i, j int) bool {
			cmp := c.CompareString(groups[i].Task.Name, groups[j].Task.Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	case model.SortCostDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			return billing.Calculate(groups[i].TotalTimeMs, s).GrossCost >
				billing.Calculate(groups[j].TotalTimeMs, s).GrossCost
		})
	default: // time_desc
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalTimeMs > groups[j].TotalTimeMs
		})
	}
}

// normalizeTask fills the documented fallback values for metadata the
// API left empty, so renderers never have to guess.
func normalizeTask(ref model.TaskRef, key string) model.TaskRef {
	ref.ID = key
	if ref.Name == "" {
		ref.Name = fallbackTaskName
	}
	if ref.Status == "" {
		ref.Status = fallbackStatus
	}
	if ref.ListName == "" {
		ref.ListName = fallbackList
	}
	return ref
}

func taskDisplayName(ref model.TaskRef) string {
	if ref.Name == "" {
		return fallbackTaskName
	}
	return ref.Name
}

func startIn(entry model.TimeEntry, loc *time.Location) time.Time {
	return time.UnixMilli(entry.StartMs).In(loc)
}

func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

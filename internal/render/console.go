package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/timefmt"
)

func durationString(ms int64, mode model.DisplayMode, precision int) string {
	return timefmt.Duration(ms, mode, precision)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	timeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	costStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Console prints a report honoring the display toggles resolved into
// rep.Preferences. It only reads the assembled tree; every figure was
// computed by the pipeline.
func Console(w io.Writer, rep *model.Report) {
	prefs := rep.Preferences
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("TIME REPORT %d/%d", rep.Period.Month, rep.Period.Year)))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("User: %s (%s)", rep.User.Username, rep.User.Email)))
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("Period: %s - %s", rep.Period.Start, rep.Period.End)))
	fmt.Fprintln(w, timeStyle.Render("Total time: "+rep.Summary.TotalTimeFormatted))

	if prefs.ShowCost {
		cost := rep.Summary.Cost
		fmt.Fprintln(w, timeStyle.Render(fmt.Sprintf("Gross: %s", FormatMoney(cost.GrossCost, cost.Currency))))
		fmt.Fprintln(w, costStyle.Render(fmt.Sprintf("Net (after tax): %s", FormatMoney(cost.NetCost, cost.Currency))))
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Tasks: %d", rep.Summary.TotalTasks)))

	if rep.SkippedEntries > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Skipped malformed entries: %d", rep.SkippedEntries)))
	}

	if prefs.ShowStatistics {
		printStatistics(w, rep)
	}
	if prefs.ShowDays {
		printDays(w, rep)
	}
	if prefs.ShowTasks {
		printTasks(w, rep)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

func printStatistics(w io.Writer, rep *model.Report) {
	stats := rep.Statistics
	mode, prec := rep.Preferences.DisplayMode, rep.Preferences.Precision

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("STATISTICS"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("-", 40)))
	fmt.Fprintf(w, "Entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(w, "Working days: %d\n", stats.WorkingDays)
	fmt.Fprintf(w, "Average per day: %s\n", durationString(stats.AvgDayTime, mode, prec))
	fmt.Fprintf(w, "Average per session: %s\n", durationString(stats.AvgSessionTime, mode, prec))
	fmt.Fprintf(w, "Weekday time: %s\n", durationString(stats.WeekdayTime, mode, prec))
	fmt.Fprintf(w, "Weekend time: %s\n", durationString(stats.WeekendTime, mode, prec))
}

func printDays(w io.Writer, rep *model.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("WORK BY DAY"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("-", 80)))

	for _, day := range rep.Days {
		marker := "[wd]"
		if day.IsWeekend {
			marker = "[we]"
		}
		fmt.Fprintf(w, "\n%s %s (%s)\n", marker, day.Date, day.DayOfWeek)
		fmt.Fprintln(w, timeStyle.Render("   Time: "+day.TotalTimeFormatted))
		if rep.Preferences.ShowCost {
			fmt.Fprintln(w, costStyle.Render("   Cost: "+FormatMoney(day.Cost.GrossCost, day.Cost.Currency)))
		}
		fmt.Fprintf(w, "   Tasks: %d (%s)\n", len(day.Tasks), strings.Join(day.Tasks, ", "))
	}
}

func printTasks(w io.Writer, rep *model.Report) {
	prefs := rep.Preferences

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("TASK BREAKDOWN"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("-", 80)))

	for i, task := range rep.Tasks {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, headerStyle.Render(task.Name))
		fmt.Fprintln(w, dimStyle.Render("   ID: "+task.ID))
		fmt.Fprintf(w, "   Status: %s\n", task.Status)
		fmt.Fprintf(w, "   List: %s\n", task.List)
		fmt.Fprintln(w, timeStyle.Render("   Time: "+task.TotalTimeFormatted))
		if prefs.ShowCost {
			fmt.Fprintln(w, costStyle.Render(fmt.Sprintf("   Cost: %s (%s net)",
				FormatMoney(task.Cost.GrossCost, task.Cost.Currency),
				FormatMoney(task.Cost.NetCost, task.Cost.Currency))))
		}
		fmt.Fprintf(w, "   Entries: %d\n", task.EntriesCount)
		if task.URL != "" {
			fmt.Fprintln(w, dimStyle.Render("   URL: "+task.URL))
		}

		if prefs.ShowTimeEntries && len(task.Entries) > 0 {
			fmt.Fprintln(w, "   Time entries:")
			for j, entry := range task.Entries {
				line := fmt.Sprintf("     %d. %s - %s", j+1, entry.DurationFormatted, entry.Description)
				if prefs.ShowCost {
					line += costStyle.Render(" (" + FormatMoney(entry.Cost.GrossCost, entry.Cost.Currency) + ")")
				}
				fmt.Fprintln(w, dimStyle.Render(line))
				fmt.Fprintln(w, dimStyle.Render("        "+entry.Start+" - "+entry.End))
			}
		}
	}
}

package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pippsza/clickup/internal/model"
)

const msPerHourF = float64(60 * 60 * 1000)

// TasksCSV writes one row per task group. Column order is stable: task
// name, id, status, list, hours, formatted time, entry count, URL, and —
// only when ShowCost is enabled — gross cost, net cost, currency.
func TasksCSV(w io.Writer, rep *model.Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Task", "ID", "Status", "List", "Hours", "Time", "Entries", "URL"}
	showCost := rep.Preferences.ShowCost
	if showCost {
		header = append(header, "Gross", "Net", "Currency")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write tasks csv header: %w", err)
	}

	for _, task := range rep.Tasks {
		row := []string{
			task.Name,
			task.ID,
			task.Status,
			task.List,
			hoursString(task.TotalTime),
			task.TotalTimeFormatted,
			strconv.Itoa(task.EntriesCount),
			task.URL,
		}
		if showCost {
			row = append(row,
				fmt.Sprintf("%.2f", task.Cost.GrossCost),
				fmt.Sprintf("%.2f", task.Cost.NetCost),
				task.Cost.Currency,
			)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write tasks csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// DaysCSV writes one row per calendar day: date, day of week, hours,
// formatted time, task count, task names, plus the cost columns when
// ShowCost is enabled.
func DaysCSV(w io.Writer, rep *model.Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Date", "Day", "Hours", "Time", "Task count", "Tasks"}
	showCost := rep.Preferences.ShowCost
	if showCost {
		header = append(header, "Gross", "Net", "Currency")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write days csv header: %w", err)
	}

	for _, day := range rep.Days {
		row := []string{
			day.Date,
			day.DayOfWeek,
			hoursString(day.TotalTime),
			day.TotalTimeFormatted,
			strconv.Itoa(len(day.Tasks)),
			joinSemicolon(day.Tasks),
		}
		if showCost {
			row = append(row,
				fmt.Sprintf("%.2f", day.Cost.GrossCost),
				fmt.Sprintf("%.2f", day.Cost.NetCost),
				day.Cost.Currency,
			)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write days csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func hoursString(ms int64) string {
	return fmt.Sprintf("%.2f", float64(ms)/msPerHourF)
}

func joinSemicolon(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "; "
		}
		out += p
	}
	return out
}

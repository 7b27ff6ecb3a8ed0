package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pippsza/clickup/internal/model"
)

const (
	tasksSheet = "Tasks"
	daysSheet  = "Days"
	statsSheet = "Statistics"
)

// Excel writes the report as a workbook with Tasks, Days and Statistics
// sheets. The column order of the Tasks and Days sheets matches the CSV
// renderers.
func Excel(w io.Writer, rep *model.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), tasksSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(daysSheet); err != nil {
		return fmt.Errorf("create days sheet: %w", err)
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("create stats sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeTasksSheet(f, rep, headerStyle); err != nil {
		return err
	}
	if err := writeDaysSheet(f, rep, headerStyle); err != nil {
		return err
	}
	if err := writeStatsSheet(f, rep); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeTasksSheet(f *excelize.File, rep *model.Report, headerStyle int) error {
	showCost := rep.Preferences.ShowCost
	header := []any{"Task", "ID", "Status", "List", "Hours", "Time", "Entries", "URL"}
	if showCost {
		header = append(header, "Gross", "Net", "Currency")
	}
	if err := writeRow(f, tasksSheet, 1, header); err != nil {
		return err
	}
	if err := styleHeader(f, tasksSheet, len(header), headerStyle); err != nil {
		return err
	}

	for i, task := range rep.Tasks {
		row := []any{
			task.Name, task.ID, task.Status, task.List,
			float64(task.TotalTime) / msPerHourF,
			task.TotalTimeFormatted, task.EntriesCount, task.URL,
		}
		if showCost {
			row = append(row, task.Cost.GrossCost, task.Cost.NetCost, task.Cost.Currency)
		}
		if err := writeRow(f, tasksSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDaysSheet(f *excelize.File, rep *model.Report, headerStyle int) error {
	showCost := rep.Preferences.ShowCost
	header := []any{"Date", "Day", "Hours", "Time", "Task count", "Tasks"}
	if showCost {
		header = append(header, "Gross", "Net", "Currency")
	}
	if err := writeRow(f, daysSheet, 1, header); err != nil {
		return err
	}
	if err := styleHeader(f, daysSheet, len(header), headerStyle); err != nil {
		return err
	}

	for i, day := range rep.Days {
		row := []any{
			day.Date, day.DayOfWeek,
			float64(day.TotalTime) / msPerHourF,
			day.TotalTimeFormatted, len(day.Tasks), joinSemicolon(day.Tasks),
		}
		if showCost {
			row = append(row, day.Cost.GrossCost, day.Cost.NetCost, day.Cost.Currency)
		}
		if err := writeRow(f, daysSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeStatsSheet(f *excelize.File, rep *model.Report) error {
	stats := rep.Statistics
	rows := [][]any{
		{"Total entries", stats.TotalEntries},
		{"Total time", rep.Summary.TotalTimeFormatted},
		{"Working days", stats.WorkingDays},
		{"Average per day", durationString(stats.AvgDayTime, rep.Preferences.DisplayMode, rep.Preferences.Precision)},
		{"Average per session", durationString(stats.AvgSessionTime, rep.Preferences.DisplayMode, rep.Preferences.Precision)},
		{"Weekday time", durationString(stats.WeekdayTime, rep.Preferences.DisplayMode, rep.Preferences.Precision)},
		{"Weekend time", durationString(stats.WeekendTime, rep.Preferences.DisplayMode, rep.Preferences.Precision)},
	}
	if rep.Preferences.ShowCost {
		rows = append(rows,
			[]any{"Gross cost", stats.Cost.GrossCost},
			[]any{"Net cost", stats.Cost.NetCost},
			[]any{"Tax", stats.Cost.Tax},
			[]any{"Currency", stats.Cost.Currency},
		)
	}

	for i, row := range rows {
		if err := writeRow(f, statsSheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, cols, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	return f.SetCellStyle(sheet, first, last, style)
}

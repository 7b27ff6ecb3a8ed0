package render

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/pippsza/clickup/internal/model"
)

func sampleReport(showCost bool) *model.Report {
	s := model.DefaultSettings()
	s.ShowCost = showCost

	return &model.Report{
		User:   model.ReportUser{Username: "jane"},
		Period: model.ReportPeriod{Start: "01.06.2025", End: "30.06.2025", Month: 6, Year: 2025},
		Summary: model.Summary{
			TotalTasks:         1,
			TotalTime:          5400000,
			TotalTimeFormatted: "1h 30m",
			Cost:               model.CostBreakdown{Hours: 1.5, GrossCost: 37.5, NetCost: 30, Tax: 7.5, Currency: "USD"},
		},
		Preferences: s,
		Tasks: []model.TaskRow{{
			ID:                 "t1",
			Name:               "Alpha",
			Status:             "open",
			List:               "Backlog",
			URL:                "https://app.clickup.com/t/t1",
			TotalTime:          5400000,
			TotalTimeFormatted: "1h 30m",
			Cost:               model.CostBreakdown{GrossCost: 37.5, NetCost: 30, Currency: "USD"},
			EntriesCount:       2,
		}},
		Days: []model.DayRow{{
			Date:               "2025-06-02",
			DayOfWeek:          "Monday",
			TotalTime:          5400000,
			TotalTimeFormatted: "1h 30m",
			Tasks:              []string{"Alpha", "Beta"},
			Cost:               model.CostBreakdown{GrossCost: 37.5, NetCost: 30, Currency: "USD"},
		}},
	}
}

func TestTasksCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := TasksCSV(&buf, sampleReport(true)); err != nil {
		t.Fatalf("TasksCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	wantHeader := []string{"Task", "ID", "Status", "List", "Hours", "Time", "Entries", "URL", "Gross", "Net", "Currency"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	want := []string{"Alpha", "t1", "open", "Backlog", "1.50", "1h 30m", "2", "https://app.clickup.com/t/t1", "37.50", "30.00", "USD"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestTasksCSVHidesCost(t *testing.T) {
	var buf bytes.Buffer
	if err := TasksCSV(&buf, sampleReport(false)); err != nil {
		t.Fatalf("TasksCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows[0]) != 8 {
		t.Errorf("header columns = %d, want 8 without cost", len(rows[0]))
	}
}

func TestDaysCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := DaysCSV(&buf, sampleReport(true)); err != nil {
		t.Fatalf("DaysCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	want := []string{"2025-06-02", "Monday", "1.50", "1h 30m", "2", "Alpha; Beta", "37.50", "30.00", "USD"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestCSVEmptyReport(t *testing.T) {
	rep := sampleReport(true)
	rep.Tasks = nil
	rep.Days = nil

	var tasks, days bytes.Buffer
	if err := TasksCSV(&tasks, rep); err != nil {
		t.Fatalf("TasksCSV: %v", err)
	}
	if err := DaysCSV(&days, rep); err != nil {
		t.Fatalf("DaysCSV: %v", err)
	}

	for name, buf := range map[string]*bytes.Buffer{"tasks": &tasks, "days": &days} {
		rows, err := csv.NewReader(buf).ReadAll()
		if err != nil {
			t.Fatalf("parse %s output: %v", name, err)
		}
		if len(rows) != 1 {
			t.Errorf("%s rows = %d, want header only", name, len(rows))
		}
	}
}

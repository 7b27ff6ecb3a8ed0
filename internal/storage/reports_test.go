package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pippsza/clickup/internal/model"
)

func sampleReport(year, month int) *model.Report {
	return &model.Report{
		User:   model.ReportUser{Username: "jane"},
		Period: model.ReportPeriod{Month: month, Year: year},
		Summary: model.Summary{
			TotalTasks: 1,
			TotalTime:  3600000,
		},
		Preferences: model.DefaultSettings(),
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	rep := sampleReport(2025, 6)
	path, err := st.SaveJSON(rep)
	if err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	if filepath.Base(path) != "report_2025_06.json" {
		t.Errorf("file name = %s, want report_2025_06.json", filepath.Base(path))
	}

	got, err := st.Load(model.Period{Year: 2025, Month: 6})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.User.Username != "jane" || got.Summary.TotalTime != 3600000 {
		t.Errorf("loaded report = %+v", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, p := range []model.Period{
		{Year: 2024, Month: 12},
		{Year: 2025, Month: 6},
		{Year: 2025, Month: 1},
	} {
		if _, err := st.SaveJSON(sampleReport(p.Year, p.Month)); err != nil {
			t.Fatalf("SaveJSON: %v", err)
		}
	}

	reports, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("len = %d, want 3", len(reports))
	}
	if reports[0].Year != 2025 || reports[0].Month != 6 {
		t.Errorf("first = %d-%d, want 2025-6", reports[0].Year, reports[0].Month)
	}
	if reports[2].Year != 2024 || reports[2].Month != 12 {
		t.Errorf("last = %d-%d, want 2024-12", reports[2].Year, reports[2].Month)
	}
	if reports[0].Path != "/reports/report_2025_06.json" {
		t.Errorf("path = %s", reports[0].Path)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tasks_2025_06.csv"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	reports, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("foreign files listed: %+v", reports)
	}
}

// Package storage manages the reports directory: the JSON artifacts the
// CLI writes and the web dashboard lists and re-serves.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/pippsza/clickup/internal/model"
)

var reportFileRe = regexp.MustCompile(`^report_(\d{4})_(\d{2})\.json$`)

// Store persists reports under a single directory.
type Store struct {
	dir string
}

// NewStore creates the reports directory when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// FileName returns the canonical JSON artifact name for a period.
func FileName(p model.Period) string {
	return fmt.Sprintf("report_%04d_%02d.json", p.Year, p.Month)
}

// SaveJSON writes the report as an indented JSON document and returns
// the file path.
func (s *Store) SaveJSON(rep *model.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(s.dir, FileName(model.Period{Year: rep.Period.Year, Month: rep.Period.Month}))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Load reads a saved report back.
func (s *Store) Load(p model.Period) (*model.Report, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, FileName(p)))
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep model.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &rep, nil
}

// SavedReport describes one report artifact on disk.
type SavedReport struct {
	FileName string `json:"fileName"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Path     string `json:"path"`
}

// List returns the saved reports, newest period first.
func (s *Store) List() ([]SavedReport, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]SavedReport, 0, len(dirEntries))
	for _, de := range dirEntries {
		m := reportFileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		reports = append(reports, SavedReport{
			FileName: de.Name(),
			Year:     year,
			Month:    month,
			Path:     "/reports/" + de.Name(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Year != reports[j].Year {
			return reports[i].Year > reports[j].Year
		}
		return reports[i].Month > reports[j].Month
	})
	return reports, nil
}

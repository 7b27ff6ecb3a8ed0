package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pippsza/clickup/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "preferences.json"))
}

func TestLoadMissingFileReturnsBase(t *testing.T) {
	st := tempStore(t)
	base := model.DefaultSettings()
	base.HourlyRate = 42

	got, err := st.Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != base {
		t.Errorf("Load = %+v, want base unchanged", got)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := tempStore(t)
	s := model.DefaultSettings()
	s.HourlyRate = 50
	s.Currency = "EUR"
	s.ShowDays = true

	if err := st.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load(model.DefaultSettings())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != s {
		t.Errorf("roundtrip = %+v, want %+v", got, s)
	}
}

func TestLoadPartialFileMergesOverBase(t *testing.T) {
	st := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(st.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	// Only one key present; everything else must come from base.
	if err := os.WriteFile(st.Path(), []byte(`{"hourlyRate": 99}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load(model.DefaultSettings())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.HourlyRate != 99 {
		t.Errorf("hourlyRate = %v, want 99", got.HourlyRate)
	}
	if got.Currency != "USD" || got.RoundToMinutes != 15 {
		t.Errorf("base keys not preserved: %+v", got)
	}
}

func TestLoadInvalidSavedValuesRejected(t *testing.T) {
	st := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(st.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(st.Path(), []byte(`{"taxRate": 1.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Load(model.DefaultSettings()); !errors.Is(err, model.ErrInvalidTaxRate) {
		t.Errorf("err = %v, want ErrInvalidTaxRate", err)
	}
}

func TestReset(t *testing.T) {
	st := tempStore(t)
	if err := st.Save(model.DefaultSettings()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	// Resetting an already-missing file is fine too.
	if err := st.Reset(); err != nil {
		t.Fatalf("second Reset: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	base := model.DefaultSettings()

	got, err := Update(base, "hourlyRate", "75.5")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.HourlyRate != 75.5 {
		t.Errorf("hourlyRate = %v, want 75.5", got.HourlyRate)
	}

	got, err = Update(base, "showCost", "false")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ShowCost {
		t.Error("showCost still true")
	}

	got, err = Update(base, "sortBy", "name_asc")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.SortBy != model.SortNameAsc {
		t.Errorf("sortBy = %v", got.SortBy)
	}
}

func TestUpdateUnknownKey(t *testing.T) {
	if _, err := Update(model.DefaultSettings(), "nonsense", "1"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("err = %v, want ErrUnknownKey", err)
	}
}

func TestUpdateInvalidValueKeepsCurrent(t *testing.T) {
	base := model.DefaultSettings()

	got, err := Update(base, "taxRate", "2.0")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got != base {
		t.Errorf("failed update must return current settings unchanged")
	}

	if _, err := Update(base, "precision", "abc"); err == nil {
		t.Fatal("expected parse error")
	}
}

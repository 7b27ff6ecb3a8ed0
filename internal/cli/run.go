package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pippsza/clickup/internal/client"
	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/render"
	"github.com/pippsza/clickup/internal/report"
	"github.com/pippsza/clickup/internal/storage"
)

// runReport drives the full pipeline for one month: fetch, aggregate,
// persist the JSON artifact, print the console report and write the CSV
// files next to it.
func runReport(ctx context.Context, e *env, period model.Period, settings model.Settings) error {
	if err := e.cfg.RequireToken(); err != nil {
		return err
	}

	store, err := storage.NewStore(e.cfg.ReportsDir)
	if err != nil {
		return err
	}

	clickupClient := client.NewClient(e.cfg.Token)
	service := report.NewService(clickupClient, e.cfg.TeamID, store, nil)

	rep, err := service.Monthly(ctx, period, settings)
	if err != nil {
		return err
	}

	return emit(e, rep, period)
}

// emit renders a finished report to the console and writes the CSV and
// optional Excel artifacts.
func emit(e *env, rep *model.Report, period model.Period) error {
	if flagJSON {
		if err := render.JSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		render.Console(os.Stdout, rep)
	}

	if err := writeArtifact(e, fmt.Sprintf("tasks_%04d_%02d.csv", period.Year, period.Month), func(f *os.File) error {
		return render.TasksCSV(f, rep)
	}); err != nil {
		return err
	}
	if err := writeArtifact(e, fmt.Sprintf("days_%04d_%02d.csv", period.Year, period.Month), func(f *os.File) error {
		return render.DaysCSV(f, rep)
	}); err != nil {
		return err
	}

	if flagExcel {
		if err := writeArtifact(e, fmt.Sprintf("report_%04d_%02d.xlsx", period.Year, period.Month), func(f *os.File) error {
			return render.Excel(f, rep)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(e *env, name string, write func(*os.File) error) error {
	path := filepath.Join(e.cfg.ReportsDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	logger.Global().Info().Str("path", path).Msg("Artifact written")
	return nil
}

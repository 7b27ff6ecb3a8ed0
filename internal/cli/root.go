// Package cli implements the clickup-report command tree. Every report
// command resolves settings once, runs the shared pipeline in
// internal/report and hands the finished report to renderers.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pippsza/clickup/internal/config"
	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/prefs"
)

var (
	flagExcel bool
	flagJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "clickup-report [year month]",
	Short: "Generate ClickUp time reports",
	Long: `clickup-report fetches your ClickUp time entries and produces a
monthly report: console output plus JSON and CSV artifacts in the
reports directory.

Without arguments the current month is reported.`,
	Args:          cobra.RangeArgs(0, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		period, err := periodFromArgs(args)
		if err != nil {
			return err
		}
		return runReport(cmd.Context(), env, period, env.settings)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Report for the previous month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		return runReport(cmd.Context(), env, model.PreviousPeriod(time.Now()), env.settings)
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily [year month]",
	Short: "Days-only report for a month",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		period, err := periodFromArgs(args)
		if err != nil {
			return err
		}
		return runReport(cmd.Context(), env, period, env.settings.DailyView())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagExcel, "excel", false, "also write an Excel workbook")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print the report as JSON instead of the console view")
	rootCmd.AddCommand(prevCmd, dailyCmd, configCmd, demoCmd, serveCmd)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// env bundles what every command needs after startup.
type env struct {
	cfg      *config.Config
	settings model.Settings
	prefs    *prefs.Store
}

// setup loads configuration, initializes logging and resolves the
// effective settings (defaults <- environment <- preference file).
func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	store := prefs.NewStore(cfg.PrefsFile)
	settings, err := store.Load(cfg.Settings)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, settings: settings, prefs: store}, nil
}

func periodFromArgs(args []string) (model.Period, error) {
	switch len(args) {
	case 0:
		return model.CurrentPeriod(time.Now()), nil
	case 2:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return model.Period{}, fmt.Errorf("%w: year %q", model.ErrInvalidPeriod, args[0])
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return model.Period{}, fmt.Errorf("%w: month %q", model.ErrInvalidPeriod, args[1])
		}
		p := model.Period{Year: year, Month: month}
		return p, p.Validate()
	default:
		return model.Period{}, fmt.Errorf("%w: expected both year and month", model.ErrInvalidPeriod)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pippsza/clickup/internal/report"
	"github.com/pippsza/clickup/internal/storage"
)

var demoCmd = &cobra.Command{
	Use:   "demo [year month]",
	Short: "Generate a report from synthetic data (no token needed)",
	Long: `demo builds a full report from deterministic synthetic time entries.
Useful for trying the tool or previewing preference changes without a
ClickUp account.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		period, err := periodFromArgs(args)
		if err != nil {
			return err
		}

		entries := report.DemoEntries(period, env.settings.Location())
		rep, err := report.Generate(entries, period, report.DemoUser, env.settings)
		if err != nil {
			return err
		}

		store, err := storage.NewStore(env.cfg.ReportsDir)
		if err != nil {
			return err
		}
		if _, err := store.SaveJSON(rep); err != nil {
			return err
		}
		return emit(env, rep, period)
	},
}

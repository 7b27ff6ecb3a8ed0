package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pippsza/clickup/internal/prefs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change report preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		return showConfig(env)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one preference (keys match the JSON field names)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		updated, err := prefs.Update(env.settings, args[0], args[1])
		if err != nil {
			return err
		}
		if err := env.prefs.Save(updated); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove saved preferences and return to defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		if err := env.prefs.Reset(); err != nil {
			return err
		}
		fmt.Println("Preferences reset to defaults")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configResetCmd)
}

func showConfig(e *env) error {
	data, err := json.MarshalIndent(e.settings, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Preferences file: %s\n%s\n", e.prefs.Path(), data)
	return nil
}

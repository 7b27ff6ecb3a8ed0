package cli

import (
	"github.com/spf13/cobra"

	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		if err := env.cfg.RequireToken(); err != nil {
			return err
		}

		r, _, err := server.New(env.cfg)
		if err != nil {
			return err
		}

		addr := ":" + env.cfg.Port
		logger.Global().Info().Str("addr", addr).Msg("Dashboard server listening")
		return r.Run(addr)
	},
}

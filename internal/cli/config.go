package cli

import (
	"errors"
	"os"

	"calgrid/internal/config"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the calgrid config file",
		// A broken config file must not block the commands that repair it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLenient(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			_, statErr := os.Stat(path)
			data := map[string]any{
				"path":   path,
				"exists": statErr == nil,
				"config": app.cfg,
			}
			if app.cfgErr != nil {
				data["error"] = app.cfgErr.Error()
			}
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, errors.New("config already exists: "+path+" (use --force to overwrite)"))
			}
			written, err := config.Save(config.Default())
			if err != nil {
				return writeErr(cmd, err)
			}
			ctxlog.Logger(cmd.Context()).Info("wrote config", "path", written)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": written}})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

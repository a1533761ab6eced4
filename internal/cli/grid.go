package cli

import (
	"calgrid/internal/calendar"

	"github.com/spf13/cobra"
)

func newGridCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grid [DATE]",
		Short: "Print the month grid of DATE as JSON or EDN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.resolveDate(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": calendar.Build(d)})
		},
	}
}

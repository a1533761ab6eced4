package cli

import (
	"fmt"

	"calgrid/internal/calendar"
	"calgrid/internal/term"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [DATE]",
		Short: "Print the month of DATE as a styled text grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.resolveDate(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			term.ApplyColorProfile()
			term.ApplyTheme(app.Theme)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), term.Render(calendar.Build(d), term.DefaultStyles()))
			return err
		},
	}
}

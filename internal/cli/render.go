package cli

import (
	"calgrid/internal/calendar"
	"calgrid/internal/render"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "render [DATE] [OUTPUT]",
		Short: "Paint the month of DATE to an image (.bmp or .png)",
		Long: "Paint the month of DATE with DATE selected. OUTPUT defaults to $CALGRID_OUTPUT, " +
			"then render.output from the config (Calendar.bmp).",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.resolveDate(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := envOr("CALGRID_OUTPUT", app.cfg.Render.Output)
			if len(args) > 1 {
				out = args[1]
			}

			rc := app.cfg.Render
			opts := render.Options{Width: rc.Width, Height: rc.Height, DPI: rc.DPI, TitleSize: rc.TitleSize, CellSize: rc.CellSize}
			if width > 0 {
				opts.Width = width
			}
			if height > 0 {
				opts.Height = height
			}

			g := calendar.Build(d)
			img, err := render.Render(g, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := render.WriteFile(out, img)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctxlog.Logger(cmd.Context()).Info("wrote calendar", "path", out, "bytes", n, "date", d.String())

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"path":   out,
				"bytes":  n,
				"date":   d.String(),
				"title":  g.Title,
				"width":  opts.Width,
				"height": opts.Height,
			}})
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default from config: 800)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default from config: 600)")

	return cmd
}

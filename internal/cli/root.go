package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"calgrid/internal/config"
	"calgrid/internal/format"
	"calgrid/internal/model"
	"calgrid/internal/term"
	"calgrid/internal/tui"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type App struct {
	Format     string
	PrettyJSON bool
	Theme      string
	LogLevel   string
	LogFormat  string

	// Now is the only wall clock read; it resolves "today".
	Now func() time.Time

	cfg config.Config
	// cfgErr is the config load error tolerated by setupLenient.
	cfgErr error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{Now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calgrid",
		Short:         "Month calendar grids: image, text, JSON/EDN and an interactive browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive month browser
  calgrid

  # Paint November 2014 with the 30th selected (shortcut for: calgrid render ...)
  calgrid 30.11.2014 Calendar.bmp

  # Machine-readable grid
  calgrid grid 2014-11-30 --format edn
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive browser.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CALGRID_FORMAT", ""), "Output format (json|edn); default from config")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("CALGRID_THEME", ""), "Terminal theme (auto|light|dark); default from config")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("CALGRID_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", envOr("CALGRID_LOG_FORMAT", "text"), "Log format on stderr (text|json)")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// setup loads the config, fills unset flags from it and installs the logger
// on the command context.
func (app *App) setup(cmd *cobra.Command) error {
	if err := app.setupLogger(cmd); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	return app.applyConfig(cmd, cfg)
}

// setupLenient is setup for the commands that inspect or reset the config
// file. A file that fails to load is kept in cfgErr and defaults apply.
func (app *App) setupLenient(cmd *cobra.Command) error {
	if err := app.setupLogger(cmd); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		ctxlog.Logger(cmd.Context()).Warn("ignoring config", "err", err)
		app.cfgErr = err
		cfg = config.Default()
	}
	return app.applyConfig(cmd, cfg)
}

func (app *App) setupLogger(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), app.LogLevel, app.LogFormat)
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger.With("cmd", cmd.CommandPath())))
	return nil
}

// applyConfig fills --format and --theme from cfg when neither flag nor env
// set them, then checks the result.
func (app *App) applyConfig(cmd *cobra.Command, cfg config.Config) error {
	app.cfg = cfg
	if app.Format == "" {
		app.Format = cfg.Format
	}
	if app.Theme == "" {
		app.Theme = cfg.Theme
	}
	if err := config.ValidateFormat(app.Format); err != nil {
		return writeErr(cmd, fmt.Errorf("--format/CALGRID_FORMAT: %w", err))
	}
	if err := config.ValidateTheme(app.Theme); err != nil {
		return writeErr(cmd, fmt.Errorf("--theme/CALGRID_THEME: %w", err))
	}
	if path, err := config.Path(); err == nil {
		ctxlog.Logger(cmd.Context()).Debug("config loaded", "path", path, "format", app.Format, "theme", app.Theme)
	}
	return nil
}

// resolveDate parses the optional DATE argument; no argument means today.
func (app *App) resolveDate(cmd *cobra.Command, args []string) (model.CalendarDate, error) {
	in := "today"
	if len(args) > 0 {
		in = args[0]
	}
	d, err := parseDate(in, app.Now())
	if err != nil {
		return model.CalendarDate{}, err
	}
	ctxlog.Logger(cmd.Context()).Debug("resolved date", "input", in, "date", d.String())
	return d, nil
}

func runTUI(cmd *cobra.Command, app *App, arg string) error {
	var args []string
	if arg != "" {
		args = []string{arg}
	}
	d, err := app.resolveDate(cmd, args)
	if err != nil {
		return writeErr(cmd, err)
	}
	term.ApplyColorProfile()
	term.ApplyTheme(app.Theme)
	today := func() model.CalendarDate { return model.DateOf(app.Now()) }
	if err := tui.Run(d, today); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}

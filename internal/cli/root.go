// notifier - desktop notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/notifier

// Package cli provides the cobra root command for notifier. Cobra's own flag
// parsing is disabled; the argument vector goes to the args scanner as is.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/notifier/internal/config"
	"github.com/ariel-frischer/notifier/internal/notify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const helpText = `notifier - a minimal desktop notification tool

Usage:
  notifier [options] [message]

Options:
  -t, --title TEXT      Notification title
  -m, --message TEXT    Notification message
  -s, --subtitle TEXT   Notification subtitle
  --sound NAME          Sound name (default, Glass, Ping, etc.) or 'none'
  -i, --image PATH      Path or URL to image
  -o, --open URL        URL to open when clicked
  -h, --help            Show this help
  --version             Show version information

Examples:
  # Simple notification
  notifier "Hello World"

  # With title and message
  notifier -t "Alert" -m "Something happened"

  # With all options
  notifier -t "Success" -m "Build complete" -s "CI/CD" --sound Glass \
           -i /path/to/icon.png -o http://example.com

  # Silent notification
  notifier -t "Info" -m "Background task done" --sound none

Configuration:
  Settings not covered by flags live in $XDG_CONFIG_HOME/notifier/config.yml
  (or the file named by $NOTIFIER_CONFIG): backend, app_name, urgency,
  click_timeout, image_timeout, image_cache_dir, debug.
  NOTIFIER_<KEY> environment variables override the file.
`

// SenderFactory creates the notification backend named in the config.
type SenderFactory func(backend string, log zerolog.Logger) (notify.Sender, error)

// OpenerFactory creates the opener used for action URLs.
type OpenerFactory func(log zerolog.Logger) notify.URLOpener

// Deps holds everything the command reaches outside the process.
// Nil fields are filled from the real environment.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	NewSender  SenderFactory
	NewOpener  OpenerFactory
	ConfigPath func() string
}

// NewRootCmd creates the notifier command.
func NewRootCmd(deps Deps) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "notifier [options] [message]",
		Short: "Show a desktop notification",
		Long: `Show a desktop notification with an optional subtitle, sound, image and
click-to-open URL, then wait briefly for a click.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd.Context(), deps, argv)
		},
	}

	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), helpText)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the root command against the process environment.
// SIGINT and SIGTERM cancel the click wait.
func Execute() error {
	ctx, stop := signalContext(context.Background())
	defer stop()

	return NewRootCmd(Deps{}).ExecuteContext(ctx)
}

func (d Deps) withDefaults() Deps {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.NewSender == nil {
		d.NewSender = notify.NewSender
	}
	if d.NewOpener == nil {
		d.NewOpener = notify.NewURLOpener
	}
	if d.ConfigPath == nil {
		d.ConfigPath = config.ResolvePath
	}
	return d
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/notifier/internal/args"
	"github.com/ariel-frischer/notifier/internal/build"
	"github.com/ariel-frischer/notifier/internal/config"
	clierrors "github.com/ariel-frischer/notifier/internal/errors"
	"github.com/ariel-frischer/notifier/internal/logging"
	"github.com/ariel-frischer/notifier/internal/notify"
)

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// run parses argv, sends one notification and waits for the click race.
// Every failure has already been printed when run returns an exit error.
func run(ctx context.Context, deps Deps, argv []string) error {
	opts := args.Parse(argv)

	if opts.Help {
		fmt.Fprint(deps.Stdout, helpText)
		return nil
	}

	if opts.Version {
		fmt.Fprint(deps.Stdout, build.Info())
		return nil
	}

	if !opts.HasMessage() {
		printError(deps.Stderr, clierrors.MissingMessage())
		fmt.Fprint(deps.Stdout, helpText)
		return NewExitError(ExitFailure)
	}

	path := deps.ConfigPath()
	cfg, err := loadConfig(path)
	if err != nil {
		printError(deps.Stderr, err)
		return NewExitError(ExitFailure)
	}

	log := logging.New(deps.Stderr, cfg.Debug)
	log.Debug().Str("config", path).Str("backend", cfg.Backend).Msg("configuration loaded")

	sender, err := deps.NewSender(cfg.Backend, log)
	if err != nil {
		printError(deps.Stderr, clierrors.Wrap(err, clierrors.Configuration,
			"set backend to one of: auto, dbus, notify-send, gosx, osascript, beeep"))
		return NewExitError(ExitFailure)
	}

	cacheDir := cfg.ImageCacheDir
	if cacheDir == "" {
		cacheDir = config.DefaultImageCacheDir()
	}
	images := notify.NewImageResolver(&http.Client{Timeout: cfg.ImageTimeout}, cacheDir, log)
	payload := notify.NewBuilder(cfg.AppName, notify.Urgency(cfg.Urgency), images).Build(ctx, opts)

	clicks := notify.NewClickHandler(cfg.ClickTimeout, deps.NewOpener(log), log)
	state, err := notify.NewDispatcher(sender, clicks, log).Dispatch(ctx, payload, opts.OpenURL)
	if err != nil {
		printError(deps.Stderr, dispatchError(sender.Name(), err))
		return NewExitError(ExitFailure)
	}

	log.Debug().Stringer("state", state).Msg("finished")
	return nil
}

// loadConfig loads the configuration and maps failures to CLI errors.
func loadConfig(path string) (*config.Configuration, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	var ve *config.ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		return nil, clierrors.ConfigInvalid(err)
	}

	source := path
	if source == "" {
		source = "from environment"
	}
	return nil, clierrors.ConfigParseError(source, err)
}

// dispatchError maps a Dispatch failure to the error shown to the user.
func dispatchError(backend string, err error) error {
	switch {
	case errors.Is(err, notify.ErrPermissionDenied):
		return clierrors.NotificationsDenied(err)
	case errors.Is(err, notify.ErrUnavailable):
		return clierrors.NotificationServiceUnavailable(backend, err)
	default:
		return clierrors.SubmissionFailed(err)
	}
}

func printError(w io.Writer, err error) {
	clierrors.FprintError(w, err)
}

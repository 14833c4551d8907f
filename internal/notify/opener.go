package notify

import (
	"context"
	"errors"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// URLOpener opens a URL with the desktop's default handler.
type URLOpener interface {
	Open(ctx context.Context, target string) error
}

// systemOpener starts the platform's open command and does not wait for it.
type systemOpener struct {
	goos  string
	start func(name string, args ...string) error
	log   zerolog.Logger
}

// NewURLOpener returns the opener for the current platform.
func NewURLOpener(log zerolog.Logger) URLOpener {
	return &systemOpener{goos: runtime.GOOS, start: startDetached, log: log}
}

func (o *systemOpener) Open(_ context.Context, target string) error {
	if target == "" {
		return errors.New("empty URL")
	}
	name, args := openCommand(o.goos, target)
	o.log.Debug().Str("cmd", name).Str("url", target).Msg("opening action URL")
	return o.start(name, args...)
}

// openCommand returns the command that opens target on goos.
func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

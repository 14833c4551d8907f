package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatError renders err with colors. Non-CLI errors render as Runtime errors.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

// FprintError writes the formatted error to w, in colour only when w is a
// terminal.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if isTerminal(w) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}

	ce := AsCLIError(err)
	if ce == nil {
		ce = &CLIError{Category: Runtime, Message: err.Error()}
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)
	if !colored {
		red.DisableColor()
		yellow.DisableColor()
		dim.DisableColor()
	}

	var b strings.Builder
	b.WriteString(red.Sprintf("%s:", ce.Category))
	b.WriteString(" ")
	b.WriteString(ce.Message)
	b.WriteString("\n")

	if ce.Usage != "" {
		b.WriteString("\n")
		b.WriteString(yellow.Sprint("Usage:"))
		b.WriteString(" ")
		b.WriteString(ce.Usage)
		b.WriteString("\n")
	}

	if len(ce.Remediation) > 0 {
		b.WriteString("\n")
		b.WriteString(yellow.Sprint("To fix this:"))
		b.WriteString("\n")
		for _, step := range ce.Remediation {
			b.WriteString(dim.Sprint("  - "))
			b.WriteString(step)
			b.WriteString("\n")
		}
	}

	return b.String()
}

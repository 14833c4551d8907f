// notifier - desktop notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/notifier

package main

import (
	"os"

	"github.com/ariel-frischer/notifier/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}

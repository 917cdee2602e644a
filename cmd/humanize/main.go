// Command humanize renders numbers for people: digit grouping, scale words
// and byte sizes. It can also serve the same formatters over HTTP, run an
// interactive session or a live terminal preview.
package main

import (
	"context"
	"os"

	"github.com/agbru/humanize/internal/app"
	apperrors "github.com/agbru/humanize/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}

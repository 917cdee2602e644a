package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, set with -ldflags "-X github.com/agbru/humanize/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version. Only flags before
// the command count, matching the parser.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V", "--V":
			return true
		case "--":
			return false
		}
		if len(arg) == 0 || arg[0] != '-' {
			return false
		}
	}
	return false
}

// PrintVersion writes the build information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "humanize %s\n", Version)
	fmt.Fprintf(out, "  commit:     %s\n", Commit)
	fmt.Fprintf(out, "  built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  go version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

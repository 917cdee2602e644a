// Package config defines the command-line configuration of the humanize
// binary. Values come from flags, then from HUMANIZE_* environment variables
// for flags left unset, then from built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/humanize/internal/errors"
	"github.com/agbru/humanize/internal/humanize"
	"github.com/agbru/humanize/internal/logging"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "HUMANIZE_"

const (
	// NoNDigits means intcomma keeps the natural precision of each value.
	NoNDigits = -1
	// DefaultAddr is the listen address of --serve.
	DefaultAddr = ":8080"
	// DefaultTimeout bounds a single formatting run.
	DefaultTimeout = 30 * time.Second
)

// commandAliases maps short command names accepted on the command line.
var commandAliases = map[string]string{
	"comma": humanize.NameIntComma,
	"word":  humanize.NameIntWord,
	"size":  humanize.NameNaturalSize,
}

// completionShells lists the shells --completion can target.
var completionShells = []string{"bash", "zsh", "fish"}

// AppConfig holds the parsed configuration.
type AppConfig struct {
	// Command is the formatter to run: intcomma, intword or naturalsize.
	Command string
	// Values are the positional arguments after the command.
	Values []string

	NDigits int
	Format  string
	Binary  bool
	GNU     bool

	Workers  int
	MinBatch int

	InputFile  string
	OutputFile string
	JSON       bool
	Quiet      bool
	NoColor    bool
	LogLevel   string
	Timeout    time.Duration

	Serve      bool
	Addr       string
	REPL       bool
	TUI        bool
	Completion string
	Version    bool
}

// Interactive reports whether a mode that needs no command was selected.
func (c AppConfig) Interactive() bool {
	return c.Serve || c.REPL || c.TUI || c.Completion != "" || c.Version
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags must precede the command; everything after the command is a value,
// so negative numbers need no "--" separator.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <%s> [value ...]\n\n", programName, strings.Join(humanize.Names(), "|"))
		fmt.Fprintln(errWriter, "Flags:")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.IntVar(&config.NDigits, "ndigits", NoNDigits, "Fractional digits for intcomma (default: natural precision).")
	fs.StringVar(&config.Format, "format", humanize.DefaultFormat, "printf-style precision directive for intword and naturalsize.")
	fs.StringVar(&config.Format, "f", humanize.DefaultFormat, "Shorthand for --format.")
	fs.BoolVar(&config.Binary, "binary", false, "naturalsize: use powers of 1024 with KiB, MiB, ... suffixes.")
	fs.BoolVar(&config.Binary, "b", false, "Shorthand for --binary.")
	fs.BoolVar(&config.GNU, "gnu", false, "naturalsize: use powers of 1024 with single-letter suffixes.")
	fs.BoolVar(&config.GNU, "g", false, "Shorthand for --gnu.")
	fs.IntVar(&config.Workers, "workers", 0, "Formatting goroutines for collections (0 = GOMAXPROCS).")
	fs.IntVar(&config.MinBatch, "min-batch", 0, "Smallest collection formatted in parallel (0 = adaptive).")
	fs.StringVar(&config.InputFile, "input", "", "Read values from a file, one per line ('-' for stdin).")
	fs.StringVar(&config.InputFile, "i", "", "Shorthand for --input.")
	fs.StringVar(&config.OutputFile, "output", "", "Write results to a file instead of stdout.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.BoolVar(&config.JSON, "json", false, "Print results as JSON.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print results only, no progress or decoration.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error or disabled.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time for a formatting run.")
	fs.BoolVar(&config.Serve, "serve", false, "Run the HTTP API server.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address for --serve.")
	fs.BoolVar(&config.REPL, "repl", false, "Start an interactive session.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the live preview terminal UI.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	fs.BoolVar(&config.Version, "version", false, "Print the version and exit.")
	fs.BoolVar(&config.Version, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		config.Command = NormalizeCommand(rest[0])
		config.Values = rest[1:]
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// NormalizeCommand resolves aliases and case for a command name.
func NormalizeCommand(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if full, ok := commandAliases[name]; ok {
		return full
	}
	return name
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Command == "" && !c.Interactive() {
		return apperrors.NewConfigError("a command is required: %s", humanize.NaturalList(humanize.Names()))
	}
	if c.Command != "" && !slices.Contains(humanize.Names(), c.Command) {
		return apperrors.NewConfigError("unknown command %q (expected %s)", c.Command, humanize.NaturalList(humanize.Names()))
	}
	if c.NDigits < NoNDigits {
		return apperrors.NewConfigError("--ndigits must be non-negative, got %d", c.NDigits)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers cannot be negative, got %d", c.Workers)
	}
	if c.MinBatch < 0 {
		return apperrors.NewConfigError("--min-batch cannot be negative, got %d", c.MinBatch)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.InputFile != "" && len(c.Values) > 0 {
		return apperrors.NewConfigError("values cannot be given both as arguments and with --input")
	}
	if c.Completion != "" && !slices.Contains(completionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion (expected %s)", c.Completion, humanize.NaturalList(completionShells))
	}
	if c.Serve && c.Addr == "" {
		return apperrors.NewConfigError("--addr cannot be empty with --serve")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

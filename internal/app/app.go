// Package app wires configuration, the batch engine and the user-facing
// modes of the humanize binary together.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/cli"
	"github.com/agbru/humanize/internal/config"
	apperrors "github.com/agbru/humanize/internal/errors"
	"github.com/agbru/humanize/internal/logging"
	"github.com/agbru/humanize/internal/metrics"
	"github.com/agbru/humanize/internal/parallel"
	"github.com/agbru/humanize/internal/server"
	"github.com/agbru/humanize/internal/tui"
	"github.com/agbru/humanize/internal/ui"
)

// Application represents the humanize application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In supplies values for "--input -" and the REPL.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput replaces stdin as the source of piped values.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "humanize"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor, out)

	var logger logging.Logger = logging.NewLogger(a.ErrWriter, "humanize").WithLevel(level)
	if a.Config.TUI {
		// The preview owns the terminal.
		logger = logging.Nop()
	}
	rec := metrics.NewRecorder()
	engine := a.newEngine(logger, rec)

	switch {
	case a.Config.Serve:
		return a.runServer(ctx, engine, rec, logger)
	case a.Config.REPL:
		return a.runREPL(engine, out)
	case a.Config.TUI:
		return a.runTUI(ctx, engine)
	}
	return a.runFormat(ctx, engine, out)
}

func (a *Application) newEngine(logger logging.Logger, rec *metrics.Recorder) *batch.Engine {
	return batch.New(
		batch.WithMapper(parallel.NewPool(a.Config.Workers, a.Config.MinBatch)),
		batch.WithLogger(logger),
		batch.WithMetrics(rec),
	)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServer serves the HTTP API until interrupted.
func (a *Application) runServer(ctx context.Context, engine *batch.Engine, rec *metrics.Recorder, logger logging.Logger) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.Addr, engine, rec,
		server.WithLogger(logger),
		server.WithRequestTimeout(a.Config.Timeout),
	)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session.
func (a *Application) runREPL(engine *batch.Engine, out io.Writer) int {
	repl := cli.NewREPL(engine, cli.REPLConfig{
		NDigits: a.Config.NDigits,
		Format:  a.Config.Format,
		Binary:  a.Config.Binary,
		GNU:     a.Config.GNU,
		Timeout: a.Config.Timeout,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the live preview, pre-filled with any positional values.
func (a *Application) runTUI(ctx context.Context, engine *batch.Engine) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := tui.OptionsFromFormat(a.Config.Format, a.Config.Binary, a.Config.GNU)
	return tui.Run(ctx, engine, opts, Version, strings.Join(a.Config.Values, " "))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

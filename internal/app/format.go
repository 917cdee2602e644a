package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/cli"
	"github.com/agbru/humanize/internal/config"
	apperrors "github.com/agbru/humanize/internal/errors"
	"github.com/agbru/humanize/internal/humanize"
)

// runFormat formats the configured values once and prints the result.
func (a *Application) runFormat(ctx context.Context, engine *batch.Engine, out io.Writer) int {
	inputs, scalar, err := a.collectInputs()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorInput
	}

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	decorated := !a.Config.Quiet && !a.Config.JSON
	if decorated {
		cli.PrintExecutionConfig(a.Config, len(inputs), out)
	}

	var input any = inputs
	if scalar {
		input = inputs[0]
	}

	spin := cli.StartSpinner(a.ErrWriter, a.Config.Command, len(inputs), a.Config.Quiet)
	start := time.Now()
	result, err := a.format(ctx, engine, input)
	elapsed := time.Since(start)
	spin.Stop()

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: a.Config.Command, Limit: a.Config.Timeout}
		}
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		JSON:       a.Config.JSON,
		Quiet:      a.Config.Quiet,
	}
	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(result, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplaySaved(out, outputCfg.OutputFile)
		}
		return apperrors.ExitSuccess
	}

	if err := cli.DisplayResult(out, inputs, result, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if decorated {
		cli.PrintSummary(out, len(inputs), elapsed)
	}
	return apperrors.ExitSuccess
}

// collectInputs returns the values to format and whether they form a single
// scalar call. A file always yields a list, even with one line.
func (a *Application) collectInputs() ([]string, bool, error) {
	if a.Config.InputFile != "" {
		r, err := cli.OpenInput(a.Config.InputFile, a.In)
		if err != nil {
			return nil, false, err
		}
		defer r.Close()
		values, err := cli.ReadValues(r)
		return values, false, err
	}

	switch len(a.Config.Values) {
	case 0:
		return nil, false, apperrors.NewConfigError("no values given for %s (pass them as arguments or with --input)", a.Config.Command)
	case 1:
		return a.Config.Values, true, nil
	}
	return a.Config.Values, false, nil
}

func (a *Application) format(ctx context.Context, engine *batch.Engine, input any) (batch.Result, error) {
	switch a.Config.Command {
	case humanize.NameIntComma:
		if a.Config.NDigits == config.NoNDigits {
			return engine.IntComma(ctx, input)
		}
		return engine.IntComma(ctx, input, a.Config.NDigits)
	case humanize.NameIntWord:
		return engine.IntWord(ctx, input, a.Config.Format)
	case humanize.NameNaturalSize:
		return engine.NaturalSize(ctx, input, a.Config.Binary, a.Config.GNU, a.Config.Format)
	}
	return batch.Result{}, apperrors.NewConfigError("unknown command %q", a.Config.Command)
}

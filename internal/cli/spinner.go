package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// SpinnerRefreshRate is the frame interval of the progress spinner.
	SpinnerRefreshRate = 120 * time.Millisecond
	// SpinnerThreshold is the number of values from which the spinner is shown.
	SpinnerThreshold = 10_000
)

// FormatExecutionDuration renders d in µs below a millisecond, in ms below a
// second, and with time.Duration's own format otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Spinner abstracts the terminal spinner so that output code can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is replaced in tests.
var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[14], SpinnerRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

// StartSpinner shows a spinner on w while a large batch is formatted. It
// returns a no-op spinner when quiet is set or n is below SpinnerThreshold.
// The caller must call Stop.
//
// Parameters:
//   - w: The writer the spinner draws on.
//   - formatter: The formatter name shown in the spinner suffix.
//   - n: The number of values being formatted.
//   - quiet: If true, no spinner is shown.
//
// Returns:
//   - Spinner: A started spinner.
func StartSpinner(w io.Writer, formatter string, n int, quiet bool) Spinner {
	if quiet || n < SpinnerThreshold {
		return nopSpinner{}
	}
	s := newSpinner(w)
	s.UpdateSuffix(fmt.Sprintf(" formatting %d values with %s", n, formatter))
	s.Start()
	return s
}

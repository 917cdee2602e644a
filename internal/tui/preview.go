package tui

import (
	"context"
	"strings"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/humanize"
)

// MaxDigits bounds the precision that can be selected from the keyboard.
const MaxDigits = 10

// Options are the formatting switches controlled from the keyboard.
// Digits below zero selects natural precision.
type Options struct {
	Binary bool
	GNU    bool
	Digits int
}

// OptionsFromFormat builds Options whose precision is taken from a
// "%.<N>f" format string.
func OptionsFromFormat(format string, binary, gnu bool) Options {
	digits := -1
	if n, ok := humanize.ParseFormatSpec(format).Digits(); ok {
		digits = min(n, MaxDigits)
	}
	return Options{Binary: binary, GNU: gnu, Digits: digits}
}

// Precision returns the precision selected by o.
func (o Options) Precision() humanize.Precision {
	if o.Digits < 0 {
		return humanize.Natural
	}
	return humanize.Digits(o.Digits)
}

func (o Options) format() string {
	if o.Digits < 0 {
		return ""
	}
	return o.Precision().String()
}

// adjust moves the precision by delta, stepping through natural below zero.
func (o Options) adjust(delta int) Options {
	o.Digits = max(-1, min(o.Digits+delta, MaxDigits))
	return o
}

// Row is one previewed value.
type Row struct {
	Input       string
	IntComma    string
	IntWord     string
	NaturalSize string
}

// PreviewMsg carries the rows computed for one edit of the input.
type PreviewMsg struct {
	Rows       []Row
	Err        error
	Generation uint64
}

// computePreview formats every whitespace-separated value of text with the
// three formatters.
func computePreview(ctx context.Context, engine *batch.Engine, text string, opts Options) ([]Row, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}

	var commas batch.Result
	var err error
	if opts.Digits >= 0 {
		commas, err = engine.IntComma(ctx, fields, opts.Digits)
	} else {
		commas, err = engine.IntComma(ctx, fields)
	}
	if err != nil {
		return nil, err
	}
	words, err := engine.IntWord(ctx, fields, opts.format())
	if err != nil {
		return nil, err
	}
	sizes, err := engine.NaturalSize(ctx, fields, opts.Binary, opts.GNU, opts.format())
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(fields))
	for i, f := range fields {
		rows[i] = Row{
			Input:       f,
			IntComma:    commas.Values[i],
			IntWord:     words.Values[i],
			NaturalSize: sizes.Values[i],
		}
	}
	return rows, nil
}

package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/humanize/internal/config"
	"github.com/agbru/humanize/internal/humanize"
	"github.com/agbru/humanize/internal/ui"
)

// PrintExecutionConfig writes a short header describing the run.
func PrintExecutionConfig(cfg config.AppConfig, n int, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s on %s%d%s value(s), %s\n",
		ui.ColorBold(), cfg.Command, ui.ColorReset(),
		ui.ColorPrimary(), n, ui.ColorReset(),
		DescribeOptions(cfg))
	fmt.Fprintf(out, "%sworkers=%d min-batch=%d GOMAXPROCS=%d%s\n\n",
		ui.ColorSecondary(), cfg.Workers, cfg.MinBatch, runtime.GOMAXPROCS(0), ui.ColorReset())
}

// DescribeOptions summarises the formatting options relevant to the command.
func DescribeOptions(cfg config.AppConfig) string {
	switch cfg.Command {
	case humanize.NameIntComma:
		if cfg.NDigits == config.NoNDigits {
			return "natural precision"
		}
		return fmt.Sprintf("%d fractional digit(s)", cfg.NDigits)
	case humanize.NameNaturalSize:
		scheme := "decimal"
		switch {
		case cfg.GNU:
			scheme = "gnu"
		case cfg.Binary:
			scheme = "binary"
		}
		return fmt.Sprintf("%s units, precision %s", scheme, humanize.ParseFormatSpec(cfg.Format))
	default:
		return "precision " + humanize.ParseFormatSpec(cfg.Format).String()
	}
}

// PrintSummary writes the elapsed time after a non-quiet run.
func PrintSummary(out io.Writer, n int, elapsed time.Duration) {
	fmt.Fprintf(out, "\n%s%d value(s) in %s%s\n", ui.ColorSecondary(), n, FormatExecutionDuration(elapsed), ui.ColorReset())
}

// DisplaySaved confirms that results were written to path.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintf(out, "%s✓ Results saved to: %s%s%s\n", ui.ColorSuccess(), ui.ColorPrimary(), path, ui.ColorReset())
}

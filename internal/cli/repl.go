package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/humanize"
	"github.com/agbru/humanize/internal/ui"
)

// REPLConfig holds the initial settings of an interactive session.
type REPLConfig struct {
	// NDigits is the intcomma precision; negative means natural.
	NDigits int
	// Format is the precision directive for intword and naturalsize.
	Format string
	// Binary and GNU select the naturalsize unit scheme.
	Binary bool
	GNU    bool
	// Timeout bounds each command.
	Timeout time.Duration
}

// REPL is an interactive formatting session.
type REPL struct {
	config REPLConfig
	engine *batch.Engine
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a session reading stdin and writing stdout.
//
// Parameters:
//   - engine: The engine that formats each entered value.
//   - config: The initial precision, unit scheme and timeout.
//
// Returns:
//   - *REPL: A session ready to Start.
func NewREPL(engine *batch.Engine, config REPLConfig) *REPL {
	if config.Format == "" {
		config.Format = humanize.DefaultFormat
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &REPL{config: config, engine: engine, in: os.Stdin, out: os.Stdout}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until "exit" or end of input.
func (r *REPL) Start() {
	fmt.Fprintf(r.out, "%shumanize interactive mode%s\n", ui.ColorBold(), ui.ColorReset())
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.Paint(ui.ColorSuccess(), "humanize> "))

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printHelp() {
	cmd := func(name, help string) {
		fmt.Fprintf(r.out, "  %s%-22s%s %s\n", ui.ColorWarning(), name, ui.ColorReset(), help)
	}
	fmt.Fprintf(r.out, "%sCommands:%s\n", ui.ColorBold(), ui.ColorReset())
	cmd("<value> ...", "Show every formatter for the values")
	cmd("intcomma|comma <v> ...", "Group digits with commas")
	cmd("intword|word <v> ...", "Scale to thousand, million, ...")
	cmd("naturalsize|size <v> ...", "Render as a byte size")
	cmd("ndigits <n|off>", "Set intcomma precision")
	cmd("format <%.Nf>", "Set intword and naturalsize precision")
	cmd("binary", "Toggle powers of 1024 for naturalsize")
	cmd("gnu", "Toggle single-letter naturalsize suffixes")
	cmd("theme <dark|light|none>", "Switch the color theme")
	cmd("status", "Show current settings")
	cmd("help", "Show this help")
	cmd("exit|quit", "Leave interactive mode")
}

// processCommand runs one line and reports whether the session continues.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "intcomma", "comma":
		r.run(humanize.NameIntComma, args)
	case "intword", "word":
		r.run(humanize.NameIntWord, args)
	case "naturalsize", "size":
		r.run(humanize.NameNaturalSize, args)
	case "ndigits":
		r.cmdNDigits(args)
	case "format":
		r.cmdFormat(args)
	case "binary":
		r.config.Binary = !r.config.Binary
		fmt.Fprintf(r.out, "Binary units: %s\n", onOff(r.config.Binary))
	case "gnu":
		r.config.GNU = !r.config.GNU
		fmt.Fprintf(r.out, "GNU suffixes: %s\n", onOff(r.config.GNU))
	case "theme":
		r.cmdTheme(args)
	case "status":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	default:
		for _, name := range humanize.Names() {
			r.run(name, parts)
		}
	}
	return true
}

func (r *REPL) run(name string, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s <value> ...%s\n", ui.ColorError(), name, ui.ColorReset())
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	var input any = args
	if len(args) == 1 {
		input = args[0]
	}
	res, err := r.format(ctx, name, input)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "  %s%-12s%s %s\n", ui.ColorSecondary(), name, ui.ColorReset(),
		ui.Paint(ui.ColorNumber(), strings.Join(res.Values, ", ")))
}

func (r *REPL) format(ctx context.Context, name string, input any) (batch.Result, error) {
	switch name {
	case humanize.NameIntComma:
		if r.config.NDigits >= 0 {
			return r.engine.IntComma(ctx, input, r.config.NDigits)
		}
		return r.engine.IntComma(ctx, input)
	case humanize.NameIntWord:
		return r.engine.IntWord(ctx, input, r.config.Format)
	default:
		return r.engine.NaturalSize(ctx, input, r.config.Binary, r.config.GNU, r.config.Format)
	}
}

func (r *REPL) cmdNDigits(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: ndigits <n|off>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	if strings.EqualFold(args[0], "off") {
		r.config.NDigits = -1
		fmt.Fprintln(r.out, "intcomma precision: natural")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(r.out, "%sInvalid digit count: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	r.config.NDigits = n
	fmt.Fprintf(r.out, "intcomma precision: %d\n", n)
}

func (r *REPL) cmdFormat(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: format <%%.Nf>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	r.config.Format = args[0]
	fmt.Fprintf(r.out, "precision: %s\n", humanize.ParseFormatSpec(r.config.Format))
}

func (r *REPL) cmdTheme(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: theme <dark|light|none>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	ui.SetTheme(strings.ToLower(args[0]))
	fmt.Fprintf(r.out, "theme: %s\n", ui.GetCurrentTheme().Name)
}

func (r *REPL) cmdStatus() {
	ndigits := "natural"
	if r.config.NDigits >= 0 {
		ndigits = strconv.Itoa(r.config.NDigits)
	}
	fmt.Fprintf(r.out, "  ndigits: %s\n  format:  %s\n  binary:  %s\n  gnu:     %s\n  timeout: %s\n",
		ndigits, r.config.Format, onOff(r.config.Binary), onOff(r.config.GNU), r.config.Timeout)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

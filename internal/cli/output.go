// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write to the filesystem.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/ui"
)

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// OutputFile receives the results instead of stdout when set.
	OutputFile string
	// JSON prints the result as JSON, a string or an array.
	JSON bool
	// Quiet prints bare results, one per line.
	Quiet bool
}

// FormatPlain renders results one per line.
func FormatPlain(result batch.Result) string {
	if len(result.Values) == 0 {
		return ""
	}
	return strings.Join(result.Values, "\n") + "\n"
}

// FormatJSON renders the result as a single JSON document.
func FormatJSON(result batch.Result) (string, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// DisplayResult prints result to out. Without Quiet or JSON each line pairs
// the input with its rendering.
//
// Parameters:
//   - out: The writer to display to.
//   - inputs: The raw inputs, used as labels in decorated mode.
//   - result: The formatted result.
//   - cfg: The output configuration.
//
// Returns:
//   - error: An error if encoding or writing fails.
func DisplayResult(out io.Writer, inputs []string, result batch.Result, cfg OutputConfig) error {
	switch {
	case cfg.JSON:
		s, err := FormatJSON(result)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, s)
		return err
	case cfg.Quiet || len(inputs) != len(result.Values):
		_, err := io.WriteString(out, FormatPlain(result))
		return err
	}

	width := 0
	for _, in := range inputs {
		width = max(width, len(in))
	}
	for i, in := range inputs {
		fmt.Fprintf(out, "%s%-*s%s  →  %s\n",
			ui.ColorSecondary(), width, in, ui.ColorReset(),
			ui.Paint(ui.ColorNumber(), result.Values[i]))
	}
	return nil
}

// WriteResultToFile writes result to cfg.OutputFile, creating parent
// directories as needed. It does nothing when no file is configured.
//
// Parameters:
//   - result: The formatted result to save.
//   - cfg: The output configuration holding the file path and JSON flag.
//
// Returns:
//   - error: An error if the file cannot be created or written.
func WriteResultToFile(result batch.Result, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	content := FormatPlain(result)
	if cfg.JSON {
		var err error
		if content, err = FormatJSON(result); err != nil {
			return err
		}
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

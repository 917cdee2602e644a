package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/humanize/internal/humanize"
)

// FlagCompletion describes one flag for completion scripts. Every generator
// reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // without "--"
	Short     string   // without "-"
	Help      string
	Values    []string // suggested values; nil for booleans or free text
	ValueName string   // set when the flag takes a value
	IsFile    bool
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "ndigits", Help: "Fractional digits for intcomma", Values: []string{"0", "1", "2", "3"}, ValueName: "digits"},
	{Long: "format", Short: "f", Help: "Precision directive", Values: []string{"%.0f", "%.1f", "%.2f", "%.3f"}, ValueName: "spec"},
	{Long: "binary", Short: "b", Help: "Powers of 1024 with KiB suffixes"},
	{Long: "gnu", Short: "g", Help: "Powers of 1024 with letter suffixes"},
	{Long: "workers", Help: "Formatting goroutines", ValueName: "count"},
	{Long: "min-batch", Help: "Smallest parallel batch", ValueName: "count"},
	{Long: "input", Short: "i", Help: "Read values from file", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Write results to file", IsFile: true, ValueName: "file"},
	{Long: "json", Help: "JSON output"},
	{Long: "quiet", Short: "q", Help: "Bare output for scripts"},
	{Long: "no-color", Help: "Disable colors"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "timeout", Help: "Maximum run time", Values: []string{"5s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "serve", Help: "Run the HTTP API"},
	{Long: "addr", Help: "Listen address", Values: []string{":8080", "127.0.0.1:8080"}, ValueName: "addr"},
	{Long: "repl", Help: "Interactive mode"},
	{Long: "tui", Help: "Live preview UI"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out.
//
// Parameters:
//   - out: The writer receiving the script.
//   - shell: One of "bash", "zsh" or "fish".
//
// Returns:
//   - error: An error if the shell is unsupported or the write fails.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

func commandWords() string {
	return strings.Join(humanize.Names(), " ")
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		var patterns []string
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
			patterns = append(patterns, "-"+f.Short)
		}
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(patterns, "|"))
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(patterns, "|"), strings.Join(f.Values, " "))
		}
	}

	_, err := fmt.Fprintf(out, `# bash completion for humanize
_humanize() {
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
    else
        COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
    fi
}
complete -F _humanize humanize
`, cases.String(), strings.Join(opts, " "), commandWords())
	return err
}

func zshArgEntry(f FlagCompletion) string {
	action := ""
	switch {
	case f.IsFile:
		action = ":" + f.ValueName + ":_files"
	case len(f.Values) > 0:
		action = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		action = ":" + f.ValueName + ":"
	}
	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("    '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, action)
	}
	return fmt.Sprintf("    '--%s[%s]%s'", f.Long, f.Help, action)
}

func generateZshCompletion(out io.Writer) error {
	entries := make([]string, 0, len(flagRegistry)+1)
	for _, f := range flagRegistry {
		entries = append(entries, zshArgEntry(f))
	}
	entries = append(entries, fmt.Sprintf("    '1:command:(%s)'", commandWords()), "    '*:value:'")
	_, err := fmt.Fprintf(out, "#compdef humanize\n\n_arguments \\\n%s\n", strings.Join(entries, " \\\n"))
	return err
}

func generateFishCompletion(out io.Writer) error {
	var b strings.Builder
	b.WriteString("# fish completion for humanize\n")
	fmt.Fprintf(&b, "complete -c humanize -n '__fish_use_subcommand' -a '%s'\n", commandWords())
	for _, f := range flagRegistry {
		line := "complete -c humanize"
		if f.Long != "" {
			line += " -l " + f.Long
		}
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch {
		case f.IsFile:
			line += " -r -F"
		case len(f.Values) > 0:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
		case f.ValueName != "":
			line += " -x"
		}
		line += fmt.Sprintf(" -d '%s'", f.Help)
		b.WriteString(line + "\n")
	}
	_, err := io.WriteString(out, b.String())
	return err
}

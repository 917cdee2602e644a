package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme is a set of ANSI escape sequences, one per role.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Number    string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;45m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;84m",
		Warning:   "\033[38;5;221m",
		Error:     "\033[38;5;203m",
		Number:    "\033[38;5;213m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;242m",
		Success:   "\033[38;5;22m",
		Warning:   "\033[38;5;94m",
		Error:     "\033[38;5;160m",
		Number:    "\033[38;5;90m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme emits no escape sequences at all.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme is the lipgloss palette used by the terminal preview.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Number  lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default preview palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E4E4E4"},
		Border:  lipgloss.Color("#00AFD7"),
		Accent:  lipgloss.Color("#5FD7FF"),
		Number:  lipgloss.Color("#FF87FF"),
		Warning: lipgloss.Color("#FFD75F"),
		Error:   lipgloss.Color("#FF5F5F"),
		Dim:     lipgloss.Color("#6C6C6C"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Number:  lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active ANSI theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentTUITheme returns the palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select the dark theme.
//
// Parameters:
//   - name: The name of the theme to activate.
func SetTheme(name string) {
	switch name {
	case LightTheme.Name:
		SetCurrentTheme(LightTheme)
	case NoColorTheme.Name:
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme picks the theme for output written to out. Color is disabled by
// noColor, by a NO_COLOR environment variable (https://no-color.org/), or
// when out is not a terminal.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
//   - out: The destination the themed output is written to.
func InitTheme(noColor bool, out any) {
	if noColor || !IsTerminal(out) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

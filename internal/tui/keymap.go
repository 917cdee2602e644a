package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview's key bindings. Printable keys always go to the
// input field, so every binding uses a control or navigation key.
type KeyMap struct {
	Quit          key.Binding
	Binary        key.Binding
	GNU           key.Binding
	MorePrecision key.Binding
	LessPrecision key.Binding
	Clear         key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Binary: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("^b", "binary"),
		),
		GNU: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^g", "gnu"),
		),
		MorePrecision: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "more digits"),
		),
		LessPrecision: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "fewer digits"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("^x", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Binary, k.GNU, k.MorePrecision, k.LessPrecision, k.Quit}
}

// FullHelp lists every binding, grouped for the help panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Binary, k.GNU},
		{k.MorePrecision, k.LessPrecision},
		{k.Clear, k.Help, k.Quit},
	}
}

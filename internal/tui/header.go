package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and active options.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for the given options.
func (h HeaderModel) View(opts Options) string {
	titleText := "humanize preview"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")

	left := titleStyle.Render(titleText) + pipe +
		toggle("binary", opts.Binary) + " " + toggle("gnu", opts.GNU) + pipe +
		versionStyle.Render("precision ") + optionOnStyle.Render(opts.Precision().String())

	gap := max(h.width-2-lipgloss.Width(left), 0)
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap))
}

func toggle(name string, on bool) string {
	if on {
		return optionOnStyle.Render("[x] " + name)
	}
	return optionOffStyle.Render("[ ] " + name)
}

// FooterModel renders the key hints.
type FooterModel struct {
	keymap KeyMap
	full   bool
	width  int
}

// NewFooterModel creates a footer for km.
func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{keymap: km}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// ToggleFull switches between the short and full key listing.
func (f *FooterModel) ToggleFull() {
	f.full = !f.full
}

// View renders the footer.
func (f FooterModel) View() string {
	if !f.full {
		return renderBindings(f.keymap.ShortHelp())
	}
	groups := f.keymap.FullHelp()
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = renderBindings(g)
	}
	return strings.Join(lines, "\n")
}

func renderBindings(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, footerDescStyle.Render("  •  "))
}

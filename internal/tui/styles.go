package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/humanize/internal/ui"
)

// Style variables for the preview.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	optionOnStyle    lipgloss.Style
	optionOffStyle   lipgloss.Style
	columnTitleStyle lipgloss.Style
	inputCellStyle   lipgloss.Style
	resultCellStyle  lipgloss.Style
	errorStyle       lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	optionOnStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	optionOffStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	columnTitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Underline(true)

	inputCellStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	resultCellStyle = lipgloss.NewStyle().
		Foreground(t.Number).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}

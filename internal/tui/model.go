package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/humanize/internal/batch"
	apperrors "github.com/agbru/humanize/internal/errors"
)

// inputCharLimit bounds the length of the preview line.
const inputCharLimit = 512

var columnTitles = [4]string{"value", "intcomma", "intword", "naturalsize"}

// Model is the root bubbletea model for the preview.
type Model struct {
	header HeaderModel
	footer FooterModel
	input  textinput.Model
	keymap KeyMap

	ctx    context.Context
	engine *batch.Engine
	opts   Options

	rows       []Row
	lastError  error
	generation uint64
	width      int
	height     int
}

// NewModel creates a preview model. initial pre-fills the input line.
func NewModel(ctx context.Context, engine *batch.Engine, opts Options, version, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "type numbers, e.g. 1234567 3e9 inf"
	ti.Prompt = "› "
	ti.CharLimit = inputCharLimit
	ti.SetValue(initial)
	ti.Focus()

	km := DefaultKeyMap()
	return Model{
		header: NewHeaderModel(version),
		footer: NewFooterModel(km),
		input:  ti,
		keymap: km,
		ctx:    ctx,
		engine: engine,
		opts:   opts,
	}
}

// Init renders the initial input, if any, and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.previewCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case PreviewMsg:
		if msg.Generation != m.generation {
			return m, nil // stale result from an earlier edit
		}
		m.rows = msg.Rows
		m.lastError = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Binary):
		m.opts.Binary = !m.opts.Binary
		return m.refresh()

	case key.Matches(msg, m.keymap.GNU):
		m.opts.GNU = !m.opts.GNU
		return m.refresh()

	case key.Matches(msg, m.keymap.MorePrecision):
		m.opts = m.opts.adjust(1)
		return m.refresh()

	case key.Matches(msg, m.keymap.LessPrecision):
		m.opts = m.opts.adjust(-1)
		return m.refresh()

	case key.Matches(msg, m.keymap.Clear):
		m.input.Reset()
		return m.refresh()

	case key.Matches(msg, m.keymap.Help):
		m.footer.ToggleFull()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m, preview := m.refresh()
	return m, tea.Batch(cmd, preview)
}

// refresh invalidates pending previews and schedules a new one.
func (m Model) refresh() (Model, tea.Cmd) {
	m.generation++
	if strings.TrimSpace(m.input.Value()) == "" {
		m.rows = nil
		m.lastError = nil
	}
	return m, m.previewCmd()
}

// previewCmd formats the current input off the UI goroutine.
func (m Model) previewCmd() tea.Cmd {
	ctx, engine, text, opts, gen := m.ctx, m.engine, m.input.Value(), m.opts, m.generation
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return func() tea.Msg {
		rows, err := computePreview(ctx, engine, text, opts)
		return PreviewMsg{Rows: rows, Err: err, Generation: gen}
	}
}

// View renders the preview.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	body := panelStyle.Width(max(m.width-2, 0)).Render(m.input.View() + "\n\n" + m.renderRows())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(m.opts), body, m.footer.View())
}

func (m Model) renderRows() string {
	if m.lastError != nil {
		return errorStyle.Render("error: " + m.lastError.Error())
	}
	if len(m.rows) == 0 {
		return versionStyle.Render("nothing to format")
	}

	var widths [4]int
	for i, title := range columnTitles {
		widths[i] = lipgloss.Width(title)
	}
	for _, r := range m.rows {
		for i, cell := range r.cells() {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, renderLine(columnTitles, widths, columnTitleStyle, columnTitleStyle))
	for _, r := range m.rows {
		lines = append(lines, renderLine(r.cells(), widths, inputCellStyle, resultCellStyle))
	}
	return strings.Join(lines, "\n")
}

func (r Row) cells() [4]string {
	return [4]string{r.Input, r.IntComma, r.IntWord, r.NaturalSize}
}

func renderLine(cells [4]string, widths [4]int, first, rest lipgloss.Style) string {
	var b strings.Builder
	for i, cell := range cells {
		style := rest
		if i == 0 {
			style = first
		}
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(style.Render(cell))
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
	}
	return strings.TrimRight(b.String(), " ")
}

// Run is the public entry point for the preview mode. It returns the process
// exit code.
func Run(ctx context.Context, engine *batch.Engine, opts Options, version, initial string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(ctx, engine, opts, version, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

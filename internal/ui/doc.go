// Package ui holds the color themes shared by the CLI, the REPL and the
// terminal preview. ANSI themes serve line-oriented output; lipgloss palettes
// serve the bubbletea views.
package ui

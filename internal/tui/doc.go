// Package tui implements the interactive preview started with --tui.
//
// The preview shows a single input line. Every edit re-runs intcomma,
// intword and naturalsize through the batch engine and renders the three
// results side by side. Several whitespace-separated values are formatted
// as a list, one row per value.
package tui

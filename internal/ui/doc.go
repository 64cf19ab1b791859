// Package ui renders command output for the terminal.
//
// A [Console] writes status lines (success, failure, info, warning) and section titles.
// Styling comes from a [Palette] of lipgloss styles and is applied only when the
// destination is a terminal, so piped or redirected output stays plain text.
package ui

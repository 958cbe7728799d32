// SPDX-License-Identifier: MIT

// Package report renders exercise results as terminal tables or exports
// them as YAML or JSON documents.
package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorGood    = lipgloss.Color("#10B981")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)

	NoteStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)

	bestStyle = cellStyle.
			Foreground(colorGood)
)

// newTable returns a bordered table with the shared header and cell styles.
// highlight, when non-nil, picks cells drawn with the "best value" style.
func newTable(headers []string, rows [][]string, highlight func(row, col int) bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case highlight != nil && highlight(row, col):
				return bestStyle
			default:
				return cellStyle
			}
		})
}

package heatmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options controls the styling of the rendered grid.
type Options struct {
	LevelStyles   [MaxLevel + 1]lipgloss.Style
	FutureStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	LabelStyle    lipgloss.Style
	// Selected highlights the cell with this day key.
	Selected   string
	ShowMonths bool
}

// DefaultOptions returns a green palette similar to contribution graphs.
func DefaultOptions() Options {
	cell := lipgloss.NewStyle()
	return Options{
		LevelStyles: [MaxLevel + 1]lipgloss.Style{
			cell.Foreground(lipgloss.Color("238")),
			cell.Foreground(lipgloss.Color("22")),
			cell.Foreground(lipgloss.Color("28")),
			cell.Foreground(lipgloss.Color("40")),
		},
		FutureStyle:   cell.Foreground(lipgloss.Color("235")),
		EmptyStyle:    cell,
		SelectedStyle: cell.Reverse(true),
		LabelStyle:    cell.Faint(true),
		ShowMonths:    true,
	}
}

const (
	dayGlyph    = "■"
	futureGlyph = "·"
	cellWidth   = 2
)

// Render draws the grid as seven rows (Sunday to Saturday) of week columns.
func Render(g YearGrid, opts Options) string {
	var lines []string
	if opts.ShowMonths {
		lines = append(lines, opts.LabelStyle.Render(monthRow(g)))
	}

	for d := 0; d < 7; d++ {
		cells := make([]string, 0, len(g.Weeks))
		for _, w := range g.Weeks {
			cells = append(cells, renderCell(w[d], opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	var (
		style lipgloss.Style
		glyph string
	)
	switch c.Kind {
	case CellEmpty:
		return opts.EmptyStyle.Render(" ")
	case CellFuture:
		style, glyph = opts.FutureStyle, futureGlyph
	default:
		style, glyph = opts.LevelStyles[c.Level], dayGlyph
	}
	if opts.Selected != "" && c.Key == opts.Selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(glyph)
}

// monthRow places each month label above the week column it starts in.
func monthRow(g YearGrid) string {
	width := len(g.Weeks) * cellWidth
	row := []rune(strings.Repeat(" ", width+8))
	next := 0
	for _, m := range g.Months {
		col := m.Week * cellWidth
		if col < next {
			col = next
		}
		label := []rune(m.Label)
		if col+len(label) > len(row) {
			break
		}
		copy(row[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}

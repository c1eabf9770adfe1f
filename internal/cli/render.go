package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/masonry/pkg/core/masonry"
)

// minTileLines is a bordered box with one line of label.
const minTileLines = 3

// gridOptions controls terminal rendering of a layout.
type gridOptions struct {
	// ColumnWidth is the width of one column in cells, borders included.
	ColumnWidth int
	// ViewportRows is the terminal height that tile heights are relative to:
	// a tile of height 50 spans half of it.
	ViewportRows int
}

// columnWidth splits termWidth evenly across columns.
func columnWidth(termWidth, columns int) int {
	if columns < 1 {
		return termWidth
	}
	w := termWidth / columns
	if w < 4 {
		w = 4
	}
	return w
}

// tileLines converts a height (percent of the viewport) into terminal lines.
func tileLines(h float64, viewportRows int) int {
	n := int(math.Round(h * float64(viewportRows) / 100))
	if n < minTileLines {
		n = minTileLines
	}
	return n
}

// tileLabel returns the text shown inside a tile.
func tileLabel(t masonry.Tile) string {
	switch c := t.Content.(type) {
	case string:
		if c != "" {
			return c
		}
	case fmt.Stringer:
		return c.String()
	case map[string]any:
		for _, key := range []string{"title", "name", "label"} {
			if s, ok := c[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return t.ID
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// renderGrid draws l as side-by-side columns of bordered tiles.
func renderGrid(l masonry.Layout, opts gridOptions) string {
	if l.Len() == 0 {
		return ""
	}
	inner := opts.ColumnWidth - 2
	if inner < 1 {
		inner = 1
	}

	cols := make([]string, l.Len())
	idx := 0
	for i, c := range l.Columns {
		if c.Len() == 0 {
			cols[i] = lipgloss.NewStyle().Width(opts.ColumnWidth).Render("")
			continue
		}
		boxes := make([]string, c.Len())
		for j, t := range c.Tiles {
			lines := tileLines(t.Height, opts.ViewportRows)
			style := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(tilePalette[idx%len(tilePalette)]).
				Width(inner).
				Height(lines - 2)

			label := truncate(tileLabel(t), inner)
			detail := StyleDim.Render(truncate(fmt.Sprintf("%.0f", t.Height), inner))
			body := label
			if lines-2 > 1 {
				body = label + "\n" + detail
			}
			boxes[j] = style.Render(body)
			idx++
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// cropLines returns at most n lines of s starting at line offset.
func cropLines(s string, offset, n int) string {
	lines := strings.Split(s, "\n")
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + n
	if end > len(lines) || n < 0 {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

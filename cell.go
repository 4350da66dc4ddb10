package panes

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one character cell of a [Screen]. Text holds a single grapheme
// cluster. A wide grapheme (CJK, most emoji) occupies two cells: the first
// holds the text with Width 2, the second is a continuation with Width 0.
type Cell struct {
	Text  string
	Style Style
	Width uint8
}

var blankCell = Cell{Text: " ", Width: 1}

// NewCell creates a cell for a grapheme, measuring its display width.
func NewCell(grapheme string, style Style) Cell {
	return Cell{Text: grapheme, Style: style, Width: uint8(GraphemeWidth(grapheme))}
}

// IsContinuation reports whether the cell is the right half of a wide grapheme.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// GraphemeWidth returns how many cells a grapheme cluster occupies: 1 or 2.
// Zero-width clusters (lone combining marks) are given one cell so they
// remain visible.
func GraphemeWidth(g string) int {
	w := runewidth.StringWidth(g)
	switch {
	case w <= 0:
		return 1
	case w > 2:
		return 2
	default:
		return w
	}
}

// StringWidth returns the display width of s in cells, grapheme by grapheme.
func StringWidth(s string) int {
	width := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\n" {
			continue
		}
		width += GraphemeWidth(cluster)
	}
	return width
}

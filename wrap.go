package panes

// WrapMode selects how lines longer than the available width are broken.
type WrapMode uint8

const (
	// WrapNone keeps every line on one row; the window scrolls horizontally.
	WrapNone WrapMode = iota
	// WrapChar breaks at the last grapheme that fits.
	WrapChar
	// WrapWord breaks after the last space that fits, falling back to
	// WrapChar for words longer than the width.
	WrapWord
)

// wrapRows splits a line into rows of at most width cells and returns the
// glyph index where each row starts. The result always has at least one
// row. A glyph wider than the whole row gets a row of its own.
func wrapRows(gs []glyph, width int, mode WrapMode) []int {
	starts := []int{0}
	if mode == WrapNone || width <= 0 {
		return starts
	}

	rowStart, col, lastSpace := 0, 0, -1
	for i := 0; i < len(gs); i++ {
		g := gs[i]
		// A space that does not fit hangs off the end of its row.
		if mode == WrapWord && g.text == " " && col+g.width > width && i > rowStart {
			if i+1 < len(gs) {
				starts = append(starts, i+1)
				rowStart, lastSpace, col = i+1, -1, 0
			}
			continue
		}
		for col+g.width > width && i > rowStart {
			next := i
			if mode == WrapWord && lastSpace >= rowStart && lastSpace+1 < i {
				next = lastSpace + 1
			}
			starts = append(starts, next)
			rowStart, lastSpace = next, -1
			col = 0
			for j := next; j < i; j++ {
				col += gs[j].width
			}
		}
		if g.text == " " {
			lastSpace = i
		}
		col += g.width
	}
	return starts
}

// locateGlyph maps a glyph index to the wrapped row that contains it and the
// display column inside that row. An index at the end of the line maps to
// the position just after the last glyph.
func locateGlyph(gs []glyph, starts []int, index int) (row, col int) {
	row = 0
	for r := len(starts) - 1; r >= 0; r-- {
		if index >= starts[r] {
			row = r
			break
		}
	}
	for j := starts[row]; j < index && j < len(gs); j++ {
		col += gs[j].width
	}
	return row, col
}

// rowGlyphs returns the glyphs of row r.
func rowGlyphs(gs []glyph, starts []int, r int) []glyph {
	end := len(gs)
	if r+1 < len(starts) {
		end = starts[r+1]
	}
	return gs[starts[r]:end]
}

// glyphIndexAtColumn returns the index of the glyph drawn at display column
// col, or len(gs) when col is past the end.
func glyphIndexAtColumn(gs []glyph, col int) int {
	x := 0
	for i, g := range gs {
		if col < x+g.width {
			return i
		}
		x += g.width
	}
	return len(gs)
}

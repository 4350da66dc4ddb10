package panes

import "iter"

// UIContent is what a control produced for one render pass: a lazily
// evaluated sequence of lines plus cursor information. Lines are derived on
// every call to Line, so the sequence can be traversed any number of times.
type UIContent struct {
	// LineCount is the number of lines. Windows use it for scrolling and
	// scrollbars.
	LineCount int

	// Cursor is the cursor position in content coordinates (X is the
	// display column, Y the line), or nil when there is none.
	Cursor *Point

	// MenuAnchor is where a completion menu should attach, in content
	// coordinates. Falls back to Cursor when nil.
	MenuAnchor *Point

	// ShowCursor reports whether the cursor should be visible when the
	// window is focused.
	ShowCursor bool

	getLine func(i int) FormattedText

	sourceLines int
	source      func(i int) (line, col int)
}

// NewUIContent creates content backed by getLine.
func NewUIContent(lineCount int, getLine func(i int) FormattedText) *UIContent {
	return &UIContent{LineCount: max(0, lineCount), getLine: getLine}
}

// EmptyContent returns content with no lines.
func EmptyContent() *UIContent {
	return &UIContent{}
}

// Line returns line i, or nil when i is out of range.
func (c *UIContent) Line(i int) FormattedText {
	if c == nil || c.getLine == nil || i < 0 || i >= c.LineCount {
		return nil
	}
	return c.getLine(i)
}

// Lines iterates over all lines in order.
func (c *UIContent) Lines() iter.Seq2[int, FormattedText] {
	return func(yield func(int, FormattedText) bool) {
		if c == nil {
			return
		}
		for i := 0; i < c.LineCount; i++ {
			if !yield(i, c.Line(i)) {
				return
			}
		}
	}
}

// LineHeight returns the number of rows line i takes at the given width.
// Without wrapping every line takes one row.
func (c *UIContent) LineHeight(i, width int, wrap bool) int {
	if !wrap || width <= 0 {
		return 1
	}
	return len(wrapRows(c.Line(i).glyphs(), width, WrapChar))
}

// SetSourceLines declares that the lines are rows cut from count longer
// source lines, as a control that wraps its own text produces. source maps
// line i to its source line and the display column the row starts at.
func (c *UIContent) SetSourceLines(count int, source func(i int) (line, col int)) {
	c.sourceLines, c.source = max(0, count), source
}

// SourceLine returns the source line of line i and the display column
// within it where line i starts. Without a mapping every line is its own
// source line.
func (c *UIContent) SourceLine(i int) (line, col int) {
	if c == nil || c.source == nil || i < 0 || i >= c.LineCount {
		return i, 0
	}
	return c.source(i)
}

// SourceLineCount returns the number of source lines.
func (c *UIContent) SourceLineCount() int {
	if c == nil {
		return 0
	}
	if c.source == nil {
		return c.LineCount
	}
	return c.sourceLines
}

// menuAnchor returns MenuAnchor, falling back to Cursor.
func (c *UIContent) menuAnchor() *Point {
	if c.MenuAnchor != nil {
		return c.MenuAnchor
	}
	return c.Cursor
}

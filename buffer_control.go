package panes

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// BufferControl displays the text of an external [TextBuffer] and its
// cursor. The buffer is read on every render pass and never modified.
//
// With a wrap mode other than [WrapNone] the control re-wraps the text to
// the width it is given, so every content line is one visual row and the
// cursor is reported as (visual row, column).
type BufferControl struct {
	buffer    TextBuffer
	wrap      WrapMode
	style     Style
	focusable bool

	mu     sync.Mutex
	key    uint64
	cached *bufferRows
	unbind Unbind
}

// bufferRows is the wrapped form of one buffer state at one width.
type bufferRows struct {
	rows   []FormattedText
	cursor Point

	// lines and cols give the buffer line of each row and the display
	// column it starts at.
	lines []int
	cols  []int
	count int
}

// BufferControlOption configures a BufferControl.
type BufferControlOption func(*BufferControl)

// WithWrap selects how long lines are broken.
func WithWrap(mode WrapMode) BufferControlOption {
	return func(c *BufferControl) { c.wrap = mode }
}

// WithBufferStyle sets the style of the text.
func WithBufferStyle(style Style) BufferControlOption {
	return func(c *BufferControl) { c.style = style }
}

// WithBufferFocusable controls whether the hosting window can take focus.
// Buffer controls are focusable by default.
func WithBufferFocusable(focusable bool) BufferControlOption {
	return func(c *BufferControl) { c.focusable = focusable }
}

// NewBufferControl creates a control over buffer. It subscribes to the
// buffer's change hook to drop its cached rows; call Close to unsubscribe.
func NewBufferControl(buffer TextBuffer, opts ...BufferControlOption) *BufferControl {
	if buffer == nil {
		buffer = NewMemoryBuffer("")
	}
	c := &BufferControl{buffer: buffer, focusable: true}
	for _, opt := range opts {
		opt(c)
	}
	c.unbind = buffer.OnChange(c.invalidate)
	return c
}

// Buffer returns the buffer the control reads.
func (c *BufferControl) Buffer() TextBuffer {
	return c.buffer
}

// Close stops listening for buffer changes.
func (c *BufferControl) Close() {
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}

func (c *BufferControl) invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// PreferredWidth returns the widest line of the buffer, capped at
// maxAvailable.
func (c *BufferControl) PreferredWidth(maxAvailable int) (int, bool) {
	widest := 0
	for _, line := range strings.Split(c.buffer.Text(), "\n") {
		widest = max(widest, Plain(line).Width())
	}
	return min(widest, max(maxAvailable, 0)), true
}

// PreferredHeight returns the number of rows the buffer takes at width.
func (c *BufferControl) PreferredHeight(width, maxAvailable int, wrapLines bool) (int, bool) {
	return contentHeight(c.CreateContent(width, maxAvailable), width, maxAvailable, wrapLines), true
}

// CreateContent reads the buffer and lays it out at width. The result is
// reused until the text, cursor, width or wrap mode changes.
func (c *BufferControl) CreateContent(width, height int) *UIContent {
	text := c.buffer.Text()
	cursor := c.buffer.CursorPosition()
	key := bufferKey(text, cursor, width, c.wrap)

	c.mu.Lock()
	rows := c.cached
	if rows == nil || c.key != key {
		rows = layoutBuffer(text, cursor, width, c.wrap, c.style)
		c.cached, c.key = rows, key
	}
	c.mu.Unlock()

	content := NewUIContent(len(rows.rows), func(i int) FormattedText { return rows.rows[i] })
	cur := rows.cursor
	content.Cursor = &cur
	content.ShowCursor = true
	content.SetSourceLines(rows.count, func(i int) (int, int) { return rows.lines[i], rows.cols[i] })
	return content
}

// IsFocusable reports whether the hosting window can take focus.
func (c *BufferControl) IsFocusable() bool {
	return c.focusable
}

func (*BufferControl) uiControl() {}

func bufferKey(text string, cursor, width int, wrap WrapMode) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(text)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.Itoa(cursor))
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(strconv.Itoa(width))
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(strconv.Itoa(int(wrap)))
	return d.Sum64()
}

// layoutBuffer splits text into visual rows and maps the rune offset cursor
// onto them.
func layoutBuffer(text string, cursor, width int, wrap WrapMode, style Style) *bufferRows {
	lines := strings.Split(text, "\n")
	cursorLine, cursorCol := runeOffsetToRowCol(text, cursor)
	if width <= 0 {
		wrap = WrapNone
	}

	out := &bufferRows{rows: make([]FormattedText, 0, len(lines)), count: len(lines)}
	for i, line := range lines {
		gs := Styled(style, line).glyphs()
		if wrap == WrapNone {
			if i == cursorLine {
				_, col := locateGlyph(gs, []int{0}, glyphIndexForRune(gs, cursorCol))
				out.cursor = Point{X: col, Y: len(out.rows)}
			}
			out.rows = append(out.rows, glyphText(gs))
			out.lines = append(out.lines, i)
			out.cols = append(out.cols, 0)
			continue
		}

		starts := wrapRows(gs, width, wrap)
		if i == cursorLine {
			row, col := locateGlyph(gs, starts, glyphIndexForRune(gs, cursorCol))
			// A cursor after a full last row stays on that row's edge.
			out.cursor = Point{X: min(col, width-1), Y: len(out.rows) + row}
		}
		for r, start := range starts {
			out.rows = append(out.rows, glyphText(rowGlyphs(gs, starts, r)))
			out.lines = append(out.lines, i)
			out.cols = append(out.cols, columnOf(gs, start))
		}
	}
	return out
}

// glyphIndexForRune returns the index of the glyph that starts at rune
// offset col within the line.
func glyphIndexForRune(gs []glyph, col int) int {
	n := 0
	for i, g := range gs {
		if n >= col {
			return i
		}
		n += utf8.RuneCountInString(g.text)
	}
	return len(gs)
}

package panes

import "strings"

// MockSink is an in-memory [Sink] for tests. It keeps its own copy of the
// displayed cells and counts the operations it received.
type MockSink struct {
	width, height int
	cells         []Cell
	cursor        Point
	cursorVisible bool

	FlushCount   int
	FlushedCells int
	ClearCount   int
	SyncCount    int
}

// Ensure MockSink implements Sink.
var _ Sink = (*MockSink)(nil)

// NewMockSink creates a blank mock display of the given size.
func NewMockSink(width, height int) *MockSink {
	m := &MockSink{width: width, height: height, cells: make([]Cell, width*height)}
	m.Clear()
	m.ClearCount = 0
	return m
}

// Flush applies the given cell changes.
func (m *MockSink) Flush(changes []CellChange) {
	m.FlushCount++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
			m.FlushedCells++
		}
	}
}

// Clear blanks the display.
func (m *MockSink) Clear() {
	m.ClearCount++
	for i := range m.cells {
		m.cells[i] = blankCell
	}
}

// ShowCursor records a visible cursor at p.
func (m *MockSink) ShowCursor(p Point) {
	m.cursor = p
	m.cursorVisible = true
}

// HideCursor records a hidden cursor.
func (m *MockSink) HideCursor() {
	m.cursorVisible = false
}

// Sync counts the call; there is nothing to synchronise.
func (m *MockSink) Sync() error {
	m.SyncCount++
	return nil
}

// CellAt returns the displayed cell at (x, y).
func (m *MockSink) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Cursor returns the cursor position and visibility.
func (m *MockSink) Cursor() (Point, bool) {
	return m.cursor, m.cursorVisible
}

// StringTrimmed returns the displayed text with trailing spaces removed
// from each row.
func (m *MockSink) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
			if c.IsContinuation() {
				continue
			}
			line.WriteString(c.Text)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < m.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

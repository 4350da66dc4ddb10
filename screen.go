package panes

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Screen is the render target: a double-buffered grid of cells.
// A render pass writes to the back buffer; [Present] sends the difference
// to a [Sink] and then swaps.
type Screen struct {
	front  []Cell
	back   []Cell
	width  int
	height int

	cursor     Point
	showCursor bool
}

// CellChange is a cell that differs between the front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewScreen creates a screen of the given size filled with blanks.
func NewScreen(width, height int) *Screen {
	width = max(0, width)
	height = max(0, height)

	s := &Screen{
		front:  make([]Cell, width*height),
		back:   make([]Cell, width*height),
		width:  width,
		height: height,
	}
	for i := range s.back {
		s.front[i] = blankCell
		s.back[i] = blankCell
	}
	return s
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions (width, height).
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Rect returns the screen bounds as a Rect starting at (0, 0).
func (s *Screen) Rect() Rect {
	return NewRect(0, 0, s.width, s.height)
}

func (s *Screen) idx(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Cell returns the back-buffer cell at (x, y), or the zero Cell when out of
// bounds.
func (s *Screen) Cell(x, y int) Cell {
	i := s.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return s.back[i]
}

// SetCell stores c at (x, y) without any wide-character bookkeeping.
func (s *Screen) SetCell(x, y int, c Cell) {
	i := s.idx(x, y)
	if i < 0 {
		return
	}
	s.back[i] = c
}

// SetGrapheme draws one grapheme cluster at (x, y) and returns the number
// of cells it consumed. Wide graphemes overwrite two cells; any wide
// grapheme they partially cover is blanked. A wide grapheme that does not
// fit in the last column is replaced by a blank.
func (s *Screen) SetGrapheme(x, y int, g string, style Style) int {
	if s.idx(x, y) < 0 {
		return 0
	}

	width := GraphemeWidth(g)
	current := s.Cell(x, y)

	if current.IsContinuation() {
		s.clearWideAt(x, y)
	}
	if current.Width == 2 && x+1 < s.width {
		s.SetCell(x+1, y, blankCell)
	}

	if width == 2 && x+1 < s.width {
		next := s.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			s.clearWideAt(x+1, y)
		}
	}

	if width == 2 && x+1 >= s.width {
		s.SetCell(x, y, Cell{Text: " ", Style: style, Width: 1})
		return 1
	}

	s.SetCell(x, y, Cell{Text: g, Style: style, Width: uint8(width)})
	if width == 2 {
		s.SetCell(x+1, y, Cell{Style: style, Width: 0})
	}
	return width
}

// clearWideAt blanks the wide grapheme that covers (x, y).
func (s *Screen) clearWideAt(x, y int) {
	c := s.Cell(x, y)
	switch {
	case c.IsContinuation():
		if x > 0 {
			s.SetCell(x-1, y, blankCell)
		}
		s.SetCell(x, y, blankCell)
	case c.Width == 2:
		s.SetCell(x, y, blankCell)
		if x+1 < s.width {
			s.SetCell(x+1, y, blankCell)
		}
	}
}

// WriteString draws s starting at (x, y) without wrapping and returns the
// display width written.
func (s *Screen) WriteString(x, y int, text string, style Style) int {
	return s.WriteStringClipped(x, y, text, style, s.Rect())
}

// WriteStringClipped draws text starting at (x, y), skipping graphemes that
// fall outside clip. A wide grapheme straddling the clip edge is skipped.
// Returns the display width of what was drawn.
func (s *Screen) WriteStringClipped(x, y int, text string, style Style, clip Rect) int {
	clip = clip.Intersect(s.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	drawn := 0
	curX := x
	state := -1
	var g string
	for len(text) > 0 && curX < clip.Right() {
		g, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w := GraphemeWidth(g)
		if curX >= clip.X && curX+w <= clip.Right() {
			s.SetGrapheme(curX, y, g, style)
			drawn += w
		}
		curX += w
	}
	return drawn
}

// Fill paints every cell of rect with the grapheme g.
func (s *Screen) Fill(rect Rect, g string, style Style) {
	rect = rect.Intersect(s.Rect())
	if rect.IsEmpty() {
		return
	}

	width := GraphemeWidth(g)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				s.SetGrapheme(x, y, " ", style)
				x++
				continue
			}
			x += s.SetGrapheme(x, y, g, style)
		}
	}
}

// AppendStyle joins style onto the style of every cell in rect, keeping the
// cell text. Used for cursor lines and color columns.
func (s *Screen) AppendStyle(rect Rect, style Style) {
	rect = rect.Intersect(s.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			i := y*s.width + x
			s.back[i].Style = s.back[i].Style.Join(style)
		}
	}
}

// Clear blanks the whole back buffer and hides the cursor.
func (s *Screen) Clear() {
	for i := range s.back {
		s.back[i] = blankCell
	}
	s.showCursor = false
}

// ClearRect blanks a region, including wide graphemes cut by its edges.
func (s *Screen) ClearRect(rect Rect) {
	rect = rect.Intersect(s.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c := s.Cell(x, y)
			if c.IsContinuation() && x == rect.X && x > 0 {
				s.SetCell(x-1, y, blankCell)
			}
			if c.Width == 2 && x+1 == rect.Right() && x+1 < s.width {
				s.SetCell(x+1, y, blankCell)
			}
			s.SetCell(x, y, blankCell)
		}
	}
}

// SetCursor places the visible cursor at p.
func (s *Screen) SetCursor(p Point) {
	s.cursor = p
	s.showCursor = true
}

// HideCursor marks the cursor as hidden for this frame.
func (s *Screen) HideCursor() {
	s.showCursor = false
}

// Cursor returns the cursor position and whether it should be shown.
func (s *Screen) Cursor() (Point, bool) {
	return s.cursor, s.showCursor
}

// Resize changes the screen size. Both buffers are reset to blanks so the
// next [Present] repaints everything.
func (s *Screen) Resize(width, height int) {
	width = max(0, width)
	height = max(0, height)
	if width == s.width && height == s.height {
		return
	}
	*s = *NewScreen(width, height)
}

// Diff returns the cells that differ between the back and front buffers in
// row-major order.
func (s *Screen) Diff() []CellChange {
	changes := make([]CellChange, 0, s.width)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := y*s.width + x
			if s.back[i] != s.front[i] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: s.back[i]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer into the front buffer.
func (s *Screen) Swap() {
	copy(s.front, s.back)
}

// String returns the back buffer as text, one line per row.
func (s *Screen) String() string {
	return s.text(false)
}

// StringTrimmed is String with trailing spaces removed from each row.
func (s *Screen) StringTrimmed() string {
	return s.text(true)
}

func (s *Screen) text(trim bool) string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		var line strings.Builder
		for x := 0; x < s.width; x++ {
			c := s.back[y*s.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Text == "" {
				line.WriteByte(' ')
			} else {
				line.WriteString(c.Text)
			}
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < s.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

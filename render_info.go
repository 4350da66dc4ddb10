package panes

import "math"

// WindowID identifies a window in the registry of a [Layout]. IDs are
// assigned in traversal order when the layout is built and never change.
type WindowID int

// NoWindow is the ID of a window that is not part of a layout.
const NoWindow WindowID = -1

// VisibleRow describes one screen row of a window's content area.
type VisibleRow struct {
	// Line is the source line shown on the row, or -1 for a row below
	// the content (or above it, when vertically aligned). It differs from
	// the content line when the control wraps its own text.
	Line int

	// Col is the display column within the source line where the row
	// starts.
	Col int

	// Continuation is true for the second and later rows of a wrapped
	// source line.
	Continuation bool
}

// WindowRenderInfo is a snapshot of what a window drew in the last render
// pass. It is recomputed every frame.
type WindowRenderInfo struct {
	Window WindowID

	// Rect is the whole window including margins; ContentRect excludes
	// them.
	Rect        Rect
	ContentRect Rect

	VerticalScroll   int
	HorizontalScroll int

	// ContentLineCount is the number of lines the control produced and
	// TotalRows the number of screen rows they take after wrapping.
	ContentLineCount int
	TotalRows        int

	// SourceLineCount is the number of source lines; it equals
	// ContentLineCount unless the control wraps its own text.
	SourceLineCount int

	// VisibleRows has one entry per row of ContentRect.
	VisibleRows []VisibleRow

	// ContentCursor is the cursor in content coordinates (X is the display
	// column within the line, Y the line).
	ContentCursor *Point

	// CursorLine is the source line holding ContentCursor. It is only
	// meaningful when ContentCursor is set.
	CursorLine int

	// Cursor and MenuAnchor are in screen coordinates. They are nil when
	// absent or scrolled out of view.
	Cursor     *Point
	MenuAnchor *Point

	// Truncated is true when some rows are not visible.
	Truncated bool
}

// ContentWidth returns the width of the content area.
func (ri *WindowRenderInfo) ContentWidth() int {
	return ri.ContentRect.Width
}

// WindowHeight returns the height of the window.
func (ri *WindowRenderInfo) WindowHeight() int {
	return ri.Rect.Height
}

// IsEmpty reports whether the window had no space to draw in.
func (ri *WindowRenderInfo) IsEmpty() bool {
	return ri == nil || ri.ContentRect.IsEmpty()
}

// FirstVisibleLine returns the first source line on screen, or -1.
func (ri *WindowRenderInfo) FirstVisibleLine() int {
	for _, r := range ri.VisibleRows {
		if r.Line >= 0 {
			return r.Line
		}
	}
	return -1
}

// LastVisibleLine returns the last source line on screen, or -1.
func (ri *WindowRenderInfo) LastVisibleLine() int {
	for i := len(ri.VisibleRows) - 1; i >= 0; i-- {
		if ri.VisibleRows[i].Line >= 0 {
			return ri.VisibleRows[i].Line
		}
	}
	return -1
}

// TopVisible reports whether the first row of content is on screen.
func (ri *WindowRenderInfo) TopVisible() bool {
	return ri.VerticalScroll == 0
}

// BottomVisible reports whether the last row of content is on screen.
func (ri *WindowRenderInfo) BottomVisible() bool {
	return ri.VerticalScroll+ri.ContentRect.Height >= ri.TotalRows
}

// FullHeightVisible reports whether all content fits on screen.
func (ri *WindowRenderInfo) FullHeightVisible() bool {
	return ri.TopVisible() && ri.BottomVisible()
}

// VerticalScrollPercentage returns how far the window is scrolled, 0 to 100.
func (ri *WindowRenderInfo) VerticalScrollPercentage() int {
	if ri.BottomVisible() {
		return 100
	}
	return 100 * ri.VerticalScroll / ri.TotalRows
}

// visibleRowCount is the number of content rows on screen.
func (ri *WindowRenderInfo) visibleRowCount() int {
	return max(0, min(ri.ContentRect.Height, ri.TotalRows-ri.VerticalScroll))
}

// ThumbSize returns the scrollbar thumb length for a track of the given
// length: max(1, round(visible/total*track)), never longer than the track.
func (ri *WindowRenderInfo) ThumbSize(track int) int {
	if track <= 0 {
		return 0
	}
	if ri.TotalRows <= 0 {
		return track
	}
	size := int(math.Round(float64(ri.visibleRowCount()) / float64(ri.TotalRows) * float64(track)))
	return min(max(1, size), track)
}

// ThumbOffset returns where the thumb starts within the track.
func (ri *WindowRenderInfo) ThumbOffset(track int) int {
	if track <= 0 || ri.TotalRows <= 0 {
		return 0
	}
	size := ri.ThumbSize(track)
	if ri.BottomVisible() {
		return track - size
	}
	offset := int(math.Round(float64(ri.VerticalScroll) / float64(ri.TotalRows) * float64(track)))
	return min(max(0, offset), track-size)
}

package panes

// Sink displays a [Screen]: a terminal, a tcell screen, a test double.
// It owns style resolution; the screen only carries opaque [Style] tags.
type Sink interface {
	// Flush draws the given cells.
	Flush(changes []CellChange)

	// Clear blanks the whole display.
	Clear()

	// ShowCursor moves the cursor to p and makes it visible.
	ShowCursor(p Point)

	// HideCursor hides the cursor.
	HideCursor()

	// Sync makes everything flushed so far visible.
	Sync() error
}

// Present sends only the cells that changed since the last present, updates
// the cursor, and swaps the screen buffers.
//
// This is the primary function for normal frame updates.
func Present(sink Sink, scr *Screen) error {
	if changes := scr.Diff(); len(changes) > 0 {
		sink.Flush(changes)
	}
	presentCursor(sink, scr)
	scr.Swap()
	return sink.Sync()
}

// PresentFull repaints every cell regardless of what changed.
//
// Use this after:
//   - Initial application startup
//   - Terminal resize
//   - Recovering from external terminal corruption
func PresentFull(sink Sink, scr *Screen) error {
	width, height := scr.Size()
	changes := make([]CellChange, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: scr.Cell(x, y)})
		}
	}

	sink.Clear()
	if len(changes) > 0 {
		sink.Flush(changes)
	}
	presentCursor(sink, scr)
	scr.Swap()
	return sink.Sync()
}

func presentCursor(sink Sink, scr *Screen) {
	if p, ok := scr.Cursor(); ok {
		sink.ShowCursor(p)
		return
	}
	sink.HideCursor()
}

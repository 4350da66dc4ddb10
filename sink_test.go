package panes

import "testing"

func TestPresent_FlushesOnlyChanges(t *testing.T) {
	scr := NewScreen(4, 2)
	sink := NewMockSink(4, 2)

	scr.WriteString(0, 0, "hi", "")
	scr.SetCursor(Point{X: 2, Y: 0})
	if err := Present(sink, scr); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	if sink.FlushedCells != 2 {
		t.Errorf("FlushedCells = %d, want 2", sink.FlushedCells)
	}
	if got := sink.StringTrimmed(); got != "hi\n" {
		t.Errorf("sink text = %q, want %q", got, "hi\n")
	}
	if p, ok := sink.Cursor(); !ok || p != (Point{X: 2, Y: 0}) {
		t.Errorf("sink cursor = %v (visible %v), want (2, 0) visible", p, ok)
	}

	// Nothing changed: no flush, but the frame is still synced.
	if err := Present(sink, scr); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if sink.FlushCount != 1 {
		t.Errorf("FlushCount = %d, want 1", sink.FlushCount)
	}
	if sink.SyncCount != 2 {
		t.Errorf("SyncCount = %d, want 2", sink.SyncCount)
	}

	scr.HideCursor()
	if err := Present(sink, scr); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if _, ok := sink.Cursor(); ok {
		t.Error("sink cursor visible, want hidden")
	}
}

func TestPresentFull_RepaintsEverything(t *testing.T) {
	scr := NewScreen(3, 2)
	sink := NewMockSink(3, 2)

	scr.WriteString(0, 1, "x", "")
	if err := PresentFull(sink, scr); err != nil {
		t.Fatalf("PresentFull() error = %v", err)
	}

	if sink.FlushedCells != 6 {
		t.Errorf("FlushedCells = %d, want 6", sink.FlushedCells)
	}
	if sink.ClearCount != 1 {
		t.Errorf("ClearCount = %d, want 1", sink.ClearCount)
	}
	if got := sink.CellAt(0, 1).Text; got != "x" {
		t.Errorf("CellAt(0, 1) = %q, want %q", got, "x")
	}
	if changes := scr.Diff(); len(changes) != 0 {
		t.Errorf("Diff() after PresentFull = %d changes, want 0", len(changes))
	}
}

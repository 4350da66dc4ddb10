package panes

import "testing"

func TestMemoryBuffer_MoveCursor(t *testing.T) {
	type tc struct {
		text       string
		start      int
		lines      int
		cols       int
		wantCursor int
	}

	tests := map[string]tc{
		"up keeps the column when the line is long enough": {
			text:       "abcd\nefgh",
			start:      7,
			lines:      -1,
			wantCursor: 2,
		},
		"up clamps the column to a shorter line": {
			text:       "ab\ncdef",
			start:      7,
			lines:      -1,
			wantCursor: 2,
		},
		"down past the last line stays on it": {
			text:       "ab\ncd",
			start:      1,
			lines:      5,
			wantCursor: 4,
		},
		"left stops at the line start": {
			text:       "ab\ncd",
			start:      4,
			cols:       -10,
			wantCursor: 3,
		},
		"right stops at the line end": {
			text:       "ab\ncd",
			start:      0,
			cols:       10,
			wantCursor: 2,
		},
		"multi-byte runes count once": {
			text:       "héllo\nwörld",
			start:      10,
			lines:      -1,
			wantCursor: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewMemoryBuffer(tt.text)
			b.SetCursorPosition(tt.start)
			b.MoveCursor(tt.lines, tt.cols)
			if got := b.CursorPosition(); got != tt.wantCursor {
				t.Errorf("CursorPosition() = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestMemoryBuffer_SetTextClampsCursor(t *testing.T) {
	b := NewMemoryBuffer("hello")
	if got := b.CursorPosition(); got != 5 {
		t.Fatalf("initial CursorPosition() = %d, want 5", got)
	}

	b.SetText("hi")
	if got := b.CursorPosition(); got != 2 {
		t.Errorf("CursorPosition() = %d, want 2", got)
	}

	b.SetCursorPosition(-3)
	if got := b.CursorPosition(); got != 0 {
		t.Errorf("CursorPosition() = %d, want 0", got)
	}
}

func TestMemoryBuffer_OnChange(t *testing.T) {
	b := NewMemoryBuffer("")

	var calls []string
	unbindA := b.OnChange(func() { calls = append(calls, "a") })
	b.OnChange(func() { calls = append(calls, "b") })

	b.SetText("x")
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("calls = %v, want [a b]", calls)
	}

	unbindA()
	calls = nil
	b.SetCursorPosition(0)
	if len(calls) != 1 || calls[0] != "b" {
		t.Errorf("calls after unbind = %v, want [b]", calls)
	}
	if n := len(b.bindings); n != 1 {
		t.Errorf("bindings = %d, want inactive binding pruned", n)
	}
}

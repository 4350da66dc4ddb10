package panes

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/grindlemire/go-panes/internal/debug"
)

// TextBuffer is an editable text owned by the application. A
// [BufferControl] only reads it: the current text, the cursor, and a hook to
// learn that either changed.
type TextBuffer interface {
	// Text returns the full text.
	Text() string

	// CursorPosition returns the cursor as a rune offset into Text.
	CursorPosition() int

	// OnChange registers fn to run after every change. The returned Unbind
	// stops further calls.
	OnChange(fn func()) Unbind
}

// Unbind is a handle to remove a change callback.
type Unbind func()

// MemoryBuffer is a TextBuffer held in memory.
//
// Thread Safety Rules:
//   - Text() and CursorPosition() are safe to call from any goroutine
//   - Setters run callbacks on the calling goroutine; the application must
//     not mutate the buffer while a render pass is running
type MemoryBuffer struct {
	mu       sync.RWMutex
	text     string
	cursor   int
	bindings []*binding
}

// binding is a registered change callback.
type binding struct {
	fn     func()
	active bool
}

// NewMemoryBuffer creates a buffer with the cursor at the end of text.
func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{text: text, cursor: utf8.RuneCountInString(text)}
}

// Text returns the full text.
func (b *MemoryBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// CursorPosition returns the cursor as a rune offset.
func (b *MemoryBuffer) CursorPosition() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetText replaces the text, clamping the cursor into the new text.
func (b *MemoryBuffer) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.cursor = min(b.cursor, utf8.RuneCountInString(text))
	b.mu.Unlock()
	b.notify()
}

// SetCursorPosition moves the cursor to a rune offset, clamped to the text.
func (b *MemoryBuffer) SetCursorPosition(pos int) {
	b.mu.Lock()
	b.cursor = min(max(pos, 0), utf8.RuneCountInString(b.text))
	b.mu.Unlock()
	b.notify()
}

// MoveCursor moves the cursor by whole lines and then by columns (runes)
// within the target line, like arrow keys would.
func (b *MemoryBuffer) MoveCursor(lines, cols int) {
	b.mu.Lock()
	row, col := runeOffsetToRowCol(b.text, b.cursor)
	textLines := strings.Split(b.text, "\n")
	row = min(max(row+lines, 0), len(textLines)-1)
	col = min(max(col+cols, 0), utf8.RuneCountInString(textLines[row]))
	b.cursor = rowColToRuneOffset(textLines, row, col)
	b.mu.Unlock()
	b.notify()
}

// OnChange registers fn to run after every change. Callbacks run in
// registration order.
func (b *MemoryBuffer) OnChange(fn func()) Unbind {
	b.mu.Lock()
	bd := &binding{fn: fn, active: true}
	b.bindings = append(b.bindings, bd)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		bd.active = false
		b.mu.Unlock()
	}
}

func (b *MemoryBuffer) notify() {
	b.mu.Lock()
	// Copy active bindings while holding the lock and drop inactive ones.
	active := make([]*binding, 0, len(b.bindings))
	for _, bd := range b.bindings {
		if bd.active {
			active = append(active, bd)
		}
	}
	b.bindings = active
	b.mu.Unlock()

	debug.Log("MemoryBuffer.notify: running %d callbacks", len(active))
	for _, bd := range active {
		bd.fn()
	}
}

// runeOffsetToRowCol converts a rune offset into a (line, rune column) pair.
func runeOffsetToRowCol(text string, offset int) (row, col int) {
	i := 0
	for _, r := range text {
		if i == offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
		i++
	}
	return row, col
}

func rowColToRuneOffset(lines []string, row, col int) int {
	offset := 0
	for i := 0; i < row; i++ {
		offset += utf8.RuneCountInString(lines[i]) + 1
	}
	return offset + col
}

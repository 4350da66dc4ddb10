package ansisink

import (
	"strconv"

	"github.com/muesli/termenv"

	"github.com/grindlemire/go-panes/theme"
)

// escBuilder accumulates escape sequences and text in one reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) csi(final ...byte) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, final...)
}

// MoveTo positions the cursor. x and y are 0-indexed; the terminal counts
// from 1.
func (e *escBuilder) MoveTo(x, y int) {
	e.csi()
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen()     { e.csi('2', 'J') }
func (e *escBuilder) HideCursor()      { e.csi('?', '2', '5', 'l') }
func (e *escBuilder) ShowCursor()      { e.csi('?', '2', '5', 'h') }
func (e *escBuilder) EnterAltScreen()  { e.csi('?', '1', '0', '4', '9', 'h') }
func (e *escBuilder) ExitAltScreen()   { e.csi('?', '1', '0', '4', '9', 'l') }
func (e *escBuilder) BeginSyncUpdate() { e.csi('?', '2', '0', '2', '6', 'h') }
func (e *escBuilder) EndSyncUpdate()   { e.csi('?', '2', '0', '2', '6', 'l') }
func (e *escBuilder) ResetStyle()      { e.csi('0', 'm') }

var sgrAttrs = []struct {
	attr theme.Attr
	code byte
}{
	{theme.AttrBold, '1'},
	{theme.AttrDim, '2'},
	{theme.AttrItalic, '3'},
	{theme.AttrUnderline, '4'},
	{theme.AttrBlink, '5'},
	{theme.AttrReverse, '7'},
	{theme.AttrStrikethrough, '9'},
}

// SetStyle emits a full SGR sequence for s, starting from a reset so no
// attribute of the previous style leaks through.
func (e *escBuilder) SetStyle(s theme.Style, profile termenv.Profile) {
	e.csi('0')
	if profile != termenv.Ascii {
		for _, a := range sgrAttrs {
			if s.HasAttr(a.attr) {
				e.buf = append(e.buf, ';', a.code)
			}
		}
	}
	e.appendColor(s.Fg, false, profile)
	e.appendColor(s.Bg, true, profile)
	e.buf = append(e.buf, 'm')
}

// appendColor downgrades c to what the profile can show and appends its
// SGR parameters.
func (e *escBuilder) appendColor(c theme.Color, bg bool, profile termenv.Profile) {
	var tc termenv.Color
	switch c.Type() {
	case theme.ColorANSI:
		if c.ANSI() < 16 {
			tc = profile.Convert(termenv.ANSIColor(c.ANSI()))
		} else {
			tc = profile.Convert(termenv.ANSI256Color(c.ANSI()))
		}
	case theme.ColorRGB:
		tc = profile.Color(c.Hex())
	default:
		return
	}
	if tc == nil {
		return
	}
	if seq := tc.Sequence(bg); seq != "" {
		e.buf = append(e.buf, ';')
		e.buf = append(e.buf, seq...)
	}
}

func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// Package tcellscreen displays a panes.Screen through a tcell.Screen and
// hosts a panes.Layout in a tcell event loop.
package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/theme"
)

// Sink implements panes.Sink on top of a tcell.Screen. Cells are staged
// with SetContent and become visible on Sync.
type Sink struct {
	screen tcell.Screen
	theme  *theme.Theme
}

var _ panes.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithTheme resolves style tags with th instead of theme.Default().
func WithTheme(th *theme.Theme) Option {
	return func(s *Sink) { s.theme = th }
}

// New wraps an initialised tcell screen.
func New(screen tcell.Screen, opts ...Option) *Sink {
	s := &Sink{screen: screen, theme: theme.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Screen returns the wrapped tcell screen.
func (s *Sink) Screen() tcell.Screen {
	return s.screen
}

func (s *Sink) Flush(changes []panes.CellChange) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		runes := []rune(ch.Cell.Text)
		if len(runes) == 0 {
			runes = []rune{' '}
		}
		s.screen.SetContent(ch.X, ch.Y, runes[0], runes[1:], s.Style(ch.Cell.Style))
	}
}

func (s *Sink) Clear() {
	s.screen.Clear()
}

func (s *Sink) ShowCursor(p panes.Point) {
	s.screen.ShowCursor(p.X, p.Y)
}

func (s *Sink) HideCursor() {
	s.screen.HideCursor()
}

// Sync shows everything staged so far.
func (s *Sink) Sync() error {
	s.screen.Show()
	return nil
}

// Style resolves a tag list to a tcell style.
func (s *Sink) Style(tags panes.Style) tcell.Style {
	return ToStyle(s.theme.Resolve(tags))
}

// ToStyle converts a resolved style.
func ToStyle(st theme.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToColor(st.Fg)).
		Background(ToColor(st.Bg)).
		Bold(st.HasAttr(theme.AttrBold)).
		Dim(st.HasAttr(theme.AttrDim)).
		Italic(st.HasAttr(theme.AttrItalic)).
		Underline(st.HasAttr(theme.AttrUnderline)).
		Blink(st.HasAttr(theme.AttrBlink)).
		Reverse(st.HasAttr(theme.AttrReverse)).
		StrikeThrough(st.HasAttr(theme.AttrStrikethrough))
}

// ToColor converts a theme color. Palette entries stay palette entries so
// the terminal's own palette applies.
func ToColor(c theme.Color) tcell.Color {
	switch c.Type() {
	case theme.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case theme.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

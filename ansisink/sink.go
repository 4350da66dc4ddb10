// Package ansisink displays a panes.Screen on any io.Writer using ANSI
// escape sequences. Style tags are resolved through a theme and colors are
// downgraded to the writer's color profile.
package ansisink

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/theme"
)

// Sink implements panes.Sink. Output accumulates in memory and reaches the
// writer on Sync.
type Sink struct {
	out     io.Writer
	theme   *theme.Theme
	profile termenv.Profile
	sync    bool

	esc       *escBuilder
	lastStyle theme.Style
	styled    bool
}

var _ panes.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithTheme resolves style tags with th instead of theme.Default().
func WithTheme(th *theme.Theme) Option {
	return func(s *Sink) { s.theme = th }
}

// WithProfile overrides the detected color profile.
func WithProfile(p termenv.Profile) Option {
	return func(s *Sink) { s.profile = p }
}

// WithSyncUpdates wraps every Sync in a synchronized update block so the
// terminal shows the frame at once. Terminals without support ignore it.
func WithSyncUpdates() Option {
	return func(s *Sink) { s.sync = true }
}

// New creates a sink writing to out. The color profile is detected from out
// and the environment unless overridden.
func New(out io.Writer, opts ...Option) *Sink {
	s := &Sink{
		out:   out,
		theme: theme.Default(),
		esc:   newEscBuilder(4096),
	}
	s.profile = termenv.NewOutput(out).Profile
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns the color profile in use.
func (s *Sink) Profile() termenv.Profile {
	return s.profile
}

// Flush draws the changed cells, moving the cursor only when a change does
// not follow the previous one on the same row.
func (s *Sink) Flush(changes []panes.CellChange) {
	lastX, lastY := -1, -1
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			s.esc.MoveTo(ch.X, ch.Y)
		}

		style := s.theme.Resolve(ch.Cell.Style)
		if !s.styled || !style.Equal(s.lastStyle) {
			s.esc.SetStyle(style, s.profile)
			s.lastStyle = style
			s.styled = true
		}

		text := ch.Cell.Text
		if text == "" {
			text = " "
		}
		s.esc.WriteString(text)

		lastX, lastY = ch.X, ch.Y
		if ch.Cell.Width > 1 {
			lastX += int(ch.Cell.Width) - 1
		}
	}
}

// Clear blanks the display and homes the cursor.
func (s *Sink) Clear() {
	s.esc.ResetStyle()
	s.esc.MoveTo(0, 0)
	s.esc.ClearScreen()
	s.styled = false
}

func (s *Sink) ShowCursor(p panes.Point) {
	s.esc.MoveTo(p.X, p.Y)
	s.esc.ShowCursor()
}

func (s *Sink) HideCursor() {
	s.esc.HideCursor()
}

// Sync writes everything buffered since the last Sync.
func (s *Sink) Sync() error {
	if s.esc.Len() == 0 {
		return nil
	}
	defer s.esc.Reset()

	if !s.sync {
		_, err := s.out.Write(s.esc.Bytes())
		return err
	}
	frame := newEscBuilder(s.esc.Len() + 16)
	frame.BeginSyncUpdate()
	frame.buf = append(frame.buf, s.esc.Bytes()...)
	frame.EndSyncUpdate()
	_, err := s.out.Write(frame.Bytes())
	return err
}

// EnterAltScreen switches to the alternate screen buffer immediately.
func (s *Sink) EnterAltScreen() error {
	e := newEscBuilder(16)
	e.EnterAltScreen()
	_, err := s.out.Write(e.Bytes())
	return err
}

// ExitAltScreen restores the main screen buffer, resetting the style and
// showing the cursor again.
func (s *Sink) ExitAltScreen() error {
	e := newEscBuilder(32)
	e.ResetStyle()
	e.ShowCursor()
	e.ExitAltScreen()
	_, err := s.out.Write(e.Bytes())
	return err
}

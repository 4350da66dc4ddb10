// Package textout renders a panes.Screen into a string, styled with
// lipgloss. It serves bubbletea View functions and one-shot printing.
package textout

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/internal/debug"
	"github.com/grindlemire/go-panes/theme"
)

// Renderer converts screens to styled strings.
type Renderer struct {
	lg     *lipgloss.Renderer
	theme  *theme.Theme
	cursor bool

	styles map[panes.Style]lipgloss.Style
}

type config struct {
	out     io.Writer
	profile *termenv.Profile
	theme   *theme.Theme
	cursor  bool
}

// Option configures a Renderer.
type Option func(*config)

// WithTheme resolves style tags with th instead of theme.Default().
func WithTheme(th *theme.Theme) Option {
	return func(c *config) { c.theme = th }
}

// WithOutput detects the color profile from w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithProfile forces a color profile.
func WithProfile(p termenv.Profile) Option {
	return func(c *config) { c.profile = &p }
}

// WithCursor draws the screen cursor as a reversed cell, for hosts that
// hide the terminal cursor.
func WithCursor() Option {
	return func(c *config) { c.cursor = true }
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	cfg := config{out: os.Stdout, theme: theme.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	lg := lipgloss.NewRenderer(cfg.out)
	if cfg.profile != nil {
		lg.SetColorProfile(*cfg.profile)
	}
	return &Renderer{
		lg:     lg,
		theme:  cfg.theme,
		cursor: cfg.cursor,
		styles: make(map[panes.Style]lipgloss.Style),
	}
}

// Render returns the screen's back buffer as rows joined by "\n". Runs of
// cells sharing a style are rendered together.
func (r *Renderer) Render(scr *panes.Screen) string {
	width, height := scr.Size()
	cursor, showCursor := scr.Cursor()
	showCursor = showCursor && r.cursor

	rows := make([]string, height)
	var run strings.Builder
	for y := 0; y < height; y++ {
		var row strings.Builder
		var runStyle panes.Style
		flush := func() {
			if run.Len() > 0 {
				row.WriteString(r.style(runStyle).Render(run.String()))
				run.Reset()
			}
		}

		for x := 0; x < width; x++ {
			cell := scr.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			style := cell.Style
			if showCursor && cursor.X == x && cursor.Y == y {
				style = style.Join("reverse")
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteString(cell.Text)
		}
		flush()

		rows[y] = row.String()
		if w := ansi.StringWidth(rows[y]); w != width {
			debug.Log("textout: row %d is %d cells wide, want %d", y, w, width)
		}
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) style(tags panes.Style) lipgloss.Style {
	if s, ok := r.styles[tags]; ok {
		return s
	}

	st := r.theme.Resolve(tags)
	s := r.lg.NewStyle().
		Bold(st.HasAttr(theme.AttrBold)).
		Faint(st.HasAttr(theme.AttrDim)).
		Italic(st.HasAttr(theme.AttrItalic)).
		Underline(st.HasAttr(theme.AttrUnderline)).
		Blink(st.HasAttr(theme.AttrBlink)).
		Reverse(st.HasAttr(theme.AttrReverse)).
		Strikethrough(st.HasAttr(theme.AttrStrikethrough))
	if c, ok := color(st.Fg); ok {
		s = s.Foreground(c)
	}
	if c, ok := color(st.Bg); ok {
		s = s.Background(c)
	}
	r.styles[tags] = s
	return s
}

func color(c theme.Color) (lipgloss.Color, bool) {
	switch c.Type() {
	case theme.ColorANSI:
		return lipgloss.Color(strconv.Itoa(int(c.ANSI()))), true
	case theme.ColorRGB:
		return lipgloss.Color(c.Hex()), true
	}
	return "", false
}

// Plain returns the screen text without any styling.
func Plain(scr *panes.Screen) string {
	return scr.String()
}

package ansisink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/theme"
)

func TestSink_PresentFull(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, WithProfile(termenv.TrueColor))

	scr := panes.NewScreen(4, 2)
	scr.WriteString(0, 0, "ab", "")
	scr.WriteString(0, 1, "cd", "fg:#ff0000 bold")

	require.NoError(t, panes.PresentFull(s, scr))

	got := out.String()
	require.True(t, strings.HasPrefix(got, "\x1b[0m\x1b[1;1H\x1b[2J"), "output starts with %q", got)
	require.Contains(t, got, "\x1b[2;1H\x1b[0;1;38;2;255;0;0mcd")
	require.Equal(t, "ab  cd  ", ansi.Strip(got))
	require.True(t, strings.HasSuffix(got, "\x1b[?25l"), "cursor hidden at the end")
}

func TestSink_PresentSendsOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, WithProfile(termenv.Ascii))

	scr := panes.NewScreen(5, 1)
	require.NoError(t, panes.PresentFull(s, scr))
	out.Reset()

	scr.WriteString(3, 0, "x", "")
	scr.SetCursor(panes.Point{X: 4, Y: 0})
	require.NoError(t, panes.Present(s, scr))

	require.Equal(t, "\x1b[1;4Hx\x1b[1;5H\x1b[?25h", out.String())
}

func TestSink_ColorProfiles(t *testing.T) {
	type tc struct {
		profile termenv.Profile
		style   theme.Style
		want    string
	}

	red := theme.RGBColor(255, 0, 0)
	tests := map[string]tc{
		"true color": {
			profile: termenv.TrueColor,
			style:   theme.Style{Fg: red, Bg: theme.Blue},
			want:    "\x1b[0;38;2;255;0;0;44m",
		},
		"256 colors": {
			profile: termenv.ANSI256,
			style:   theme.Style{Fg: red},
			want:    "\x1b[0;38;5;196m",
		},
		"bright palette entry": {
			profile: termenv.ANSI,
			style:   theme.Style{Fg: theme.BrightGreen},
			want:    "\x1b[0;92m",
		},
		"ascii drops colors and attributes": {
			profile: termenv.Ascii,
			style:   theme.Style{Fg: red, Attrs: theme.AttrBold},
			want:    "\x1b[0m",
		},
		"attributes in order": {
			profile: termenv.ANSI,
			style:   theme.Style{Attrs: theme.AttrUnderline | theme.AttrBold | theme.AttrReverse},
			want:    "\x1b[0;1;4;7m",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(32)
			e.SetStyle(tt.style, tt.profile)
			require.Equal(t, tt.want, string(e.Bytes()))
		})
	}
}

func TestSink_WideCellsAdvanceTheCursor(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, WithProfile(termenv.Ascii))

	scr := panes.NewScreen(4, 1)
	scr.WriteString(0, 0, "世a", "")
	s.Flush(scr.Diff())
	require.NoError(t, s.Sync())

	require.Equal(t, "\x1b[1;1H\x1b[0m世a", out.String())
}

func TestSink_SyncUpdates(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, WithProfile(termenv.Ascii), WithSyncUpdates())

	require.NoError(t, s.Sync())
	require.Zero(t, out.Len(), "empty sync writes nothing")

	s.HideCursor()
	require.NoError(t, s.Sync())
	require.Equal(t, "\x1b[?2026h\x1b[?25l\x1b[?2026l", out.String())
}

func TestSink_AltScreen(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	require.NoError(t, s.EnterAltScreen())
	require.NoError(t, s.ExitAltScreen())
	require.Equal(t, "\x1b[?1049h\x1b[0m\x1b[?25h\x1b[?1049l", out.String())
}

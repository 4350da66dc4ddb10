package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-panes/layoutfile"
	"github.com/grindlemire/go-panes/textout"
)

const twoBuffers = `
focus = "top"

[root]
type = "hsplit"

[[root.children]]
type = "window"
name = "top"
control = "buffer"
text = "ab\ncd"

[[root.children]]
type = "window"
name = "bottom"
control = "buffer"
text = "xy"
`

func testModel(t *testing.T) *model {
	t.Helper()
	l, err := layoutfile.Parse(twoBuffers)
	require.NoError(t, err)
	out := textout.New(textout.WithOutput(&bytes.Buffer{}), textout.WithProfile(termenv.Ascii), textout.WithCursor())
	return newModel(l, out, 6, 4)
}

func TestModel_Keys(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 8, Height: 5})
	view := m.View()
	require.Len(t, strings.Split(view, "\n"), 5)
	require.Contains(t, ansi.Strip(view), "ab")
	require.Contains(t, ansi.Strip(view), "xy")

	top, _ := m.layout.Window("top")
	bottom, _ := m.layout.Window("bottom")
	require.Equal(t, top, m.layout.CurrentWindow())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	buf, _ := m.layout.Buffer("top")
	require.Equal(t, 4, buf.CursorPosition())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, bottom, m.layout.CurrentWindow())
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, top, m.layout.CurrentWindow())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "panes.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("width = 100\nprofile = \"ascii\"\n"), 0o644))

	t.Setenv("PANES_CONFIG", cfg)
	t.Setenv("PANES_HEIGHT", "30")
	t.Setenv("PANES_DEBUG", "")

	flags := commonFlags("test")
	require.NoError(t, flags.Parse([]string{"--width=90"}))

	s, err := loadSettings(flags)
	require.NoError(t, err)
	require.Equal(t, 90, s.Width)
	require.Equal(t, 30, s.Height)
	require.Equal(t, "ascii", s.Profile)
	require.Equal(t, "styled", s.Format)
}

func TestLoadSettings_RejectsNegativeSize(t *testing.T) {
	t.Setenv("PANES_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PANES_WIDTH", "-1")

	_, err := loadSettings(nil)
	require.ErrorContains(t, err, "negative screen size")
}

func TestParseProfile(t *testing.T) {
	type tc struct {
		name    string
		want    termenv.Profile
		forced  bool
		wantErr bool
	}

	tests := map[string]tc{
		"auto":      {name: "auto"},
		"empty":     {name: ""},
		"truecolor": {name: "TrueColor", want: termenv.TrueColor, forced: true},
		"256":       {name: "256", want: termenv.ANSI256, forced: true},
		"16":        {name: "16", want: termenv.ANSI, forced: true},
		"ascii":     {name: "ascii", want: termenv.Ascii, forced: true},
		"unknown":   {name: "sepia", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, forced, err := parseProfile(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.forced, forced)
			if tt.forced {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseFlagOverrides(t *testing.T) {
	got, err := parseFlagOverrides(map[string]string{"sidebar": "false", "help": "1"})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"sidebar": false, "help": true}, got)

	_, err = parseFlagOverrides(map[string]string{"sidebar": "maybe"})
	require.ErrorContains(t, err, "flag sidebar")
}

func TestCollectLayoutFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.toml", "panes.toml", "notes.txt", filepath.Join("sub", "b.toml")} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	flat, err := collectLayoutFiles([]string{dir})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.toml")}, flat)

	deep, err := collectLayoutFiles([]string{dir + "/..."})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.toml"), filepath.Join(dir, "sub", "b.toml")}, deep)

	_, err = collectLayoutFiles([]string{filepath.Join(dir, "gone.toml")})
	require.Error(t, err)
}

func TestWriteFrame(t *testing.T) {
	type tc struct {
		format string
		check  func(t *testing.T, out string)
	}

	tests := map[string]tc{
		"plain": {
			format: "plain",
			check: func(t *testing.T, out string) {
				require.True(t, strings.HasPrefix(out, "ab"))
				require.NotContains(t, out, "\x1b[")
			},
		},
		"ansi": {
			format: "ansi",
			check: func(t *testing.T, out string) {
				require.True(t, strings.HasPrefix(out, "\x1b[0m\x1b[1;1H\x1b[2J"))
				require.Contains(t, ansi.Strip(out), "ab")
			},
		},
		"styled": {
			format: "styled",
			check: func(t *testing.T, out string) {
				require.Contains(t, out, "ab")
				require.True(t, strings.HasSuffix(out, "\n"))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := testModel(t)
			m.layout.Render(m.scr)

			var out bytes.Buffer
			err := writeFrame(&out, m.layout, m.scr, Settings{Format: tt.format, Profile: "ascii"})
			require.NoError(t, err)
			tt.check(t, out.String())
		})
	}

	m := testModel(t)
	err := writeFrame(&bytes.Buffer{}, m.layout, m.scr, Settings{Format: "html"})
	require.ErrorContains(t, err, `unknown format "html"`)
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(good, []byte(twoBuffers), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("[root]\ntype = \"grid\"\n"), 0o644))

	results := checkFiles([]string{good, bad, good})
	require.Len(t, results, 3)
	require.NoError(t, results[0].err)
	require.Equal(t, 2, results[0].windows)
	require.Equal(t, []string{"bottom", "top"}, results[0].names)
	require.ErrorContains(t, results[1].err, `unknown node type "grid"`)
	require.Equal(t, results[0], results[2])
}

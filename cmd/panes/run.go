package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/internal/debug"
	"github.com/grindlemire/go-panes/layoutfile"
	"github.com/grindlemire/go-panes/textout"
)

// model hosts a layout in a bubbletea program. The terminal cursor stays
// hidden; the renderer draws the screen cursor as a reversed cell.
type model struct {
	layout *layoutfile.Layout
	scr    *panes.Screen
	out    *textout.Renderer
}

func newModel(l *layoutfile.Layout, out *textout.Renderer, width, height int) *model {
	return &model{
		layout: l,
		scr:    panes.NewScreen(width, height),
		out:    out,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.scr.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		debug.Log("run: key %s", msg.String())
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.layout.FocusNext()
		case "shift+tab":
			m.layout.FocusPrevious()
		case "up":
			moveFocused(m.layout.Layout, -1, 0)
		case "down":
			moveFocused(m.layout.Layout, 1, 0)
		case "left":
			moveFocused(m.layout.Layout, 0, -1)
		case "right":
			moveFocused(m.layout.Layout, 0, 1)
		case "pgup":
			moveFocused(m.layout.Layout, -pageHeight(m.layout.Layout), 0)
		case "pgdown":
			moveFocused(m.layout.Layout, pageHeight(m.layout.Layout), 0)
		}
	}
	return m, nil
}

func (m *model) View() string {
	report := m.layout.Render(m.scr)
	if report.Deficit > 0 {
		debug.Log("run: layout is %d cells short", report.Deficit)
	}
	return m.out.Render(m.scr)
}

// moveFocused moves the cursor of the focused buffer, or scrolls the
// focused window when it shows anything else.
func moveFocused(l *panes.Layout, lines, cols int) {
	w := l.CurrentWindow()
	if w == nil {
		return
	}
	if bc, ok := w.Content().(*panes.BufferControl); ok {
		if buf, ok := bc.Buffer().(*panes.MemoryBuffer); ok {
			buf.MoveCursor(lines, cols)
			return
		}
	}
	w.SetVerticalScroll(max(0, w.VerticalScroll()+lines))
	w.SetHorizontalScroll(max(0, w.HorizontalScroll()+cols))
}

func pageHeight(l *panes.Layout) int {
	if w := l.CurrentWindow(); w != nil {
		if info, ok := l.RenderInfo(w); ok {
			return max(1, info.WindowHeight())
		}
	}
	return 1
}

// runRun implements the run subcommand.
func runRun(args []string) error {
	lf := newLayoutFlags("run")
	l, settings, err := lf.open(args)
	if err != nil {
		return err
	}

	profile, forced, err := parseProfile(settings.Profile)
	if err != nil {
		return err
	}
	opts := []textout.Option{textout.WithTheme(l.Theme), textout.WithCursor()}
	if forced {
		opts = append(opts, textout.WithProfile(profile))
	}

	w, h := screenSize(settings, int(os.Stdout.Fd()))
	p := tea.NewProgram(newModel(l, textout.New(opts...), w, h), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package tcellscreen

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/internal/debug"
)

// KeyHandler receives the keys App does not handle itself. Returning true
// ends the loop.
type KeyHandler func(l *panes.Layout, ev *tcell.EventKey) (quit bool)

// App hosts a layout in a tcell event loop. Tab and Shift-Tab move focus,
// arrow and page keys move the cursor of a focused MemoryBuffer (or scroll
// any other window), and Ctrl-C quits.
type App struct {
	sink   *Sink
	layout *panes.Layout
	keys   KeyHandler
	scr    *panes.Screen
}

// AppOption configures an App.
type AppOption func(*App)

// WithKeyHandler installs a handler for keys App ignores.
func WithKeyHandler(h KeyHandler) AppOption {
	return func(a *App) { a.keys = h }
}

// NewApp creates an app drawing layout through sink.
func NewApp(sink *Sink, layout *panes.Layout, opts ...AppOption) *App {
	a := &App{sink: sink, layout: layout}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run draws the layout and processes events until the user quits, the
// screen is finalised, or ctx is cancelled. The caller owns the tcell
// screen and calls Fini after Run returns.
func (a *App) Run(ctx context.Context) error {
	screen := a.sink.Screen()
	w, h := screen.Size()
	a.scr = panes.NewScreen(w, h)
	if err := a.draw(true); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			full := false
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				a.scr.Resize(w, h)
				full = true
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return nil
				}
			}
			if err := a.draw(full); err != nil {
				return err
			}
		}
	}
}

func (a *App) draw(full bool) error {
	report := a.layout.Render(a.scr)
	if report.Deficit > 0 {
		debug.Log("tcellscreen: layout is %d cells short", report.Deficit)
	}
	if full {
		return panes.PresentFull(a.sink, a.scr)
	}
	return panes.Present(a.sink, a.scr)
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	debug.Log("tcellscreen: key %s", ev.Name())

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		a.layout.FocusNext()
	case tcell.KeyBacktab:
		a.layout.FocusPrevious()
	case tcell.KeyUp:
		a.move(-1, 0)
	case tcell.KeyDown:
		a.move(1, 0)
	case tcell.KeyLeft:
		a.move(0, -1)
	case tcell.KeyRight:
		a.move(0, 1)
	case tcell.KeyPgUp:
		a.move(-a.page(), 0)
	case tcell.KeyPgDn:
		a.move(a.page(), 0)
	default:
		if a.keys != nil {
			return a.keys(a.layout, ev)
		}
	}
	return false
}

// move moves the cursor of the focused buffer, or scrolls the focused
// window when it has no buffer to move through.
func (a *App) move(lines, cols int) {
	w := a.layout.CurrentWindow()
	if w == nil {
		return
	}
	if bc, ok := w.Content().(*panes.BufferControl); ok {
		if buf, ok := bc.Buffer().(*panes.MemoryBuffer); ok {
			buf.MoveCursor(lines, cols)
			return
		}
	}
	w.SetVerticalScroll(w.VerticalScroll() + lines)
	w.SetHorizontalScroll(w.HorizontalScroll() + cols)
}

func (a *App) page() int {
	if w := a.layout.CurrentWindow(); w != nil {
		if info, ok := a.layout.RenderInfo(w); ok {
			return max(1, info.WindowHeight())
		}
	}
	return 1
}

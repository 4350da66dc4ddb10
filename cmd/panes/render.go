package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/ansisink"
	"github.com/grindlemire/go-panes/internal/debug"
	"github.com/grindlemire/go-panes/layoutfile"
	"github.com/grindlemire/go-panes/textout"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// layoutFlags are the flags of every command that opens a layout.
type layoutFlags struct {
	set   *pflag.FlagSet
	flags *map[string]string
	focus *string
}

func newLayoutFlags(name string) layoutFlags {
	fs := commonFlags(name)
	return layoutFlags{
		set:   fs,
		flags: fs.StringToString("flag", nil, "override a layout flag, name=bool"),
		focus: fs.String("focus", "", "focus this window before drawing"),
	}
}

// open parses args, then loads the single layout file they name.
func (lf layoutFlags) open(args []string) (*layoutfile.Layout, Settings, error) {
	if err := lf.set.Parse(args); err != nil {
		return nil, Settings{}, err
	}
	settings, err := loadSettings(lf.set)
	if err != nil {
		return nil, Settings{}, err
	}
	if lf.set.NArg() != 1 {
		return nil, Settings{}, fmt.Errorf("expected one layout file, got %d", lf.set.NArg())
	}

	l, err := layoutfile.Load(lf.set.Arg(0))
	if err != nil {
		return nil, Settings{}, err
	}
	overrides, err := parseFlagOverrides(*lf.flags)
	if err != nil {
		return nil, Settings{}, err
	}
	for name, on := range overrides {
		l.SetFlag(name, on)
	}
	if name := *lf.focus; name != "" {
		w, ok := l.Window(name)
		if !ok {
			return nil, Settings{}, fmt.Errorf("no window named %q", name)
		}
		if !l.Focus(w) {
			return nil, Settings{}, fmt.Errorf("window %q cannot take focus", name)
		}
	}
	return l, settings, nil
}

// screenSize resolves zero dimensions from the terminal on fd, falling back
// to 80x24 when fd is not a terminal.
func screenSize(s Settings, fd int) (int, int) {
	w, h := s.Width, s.Height
	if w > 0 && h > 0 {
		return w, h
	}
	tw, th := defaultWidth, defaultHeight
	if term.IsTerminal(fd) {
		if cols, rows, err := term.GetSize(fd); err == nil {
			tw, th = cols, rows
		} else {
			debug.Log("render: terminal size: %v", err)
		}
	}
	if w <= 0 {
		w = tw
	}
	if h <= 0 {
		h = th
	}
	return w, h
}

// runRender implements the render subcommand.
func runRender(args []string) error {
	lf := newLayoutFlags("render")
	lf.set.String("format", "styled", "output format: styled, plain or ansi")
	lf.set.Bool("sync", false, "wrap ansi output in a synchronized update")
	verbose := lf.set.BoolP("verbose", "v", false, "report layout problems on stderr")

	l, settings, err := lf.open(args)
	if err != nil {
		return err
	}

	w, h := screenSize(settings, int(os.Stdout.Fd()))
	scr := panes.NewScreen(w, h)
	report := l.Render(scr)
	if *verbose {
		printReport(os.Stderr, report)
	}

	return writeFrame(os.Stdout, l, scr, settings)
}

// writeFrame prints scr in the settings' format.
func writeFrame(out io.Writer, l *layoutfile.Layout, scr *panes.Screen, s Settings) error {
	profile, forced, err := parseProfile(s.Profile)
	if err != nil {
		return err
	}

	switch s.Format {
	case "", "styled":
		opts := []textout.Option{textout.WithTheme(l.Theme), textout.WithOutput(out)}
		if forced {
			opts = append(opts, textout.WithProfile(profile))
		}
		_, err := fmt.Fprintln(out, textout.New(opts...).Render(scr))
		return err
	case "plain":
		_, err := fmt.Fprintln(out, textout.Plain(scr))
		return err
	case "ansi":
		opts := []ansisink.Option{ansisink.WithTheme(l.Theme)}
		if forced {
			opts = append(opts, ansisink.WithProfile(profile))
		}
		if s.Sync {
			opts = append(opts, ansisink.WithSyncUpdates())
		}
		return panes.PresentFull(ansisink.New(out, opts...), scr)
	}
	return fmt.Errorf("unknown format %q", s.Format)
}

func printReport(out io.Writer, r panes.RenderReport) {
	fmt.Fprintf(out, "windows drawn: %d\n", r.Windows)
	fmt.Fprintf(out, "floats drawn: %d, skipped: %d\n", r.FloatsDrawn, r.FloatsSkipped)
	if r.Deficit > 0 {
		fmt.Fprintf(out, "short by %d cell(s)\n", r.Deficit)
	}
	if !r.FocusOK {
		fmt.Fprintln(out, "no focusable window")
	}
}

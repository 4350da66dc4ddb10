package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/tcellscreen"
)

// runTcell implements the tcell subcommand.
func runTcell(args []string) error {
	lf := newLayoutFlags("tcell")
	l, _, err := lf.open(args)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := tcellscreen.New(screen, tcellscreen.WithTheme(l.Theme))
	app := tcellscreen.NewApp(sink, l.Layout, tcellscreen.WithKeyHandler(quitOnQ))
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func quitOnQ(_ *panes.Layout, ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

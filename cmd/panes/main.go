// Package main provides the panes CLI for checking and previewing layout
// files.
//
// Usage:
//
//	panes check [path...]     Validate layout files
//	panes render <file>       Print one frame of a layout
//	panes run <file>          Run a layout interactively (bubbletea)
//	panes tcell <file>        Run a layout interactively (tcell)
//	panes help                Show help
//
// Examples:
//
//	panes check ./...                 Validate every .toml file below .
//	panes render --width 60 a.toml    Render at a fixed size
//	panes render --format ansi a.toml Emit raw escape sequences
//	panes run a.toml                  Focus with tab, move with arrows
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `panes - layout engine for terminal user interfaces

Usage:
  panes <command> [options] [path...]

Commands:
  check       Validate layout files
  render      Render one frame of a layout to stdout
  run         Run a layout in the alternate screen (bubbletea)
  tcell       Run a layout in the alternate screen (tcell)
  version     Print version information
  help        Show this help message

Options:
  -v, --verbose         Verbose output (check, render)
  --width, --height     Screen size (render); 0 uses the terminal size
  --format              styled, plain or ansi (render)
  --profile             auto, truecolor, 256, 16 or ascii
  --flag name=bool      Override a layout flag
  --focus name          Focus a window before drawing

Settings are read from $PANES_CONFIG or panes.toml in ~/.config/panes or
the current directory, and from PANES_* environment variables.

Examples:
  panes check ./...                    Validate all layout files recursively
  panes render --flag sidebar=false a.toml
  panes run a.toml                     Tab cycles focus, q quits
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := runRun(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "tcell":
		if err := runTcell(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("panes version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

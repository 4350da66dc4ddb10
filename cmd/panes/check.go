package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-panes/layoutfile"
)

// runCheck implements the check subcommand. It builds every layout file
// it finds and reports the ones that fail.
func runCheck(args []string) error {
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "list the windows of each file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectLayoutFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout files found")
	}

	if *verbose {
		fmt.Printf("Checking %d layout file(s)\n", len(files))
	}

	results := checkFiles(files)

	var errorCount int
	for i, res := range results {
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", res.err)
			errorCount++
			continue
		}
		if *verbose {
			fmt.Printf("%s: %d window(s) %s\n", files[i], res.windows, strings.Join(res.names, ", "))
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if *verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

type checkResult struct {
	windows int
	names   []string
	err     error
}

// checkFiles builds files concurrently. Results keep the order of files.
func checkFiles(files []string) []checkResult {
	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			l, err := layoutfile.Load(path)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i] = checkResult{windows: len(l.Windows()), names: l.WindowNames()}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// collectLayoutFiles finds .toml files from the given paths. A path may
// name a file, a directory (non-recursive) or end in "/..." to walk a tree.
func collectLayoutFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isLayoutFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isLayoutFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}
	}

	return files, nil
}

// isLayoutFile reports whether a walked file looks like a layout. The
// settings file shares the extension and is skipped.
func isLayoutFile(path string) bool {
	return strings.HasSuffix(path, ".toml") && filepath.Base(path) != "panes.toml"
}

package panes

import "fmt"

// InvalidLayoutError reports a structurally invalid layout tree. It is
// returned by [NewLayout]; a layout that was built successfully never
// fails to render.
type InvalidLayoutError struct {
	// Reason describes what is wrong.
	Reason string

	// Path locates the offending node. "HSplit[1]/VSplit/Window" is a
	// window inside the second child of the root HSplit.
	Path string
}

func (e *InvalidLayoutError) Error() string {
	if e.Path == "" {
		return "invalid layout: " + e.Reason
	}
	return fmt.Sprintf("invalid layout at %s: %s", e.Path, e.Reason)
}

func invalidLayout(path, format string, args ...any) *InvalidLayoutError {
	return &InvalidLayoutError{Reason: fmt.Sprintf(format, args...), Path: path}
}

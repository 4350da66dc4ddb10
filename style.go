package panes

import "strings"

// Style is an opaque style tag such as "class:menu bg:#202020 bold".
// The layout engine passes tags through untouched; resolving them to
// colors and attributes is the job of the [Sink] that displays the screen.
type Style string

const (
	// CursorMarker marks the fragment where a formatted text wants the
	// cursor to be. It is never drawn.
	CursorMarker Style = "[SetCursorPosition]"

	// MenuMarker marks the fragment a completion menu should attach to.
	MenuMarker Style = "[SetMenuPosition]"
)

// Join returns the tags of s followed by other. Later tags take precedence
// when the collaborator resolves them.
func (s Style) Join(other Style) Style {
	switch {
	case s == "":
		return other
	case other == "":
		return s
	default:
		return s + " " + other
	}
}

// Has reports whether the tag list contains the given single tag.
func (s Style) Has(tag string) bool {
	for _, f := range strings.Fields(string(s)) {
		if f == tag {
			return true
		}
	}
	return false
}

// isMarker reports whether a fragment style is a control marker rather than
// something to draw.
func (s Style) isMarker() bool {
	return strings.Contains(string(s), string(CursorMarker)) || strings.Contains(string(s), string(MenuMarker))
}

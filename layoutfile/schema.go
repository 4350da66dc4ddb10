// Package layoutfile builds a panes.Layout from a declarative TOML file.
//
// A file names a root node; every node has a type and type-specific keys:
//
//	focus = "editor"
//
//	[theme]
//	"status" = "bg:#303030 fg:white"
//
//	[root]
//	type = "hsplit"
//
//	[[root.children]]
//	type = "window"
//	name = "editor"
//	control = "buffer"
//	text = "hello"
//	line_numbers = true
//
//	[[root.children]]
//	type = "window"
//	text = "status line"
//	style = "class:status"
//	height = { exact = 1 }
//
// Node types are hsplit, vsplit, window, frame, conditional, floats and
// menu. Unknown keys are rejected.
package layoutfile

import (
	"github.com/grindlemire/go-panes"
)

// File is a decoded layout file.
type File struct {
	// Focus names the window focused initially.
	Focus string            `toml:"focus"`
	Theme map[string]string `toml:"theme"`
	// Flags are the initial values of the flags conditional nodes test.
	Flags map[string]bool `toml:"flags"`
	Root  Node            `toml:"root"`
}

// Node is one container of the tree. Which keys apply depends on Type.
type Node struct {
	Type   string `toml:"type"`
	Name   string `toml:"name"`
	Style  string `toml:"style"`
	Width  *Size  `toml:"width"`
	Height *Size  `toml:"height"`

	// hsplit and vsplit
	Children     []Node `toml:"children"`
	Padding      int    `toml:"padding"`
	PaddingChar  string `toml:"padding_char"`
	PaddingStyle string `toml:"padding_style"`

	// Align is start/center/end/justify on splits and left/center/right
	// on windows.
	Align string `toml:"align"`

	// window
	Control          string         `toml:"control"`
	Text             string         `toml:"text"`
	Cursor           *int           `toml:"cursor"`
	Wrap             string         `toml:"wrap"`
	WrapLines        bool           `toml:"wrap_lines"`
	VAlign           string         `toml:"valign"`
	LineNumbers      string         `toml:"line_numbers"`
	Tildes           bool           `toml:"tildes"`
	Scrollbar        bool           `toml:"scrollbar"`
	ScrollbarArrows  bool           `toml:"scrollbar_arrows"`
	Prompt           string         `toml:"prompt"`
	CursorLine       bool           `toml:"cursor_line"`
	ColorColumns     []int          `toml:"color_columns"`
	DontExtendWidth  bool           `toml:"dont_extend_width"`
	DontExtendHeight bool           `toml:"dont_extend_height"`
	Char             string         `toml:"char"`
	ScrollOffsets    *ScrollOffsets `toml:"scroll_offsets"`
	Focusable        *bool          `toml:"focusable"`
	HideCursor       bool           `toml:"hide_cursor"`

	// frame and conditional wrap Body.
	Body   *Node  `toml:"body"`
	Title  string `toml:"title"`
	Border string `toml:"border"`
	When   string `toml:"when"`

	// floats
	Content *Node       `toml:"content"`
	Floats  []FloatNode `toml:"floats"`

	// menu
	Items     []MenuItem `toml:"items"`
	Selected  int        `toml:"selected"`
	MaxHeight int        `toml:"max_height"`
}

// Size is a dimension. Exact wins over the other keys; missing keys take
// the defaults of a flexible dimension.
type Size struct {
	Exact     *int `toml:"exact"`
	Min       *int `toml:"min"`
	Max       *int `toml:"max"`
	Preferred *int `toml:"preferred"`
	Weight    *int `toml:"weight"`
}

// Dimension converts the size.
func (s Size) Dimension() panes.Dimension {
	if s.Exact != nil {
		return panes.Exact(*s.Exact)
	}
	get := func(p *int, def int) int {
		if p == nil {
			return def
		}
		return *p
	}
	return panes.D(get(s.Min, 0), get(s.Max, -1), get(s.Preferred, -1), get(s.Weight, 1))
}

// ScrollOffsets mirrors panes.ScrollOffsets.
type ScrollOffsets struct {
	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
	Right  int `toml:"right"`
}

// FloatNode places Content over the content of a floats node. Unset
// edges are left to the placement rules of panes.Float.
type FloatNode struct {
	Content     Node   `toml:"content"`
	Left        *int   `toml:"left"`
	Right       *int   `toml:"right"`
	Top         *int   `toml:"top"`
	Bottom      *int   `toml:"bottom"`
	Width       *int   `toml:"width"`
	Height      *int   `toml:"height"`
	XCursor     bool   `toml:"xcursor"`
	YCursor     bool   `toml:"ycursor"`
	AttachTo    string `toml:"attach_to"`
	AllowCover  bool   `toml:"allow_cover_cursor"`
	Transparent bool   `toml:"transparent"`
}

// MenuItem is one entry of a menu node.
type MenuItem struct {
	Text string `toml:"text"`
	Meta string `toml:"meta"`
}

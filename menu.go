package panes

import "strings"

// Menu style tags. A sink resolves them like any other tag.
const (
	MenuStyle         Style = "class:menu"
	MenuSelectedStyle Style = "class:menu.selected"
	MenuMetaStyle     Style = "class:menu.meta"
)

// MenuItem is one entry of a completion menu.
type MenuItem struct {
	Text string
	Meta string
}

// MenuControl lists menu items, one per line, padded to the widest item.
// The selected line is styled [MenuSelectedStyle] and becomes the menu
// anchor so the hosting window scrolls it into view.
type MenuControl struct {
	items    func() []MenuItem
	selected func() int
	maxRows  int
}

// NewMenuControl creates a menu. items and selected are evaluated on every
// render; selected returns -1 when nothing is selected.
func NewMenuControl(items func() []MenuItem, selected func() int) *MenuControl {
	if items == nil {
		items = func() []MenuItem { return nil }
	}
	if selected == nil {
		selected = func() int { return -1 }
	}
	return &MenuControl{items: items, selected: selected}
}

// menuWidths returns the display width of the text and meta columns.
func menuWidths(items []MenuItem) (text, meta int) {
	for _, it := range items {
		text = max(text, StringWidth(it.Text))
		meta = max(meta, StringWidth(it.Meta))
	}
	return text, meta
}

// PreferredWidth is the widest item plus one column of padding per side and
// the meta column when any item has one.
func (m *MenuControl) PreferredWidth(maxAvailable int) (int, bool) {
	text, meta := menuWidths(m.items())
	w := text + 2
	if meta > 0 {
		w += meta + 2
	}
	return min(w, max(maxAvailable, 0)), true
}

// PreferredHeight is one row per item.
func (m *MenuControl) PreferredHeight(_, maxAvailable int, _ bool) (int, bool) {
	rows := len(m.items())
	if m.maxRows > 0 {
		rows = min(rows, m.maxRows)
	}
	return min(rows, max(maxAvailable, 0)), true
}

// CreateContent renders the items at width.
func (m *MenuControl) CreateContent(width, _ int) *UIContent {
	items := m.items()
	selected := m.selected()
	textWidth, metaWidth := menuWidths(items)

	content := NewUIContent(len(items), func(i int) FormattedText {
		it := items[i]
		style := MenuStyle
		if i == selected {
			style = MenuSelectedStyle
		}
		line := FormattedText{{Style: style, Text: " " + padRight(it.Text, textWidth) + " "}}
		if metaWidth > 0 {
			line = append(line, Fragment{Style: style.Join(MenuMetaStyle), Text: " " + padRight(it.Meta, metaWidth) + " "})
		}
		return line
	})
	if selected >= 0 && selected < len(items) {
		content.MenuAnchor = &Point{X: 0, Y: selected}
	}
	return content
}

// IsFocusable is false: menus are driven by the buffer they complete.
func (m *MenuControl) IsFocusable() bool {
	return false
}

func (*MenuControl) uiControl() {}

func padRight(s string, width int) string {
	if pad := width - StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// CompletionsMenuOption configures NewCompletionsMenu.
type CompletionsMenuOption func(*completionsMenuConfig)

type completionsMenuConfig struct {
	maxHeight int
	scrollbar bool
}

// WithMenuMaxHeight caps the number of rows the menu shows at once.
func WithMenuMaxHeight(rows int) CompletionsMenuOption {
	return func(c *completionsMenuConfig) { c.maxHeight = rows }
}

// WithMenuScrollbar toggles the scrollbar on the right of the menu.
func WithMenuScrollbar(show bool) CompletionsMenuOption {
	return func(c *completionsMenuConfig) { c.scrollbar = show }
}

// NewCompletionsMenu builds a completion menu: a window as wide and tall as
// its items (at most 8 rows by default) that is only visible while there
// are items. Place it in a Float with WithXCursor and WithYCursor.
func NewCompletionsMenu(items func() []MenuItem, selected func() int, opts ...CompletionsMenuOption) *ConditionalContainer {
	cfg := completionsMenuConfig{maxHeight: 8, scrollbar: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	control := NewMenuControl(items, selected)
	control.maxRows = cfg.maxHeight

	winOpts := []WindowOption{
		WithDontExtendWidth(),
		WithDontExtendHeight(),
		WithWindowStyle(MenuStyle),
	}
	if cfg.scrollbar {
		winOpts = append(winOpts, WithRightMargins(ScrollbarMargin{}))
	}
	window := NewWindow(control, winOpts...)

	return NewConditionalContainer(window, func() bool {
		return len(control.items()) > 0
	})
}

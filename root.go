package panes

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/grindlemire/go-panes/internal/debug"
)

// Layout owns the root container of a layout tree and tracks which window
// has focus.
//
// Windows are registered once, in traversal order, when the layout is
// built. Focus is held as a registry ID and re-validated against the
// windows reachable in the current frame, so a window hidden by a
// [ConditionalContainer] never keeps focus.
type Layout struct {
	root    Container
	windows []*Window
	ids     map[*Window]WindowID

	current  WindowID
	previous WindowID

	infos map[WindowID]*WindowRenderInfo
	drawn []drawnWindow
}

// LayoutOption configures a Layout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	focus *Window
}

// WithFocus focuses w initially. It must be a window of the tree.
func WithFocus(w *Window) LayoutOption {
	return func(c *layoutConfig) { c.focus = w }
}

// WalkEntry is one node visited by [Layout.Walk] together with its
// ancestors, root first.
type WalkEntry struct {
	Container Container
	Parents   []Container
}

// RenderReport summarises one render pass.
type RenderReport struct {
	// Focused is the window holding focus during the pass, or nil.
	Focused *Window

	// FocusOK is false when no focusable window was reachable.
	FocusOK bool

	// Deficit counts cells the minimum sizes of split children could not
	// get, summed over all splits.
	Deficit int

	// Windows counts the windows drawn with a non-empty rectangle.
	Windows int

	FloatsDrawn   int
	FloatsSkipped int
}

// NewLayout validates the tree under root and builds its window registry.
// The first focusable window is focused unless WithFocus says otherwise.
func NewLayout(root Container, opts ...LayoutOption) (*Layout, error) {
	var cfg layoutConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Layout{
		root:     root,
		ids:      make(map[*Window]WindowID),
		current:  NoWindow,
		previous: NoWindow,
		infos:    make(map[WindowID]*WindowRenderInfo),
	}

	var floats []floatRef
	if err := l.register(root, "", map[Container]bool{}, &floats); err != nil {
		return nil, err
	}
	for _, ref := range floats {
		if a := ref.float.attachTo; a != nil {
			if _, ok := l.ids[a]; !ok {
				return nil, invalidLayout(ref.path, "float attached to a window outside the layout")
			}
		}
	}

	if cfg.focus != nil {
		if _, ok := l.ids[cfg.focus]; !ok {
			return nil, invalidLayout("", "focused window is not part of the layout")
		}
		if !l.Focus(cfg.focus) {
			debug.Log("NewLayout: initial focus target is not focusable")
		}
	}
	l.EnsureFocus()

	debug.Log("NewLayout: %d windows, focused=%d", len(l.windows), l.current)
	return l, nil
}

type floatRef struct {
	float *Float
	path  string
}

// register walks the whole tree, validating it and assigning window IDs.
func (l *Layout) register(c Container, path string, seen map[Container]bool, floats *[]floatRef) error {
	if isNil(c) {
		return invalidLayout(path, "nil container")
	}
	path = joinPath(path, nodeName(c))
	if seen[c] {
		return invalidLayout(path, "container appears more than once (shared or cyclic)")
	}
	seen[c] = true

	switch n := c.(type) {
	case *Window:
		if isNil(n.content) {
			return invalidLayout(path, "window has no control")
		}
		l.ids[n] = WindowID(len(l.windows))
		l.windows = append(l.windows, n)
		return nil
	case *FloatContainer:
		if err := l.register(n.content, path, seen, floats); err != nil {
			return err
		}
		for i, f := range n.floats {
			fpath := fmt.Sprintf("%s/Float[%d]", path, i)
			if f == nil {
				return invalidLayout(fpath, "nil float")
			}
			if err := validateFloat(f); err != nil {
				return invalidLayout(fpath, "%s", err.Error())
			}
			*floats = append(*floats, floatRef{float: f, path: fpath})
			if err := l.register(f.content, fpath, seen, floats); err != nil {
				return err
			}
		}
		return nil
	}

	for i, child := range c.Children() {
		childPath := path
		if len(c.Children()) > 1 {
			childPath = fmt.Sprintf("%s[%d]", path, i)
		}
		if err := l.register(child, childPath, seen, floats); err != nil {
			return err
		}
	}
	return nil
}

func validateFloat(f *Float) error {
	if f.left != nil && f.right != nil && f.width != nil {
		return errors.New("left, right and width are all set")
	}
	if f.top != nil && f.bottom != nil && f.height != nil {
		return errors.New("top, bottom and height are all set")
	}
	return nil
}

func isNil(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case *Window:
		return n == nil
	case *HSplit:
		return n == nil
	case *VSplit:
		return n == nil
	case *FloatContainer:
		return n == nil
	case *ConditionalContainer:
		return n == nil
	case *Frame:
		return n == nil
	case *FormattedTextControl:
		return n == nil
	case *BufferControl:
		return n == nil
	case *DummyControl:
		return n == nil
	case *MenuControl:
		return n == nil
	}
	return false
}

func nodeName(c Container) string {
	switch c.(type) {
	case *Window:
		return "Window"
	case *HSplit:
		return "HSplit"
	case *VSplit:
		return "VSplit"
	case *FloatContainer:
		return "FloatContainer"
	case *ConditionalContainer:
		return "ConditionalContainer"
	case *Frame:
		return "Frame"
	}
	return fmt.Sprintf("%T", c)
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// Root returns the root container.
func (l *Layout) Root() Container {
	return l.root
}

// Windows returns every window of the tree in registry order, including
// hidden ones.
func (l *Layout) Windows() []*Window {
	return slices.Clone(l.windows)
}

// WindowID returns the registry ID of w.
func (l *Layout) WindowID(w *Window) (WindowID, bool) {
	id, ok := l.ids[w]
	return id, ok
}

// Walk returns a depth-first, pre-order traversal of the visible tree.
// Hidden conditional containers and everything under them are skipped.
// Visibility is evaluated while iterating, and the sequence can be
// iterated any number of times.
func (l *Layout) Walk() iter.Seq[WalkEntry] {
	return walk(l.root, true)
}

// WalkAll is Walk including hidden subtrees.
func (l *Layout) WalkAll() iter.Seq[WalkEntry] {
	return walk(l.root, false)
}

func walk(root Container, visibleOnly bool) iter.Seq[WalkEntry] {
	return func(yield func(WalkEntry) bool) {
		var visit func(c Container, parents []Container) bool
		visit = func(c Container, parents []Container) bool {
			if visibleOnly && !isVisible(c) {
				return true
			}
			if !yield(WalkEntry{Container: c, Parents: slices.Clone(parents)}) {
				return false
			}
			parents = append(parents, c)
			for _, child := range c.Children() {
				if !visit(child, parents) {
					return false
				}
			}
			return true
		}
		visit(root, nil)
	}
}

// VisibleWindows returns the windows reachable in the current frame, in
// walk order.
func (l *Layout) VisibleWindows() []*Window {
	var out []*Window
	for e := range l.Walk() {
		if w, ok := e.Container.(*Window); ok {
			out = append(out, w)
		}
	}
	return out
}

// FocusableWindows returns the visible windows whose control accepts focus,
// in walk order. This is the focus cycle.
func (l *Layout) FocusableWindows() []*Window {
	var out []*Window
	for _, w := range l.VisibleWindows() {
		if w.content.IsFocusable() {
			out = append(out, w)
		}
	}
	return out
}

func (l *Layout) window(id WindowID) *Window {
	if id < 0 || int(id) >= len(l.windows) {
		return nil
	}
	return l.windows[id]
}

// CurrentWindow returns the focused window, or nil when no window can take
// focus. Focus is repaired first, so the result is always a visible window.
func (l *Layout) CurrentWindow() *Window {
	l.EnsureFocus()
	return l.window(l.current)
}

// PreviousWindow returns the window focused before the current one, or nil.
func (l *Layout) PreviousWindow() *Window {
	return l.window(l.previous)
}

// HasFocus reports whether w is the focused window.
func (l *Layout) HasFocus(w *Window) bool {
	return w != nil && l.CurrentWindow() == w
}

// Focus moves focus to w. It is a no-op returning false when w is not a
// visible, focusable window of the layout.
func (l *Layout) Focus(w *Window) bool {
	id, ok := l.ids[w]
	if !ok || !slices.Contains(l.FocusableWindows(), w) {
		debug.Log("Layout.Focus: window %d is not focusable", id)
		return false
	}
	l.setFocus(id)
	return true
}

func (l *Layout) setFocus(id WindowID) {
	if id == l.current {
		return
	}
	debug.Log("Layout.setFocus: %d -> %d", l.current, id)
	if l.current != NoWindow {
		l.previous = l.current
	}
	l.current = id
}

// FocusNext moves focus to the next focusable window in walk order,
// wrapping around. Returns false when there is none.
func (l *Layout) FocusNext() bool {
	return l.cycle(1)
}

// FocusPrevious moves focus to the previous focusable window in walk
// order, wrapping around. Returns false when there is none.
func (l *Layout) FocusPrevious() bool {
	return l.cycle(-1)
}

func (l *Layout) cycle(step int) bool {
	windows := l.FocusableWindows()
	if len(windows) == 0 {
		return false
	}
	i := slices.Index(windows, l.CurrentWindow())
	switch {
	case i < 0 && step > 0:
		i = 0
	case i < 0:
		i = len(windows) - 1
	default:
		i = (i + step + len(windows)) % len(windows)
	}
	l.setFocus(l.ids[windows[i]])
	return true
}

// FocusLast returns focus to the previously focused window.
func (l *Layout) FocusLast() bool {
	prev := l.PreviousWindow()
	if prev == nil {
		return false
	}
	return l.Focus(prev)
}

// EnsureFocus repairs focus after visibility changes. The current window
// keeps focus while it is visible and focusable; otherwise the previous
// window gets it, or failing that the first focusable window. Returns
// false, leaving nothing focused, when no window can take focus.
func (l *Layout) EnsureFocus() bool {
	focusable := l.FocusableWindows()
	if cur := l.window(l.current); cur != nil && slices.Contains(focusable, cur) {
		return true
	}
	if prev := l.window(l.previous); prev != nil && slices.Contains(focusable, prev) {
		debug.Log("Layout.EnsureFocus: restoring previous window %d", l.previous)
		l.current, l.previous = l.previous, NoWindow
		return true
	}
	if len(focusable) > 0 {
		l.setFocus(l.ids[focusable[0]])
		return true
	}
	if l.current != NoWindow {
		debug.Log("Layout.EnsureFocus: no focusable window reachable")
		l.previous, l.current = l.current, NoWindow
	}
	return false
}

// WindowAt returns the window drawn at (x, y) in the last frame. Floats are
// checked first since they were drawn last.
func (l *Layout) WindowAt(x, y int) (*Window, bool) {
	for i := len(l.drawn) - 1; i >= 0; i-- {
		if l.drawn[i].rect.Contains(x, y) {
			return l.drawn[i].window, true
		}
	}
	return nil, false
}

// RenderInfo returns what w drew in the last frame.
func (l *Layout) RenderInfo(w *Window) (*WindowRenderInfo, bool) {
	id, ok := l.ids[w]
	if !ok {
		return nil, false
	}
	info, ok := l.infos[id]
	return info, ok
}

// Render runs one full render pass into screen: focus is repaired, the
// back buffer is cleared, the tree is drawn top-down, floats are drawn
// last, and the cursor is placed for the focused window.
func (l *Layout) Render(screen *Screen) RenderReport {
	focusOK := l.EnsureFocus()
	screen.Clear()

	ctx := newRenderContext(screen, l.CurrentWindow(), l.ids)
	l.root.WriteToScreen(ctx, screen.Rect(), "")
	ctx.drawFloats()

	l.infos = ctx.infos
	l.drawn = ctx.drawn

	report := RenderReport{
		Focused:       l.CurrentWindow(),
		FocusOK:       focusOK,
		Deficit:       ctx.deficit,
		Windows:       len(ctx.drawn),
		FloatsDrawn:   ctx.floatsDrawn,
		FloatsSkipped: ctx.floatsSkipped,
	}
	debug.Log("Layout.Render: %dx%d windows=%d floats=%d/%d deficit=%d",
		screen.Width(), screen.Height(), report.Windows, report.FloatsDrawn, report.FloatsSkipped, report.Deficit)
	return report
}

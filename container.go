package panes

import "github.com/grindlemire/go-panes/internal/debug"

// Container is a node of the layout tree. It arranges other containers, or
// hosts a single control in the case of [Window], inside a rectangle.
//
// The set of containers is closed: [Window], [HSplit], [VSplit],
// [FloatContainer], [ConditionalContainer] and [Frame].
type Container interface {
	// PreferredWidth returns the width request given at most maxAvailable
	// columns.
	PreferredWidth(maxAvailable int) Dimension

	// PreferredHeight returns the height request at the given width, given
	// at most maxAvailable rows.
	PreferredHeight(width, maxAvailable int) Dimension

	// WriteToScreen renders the container and its descendants into rect.
	WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style)

	// Children returns the immediate children, hidden or not.
	Children() []Container

	container()
}

// isVisible reports whether c takes part in the current frame.
func isVisible(c Container) bool {
	if cc, ok := c.(*ConditionalContainer); ok {
		return cc.visible()
	}
	return true
}

// drawnWindow records where a window was drawn, for hit-testing.
type drawnWindow struct {
	window *Window
	rect   Rect
}

// RenderContext carries the state of one render pass. It is created by
// [Layout.Render]; containers only pass it down.
type RenderContext struct {
	screen  *Screen
	focused *Window
	ids     map[*Window]WindowID
	infos   map[WindowID]*WindowRenderInfo

	// transparent is set while a transparent float draws, so windows keep
	// whatever the base layout painted under their blank cells.
	transparent bool

	deficit       int
	drawn         []drawnWindow
	floats        []func()
	floatsDrawn   int
	floatsSkipped int
}

func newRenderContext(screen *Screen, focused *Window, ids map[*Window]WindowID) *RenderContext {
	return &RenderContext{
		screen:  screen,
		focused: focused,
		ids:     ids,
		infos:   make(map[WindowID]*WindowRenderInfo, len(ids)),
	}
}

// Screen returns the screen being drawn.
func (ctx *RenderContext) Screen() *Screen {
	return ctx.screen
}

// Focused returns the window holding focus during this pass, or nil.
func (ctx *RenderContext) Focused() *Window {
	return ctx.focused
}

// RenderInfo returns what w recorded during this pass.
func (ctx *RenderContext) RenderInfo(w *Window) (*WindowRenderInfo, bool) {
	id, ok := ctx.ids[w]
	if !ok {
		return nil, false
	}
	info, ok := ctx.infos[id]
	return info, ok
}

func (ctx *RenderContext) windowID(w *Window) WindowID {
	if id, ok := ctx.ids[w]; ok {
		return id
	}
	return NoWindow
}

func (ctx *RenderContext) record(w *Window, info *WindowRenderInfo) {
	if info.Window != NoWindow {
		ctx.infos[info.Window] = info
	}
	if !info.Rect.IsEmpty() {
		ctx.drawn = append(ctx.drawn, drawnWindow{window: w, rect: info.Rect})
	}
}

// reportDeficit records space the minimums of a split's children could not
// get.
func (ctx *RenderContext) reportDeficit(kind string, rect Rect, deficit int) {
	if deficit <= 0 {
		return
	}
	ctx.deficit += deficit
	debug.Log("%s: %d cells short in %v", kind, deficit, rect)
}

// deferFloat queues a float to draw after the base layout.
func (ctx *RenderContext) deferFloat(draw func()) {
	ctx.floats = append(ctx.floats, draw)
}

// drawFloats runs queued floats in order. Floats may queue more floats.
func (ctx *RenderContext) drawFloats() {
	for i := 0; i < len(ctx.floats); i++ {
		ctx.floats[i]()
	}
	ctx.floats = nil
}

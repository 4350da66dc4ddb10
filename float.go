package panes

import "github.com/grindlemire/go-panes/internal/debug"

// Float is an overlay drawn on top of the content of a [FloatContainer].
//
// Each axis is resolved from the options given: both edges fix the size,
// an edge plus a size fixes both, a size alone is centred, and with
// nothing set the content's preferred size is used, centred. XCursor and
// YCursor place the float at the menu anchor (or cursor) of the attached
// window, below the cursor row unless there is more room above it.
// The result is always clamped into the parent rectangle.
type Float struct {
	content Container

	left, right, top, bottom *int
	width, height            *int

	xcursor, ycursor bool
	attachTo         *Window
	allowCoverCursor bool
	transparent      bool
}

// FloatOption configures a Float.
type FloatOption func(*Float)

// WithFloatLeft sets the distance from the parent's left edge.
func WithFloatLeft(n int) FloatOption {
	return func(f *Float) { f.left = &n }
}

// WithFloatRight sets the distance from the parent's right edge.
func WithFloatRight(n int) FloatOption {
	return func(f *Float) { f.right = &n }
}

// WithFloatTop sets the distance from the parent's top edge.
func WithFloatTop(n int) FloatOption {
	return func(f *Float) { f.top = &n }
}

// WithFloatBottom sets the distance from the parent's bottom edge.
func WithFloatBottom(n int) FloatOption {
	return func(f *Float) { f.bottom = &n }
}

// WithFloatWidth fixes the width.
func WithFloatWidth(n int) FloatOption {
	return func(f *Float) { f.width = &n }
}

// WithFloatHeight fixes the height.
func WithFloatHeight(n int) FloatOption {
	return func(f *Float) { f.height = &n }
}

// WithXCursor places the float's left edge at the anchor column.
func WithXCursor() FloatOption {
	return func(f *Float) { f.xcursor = true }
}

// WithYCursor places the float next to the anchor row.
func WithYCursor() FloatOption {
	return func(f *Float) { f.ycursor = true }
}

// WithAttachTo anchors the float to w instead of the focused window. The
// float is skipped in frames where w was not drawn.
func WithAttachTo(w *Window) FloatOption {
	return func(f *Float) { f.attachTo = w }
}

// WithAllowCoverCursor lets a cursor-placed float start on the cursor row.
func WithAllowCoverCursor() FloatOption {
	return func(f *Float) { f.allowCoverCursor = true }
}

// WithTransparent keeps the cells under the float that its content leaves
// blank.
func WithTransparent() FloatOption {
	return func(f *Float) { f.transparent = true }
}

// NewFloat creates a float showing content.
func NewFloat(content Container, opts ...FloatOption) *Float {
	f := &Float{content: content}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Content returns the container drawn by the float.
func (f *Float) Content() Container {
	return f.content
}

// AttachTo returns the window the float is anchored to, or nil.
func (f *Float) AttachTo() *Window {
	return f.attachTo
}

// FloatContainer draws its content and then its floats on top, in
// declaration order, so later floats win where they overlap.
type FloatContainer struct {
	content Container
	floats  []*Float
}

// NewFloatContainer creates a float container.
func NewFloatContainer(content Container, floats ...*Float) *FloatContainer {
	return &FloatContainer{content: content, floats: floats}
}

// Content returns the base container.
func (fc *FloatContainer) Content() Container {
	return fc.content
}

// Floats returns the floats in declaration order.
func (fc *FloatContainer) Floats() []*Float {
	return fc.floats
}

// PreferredWidth is the width of the base content.
func (fc *FloatContainer) PreferredWidth(maxAvailable int) Dimension {
	return fc.content.PreferredWidth(maxAvailable)
}

// PreferredHeight is the height of the base content.
func (fc *FloatContainer) PreferredHeight(width, maxAvailable int) Dimension {
	return fc.content.PreferredHeight(width, maxAvailable)
}

// Children returns the base content followed by the content of each float.
func (fc *FloatContainer) Children() []Container {
	out := make([]Container, 0, len(fc.floats)+1)
	out = append(out, fc.content)
	for _, f := range fc.floats {
		out = append(out, f.content)
	}
	return out
}

func (*FloatContainer) container() {}

// WriteToScreen draws the base content now and queues the floats, which
// are drawn once the whole base layout is on screen.
func (fc *FloatContainer) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	fc.content.WriteToScreen(ctx, rect, parentStyle)
	for _, f := range fc.floats {
		ctx.deferFloat(func() {
			fc.drawFloat(ctx, f, rect, parentStyle)
		})
	}
}

func (fc *FloatContainer) drawFloat(ctx *RenderContext, f *Float, parent Rect, style Style) {
	if !isVisible(f.content) {
		ctx.floatsSkipped++
		return
	}

	var anchor *Point
	if f.xcursor || f.ycursor || f.attachTo != nil {
		target := f.attachTo
		if target == nil {
			target = ctx.focused
		}
		info, ok := ctx.RenderInfo(target)
		if !ok || info.IsEmpty() {
			debug.Log("FloatContainer.drawFloat: anchor window not drawn, skipping")
			ctx.floatsSkipped++
			return
		}
		anchor = info.MenuAnchor
		if anchor == nil {
			anchor = info.Cursor
		}
		if anchor == nil && (f.xcursor || f.ycursor) {
			debug.Log("FloatContainer.drawFloat: anchor window has no cursor, skipping")
			ctx.floatsSkipped++
			return
		}
	}

	rect := f.resolve(parent, anchor)
	if rect.IsEmpty() {
		ctx.floatsSkipped++
		return
	}

	if !f.transparent {
		ctx.screen.ClearRect(rect)
	}
	prev := ctx.transparent
	ctx.transparent = f.transparent
	f.content.WriteToScreen(ctx, rect, style)
	ctx.transparent = prev
	ctx.floatsDrawn++
}

// resolve computes the float's rectangle inside parent.
func (f *Float) resolve(parent Rect, anchor *Point) Rect {
	pw, ph := parent.Width, parent.Height
	preferredWidth := func(avail int) int {
		return min(f.content.PreferredWidth(max(0, avail)).Preferred, max(0, avail))
	}

	var x, w int
	switch {
	case f.left != nil && f.right != nil:
		x, w = *f.left, pw-*f.left-*f.right
	case f.left != nil && f.width != nil:
		x, w = *f.left, *f.width
	case f.right != nil && f.width != nil:
		w = *f.width
		x = pw - *f.right - w
	case f.xcursor && anchor != nil:
		x = anchor.X - parent.X
		if f.width != nil {
			w = *f.width
		} else {
			w = preferredWidth(pw)
		}
		// Shift left rather than run off the right edge.
		if x+w > pw {
			x = max(0, pw-w)
		}
	case f.width != nil:
		w = *f.width
		x = (pw - w) / 2
	case f.left != nil:
		x = *f.left
		w = preferredWidth(pw - x)
	case f.right != nil:
		w = preferredWidth(pw - *f.right)
		x = pw - *f.right - w
	default:
		w = preferredWidth(pw)
		x = (pw - w) / 2
	}
	x = min(max(x, 0), pw)
	w = min(max(w, 0), pw-x)

	preferredHeight := func(avail int) int {
		return min(f.content.PreferredHeight(w, max(0, avail)).Preferred, max(0, avail))
	}

	var y, h int
	switch {
	case f.top != nil && f.bottom != nil:
		y, h = *f.top, ph-*f.top-*f.bottom
	case f.top != nil && f.height != nil:
		y, h = *f.top, *f.height
	case f.bottom != nil && f.height != nil:
		h = *f.height
		y = ph - *f.bottom - h
	case f.ycursor && anchor != nil:
		row := anchor.Y - parent.Y
		y = row + 1
		if f.allowCoverCursor {
			y = row
		}
		if f.height != nil {
			h = *f.height
		} else {
			h = preferredHeight(ph)
		}
		below, above := ph-y, row
		if h > below && above > below {
			h = min(h, above)
			y = row - h
		} else {
			h = min(h, below)
		}
	case f.height != nil:
		h = *f.height
		y = (ph - h) / 2
	case f.top != nil:
		y = *f.top
		h = preferredHeight(ph - y)
	case f.bottom != nil:
		h = preferredHeight(ph - *f.bottom)
		y = ph - *f.bottom - h
	default:
		h = preferredHeight(ph)
		y = (ph - h) / 2
	}
	y = min(max(y, 0), ph)
	h = min(max(h, 0), ph-y)

	return NewRect(parent.X+x, parent.Y+y, w, h)
}

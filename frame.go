package panes

// FrameStyle is the default tag of frame borders.
const FrameStyle Style = "class:frame.border"

// Frame draws a border, optionally titled, around a body container.
type Frame struct {
	body   Container
	title  FormattedText
	border BorderStyle
	style  Style
}

// FrameOption configures a Frame.
type FrameOption func(*Frame)

// WithFrameTitle sets the title drawn centred in the top border.
func WithFrameTitle(title FormattedText) FrameOption {
	return func(f *Frame) { f.title = title }
}

// WithFrameBorder selects the border glyphs.
func WithFrameBorder(b BorderStyle) FrameOption {
	return func(f *Frame) { f.border = b }
}

// WithFrameStyle sets the style of the border.
func WithFrameStyle(style Style) FrameOption {
	return func(f *Frame) { f.style = style }
}

// NewFrame wraps body in a single-line border.
func NewFrame(body Container, opts ...FrameOption) *Frame {
	f := &Frame{body: body, border: BorderSingle, style: FrameStyle}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Body returns the framed container.
func (f *Frame) Body() Container {
	return f.body
}

func (f *Frame) inset() int {
	if f.border == BorderNone {
		return 0
	}
	return 1
}

func grow(d Dimension, n int) Dimension {
	maxSize := d.Max
	if !d.IsUnbounded() {
		maxSize += n
	}
	return D(d.Min+n, maxSize, d.Preferred+n, d.Weight)
}

// PreferredWidth is the body's width plus the border.
func (f *Frame) PreferredWidth(maxAvailable int) Dimension {
	b := 2 * f.inset()
	return grow(f.body.PreferredWidth(max(0, maxAvailable-b)), b)
}

// PreferredHeight is the body's height plus the border.
func (f *Frame) PreferredHeight(width, maxAvailable int) Dimension {
	b := 2 * f.inset()
	return grow(f.body.PreferredHeight(max(0, width-b), max(0, maxAvailable-b)), b)
}

// WriteToScreen draws the border and then the body inside it.
func (f *Frame) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	DrawBoxWithTitle(ctx.screen, rect, f.border, f.title, parentStyle.Join(f.style))
	f.body.WriteToScreen(ctx, rect.Inset(EdgeAll(f.inset())), parentStyle)
}

// Children returns the body.
func (f *Frame) Children() []Container {
	return []Container{f.body}
}

func (*Frame) container() {}

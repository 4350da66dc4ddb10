package panes

// SplitAlign places the space a split has left over when every child
// reached its maximum size.
type SplitAlign uint8

const (
	// SplitStart leaves the spare space after the last child.
	SplitStart SplitAlign = iota
	// SplitCenter puts half of it before the first child.
	SplitCenter
	// SplitEnd puts it before the first child.
	SplitEnd
	// SplitJustify spreads it between the children.
	SplitJustify
)

// split is the shared implementation of HSplit and VSplit. Children are
// laid out along one axis; hidden children take no space.
type split struct {
	children     []Container
	padding      int
	paddingChar  string
	paddingStyle Style
	width        *Dimension
	height       *Dimension
	align        SplitAlign
	style        Style
}

// SplitOption configures an HSplit or VSplit.
type SplitOption func(*split)

// WithPadding inserts n blank cells between visible children.
func WithPadding(n int) SplitOption {
	return func(s *split) { s.padding = max(0, n) }
}

// WithPaddingChar sets the grapheme used to draw padding.
func WithPaddingChar(g string) SplitOption {
	return func(s *split) { s.paddingChar = g }
}

// WithPaddingStyle sets the style of padding cells.
func WithPaddingStyle(style Style) SplitOption {
	return func(s *split) { s.paddingStyle = style }
}

// WithSplitWidth overrides the width the split reports.
func WithSplitWidth(d Dimension) SplitOption {
	return func(s *split) { s.width = &d }
}

// WithSplitHeight overrides the height the split reports.
func WithSplitHeight(d Dimension) SplitOption {
	return func(s *split) { s.height = &d }
}

// WithSplitAlign places the spare space.
func WithSplitAlign(a SplitAlign) SplitOption {
	return func(s *split) { s.align = a }
}

// WithSplitStyle sets the style joined onto everything the split draws.
func WithSplitStyle(style Style) SplitOption {
	return func(s *split) { s.style = style }
}

func newSplit(children []Container, opts []SplitOption) split {
	s := split{children: children, paddingChar: " "}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Children returns the children in order, hidden or not.
func (s *split) Children() []Container {
	return s.children
}

func (*split) container() {}

// visibleChildren returns the children taking part in this frame.
func (s *split) visibleChildren() []Container {
	out := make([]Container, 0, len(s.children))
	for _, c := range s.children {
		if isVisible(c) {
			out = append(out, c)
		}
	}
	return out
}

// withPadding interleaves a fixed padding slot between child dimensions.
func (s *split) withPadding(dims []Dimension) []Dimension {
	if s.padding == 0 || len(dims) < 2 {
		return dims
	}
	out := make([]Dimension, 0, 2*len(dims)-1)
	for i, d := range dims {
		if i > 0 {
			out = append(out, Exact(s.padding))
		}
		out = append(out, d)
	}
	return out
}

// allocate distributes total along the axis and returns one offset and
// size per child, plus the offset and size of each padding slot.
func (s *split) allocate(ctx *RenderContext, kind string, rect Rect, dims []Dimension, total int) (offsets, sizes []int, paddings [][2]int) {
	n := len(dims)
	alloc := Distribute(s.withPadding(dims), total)
	ctx.reportDeficit(kind, rect, alloc.Deficit)

	start := 0
	gapExtra := make([]int, n)
	switch s.align {
	case SplitCenter:
		start = alloc.Leftover / 2
	case SplitEnd:
		start = alloc.Leftover
	case SplitJustify:
		if n > 1 {
			for i := 1; i < n; i++ {
				gapExtra[i] = alloc.Leftover / (n - 1)
			}
			for i := 1; i <= alloc.Leftover%(n-1); i++ {
				gapExtra[i]++
			}
		}
	}

	offsets = make([]int, n)
	sizes = make([]int, n)
	pos := start
	step := 1
	if s.padding > 0 && n > 1 {
		step = 2
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			pos += gapExtra[i]
			if step == 2 {
				pad := alloc.Sizes[2*i-1]
				paddings = append(paddings, [2]int{pos, pad})
				pos += pad
			}
		}
		offsets[i] = pos
		sizes[i] = alloc.Sizes[i*step]
		pos += sizes[i]
	}
	return offsets, sizes, paddings
}

func (s *split) fill(ctx *RenderContext, rect Rect, style Style) {
	if !ctx.transparent {
		ctx.screen.Fill(rect, " ", style)
	}
}

func (s *split) drawPadding(ctx *RenderContext, rect Rect, style Style) {
	if rect.IsEmpty() {
		return
	}
	ctx.screen.Fill(rect, s.paddingChar, style.Join(s.paddingStyle))
}

// HSplit stacks its children top to bottom.
type HSplit struct {
	split
}

// NewHSplit creates a vertical stack of children.
func NewHSplit(children []Container, opts ...SplitOption) *HSplit {
	return &HSplit{split: newSplit(children, opts)}
}

// PreferredWidth is the widest of the visible children.
func (s *HSplit) PreferredWidth(maxAvailable int) Dimension {
	if s.width != nil {
		return *s.width
	}
	children := s.visibleChildren()
	dims := make([]Dimension, len(children))
	for i, c := range children {
		dims[i] = c.PreferredWidth(maxAvailable)
	}
	return MaxDimensions(dims)
}

// PreferredHeight is the sum of the visible children and the padding.
func (s *HSplit) PreferredHeight(width, maxAvailable int) Dimension {
	if s.height != nil {
		return *s.height
	}
	return SumDimensions(s.withPadding(s.heights(width, maxAvailable)))
}

func (s *HSplit) heights(width, maxAvailable int) []Dimension {
	children := s.visibleChildren()
	dims := make([]Dimension, len(children))
	for i, c := range children {
		dims[i] = c.PreferredHeight(width, maxAvailable)
	}
	return dims
}

// WriteToScreen gives each visible child a band of rows.
func (s *HSplit) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	style := parentStyle.Join(s.style)
	s.fill(ctx, rect, style)

	children := s.visibleChildren()
	if len(children) == 0 {
		return
	}
	offsets, sizes, paddings := s.allocate(ctx, "HSplit", rect, s.heights(rect.Width, rect.Height), rect.Height)
	for _, p := range paddings {
		s.drawPadding(ctx, NewRect(rect.X, rect.Y+p[0], rect.Width, p[1]), style)
	}
	for i, c := range children {
		c.WriteToScreen(ctx, NewRect(rect.X, rect.Y+offsets[i], rect.Width, sizes[i]), style)
	}
}

// VSplit places its children left to right.
type VSplit struct {
	split
}

// NewVSplit creates a row of children side by side.
func NewVSplit(children []Container, opts ...SplitOption) *VSplit {
	return &VSplit{split: newSplit(children, opts)}
}

// PreferredWidth is the sum of the visible children and the padding.
func (s *VSplit) PreferredWidth(maxAvailable int) Dimension {
	if s.width != nil {
		return *s.width
	}
	return SumDimensions(s.withPadding(s.widths(maxAvailable)))
}

func (s *VSplit) widths(maxAvailable int) []Dimension {
	children := s.visibleChildren()
	dims := make([]Dimension, len(children))
	for i, c := range children {
		dims[i] = c.PreferredWidth(maxAvailable)
	}
	return dims
}

// PreferredHeight is the tallest visible child at the width it would get.
func (s *VSplit) PreferredHeight(width, maxAvailable int) Dimension {
	if s.height != nil {
		return *s.height
	}
	children := s.visibleChildren()
	dims := s.withPadding(s.widths(width))
	sizes := Distribute(dims, width).Sizes
	step := 1
	if len(dims) > len(children) {
		step = 2
	}

	heights := make([]Dimension, len(children))
	for i, c := range children {
		heights[i] = c.PreferredHeight(sizes[i*step], maxAvailable)
	}
	return MaxDimensions(heights)
}

// WriteToScreen gives each visible child a band of columns.
func (s *VSplit) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	style := parentStyle.Join(s.style)
	s.fill(ctx, rect, style)

	children := s.visibleChildren()
	if len(children) == 0 {
		return
	}
	offsets, sizes, paddings := s.allocate(ctx, "VSplit", rect, s.widths(rect.Width), rect.Width)
	for _, p := range paddings {
		s.drawPadding(ctx, NewRect(rect.X+p[0], rect.Y, p[1], rect.Height), style)
	}
	for i, c := range children {
		c.WriteToScreen(ctx, NewRect(rect.X+offsets[i], rect.Y, sizes[i], rect.Height), style)
	}
}

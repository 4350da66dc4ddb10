package panes

import "github.com/grindlemire/go-panes/internal/debug"

// Align is the horizontal alignment of lines inside a window.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical alignment of content shorter than its window.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// ScrollOffsets is the number of rows or columns a window keeps between the
// cursor and each edge while scrolling.
type ScrollOffsets struct {
	Top, Bottom, Left, Right int
}

// Style tags a window adds on top of its own style.
const (
	CursorLineStyle  Style = "class:cursor-line"
	ColorColumnStyle Style = "class:color-column"
)

// Window hosts exactly one [UIControl]. It applies margins, scrolling and
// alignment and copies the control's content into its rectangle.
//
// VerticalScroll counts screen rows, which equal content lines unless
// WrapLines is set. Both scroll positions persist between frames.
type Window struct {
	content UIControl

	width, height    *Dimension
	dontExtendWidth  bool
	dontExtendHeight bool
	leftMargins      []Margin
	rightMargins     []Margin
	scrollOffsets    ScrollOffsets
	align            Align
	valign           VAlign
	wrapLines        bool
	alwaysHideCursor bool
	style            Style
	char             string
	cursorLine       bool
	colorColumns     []int

	verticalScroll   int
	horizontalScroll int
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithWindowWidth overrides the width the control asks for.
func WithWindowWidth(d Dimension) WindowOption {
	return func(w *Window) { w.width = &d }
}

// WithWindowHeight overrides the height the control asks for.
func WithWindowHeight(d Dimension) WindowOption {
	return func(w *Window) { w.height = &d }
}

// WithDontExtendWidth caps the window at the preferred width of its content.
func WithDontExtendWidth() WindowOption {
	return func(w *Window) { w.dontExtendWidth = true }
}

// WithDontExtendHeight caps the window at the preferred height of its content.
func WithDontExtendHeight() WindowOption {
	return func(w *Window) { w.dontExtendHeight = true }
}

// WithLeftMargins sets the margins left of the content, outermost first.
func WithLeftMargins(margins ...Margin) WindowOption {
	return func(w *Window) { w.leftMargins = margins }
}

// WithRightMargins sets the margins right of the content, outermost first.
func WithRightMargins(margins ...Margin) WindowOption {
	return func(w *Window) { w.rightMargins = margins }
}

// WithScrollOffsets keeps rows and columns of context around the cursor.
func WithScrollOffsets(offsets ScrollOffsets) WindowOption {
	return func(w *Window) { w.scrollOffsets = offsets }
}

// WithAlign sets the horizontal alignment of lines.
func WithAlign(a Align) WindowOption {
	return func(w *Window) { w.align = a }
}

// WithVAlign sets the vertical alignment of short content.
func WithVAlign(a VAlign) WindowOption {
	return func(w *Window) { w.valign = a }
}

// WithWrapLines breaks lines longer than the content width.
func WithWrapLines() WindowOption {
	return func(w *Window) { w.wrapLines = true }
}

// WithAlwaysHideCursor never shows the cursor, even when focused.
func WithAlwaysHideCursor() WindowOption {
	return func(w *Window) { w.alwaysHideCursor = true }
}

// WithWindowStyle sets the style joined onto everything the window draws.
func WithWindowStyle(s Style) WindowOption {
	return func(w *Window) { w.style = s }
}

// WithWindowChar sets the grapheme used to fill the background.
func WithWindowChar(g string) WindowOption {
	return func(w *Window) { w.char = g }
}

// WithCursorLine highlights the row holding the cursor.
func WithCursorLine() WindowOption {
	return func(w *Window) { w.cursorLine = true }
}

// WithColorColumns highlights the given content columns.
func WithColorColumns(cols ...int) WindowOption {
	return func(w *Window) { w.colorColumns = cols }
}

// NewWindow creates a window hosting content.
func NewWindow(content UIControl, opts ...WindowOption) *Window {
	w := &Window{content: content}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Content returns the hosted control.
func (w *Window) Content() UIControl {
	return w.content
}

// VerticalScroll returns the first visible row.
func (w *Window) VerticalScroll() int {
	return w.verticalScroll
}

// SetVerticalScroll scrolls to row n. The next render clamps it and, when
// the content has a cursor, moves it as needed to keep the cursor visible.
func (w *Window) SetVerticalScroll(n int) {
	w.verticalScroll = max(0, n)
}

// HorizontalScroll returns the first visible column.
func (w *Window) HorizontalScroll() int {
	return w.horizontalScroll
}

// SetHorizontalScroll scrolls to column n.
func (w *Window) SetHorizontalScroll(n int) {
	w.horizontalScroll = max(0, n)
}

// Children returns nil; a window is a leaf.
func (w *Window) Children() []Container {
	return nil
}

func (*Window) container() {}

// marginWidths returns the total width of the left and right margins.
func (w *Window) marginWidths(content func() *UIContent) (left, right int) {
	_, left = marginSizes(w.leftMargins, content)
	_, right = marginSizes(w.rightMargins, content)
	return left, right
}

func marginSizes(margins []Margin, content func() *UIContent) (sizes []int, total int) {
	sizes = make([]int, len(margins))
	for i, m := range margins {
		sizes[i] = max(0, m.Width(content))
		total += sizes[i]
	}
	return sizes, total
}

// lazyContent returns a func creating the control's content on first use.
func (w *Window) lazyContent(width, height int) func() *UIContent {
	var c *UIContent
	return func() *UIContent {
		if c == nil {
			c = w.content.CreateContent(max(0, width), max(0, height))
		}
		return c
	}
}

// PreferredWidth is the preferred width of the control plus the margins.
func (w *Window) PreferredWidth(maxAvailable int) Dimension {
	if w.width != nil {
		return *w.width
	}
	left, right := w.marginWidths(w.lazyContent(maxAvailable, 0))
	mw := left + right
	pw, ok := w.content.PreferredWidth(max(0, maxAvailable-mw))
	if !ok {
		return Weighted(1)
	}
	if w.dontExtendWidth {
		return D(0, pw+mw, pw+mw, 1)
	}
	return D(0, -1, pw+mw, 1)
}

// PreferredHeight is the preferred height of the control at the content
// width left after margins.
func (w *Window) PreferredHeight(width, maxAvailable int) Dimension {
	if w.height != nil {
		return *w.height
	}
	left, right := w.marginWidths(w.lazyContent(width, maxAvailable))
	ph, ok := w.content.PreferredHeight(max(0, width-left-right), max(0, maxAvailable), w.wrapLines)
	if !ok {
		return Weighted(1)
	}
	if w.dontExtendHeight {
		return D(0, ph, ph, 1)
	}
	return D(0, -1, ph, 1)
}

// rowLayout maps the content onto screen rows for one frame.
type rowLayout struct {
	content *UIContent
	width   int
	wrap    bool

	glyphs [][]glyph
	starts [][]int
	total  int
}

func newRowLayout(content *UIContent, width int, wrap bool) *rowLayout {
	rl := &rowLayout{
		content: content,
		width:   width,
		wrap:    wrap,
		glyphs:  make([][]glyph, content.LineCount),
		starts:  make([][]int, content.LineCount),
	}
	mode := WrapNone
	if wrap {
		mode = WrapChar
	}
	for i := 0; i < content.LineCount; i++ {
		rl.glyphs[i] = content.Line(i).glyphs()
		rl.starts[i] = wrapRows(rl.glyphs[i], width, mode)
		rl.total += len(rl.starts[i])
	}
	if wrap && width > 0 && content.Cursor != nil {
		rl.padCursorRow(*content.Cursor)
	}
	return rl
}

// padCursorRow adds an empty row after a wrapped line whose last row is
// full when the cursor sits past its end, so the cursor lands in column 0
// of that row instead of outside the content width.
func (rl *rowLayout) padCursorRow(p Point) {
	if p.Y < 0 || p.Y >= rl.content.LineCount {
		return
	}
	gs := rl.glyphs[p.Y]
	if glyphIndexAtColumn(gs, p.X) < len(gs) {
		return
	}
	if _, col := locateGlyph(gs, rl.starts[p.Y], len(gs)); col < rl.width {
		return
	}
	rl.starts[p.Y] = append(rl.starts[p.Y], len(gs))
	rl.total++
}

// rowOf returns the screen row (counted from the top of the content) and
// the column within that row of content position p.
func (rl *rowLayout) rowOf(p Point) (row, col int) {
	line := min(max(p.Y, 0), max(rl.content.LineCount-1, 0))
	for i := 0; i < line; i++ {
		row += len(rl.starts[i])
	}
	if rl.content.LineCount == 0 {
		return 0, p.X
	}
	gs := rl.glyphs[line]
	if !rl.wrap {
		return row, p.X
	}
	r, c := locateGlyph(gs, rl.starts[line], glyphIndexAtColumn(gs, p.X))
	return row + r, c
}

// at returns the line and wrapped row index shown at screen row n.
func (rl *rowLayout) at(n int) (line, r int, ok bool) {
	for i := 0; i < rl.content.LineCount; i++ {
		if n < len(rl.starts[i]) {
			return i, n, true
		}
		n -= len(rl.starts[i])
	}
	return -1, 0, false
}

func (rl *rowLayout) widest() int {
	w := 0
	for _, gs := range rl.glyphs {
		lw := 0
		for _, g := range gs {
			lw += g.width
		}
		w = max(w, lw)
	}
	return w
}

// scrollTo returns the minimal change of scroll that keeps target within
// [scroll+before, scroll+size-after), clamped to [0, limit].
func scrollTo(scroll, target, size, before, after, limit int) int {
	before = min(max(before, 0), (size-1)/2)
	after = min(max(after, 0), (size-1)/2)
	if target < scroll+before {
		scroll = target - before
	}
	if target > scroll+size-1-after {
		scroll = target - size + 1 + after
	}
	return min(max(scroll, 0), max(limit, 0))
}

// WriteToScreen draws the window into rect.
func (w *Window) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	rect = rect.Intersect(ctx.screen.Rect())
	style := parentStyle.Join(w.style)
	info := &WindowRenderInfo{Window: ctx.windowID(w), Rect: rect}

	probe := w.lazyContent(rect.Width, rect.Height)
	leftSizes, leftWidth := marginSizes(w.leftMargins, probe)
	rightSizes, rightWidth := marginSizes(w.rightMargins, probe)
	contentWidth := rect.Width - leftWidth - rightWidth
	if contentWidth <= 0 || rect.Height <= 0 {
		debug.Log("Window.WriteToScreen: window %d has no room in %v", info.Window, rect)
		ctx.record(w, info)
		return
	}

	if !ctx.transparent || w.char != "" {
		char := w.char
		if char == "" {
			char = " "
		}
		ctx.screen.Fill(rect, char, style)
	}

	content := w.content.CreateContent(contentWidth, rect.Height)
	contentRect := NewRect(rect.X+leftWidth, rect.Y, contentWidth, rect.Height)
	info.ContentRect = contentRect
	info.ContentLineCount = content.LineCount
	info.SourceLineCount = content.SourceLineCount()

	rl := newRowLayout(content, contentWidth, w.wrapLines)
	info.TotalRows = rl.total
	height := rect.Height

	// Scroll so the cursor, or the menu anchor when there is no cursor,
	// stays visible.
	target := content.Cursor
	if target == nil {
		target = content.MenuAnchor
	}
	vscroll := min(max(w.verticalScroll, 0), max(0, rl.total-height))
	hscroll := max(w.horizontalScroll, 0)
	targetRow, targetCol := 0, 0
	if target != nil {
		targetRow, targetCol = rl.rowOf(*target)
		vscroll = scrollTo(vscroll, targetRow, height, w.scrollOffsets.Top, w.scrollOffsets.Bottom, rl.total-height)
	}
	switch {
	case w.wrapLines:
		hscroll = 0
	case target != nil:
		hscroll = scrollTo(hscroll, targetCol, contentWidth, w.scrollOffsets.Left, w.scrollOffsets.Right, max(targetCol, rl.widest()-contentWidth))
	default:
		hscroll = min(hscroll, max(0, rl.widest()-contentWidth))
	}
	w.verticalScroll, w.horizontalScroll = vscroll, hscroll
	info.VerticalScroll, info.HorizontalScroll = vscroll, hscroll
	info.Truncated = rl.total > height

	top := 0
	if shown := rl.total - vscroll; shown < height {
		switch w.valign {
		case VAlignCenter:
			top = (height - shown) / 2
		case VAlignBottom:
			top = height - shown
		}
	}

	info.VisibleRows = make([]VisibleRow, height)
	rowOffsets := make([]int, height)
	for y := 0; y < height; y++ {
		info.VisibleRows[y] = VisibleRow{Line: -1}
		line, r, ok := rl.at(vscroll + y - top)
		if y < top || !ok {
			continue
		}

		gs := rowGlyphs(rl.glyphs[line], rl.starts[line], r)
		rowWidth := 0
		for _, g := range gs {
			rowWidth += g.width
		}
		source, sourceCol := content.SourceLine(line)
		startCol := sourceCol + columnOf(rl.glyphs[line], rl.starts[line][r]) + hscroll
		info.VisibleRows[y] = VisibleRow{Line: source, Col: startCol, Continuation: r > 0 || sourceCol > 0}

		offset := 0
		if rowWidth < contentWidth && hscroll == 0 {
			switch w.align {
			case AlignCenter:
				offset = (contentWidth - rowWidth) / 2
			case AlignRight:
				offset = contentWidth - rowWidth
			}
		}
		rowOffsets[y] = offset

		x := -hscroll
		for _, g := range gs {
			if x >= 0 && x+g.width <= contentWidth {
				ctx.screen.SetGrapheme(contentRect.X+offset+x, contentRect.Y+y, g.text, style.Join(g.style))
			}
			x += g.width
			if x >= contentWidth {
				break
			}
		}
	}

	toScreen := func(row, col int) *Point {
		y := row - vscroll + top
		if y < 0 || y >= height {
			return nil
		}
		x := col - hscroll + rowOffsets[y]
		if x < 0 || x >= contentWidth {
			return nil
		}
		return &Point{X: contentRect.X + x, Y: contentRect.Y + y}
	}

	if content.Cursor != nil {
		cur := *content.Cursor
		info.ContentCursor = &cur
		info.CursorLine, _ = content.SourceLine(min(max(cur.Y, 0), max(content.LineCount-1, 0)))
		info.Cursor = toScreen(targetRow, targetCol)
	}
	if anchor := content.menuAnchor(); anchor != nil {
		row, col := rl.rowOf(*anchor)
		info.MenuAnchor = toScreen(row, col)
	}

	if w.cursorLine && info.Cursor != nil {
		ctx.screen.AppendStyle(NewRect(contentRect.X, info.Cursor.Y, contentWidth, 1), CursorLineStyle)
	}
	for _, col := range w.colorColumns {
		x := col - hscroll
		if x >= 0 && x < contentWidth {
			ctx.screen.AppendStyle(NewRect(contentRect.X+x, contentRect.Y, 1, height), ColorColumnStyle)
		}
	}

	// Margins are listed outermost first on both sides.
	x := rect.X
	for i, m := range w.leftMargins {
		w.drawMargin(ctx, m, info, NewRect(x, rect.Y, leftSizes[i], height), style)
		x += leftSizes[i]
	}
	x = rect.Right()
	for i, m := range w.rightMargins {
		x -= rightSizes[i]
		w.drawMargin(ctx, m, info, NewRect(x, rect.Y, rightSizes[i], height), style)
	}

	ctx.record(w, info)

	if ctx.focused == w && content.ShowCursor && !w.alwaysHideCursor && info.Cursor != nil {
		ctx.screen.SetCursor(*info.Cursor)
	}
}

func (w *Window) drawMargin(ctx *RenderContext, m Margin, info *WindowRenderInfo, rect Rect, style Style) {
	if rect.IsEmpty() {
		return
	}
	lines := m.Render(info, rect.Width, rect.Height).SplitLines()
	for y, line := range lines {
		if y >= rect.Height {
			break
		}
		x := rect.X
		for _, g := range line.glyphs() {
			if x+g.width > rect.Right() {
				break
			}
			ctx.screen.SetGrapheme(x, rect.Y+y, g.text, style.Join(g.style))
			x += g.width
		}
	}
}

// columnOf returns the display column of glyph index i.
func columnOf(gs []glyph, i int) int {
	col := 0
	for j := 0; j < i && j < len(gs); j++ {
		col += gs[j].width
	}
	return col
}

package panes

// UIControl produces the content of a [Window]. The set of controls is
// closed: [FormattedTextControl], [BufferControl], [DummyControl] and
// [MenuControl].
type UIControl interface {
	// PreferredWidth returns the width the content would like, given at most
	// maxAvailable columns. ok is false when the control has no preference.
	PreferredWidth(maxAvailable int) (width int, ok bool)

	// PreferredHeight returns the rows the content would like at the given
	// width, given at most maxAvailable rows.
	PreferredHeight(width, maxAvailable int, wrapLines bool) (height int, ok bool)

	// CreateContent produces the content for one render pass.
	CreateContent(width, height int) *UIContent

	// IsFocusable reports whether a window hosting this control can take
	// focus.
	IsFocusable() bool

	uiControl()
}

// contentHeight counts the rows of content at width, stopping early once
// limit is reached.
func contentHeight(c *UIContent, width, limit int, wrap bool) int {
	rows := 0
	for i := 0; i < c.LineCount && rows < limit; i++ {
		rows += c.LineHeight(i, width, wrap)
	}
	return min(rows, max(limit, 0))
}

// DummyControl renders nothing and wants no space. Useful as a filler
// window that only shows its style or fill character.
type DummyControl struct{}

// NewDummyControl returns a DummyControl.
func NewDummyControl() *DummyControl {
	return &DummyControl{}
}

func (*DummyControl) PreferredWidth(int) (int, bool) { return 0, false }

func (*DummyControl) PreferredHeight(int, int, bool) (int, bool) { return 0, false }

func (*DummyControl) CreateContent(int, int) *UIContent { return EmptyContent() }

func (*DummyControl) IsFocusable() bool { return false }

func (*DummyControl) uiControl() {}

// FormattedTextControl displays formatted text from a [TextSource]. It is a
// pure function of what the source returns.
//
// A fragment styled with [CursorMarker] sets the cursor position and one
// styled with [MenuMarker] sets the menu anchor.
type FormattedTextControl struct {
	source     TextSource
	style      Style
	focusable  bool
	showCursor bool
}

// FormattedTextOption configures a FormattedTextControl.
type FormattedTextOption func(*FormattedTextControl)

// WithTextStyle joins style onto every fragment.
func WithTextStyle(style Style) FormattedTextOption {
	return func(c *FormattedTextControl) { c.style = style }
}

// WithTextFocusable lets the hosting window take focus.
func WithTextFocusable(focusable bool) FormattedTextOption {
	return func(c *FormattedTextControl) { c.focusable = focusable }
}

// WithTextCursor shows the cursor at the CursorMarker while focused.
func WithTextCursor(show bool) FormattedTextOption {
	return func(c *FormattedTextControl) { c.showCursor = show }
}

// NewFormattedTextControl creates a control for a dynamic source.
func NewFormattedTextControl(source TextSource, opts ...FormattedTextOption) *FormattedTextControl {
	if source == nil {
		source = StaticText(nil)
	}
	c := &FormattedTextControl{source: source}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTextControl is a shorthand for a control showing static text.
func NewTextControl(text FormattedText, opts ...FormattedTextOption) *FormattedTextControl {
	return NewFormattedTextControl(StaticText(text), opts...)
}

func (c *FormattedTextControl) lines() []FormattedText {
	lines := c.source().SplitLines()
	if c.style == "" {
		return lines
	}
	for i, line := range lines {
		styled := make(FormattedText, len(line))
		for j, f := range line {
			if f.Style.isMarker() {
				styled[j] = f
				continue
			}
			styled[j] = Fragment{Style: c.style.Join(f.Style), Text: f.Text}
		}
		lines[i] = styled
	}
	return lines
}

// PreferredWidth returns the width of the widest line, capped at maxAvailable.
func (c *FormattedTextControl) PreferredWidth(maxAvailable int) (int, bool) {
	widest := 0
	for _, line := range c.lines() {
		widest = max(widest, line.Width())
	}
	return min(widest, max(maxAvailable, 0)), true
}

// PreferredHeight returns the number of rows the text takes at width.
func (c *FormattedTextControl) PreferredHeight(width, maxAvailable int, wrapLines bool) (int, bool) {
	return contentHeight(c.CreateContent(width, maxAvailable), width, maxAvailable, wrapLines), true
}

// CreateContent evaluates the source and splits it into lines.
func (c *FormattedTextControl) CreateContent(width, height int) *UIContent {
	lines := c.lines()
	content := NewUIContent(len(lines), func(i int) FormattedText { return lines[i] })
	content.ShowCursor = c.showCursor

	for y, line := range lines {
		if content.Cursor == nil {
			if x, ok := line.markerColumn(CursorMarker); ok {
				content.Cursor = &Point{X: x, Y: y}
			}
		}
		if content.MenuAnchor == nil {
			if x, ok := line.markerColumn(MenuMarker); ok {
				content.MenuAnchor = &Point{X: x, Y: y}
			}
		}
	}
	return content
}

// IsFocusable reports whether the control was created focusable.
func (c *FormattedTextControl) IsFocusable() bool {
	return c.focusable
}

func (*FormattedTextControl) uiControl() {}

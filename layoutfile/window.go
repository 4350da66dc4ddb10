package layoutfile

import (
	"unicode/utf8"

	"github.com/grindlemire/go-panes"
)

var (
	aligns = map[string]panes.Align{
		"":       panes.AlignLeft,
		"left":   panes.AlignLeft,
		"center": panes.AlignCenter,
		"right":  panes.AlignRight,
	}
	valigns = map[string]panes.VAlign{
		"":       panes.VAlignTop,
		"top":    panes.VAlignTop,
		"center": panes.VAlignCenter,
		"bottom": panes.VAlignBottom,
	}
	wraps = map[string]panes.WrapMode{
		"":     panes.WrapNone,
		"none": panes.WrapNone,
		"char": panes.WrapChar,
		"word": panes.WrapWord,
	}
)

func (b *builder) window(n *Node, path string) (*panes.Window, error) {
	control, err := b.control(n, path)
	if err != nil {
		return nil, err
	}
	align, ok := aligns[n.Align]
	if !ok {
		return nil, invalid(path, "unknown window align %q", n.Align)
	}
	valign, ok := valigns[n.VAlign]
	if !ok {
		return nil, invalid(path, "unknown valign %q", n.VAlign)
	}

	opts := []panes.WindowOption{
		panes.WithAlign(align),
		panes.WithVAlign(valign),
		panes.WithWindowStyle(panes.Style(n.Style)),
	}
	if n.Width != nil {
		opts = append(opts, panes.WithWindowWidth(n.Width.Dimension()))
	}
	if n.Height != nil {
		opts = append(opts, panes.WithWindowHeight(n.Height.Dimension()))
	}
	if n.DontExtendWidth {
		opts = append(opts, panes.WithDontExtendWidth())
	}
	if n.DontExtendHeight {
		opts = append(opts, panes.WithDontExtendHeight())
	}
	if n.WrapLines {
		opts = append(opts, panes.WithWrapLines())
	}
	if n.HideCursor {
		opts = append(opts, panes.WithAlwaysHideCursor())
	}
	if n.CursorLine {
		opts = append(opts, panes.WithCursorLine())
	}
	if len(n.ColorColumns) > 0 {
		opts = append(opts, panes.WithColorColumns(n.ColorColumns...))
	}
	if n.Char != "" {
		opts = append(opts, panes.WithWindowChar(n.Char))
	}
	if so := n.ScrollOffsets; so != nil {
		opts = append(opts, panes.WithScrollOffsets(panes.ScrollOffsets{
			Top: so.Top, Bottom: so.Bottom, Left: so.Left, Right: so.Right,
		}))
	}

	left, err := leftMargins(n, path)
	if err != nil {
		return nil, err
	}
	if len(left) > 0 {
		opts = append(opts, panes.WithLeftMargins(left...))
	}
	if n.Scrollbar {
		opts = append(opts, panes.WithRightMargins(panes.ScrollbarMargin{DisplayArrows: n.ScrollbarArrows}))
	}
	return panes.NewWindow(control, opts...), nil
}

func leftMargins(n *Node, path string) ([]panes.Margin, error) {
	var margins []panes.Margin
	if n.Prompt != "" {
		margins = append(margins, panes.PromptMargin{Prompt: panes.Styled(panes.PromptStyle, n.Prompt)})
	}
	switch n.LineNumbers {
	case "", "off":
	case "absolute", "on":
		margins = append(margins, panes.NumberedMargin{DisplayTildes: n.Tildes})
	case "relative":
		margins = append(margins, panes.NumberedMargin{Relative: true, DisplayTildes: n.Tildes})
	default:
		return nil, invalid(path, "unknown line_numbers mode %q", n.LineNumbers)
	}
	return margins, nil
}

func (b *builder) control(n *Node, path string) (panes.UIControl, error) {
	switch n.Control {
	case "", "text":
		var opts []panes.FormattedTextOption
		if n.Focusable != nil {
			opts = append(opts, panes.WithTextFocusable(*n.Focusable))
		}
		return panes.NewTextControl(panes.Plain(n.Text), opts...), nil

	case "buffer":
		wrap, ok := wraps[n.Wrap]
		if !ok {
			return nil, invalid(path, "unknown wrap mode %q", n.Wrap)
		}
		buf := panes.NewMemoryBuffer(n.Text)
		buf.SetCursorPosition(cursorOffset(n))
		if n.Name != "" {
			b.out.buffers[n.Name] = buf
		}
		opts := []panes.BufferControlOption{panes.WithWrap(wrap)}
		if n.Focusable != nil {
			opts = append(opts, panes.WithBufferFocusable(*n.Focusable))
		}
		return panes.NewBufferControl(buf, opts...), nil

	case "dummy":
		return panes.NewDummyControl(), nil
	}
	return nil, invalid(path, "unknown control %q", n.Control)
}

// cursorOffset is the initial rune offset of a buffer's cursor: the start
// of the text unless the node sets one. Negative offsets count back from
// the end, so -1 is the end of the text.
func cursorOffset(n *Node) int {
	if n.Cursor == nil {
		return 0
	}
	if c := *n.Cursor; c < 0 {
		return utf8.RuneCountInString(n.Text) + 1 + c
	}
	return *n.Cursor
}

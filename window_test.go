package panes

import (
	"fmt"
	"strings"
	"testing"
)

func render(t *testing.T, root Container, width, height int, opts ...LayoutOption) (*Layout, *Screen, RenderReport) {
	t.Helper()
	l, err := NewLayout(root, opts...)
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}
	scr := NewScreen(width, height)
	report := l.Render(scr)
	return l, scr, report
}

func screenRow(scr *Screen, y int) string {
	return strings.Split(scr.String(), "\n")[y]
}

func numberedBuffer(lines int) *MemoryBuffer {
	text := make([]string, lines)
	for i := range text {
		text[i] = fmt.Sprintf("line %d", i)
	}
	return NewMemoryBuffer(strings.Join(text, "\n"))
}

func TestWindow_ScrollsCursorIntoView(t *testing.T) {
	buf := numberedBuffer(100)
	buf.SetCursorPosition(0)
	buf.MoveCursor(50, 0)

	w := NewWindow(NewBufferControl(buf))
	l, scr, _ := render(t, w, 10, 20)

	info, ok := l.RenderInfo(w)
	if !ok {
		t.Fatal("RenderInfo() missing")
	}
	if info.VerticalScroll != 31 {
		t.Errorf("VerticalScroll = %d, want 31", info.VerticalScroll)
	}
	if info.Cursor == nil || *info.Cursor != (Point{X: 0, Y: 19}) {
		t.Errorf("Cursor = %v, want (0, 19)", info.Cursor)
	}
	if got := screenRow(scr, 19); got != "line 50   " {
		t.Errorf("row 19 = %q, want %q", got, "line 50   ")
	}
	if p, ok := scr.Cursor(); !ok || p != (Point{X: 0, Y: 19}) {
		t.Errorf("screen cursor = %v (visible %v), want (0, 19)", p, ok)
	}
	if got := info.ThumbSize(20); got != 4 {
		t.Errorf("ThumbSize(20) = %d, want 4", got)
	}
	if got := info.ThumbOffset(20); got != 6 {
		t.Errorf("ThumbOffset(20) = %d, want 6", got)
	}
	if info.FirstVisibleLine() != 31 || info.LastVisibleLine() != 50 {
		t.Errorf("visible lines = %d..%d, want 31..50", info.FirstVisibleLine(), info.LastVisibleLine())
	}
	if !info.Truncated {
		t.Error("Truncated = false, want true")
	}

	// Scrolling back up only moves as far as needed.
	buf.MoveCursor(-30, 0)
	l.Render(scr)
	info, _ = l.RenderInfo(w)
	if info.VerticalScroll != 20 {
		t.Errorf("VerticalScroll after moving up = %d, want 20", info.VerticalScroll)
	}
}

func TestWindow_CursorAlwaysVisible(t *testing.T) {
	type tc struct {
		offsets ScrollOffsets
		wrap    bool
	}

	tests := map[string]tc{
		"no offsets":   {},
		"with offsets": {offsets: ScrollOffsets{Top: 3, Bottom: 3}},
		"huge offsets": {offsets: ScrollOffsets{Top: 50, Bottom: 50}},
		"wrapped":      {offsets: ScrollOffsets{Top: 1, Bottom: 1}, wrap: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := numberedBuffer(60)
			opts := []WindowOption{WithScrollOffsets(tt.offsets)}
			if tt.wrap {
				opts = append(opts, WithWrapLines())
			}
			w := NewWindow(NewBufferControl(buf), opts...)
			l, err := NewLayout(w)
			if err != nil {
				t.Fatalf("NewLayout() error = %v", err)
			}
			scr := NewScreen(4, 7)

			for _, line := range []int{0, 59, 30, 31, 5, 58, 0} {
				buf.SetCursorPosition(0)
				buf.MoveCursor(line, 3)
				l.Render(scr)

				info, _ := l.RenderInfo(w)
				if info.Cursor == nil {
					t.Fatalf("cursor on line %d not visible (scroll %d)", line, info.VerticalScroll)
				}
				if !info.ContentRect.Contains(info.Cursor.X, info.Cursor.Y) {
					t.Errorf("cursor %v outside %v", *info.Cursor, info.ContentRect)
				}
				if info.VerticalScroll < 0 || info.VerticalScroll > max(0, info.TotalRows-7) {
					t.Errorf("VerticalScroll = %d out of range", info.VerticalScroll)
				}
			}
		})
	}
}

func TestWindow_ScrollOffsetsKeepContext(t *testing.T) {
	buf := numberedBuffer(40)
	buf.SetCursorPosition(0)
	buf.MoveCursor(20, 0)

	w := NewWindow(NewBufferControl(buf), WithScrollOffsets(ScrollOffsets{Bottom: 2}))
	l, _, _ := render(t, w, 10, 10)

	info, _ := l.RenderInfo(w)
	// Line 20 sits two rows above the bottom edge.
	if info.VerticalScroll != 13 {
		t.Errorf("VerticalScroll = %d, want 13", info.VerticalScroll)
	}
}

func TestWindow_PersistentScrollIsClamped(t *testing.T) {
	w := NewWindow(NewTextControl(Plain(strings.Repeat("x\n", 99) + "x")))
	l, err := NewLayout(w)
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}
	scr := NewScreen(3, 10)

	w.SetVerticalScroll(5)
	l.Render(scr)
	if got := w.VerticalScroll(); got != 5 {
		t.Errorf("VerticalScroll() = %d, want 5", got)
	}

	w.SetVerticalScroll(1000)
	l.Render(scr)
	if got := w.VerticalScroll(); got != 90 {
		t.Errorf("VerticalScroll() = %d, want 90", got)
	}
	info, _ := l.RenderInfo(w)
	if !info.BottomVisible() || info.VerticalScrollPercentage() != 100 {
		t.Errorf("BottomVisible() = %v, percentage %d", info.BottomVisible(), info.VerticalScrollPercentage())
	}
}

func TestWindow_HorizontalScroll(t *testing.T) {
	buf := NewMemoryBuffer("0123456789abc")
	w := NewWindow(NewBufferControl(buf))
	l, scr, _ := render(t, w, 5, 1)

	info, _ := l.RenderInfo(w)
	if info.HorizontalScroll != 9 {
		t.Errorf("HorizontalScroll = %d, want 9", info.HorizontalScroll)
	}
	if got := screenRow(scr, 0); got != "9abc " {
		t.Errorf("row = %q, want %q", got, "9abc ")
	}
	if info.Cursor == nil || *info.Cursor != (Point{X: 4, Y: 0}) {
		t.Errorf("Cursor = %v, want (4, 0)", info.Cursor)
	}
}

func TestWindow_Align(t *testing.T) {
	type tc struct {
		align Align
		want  string
	}

	tests := map[string]tc{
		"left":   {align: AlignLeft, want: "ab    "},
		"center": {align: AlignCenter, want: "  ab  "},
		"right":  {align: AlignRight, want: "    ab"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWindow(NewTextControl(Plain("ab")), WithAlign(tt.align))
			_, scr, _ := render(t, w, 6, 1)
			if got := screenRow(scr, 0); got != tt.want {
				t.Errorf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindow_VAlign(t *testing.T) {
	type tc struct {
		valign  VAlign
		wantRow int
	}

	tests := map[string]tc{
		"top":    {valign: VAlignTop, wantRow: 0},
		"center": {valign: VAlignCenter, wantRow: 1},
		"bottom": {valign: VAlignBottom, wantRow: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWindow(NewTextControl(Plain("x")), WithVAlign(tt.valign))
			l, scr, _ := render(t, w, 1, 3)

			if got := screenRow(scr, tt.wantRow); got != "x" {
				t.Errorf("row %d = %q, want %q", tt.wantRow, got, "x")
			}
			info, _ := l.RenderInfo(w)
			for y, row := range info.VisibleRows {
				wantLine := -1
				if y == tt.wantRow {
					wantLine = 0
				}
				if row.Line != wantLine {
					t.Errorf("VisibleRows[%d].Line = %d, want %d", y, row.Line, wantLine)
				}
			}
		})
	}
}

func TestWindow_WrapLines(t *testing.T) {
	w := NewWindow(NewTextControl(Plain("abcdef\ngh")), WithWrapLines())
	l, scr, _ := render(t, w, 4, 4)

	if got := scr.StringTrimmed(); got != "abcd\nef\ngh\n" {
		t.Errorf("screen = %q", got)
	}

	info, _ := l.RenderInfo(w)
	want := []VisibleRow{
		{Line: 0, Col: 0},
		{Line: 0, Col: 4, Continuation: true},
		{Line: 1, Col: 0},
		{Line: -1},
	}
	for i, row := range want {
		if info.VisibleRows[i] != row {
			t.Errorf("VisibleRows[%d] = %+v, want %+v", i, info.VisibleRows[i], row)
		}
	}
	if info.TotalRows != 3 || info.ContentLineCount != 2 {
		t.Errorf("TotalRows = %d, ContentLineCount = %d, want 3 and 2", info.TotalRows, info.ContentLineCount)
	}
}

func TestWindow_MarginsNumberSourceLines(t *testing.T) {
	type tc struct {
		margin   NumberedMargin
		wantRows []string
	}

	tests := map[string]tc{
		"absolute": {
			margin:   NumberedMargin{DisplayTildes: true},
			wantRows: []string{" 1 aaaaa", "   aaaaa", " 2 b    ", "~       "},
		},
		"relative": {
			margin:   NumberedMargin{Relative: true},
			wantRows: []string{" 1 aaaaa", "   aaaaa", "2  b    ", "        "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewMemoryBuffer("aaaaaaaaaa\nb")
			w := NewWindow(NewBufferControl(buf, WithWrap(WrapChar)), WithLeftMargins(tt.margin))
			l, scr, _ := render(t, w, 8, 4)

			for y, row := range tt.wantRows {
				if got := screenRow(scr, y); got != row {
					t.Errorf("row %d = %q, want %q", y, got, row)
				}
			}

			info, _ := l.RenderInfo(w)
			wantVisible := []VisibleRow{
				{Line: 0, Col: 0},
				{Line: 0, Col: 5, Continuation: true},
				{Line: 1, Col: 0},
				{Line: -1},
			}
			for i, row := range wantVisible {
				if info.VisibleRows[i] != row {
					t.Errorf("VisibleRows[%d] = %+v, want %+v", i, info.VisibleRows[i], row)
				}
			}
			if info.ContentLineCount != 3 || info.SourceLineCount != 2 || info.CursorLine != 1 {
				t.Errorf("ContentLineCount = %d, SourceLineCount = %d, CursorLine = %d, want 3, 2, 1",
					info.ContentLineCount, info.SourceLineCount, info.CursorLine)
			}
		})
	}
}

func TestWindow_WrappedCursorAfterFullRow(t *testing.T) {
	type tc struct {
		text       string
		cursor     int
		width      int
		wantCursor Point
		wantRows   int
	}

	tests := map[string]tc{
		"end of a full row moves to a new row": {
			text:       "abcde",
			cursor:     5,
			width:      5,
			wantCursor: Point{X: 0, Y: 1},
			wantRows:   2,
		},
		"end of a partial row stays on it": {
			text:       "abcd",
			cursor:     4,
			width:      5,
			wantCursor: Point{X: 4, Y: 0},
			wantRows:   1,
		},
		"inside a full row": {
			text:       "abcde",
			cursor:     2,
			width:      5,
			wantCursor: Point{X: 2, Y: 0},
			wantRows:   1,
		},
		"after a wide grapheme wider than the window": {
			text:       "世",
			cursor:     1,
			width:      1,
			wantCursor: Point{X: 0, Y: 1},
			wantRows:   2,
		},
		"end of a second full row": {
			text:       "abcdef",
			cursor:     6,
			width:      3,
			wantCursor: Point{X: 0, Y: 2},
			wantRows:   3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewMemoryBuffer(tt.text)
			buf.SetCursorPosition(tt.cursor)
			w := NewWindow(NewBufferControl(buf), WithWrapLines())
			l, scr, _ := render(t, w, tt.width, 3)

			info, _ := l.RenderInfo(w)
			if info.Cursor == nil {
				t.Fatalf("Cursor = nil, want %v", tt.wantCursor)
			}
			if *info.Cursor != tt.wantCursor {
				t.Errorf("Cursor = %v, want %v", *info.Cursor, tt.wantCursor)
			}
			if info.TotalRows != tt.wantRows {
				t.Errorf("TotalRows = %d, want %d", info.TotalRows, tt.wantRows)
			}
			if got, ok := scr.Cursor(); !ok || got != tt.wantCursor {
				t.Errorf("screen Cursor() = %v, %v, want %v, true", got, ok, tt.wantCursor)
			}
		})
	}
}

func TestWindow_Margins(t *testing.T) {
	w := NewWindow(
		NewTextControl(Plain("abc\nde")),
		WithLeftMargins(NumberedMargin{DisplayTildes: true}),
		WithRightMargins(ScrollbarMargin{}),
	)
	l, scr, _ := render(t, w, 8, 3)

	want := []string{" 1 abc  ", " 2 de   ", "~       "}
	for y, row := range want {
		if got := screenRow(scr, y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}

	info, _ := l.RenderInfo(w)
	if info.ContentRect != NewRect(3, 0, 4, 3) {
		t.Errorf("ContentRect = %v, want (3,0 4x3)", info.ContentRect)
	}
	if s := scr.Cell(1, 0).Style; s != LineNumberStyle {
		t.Errorf("number style = %q, want %q", s, LineNumberStyle)
	}
	if s := scr.Cell(7, 0).Style; s != ScrollbarThumbStyle {
		t.Errorf("scrollbar style = %q, want %q", s, ScrollbarThumbStyle)
	}
}

func TestWindow_MarginsOrderedOutsideIn(t *testing.T) {
	w := NewWindow(
		NewTextControl(Plain("x")),
		WithLeftMargins(PromptMargin{Prompt: Plain("A")}, PromptMargin{Prompt: Plain("B")}),
		WithRightMargins(PromptMargin{Prompt: Plain("C")}, PromptMargin{Prompt: Plain("D")}),
	)
	_, scr, _ := render(t, w, 6, 1)

	if got := screenRow(scr, 0); got != "ABx DC" {
		t.Errorf("row = %q, want %q", got, "ABx DC")
	}
}

func TestWindow_CursorLineAndColorColumns(t *testing.T) {
	buf := NewMemoryBuffer("ab\ncd")
	w := NewWindow(NewBufferControl(buf), WithCursorLine(), WithColorColumns(0))
	_, scr, _ := render(t, w, 4, 2)

	if !scr.Cell(3, 1).Style.Has(string(CursorLineStyle)) {
		t.Errorf("cursor line not highlighted: %q", scr.Cell(3, 1).Style)
	}
	if scr.Cell(3, 0).Style.Has(string(CursorLineStyle)) {
		t.Error("non-cursor line highlighted")
	}
	if !scr.Cell(0, 0).Style.Has(string(ColorColumnStyle)) {
		t.Errorf("color column missing: %q", scr.Cell(0, 0).Style)
	}
}

func TestWindow_CursorOnlyWhenFocusedAndShown(t *testing.T) {
	type tc struct {
		opts    []WindowOption
		control UIControl
		want    bool
	}

	tests := map[string]tc{
		"buffer shows cursor": {
			control: NewBufferControl(NewMemoryBuffer("x")),
			want:    true,
		},
		"always hidden": {
			control: NewBufferControl(NewMemoryBuffer("x")),
			opts:    []WindowOption{WithAlwaysHideCursor()},
		},
		"not focusable": {
			control: NewBufferControl(NewMemoryBuffer("x"), WithBufferFocusable(false)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWindow(tt.control, tt.opts...)
			_, scr, _ := render(t, w, 3, 1)
			if _, ok := scr.Cursor(); ok != tt.want {
				t.Errorf("cursor visible = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestWindow_NoRoom(t *testing.T) {
	w := NewWindow(NewTextControl(Plain("abc")), WithLeftMargins(NumberedMargin{}))
	scr := NewScreen(5, 5)
	ctx := newRenderContext(scr, nil, map[*Window]WindowID{w: 0})

	w.WriteToScreen(ctx, NewRect(0, 0, 2, 5), "")

	info, ok := ctx.RenderInfo(w)
	if !ok {
		t.Fatal("RenderInfo() missing")
	}
	if !info.IsEmpty() {
		t.Errorf("IsEmpty() = false for %v", info.ContentRect)
	}
	if info.Cursor != nil || info.FirstVisibleLine() != -1 {
		t.Errorf("empty info has cursor %v, first line %d", info.Cursor, info.FirstVisibleLine())
	}
	if got := scr.StringTrimmed(); got != "\n\n\n\n" {
		t.Errorf("screen = %q, want blank", got)
	}
}

func TestWindow_PreferredSize(t *testing.T) {
	type tc struct {
		window    *Window
		wantWidth Dimension
	}

	text := NewTextControl(Plain("abcd\nef"))
	tests := map[string]tc{
		"content preference": {
			window:    NewWindow(text),
			wantWidth: D(0, -1, 4, 1),
		},
		"dont extend": {
			window:    NewWindow(text, WithDontExtendWidth()),
			wantWidth: D(0, 4, 4, 1),
		},
		"margins add width": {
			window:    NewWindow(text, WithLeftMargins(NumberedMargin{}), WithDontExtendWidth()),
			wantWidth: D(0, 7, 7, 1),
		},
		"explicit width": {
			window:    NewWindow(text, WithWindowWidth(Exact(2))),
			wantWidth: Exact(2),
		},
		"no preference": {
			window:    NewWindow(NewDummyControl()),
			wantWidth: Weighted(1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.window.PreferredWidth(80); got != tt.wantWidth {
				t.Errorf("PreferredWidth(80) = %+v, want %+v", got, tt.wantWidth)
			}
		})
	}

	if got := NewWindow(text, WithDontExtendHeight()).PreferredHeight(10, 10); got != D(0, 2, 2, 1) {
		t.Errorf("PreferredHeight() = %+v, want %+v", got, D(0, 2, 2, 1))
	}
}

func TestWindowRenderInfo_Scrollbar(t *testing.T) {
	type tc struct {
		total, scroll, height int
		wantSize, wantOffset  int
	}

	tests := map[string]tc{
		"fits":          {total: 5, scroll: 0, height: 10, wantSize: 10, wantOffset: 0},
		"top":           {total: 100, scroll: 0, height: 20, wantSize: 4, wantOffset: 0},
		"middle":        {total: 100, scroll: 31, height: 20, wantSize: 4, wantOffset: 6},
		"bottom":        {total: 100, scroll: 80, height: 20, wantSize: 4, wantOffset: 16},
		"tiny thumb":    {total: 1000, scroll: 10, height: 5, wantSize: 1, wantOffset: 0},
		"empty content": {total: 0, scroll: 0, height: 4, wantSize: 4, wantOffset: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			info := &WindowRenderInfo{
				ContentRect:    NewRect(0, 0, 10, tt.height),
				TotalRows:      tt.total,
				VerticalScroll: tt.scroll,
			}
			if got := info.ThumbSize(tt.height); got != tt.wantSize {
				t.Errorf("ThumbSize() = %d, want %d", got, tt.wantSize)
			}
			if got := info.ThumbOffset(tt.height); got != tt.wantOffset {
				t.Errorf("ThumbOffset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

package panes

import (
	"fmt"
	"strconv"
	"strings"
)

// Margin draws an auxiliary column beside a window's content, such as line
// numbers or a scrollbar. The set of margins is closed: [NumberedMargin],
// [ScrollbarMargin], [ConditionalMargin] and [PromptMargin].
type Margin interface {
	// Width returns the number of columns the margin needs. content
	// creates the window's content on demand.
	Width(content func() *UIContent) int

	// Render returns the margin text, one line per row of the window.
	Render(info *WindowRenderInfo, width, height int) FormattedText

	margin()
}

// Margin style tags.
const (
	LineNumberStyle        Style = "class:line-number"
	CurrentLineNumberStyle Style = "class:line-number.current"
	TildeStyle             Style = "class:tilde"
	ScrollbarStyle         Style = "class:scrollbar.background"
	ScrollbarThumbStyle    Style = "class:scrollbar.button"
	ScrollbarArrowStyle    Style = "class:scrollbar.arrow"
	PromptStyle            Style = "class:prompt"
)

// NumberedMargin shows line numbers. Relative numbers count from the
// cursor line. DisplayTildes marks rows below the content with "~".
type NumberedMargin struct {
	Relative      bool
	DisplayTildes bool
}

func (m NumberedMargin) Width(content func() *UIContent) int {
	return max(3, len(strconv.Itoa(content().SourceLineCount()))+1)
}

func (m NumberedMargin) Render(info *WindowRenderInfo, width, height int) FormattedText {
	current := -1
	if info.ContentCursor != nil {
		current = info.CursorLine
	}

	var out FormattedText
	for y := 0; y < height; y++ {
		if y > 0 {
			out = append(out, Fragment{Text: "\n"})
		}
		if y >= len(info.VisibleRows) {
			continue
		}
		row := info.VisibleRows[y]
		switch {
		case row.Line < 0:
			if m.DisplayTildes && y >= info.TotalRows-info.VerticalScroll {
				out = append(out, Fragment{Style: TildeStyle, Text: "~"})
			}
		case row.Continuation:
		case row.Line == current:
			n := row.Line + 1
			if m.Relative {
				// The cursor line keeps its absolute number, left aligned.
				out = append(out, Fragment{Style: CurrentLineNumberStyle, Text: fmt.Sprintf("%-*d", width-1, n)})
			} else {
				out = append(out, Fragment{Style: CurrentLineNumberStyle, Text: fmt.Sprintf("%*d", width-1, n)})
			}
		default:
			n := row.Line + 1
			if m.Relative && current >= 0 {
				n = abs(row.Line - current)
			}
			out = append(out, Fragment{Style: LineNumberStyle, Text: fmt.Sprintf("%*d", width-1, n)})
		}
	}
	return out
}

func (NumberedMargin) margin() {}

// ScrollbarMargin draws a one column scrollbar. With DisplayArrows the first
// and last rows hold UpArrow and DownArrow ("^" and "v" when unset).
type ScrollbarMargin struct {
	DisplayArrows bool
	UpArrow       string
	DownArrow     string
}

func (m ScrollbarMargin) Width(func() *UIContent) int {
	return 1
}

func (m ScrollbarMargin) Render(info *WindowRenderInfo, width, height int) FormattedText {
	track := height
	if m.DisplayArrows {
		track -= 2
	}
	if track < 0 {
		return nil
	}
	up, down := m.UpArrow, m.DownArrow
	if up == "" {
		up = "^"
	}
	if down == "" {
		down = "v"
	}

	size := info.ThumbSize(track)
	offset := info.ThumbOffset(track)

	lines := make([]FormattedText, 0, height)
	if m.DisplayArrows {
		lines = append(lines, Styled(ScrollbarArrowStyle, up))
	}
	for i := 0; i < track; i++ {
		if i >= offset && i < offset+size {
			lines = append(lines, Styled(ScrollbarThumbStyle, " "))
		} else {
			lines = append(lines, Styled(ScrollbarStyle, " "))
		}
	}
	if m.DisplayArrows {
		lines = append(lines, Styled(ScrollbarArrowStyle, down))
	}
	return joinLines(lines)
}

func (ScrollbarMargin) margin() {}

// ConditionalMargin shows Margin only while Filter returns true. Filter is
// evaluated on every render.
type ConditionalMargin struct {
	Margin Margin
	Filter func() bool
}

func (m ConditionalMargin) visible() bool {
	return m.Margin != nil && (m.Filter == nil || m.Filter())
}

func (m ConditionalMargin) Width(content func() *UIContent) int {
	if !m.visible() {
		return 0
	}
	return m.Margin.Width(content)
}

func (m ConditionalMargin) Render(info *WindowRenderInfo, width, height int) FormattedText {
	if !m.visible() || width == 0 {
		return nil
	}
	return m.Margin.Render(info, width, height)
}

func (ConditionalMargin) margin() {}

// PromptMargin shows Prompt before the first line and Continuation before
// wrapped or later lines. Continuation defaults to blanks as wide as the
// prompt.
type PromptMargin struct {
	Prompt       FormattedText
	Continuation FormattedText
}

func (m PromptMargin) Width(func() *UIContent) int {
	return max(m.Prompt.Width(), m.Continuation.Width())
}

func (m PromptMargin) Render(info *WindowRenderInfo, width, height int) FormattedText {
	cont := m.Continuation
	if cont == nil {
		cont = Styled(PromptStyle, strings.Repeat(" ", m.Prompt.Width()))
	}

	lines := make([]FormattedText, 0, height)
	for y := 0; y < height && y < len(info.VisibleRows); y++ {
		row := info.VisibleRows[y]
		switch {
		case row.Line == 0 && !row.Continuation:
			lines = append(lines, m.Prompt)
		case row.Line >= 0:
			lines = append(lines, cont)
		default:
			lines = append(lines, nil)
		}
	}
	return joinLines(lines)
}

func (PromptMargin) margin() {}

// joinLines joins lines with newline fragments.
func joinLines(lines []FormattedText) FormattedText {
	var out FormattedText
	for i, line := range lines {
		if i > 0 {
			out = append(out, Fragment{Text: "\n"})
		}
		out = append(out, line...)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

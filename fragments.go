package panes

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Fragment is a run of text drawn with one style.
type Fragment struct {
	Style Style
	Text  string
}

// FormattedText is an ordered list of styled fragments. It may contain
// newlines; controls split it into lines with [FormattedText.SplitLines].
type FormattedText []Fragment

// TextSource produces formatted text. Controls call it on every render, so
// it may derive its result from application state.
type TextSource func() FormattedText

// Plain wraps an unstyled string.
func Plain(s string) FormattedText {
	if s == "" {
		return nil
	}
	return FormattedText{{Text: s}}
}

// Styled wraps a string drawn with one style.
func Styled(style Style, s string) FormattedText {
	return FormattedText{{Style: style, Text: s}}
}

// StaticText returns a source that always yields ft.
func StaticText(ft FormattedText) TextSource {
	return func() FormattedText { return ft }
}

// Text returns the concatenated text of all fragments.
func (ft FormattedText) Text() string {
	var sb strings.Builder
	for _, f := range ft {
		if f.Style.isMarker() {
			continue
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Width returns the display width of the text in cells. Newlines do not
// count; use SplitLines first for multi-line text.
func (ft FormattedText) Width() int {
	w := 0
	for _, f := range ft {
		if f.Style.isMarker() {
			continue
		}
		w += StringWidth(f.Text)
	}
	return w
}

// SplitLines splits the text on newlines. Styles carry over into every line
// a fragment spans. A trailing newline yields a trailing empty line.
func (ft FormattedText) SplitLines() []FormattedText {
	lines := []FormattedText{nil}
	for _, f := range ft {
		parts := strings.Split(f.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" || f.Style.isMarker() {
				last := len(lines) - 1
				lines[last] = append(lines[last], Fragment{Style: f.Style, Text: part})
			}
		}
	}
	return lines
}

// Join concatenates formatted texts.
func Join(parts ...FormattedText) FormattedText {
	var out FormattedText
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// glyph is one grapheme of a line together with its style and width.
type glyph struct {
	style Style
	text  string
	width int
}

// glyphs explodes a single line into graphemes. Marker fragments and
// line breaks are dropped; tabs become a single space.
func (ft FormattedText) glyphs() []glyph {
	out := make([]glyph, 0, len(ft))
	for _, f := range ft {
		if f.Style.isMarker() {
			continue
		}
		text := f.Text
		state := -1
		var g string
		for len(text) > 0 {
			g, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
			if g == "\n" || g == "\r\n" || g == "\r" {
				continue
			}
			if g == "\t" {
				g = " "
			}
			out = append(out, glyph{style: f.Style, text: g, width: GraphemeWidth(g)})
		}
	}
	return out
}

// markerColumn returns the display column of the first fragment carrying
// marker, if any.
func (ft FormattedText) markerColumn(marker Style) (int, bool) {
	col := 0
	for _, f := range ft {
		if strings.Contains(string(f.Style), string(marker)) {
			return col, true
		}
		if f.Style.isMarker() {
			continue
		}
		col += StringWidth(f.Text)
	}
	return 0, false
}

// glyphText merges consecutive glyphs of the same style back into fragments.
func glyphText(gs []glyph) FormattedText {
	var out FormattedText
	var sb strings.Builder
	var style Style
	for i, g := range gs {
		if i > 0 && g.style != style {
			out = append(out, Fragment{Style: style, Text: sb.String()})
			sb.Reset()
		}
		style = g.style
		sb.WriteString(g.text)
	}
	if sb.Len() > 0 {
		out = append(out, Fragment{Style: style, Text: sb.String()})
	}
	return out
}

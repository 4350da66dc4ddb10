package panes

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Chars returns the box-drawing characters for this border style. Unknown
// styles and BorderNone draw spaces.
func (b BorderStyle) Chars() BorderChars {
	if chars, ok := borderChars[b]; ok {
		return chars
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// ParseBorderStyle maps a name such as "rounded" to a BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	switch name {
	case "", "none":
		return BorderNone, true
	case "single":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "thick":
		return BorderThick, true
	}
	return BorderNone, false
}

// DrawBox draws a box border on the screen at the specified rectangle.
// If the rectangle is smaller than 2x2, the function does nothing.
func DrawBox(scr *Screen, rect Rect, border BorderStyle, style Style) {
	if border == BorderNone {
		return
	}

	// Clip rect to screen bounds
	rect = rect.Intersect(scr.Rect())
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	// Draw corners
	scr.SetGrapheme(left, top, string(chars.TopLeft), style)
	scr.SetGrapheme(right, top, string(chars.TopRight), style)
	scr.SetGrapheme(left, bottom, string(chars.BottomLeft), style)
	scr.SetGrapheme(right, bottom, string(chars.BottomRight), style)

	// Draw top and bottom edges
	for x := left + 1; x < right; x++ {
		scr.SetGrapheme(x, top, string(chars.Top), style)
		scr.SetGrapheme(x, bottom, string(chars.Bottom), style)
	}

	// Draw left and right edges
	for y := top + 1; y < bottom; y++ {
		scr.SetGrapheme(left, y, string(chars.Left), style)
		scr.SetGrapheme(right, y, string(chars.Right), style)
	}
}

// DrawBoxWithTitle draws a box border with a title in the top border.
// The title is centered in the top border and truncated if too long.
func DrawBoxWithTitle(scr *Screen, rect Rect, border BorderStyle, title FormattedText, style Style) {
	DrawBox(scr, rect, border, style)
	if border == BorderNone || len(title) == 0 {
		return
	}

	// Leave the corners alone
	availableWidth := rect.Width - 2
	if availableWidth <= 0 || rect.Height < 2 {
		return
	}

	gs := title.glyphs()
	titleWidth := 0
	n := 0
	for _, g := range gs {
		if titleWidth+g.width > availableWidth {
			break
		}
		titleWidth += g.width
		n++
	}
	if n == 0 {
		return
	}

	x := rect.X + 1 + (availableWidth-titleWidth)/2
	for _, g := range gs[:n] {
		x += scr.SetGrapheme(x, rect.Y, g.text, style.Join(g.style))
	}
}

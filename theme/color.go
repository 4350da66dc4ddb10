package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault is the terminal's own color.
	ColorDefault ColorType = iota
	// ColorANSI is an entry of the 256-color palette.
	ColorANSI
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ ColorType
	// For ANSI, r holds the palette index.
	r, g, b uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a palette color.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Standard palette entries.
var (
	Black         = ANSIColor(0)
	Red           = ANSIColor(1)
	Green         = ANSIColor(2)
	Yellow        = ANSIColor(3)
	Blue          = ANSIColor(4)
	Magenta       = ANSIColor(5)
	Cyan          = ANSIColor(6)
	White         = ANSIColor(7)
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

var namedColors = map[string]Color{
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"gray":          BrightBlack,
	"grey":          BrightBlack,
	"brightblack":   BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	if len(digits) == 3 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ParseColor accepts a hex color, a palette index ("208"), a color name
// ("red", "ansired", "brightblue") or "default".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "" || name == "default":
		return DefaultColor(), nil
	case strings.HasPrefix(name, "#"):
		return HexColor(name)
	}
	if n, err := strconv.ParseUint(name, 10, 8); err == nil {
		return ANSIColor(uint8(n)), nil
	}
	if c, ok := namedColors[strings.TrimPrefix(name, "ansi")]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// Type returns how the color is represented.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. It is zero for non-palette colors.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		return 0
	}
	return c.r
}

// RGB returns the color components, approximating palette entries.
// The default color reports black.
func (c Color) RGB() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		return paletteRGB(c.r)
	}
	return 0, 0, 0
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ToANSI approximates an RGB color with the nearest entry of the 6x6x6 cube
// or the grayscale ramp. Other colors are returned unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b
	if r == g && g == b {
		switch {
		case r < 8:
			return ANSIColor(16)
		case r > 248:
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}
	return ANSIColor(uint8(16 + 36*(int(r)*5/255) + 6*(int(g)*5/255) + int(b)*5/255))
}

// Typical terminal values for the first sixteen palette entries.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

func paletteRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		rgb := ansi16RGB[idx]
		return rgb[0], rgb[1], rgb[2]
	case idx < 232:
		idx -= 16
		level := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return level(idx / 36), level(idx % 36 / 6), level(idx % 6)
	default:
		gray := 8 + (idx-232)*10
		return gray, gray, gray
	}
}

package theme

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	// AttrBold makes text bold or bright.
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

var attrNames = map[string]Attr{
	"bold":      AttrBold,
	"dim":       AttrDim,
	"italic":    AttrItalic,
	"underline": AttrUnderline,
	"blink":     AttrBlink,
	"reverse":   AttrReverse,
	"strike":    AttrStrikethrough,
}

// Style is a resolved style: two colors and a set of attributes.
// The zero value draws with the terminal defaults.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// HasAttr reports whether all of the given attributes are set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// Equal reports whether both styles draw the same way.
func (s Style) Equal(other Style) bool {
	return s == other
}

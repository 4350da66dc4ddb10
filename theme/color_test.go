package theme

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	type tc struct {
		in      string
		want    Color
		wantErr bool
	}

	tests := map[string]tc{
		"six digit hex":   {in: "#ff8000", want: RGBColor(255, 128, 0)},
		"three digit hex": {in: "#F80", want: RGBColor(255, 136, 0)},
		"palette index":   {in: "123", want: ANSIColor(123)},
		"name":            {in: "magenta", want: Magenta},
		"ansi name":       {in: "ansibrightcyan", want: BrightCyan},
		"mixed case":      {in: "Gray", want: BrightBlack},
		"default":         {in: "default", want: DefaultColor()},
		"empty":           {in: "", want: DefaultColor()},
		"bad hex":         {in: "#12345", wantErr: true},
		"bad hex digits":  {in: "#gg0000", wantErr: true},
		"index too large": {in: "256", wantErr: true},
		"unknown name":    {in: "chartreuse", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_ToANSI(t *testing.T) {
	type tc struct {
		in   Color
		want uint8
	}

	tests := map[string]tc{
		"pure red":     {in: RGBColor(255, 0, 0), want: 196},
		"pure blue":    {in: RGBColor(0, 0, 255), want: 21},
		"near black":   {in: RGBColor(3, 3, 3), want: 16},
		"near white":   {in: RGBColor(250, 250, 250), want: 231},
		"mid gray":     {in: RGBColor(128, 128, 128), want: 244},
		"already ansi": {in: ANSIColor(42), want: 42},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.in.ToANSI().ANSI(); got != tt.want {
				t.Errorf("ToANSI() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColor_RGBAndHex(t *testing.T) {
	type tc struct {
		in      Color
		wantHex string
	}

	tests := map[string]tc{
		"default":       {in: DefaultColor(), wantHex: ""},
		"rgb":           {in: RGBColor(0x12, 0x34, 0x56), wantHex: "#123456"},
		"basic palette": {in: Red, wantHex: "#cd3131"},
		"color cube":    {in: ANSIColor(196), wantHex: "#ff0000"},
		"gray ramp":     {in: ANSIColor(232), wantHex: "#080808"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.in.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", got, tt.wantHex)
			}
		})
	}
}

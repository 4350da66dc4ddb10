package theme

import (
	"testing"

	"github.com/grindlemire/go-panes"
)

func TestTheme_Resolve(t *testing.T) {
	type tc struct {
		tags panes.Style
		want Style
	}

	th := New(map[string]string{
		"menu":          "bg:#303030 fg:white",
		"menu.selected": "bg:blue bold",
		"alert":         "fg:red underline",
		"loop":          "class:loop bold",
	})

	tests := map[string]tc{
		"empty": {
			tags: "",
			want: Style{},
		},
		"plain colors": {
			tags: "fg:#ff0000 bg:208",
			want: Style{Fg: RGBColor(255, 0, 0), Bg: ANSIColor(208)},
		},
		"bare color is the foreground": {
			tags: "#0f0",
			want: Style{Fg: RGBColor(0, 255, 0)},
		},
		"class": {
			tags: "class:menu",
			want: Style{Fg: White, Bg: RGBColor(0x30, 0x30, 0x30)},
		},
		"dotted class applies its parent first": {
			tags: "class:menu.selected",
			want: Style{Fg: White, Bg: Blue, Attrs: AttrBold},
		},
		"comma separated classes": {
			tags: "class:menu,alert",
			want: Style{Fg: Red, Bg: RGBColor(0x30, 0x30, 0x30), Attrs: AttrUnderline},
		},
		"later tags win": {
			tags: "class:menu.selected fg:ansigreen nobold",
			want: Style{Fg: Green, Bg: Blue},
		},
		"noinherit resets": {
			tags: "class:alert noinherit italic",
			want: Style{Attrs: AttrItalic},
		},
		"unknown tags and markers are ignored": {
			tags: "class:nothing [SetCursorPosition] fg:nope shiny",
			want: Style{},
		},
		"self referencing class terminates": {
			tags: "class:loop",
			want: Style{Attrs: AttrBold},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := th.Resolve(tt.tags); got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestTheme_ResolveCoreClasses(t *testing.T) {
	th := Default()

	selected := th.Resolve(panes.MenuSelectedStyle)
	if !selected.HasAttr(AttrBold) || selected.Bg.IsDefault() {
		t.Errorf("Resolve(menu.selected) = %+v, want bold with a background", selected)
	}
	if got := th.Resolve(panes.ScrollbarThumbStyle); got.Bg == th.Resolve(panes.ScrollbarStyle).Bg {
		t.Error("scrollbar thumb is indistinguishable from its background")
	}
	if got := th.Resolve(panes.CursorLineStyle); !got.HasAttr(AttrUnderline) {
		t.Errorf("Resolve(cursor-line) = %+v, want underline", got)
	}
}

func TestTheme_Extend(t *testing.T) {
	base := New(map[string]string{"a": "bold", "b": "italic"})
	ext := base.Extend(map[string]string{"b": "underline"})

	if got := ext.Resolve("class:a class:b"); got.Attrs != AttrBold|AttrUnderline {
		t.Errorf("extended Attrs = %v, want bold|underline", got.Attrs)
	}
	if got := base.Resolve("class:b"); got.Attrs != AttrItalic {
		t.Errorf("base Attrs = %v, want italic", got.Attrs)
	}
}

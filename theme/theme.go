// Package theme turns the opaque style tags carried by a panes.Screen into
// concrete colors and attributes.
//
// A tag list is read left to right and later tags win:
//
//	class:menu.selected   apply the rules for "menu", then "menu.selected"
//	fg:#ff0000 bg:blue    set a color (hex, palette index or name)
//	#00ff00 ansired       a bare color sets the foreground
//	bold nobold           set or clear an attribute
//	noinherit             reset to the default style
//
// Unknown tags are ignored, so cursor and menu markers pass through harmlessly.
package theme

import (
	"strings"
	"sync"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/internal/debug"
)

// maxDepth bounds how deeply class rules may refer to other classes.
const maxDepth = 8

// Theme maps class names to tag lists.
type Theme struct {
	rules map[string]panes.Style

	mu    sync.Mutex
	cache map[panes.Style]Style
}

// New creates a theme from class rules such as {"menu": "bg:#303030"}.
func New(rules map[string]string) *Theme {
	t := &Theme{
		rules: make(map[string]panes.Style, len(rules)),
		cache: make(map[panes.Style]Style),
	}
	for class, tags := range rules {
		t.rules[class] = panes.Style(tags)
	}
	return t
}

// Default returns the theme used when an application supplies none.
func Default() *Theme {
	return New(map[string]string{
		"menu":                 "bg:#303030 fg:#d0d0d0",
		"menu.selected":        "bg:#5f87af fg:#ffffff bold",
		"menu.meta":            "fg:#8a8a8a",
		"scrollbar.background": "bg:#444444",
		"scrollbar.button":     "bg:#bcbcbc",
		"scrollbar.arrow":      "fg:#bcbcbc",
		"line-number":          "fg:#767676",
		"line-number.current":  "fg:#ffaf00 bold",
		"tilde":                "fg:#5f5fff",
		"cursor-line":          "underline",
		"color-column":         "bg:#3a3a3a",
		"frame.border":         "fg:#8a8a8a",
		"frame.title":          "bold",
		"prompt":               "fg:#5fd700 bold",
	})
}

// Extend returns a copy of t with extra rules layered on top.
func (t *Theme) Extend(rules map[string]string) *Theme {
	merged := make(map[string]string, len(t.rules)+len(rules))
	for class, tags := range t.rules {
		merged[class] = string(tags)
	}
	for class, tags := range rules {
		merged[class] = tags
	}
	return New(merged)
}

// Resolve converts a tag list into a concrete style. Results are cached per
// tag list; a Theme is safe for concurrent use.
func (t *Theme) Resolve(tags panes.Style) Style {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.cache[tags]; ok {
		return s
	}
	var s Style
	t.apply(&s, tags, 0)
	t.cache[tags] = s
	return s
}

func (t *Theme) apply(s *Style, tags panes.Style, depth int) {
	if depth > maxDepth {
		debug.Log("theme: class rules nested deeper than %d at %q", maxDepth, tags)
		return
	}
	for _, tag := range strings.Fields(string(tags)) {
		t.applyTag(s, tag, depth)
	}
}

func (t *Theme) applyTag(s *Style, tag string, depth int) {
	key, value, hasValue := strings.Cut(tag, ":")
	if hasValue {
		switch key {
		case "class":
			for _, class := range strings.Split(value, ",") {
				t.applyClass(s, class, depth)
			}
		case "fg":
			if c, err := ParseColor(value); err == nil {
				s.Fg = c
			}
		case "bg":
			if c, err := ParseColor(value); err == nil {
				s.Bg = c
			}
		}
		return
	}

	if tag == "noinherit" {
		*s = Style{}
		return
	}
	if a, ok := attrNames[tag]; ok {
		s.Attrs |= a
		return
	}
	if a, ok := attrNames[strings.TrimPrefix(tag, "no")]; ok && strings.HasPrefix(tag, "no") {
		s.Attrs &^= a
		return
	}
	if c, err := ParseColor(tag); err == nil {
		s.Fg = c
	}
}

// applyClass applies "a", then "a.b", then "a.b.c" for a dotted class name.
func (t *Theme) applyClass(s *Style, class string, depth int) {
	for i := 0; i <= len(class); i++ {
		if i < len(class) && class[i] != '.' {
			continue
		}
		if tags, ok := t.rules[class[:i]]; ok {
			t.apply(s, tags, depth+1)
		}
	}
}

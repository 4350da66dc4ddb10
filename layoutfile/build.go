package layoutfile

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-panes"
	"github.com/grindlemire/go-panes/internal/debug"
	"github.com/grindlemire/go-panes/theme"
)

// Layout is a built layout file: the validated panes.Layout plus handles on
// the named parts of the tree.
type Layout struct {
	*panes.Layout

	// Theme is the default theme extended with the file's [theme] table.
	Theme *theme.Theme

	windows map[string]*panes.Window
	buffers map[string]*panes.MemoryBuffer
	menus   map[string]*menuState
	flags   map[string]bool
}

type menuState struct {
	items    []panes.MenuItem
	selected int
}

// Window returns the window declared with the given name.
func (l *Layout) Window(name string) (*panes.Window, bool) {
	w, ok := l.windows[name]
	return w, ok
}

// WindowNames returns the declared window names in sorted order.
func (l *Layout) WindowNames() []string {
	return slices.Sorted(maps.Keys(l.windows))
}

// Buffer returns the text buffer of a named buffer window.
func (l *Layout) Buffer(name string) (*panes.MemoryBuffer, bool) {
	b, ok := l.buffers[name]
	return b, ok
}

// Flag returns the value of a flag tested by conditional nodes.
func (l *Layout) Flag(name string) bool {
	return l.flags[name]
}

// SetFlag changes a flag; the next render shows or hides the nodes that
// test it.
func (l *Layout) SetFlag(name string, on bool) {
	l.flags[name] = on
}

// SetMenu replaces the items and selection of a named menu. An empty item
// list hides the menu.
func (l *Layout) SetMenu(name string, items []panes.MenuItem, selected int) bool {
	m, ok := l.menus[name]
	if ok {
		m.items, m.selected = items, selected
	}
	return ok
}

// Option configures how a file is built.
type Option func(*config)

type config struct {
	conditions map[string]func() bool
}

// WithCondition makes conditional nodes testing name call fn instead of
// reading the flag of that name.
func WithCondition(name string, fn func() bool) Option {
	return func(c *config) { c.conditions[name] = fn }
}

// Load reads and builds the layout file at path.
func Load(path string, opts ...Option) (*Layout, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	l, err := Build(&f, opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	return l, nil
}

// Parse builds a layout from TOML text.
func Parse(data string, opts ...Option) (*Layout, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return Build(&f, opts...)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// Build turns a decoded file into a layout. Structural problems are
// reported as *panes.InvalidLayoutError with a path such as
// "root.children[1].body".
func Build(f *File, opts ...Option) (*Layout, error) {
	cfg := config{conditions: map[string]func() bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{
		cfg: cfg,
		out: &Layout{
			Theme:   theme.Default().Extend(f.Theme),
			windows: map[string]*panes.Window{},
			buffers: map[string]*panes.MemoryBuffer{},
			menus:   map[string]*menuState{},
			flags:   maps.Clone(f.Flags),
		},
		byNode: map[*Node]*panes.Window{},
	}
	if b.out.flags == nil {
		b.out.flags = map[string]bool{}
	}

	// Windows are created first so floats can attach to any of them.
	if err := b.collect(&f.Root, "root"); err != nil {
		return nil, err
	}
	root, err := b.build(&f.Root, "root")
	if err != nil {
		return nil, err
	}

	var layoutOpts []panes.LayoutOption
	if f.Focus != "" {
		w, ok := b.out.windows[f.Focus]
		if !ok {
			return nil, invalid("focus", "no window named %q", f.Focus)
		}
		layoutOpts = append(layoutOpts, panes.WithFocus(w))
	}

	l, err := panes.NewLayout(root, layoutOpts...)
	if err != nil {
		return nil, err
	}
	b.out.Layout = l
	debug.Log("layoutfile: built %d windows (%d named)", len(l.Windows()), len(b.out.windows))
	return b.out, nil
}

func invalid(path, format string, args ...any) *panes.InvalidLayoutError {
	return &panes.InvalidLayoutError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

type builder struct {
	cfg    config
	out    *Layout
	byNode map[*Node]*panes.Window
}

// collect creates every window node of the tree.
func (b *builder) collect(n *Node, path string) error {
	switch n.Type {
	case "window":
		w, err := b.window(n, path)
		if err != nil {
			return err
		}
		b.byNode[n] = w
		if n.Name != "" {
			if _, dup := b.out.windows[n.Name]; dup {
				return invalid(path, "duplicate window name %q", n.Name)
			}
			b.out.windows[n.Name] = w
		}
	}

	for i := range n.Children {
		if err := b.collect(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	if n.Body != nil {
		if err := b.collect(n.Body, path+".body"); err != nil {
			return err
		}
	}
	if n.Content != nil {
		if err := b.collect(n.Content, path+".content"); err != nil {
			return err
		}
	}
	for i := range n.Floats {
		if err := b.collect(&n.Floats[i].Content, fmt.Sprintf("%s.floats[%d].content", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) build(n *Node, path string) (panes.Container, error) {
	switch n.Type {
	case "window":
		return b.byNode[n], nil
	case "hsplit", "vsplit":
		return b.split(n, path)
	case "frame":
		return b.frame(n, path)
	case "conditional":
		return b.conditional(n, path)
	case "floats":
		return b.floats(n, path)
	case "menu":
		return b.menu(n), nil
	case "":
		return nil, invalid(path, "missing node type")
	default:
		return nil, invalid(path, "unknown node type %q", n.Type)
	}
}

func (b *builder) children(n *Node, path string) ([]panes.Container, error) {
	out := make([]panes.Container, len(n.Children))
	for i := range n.Children {
		c, err := b.build(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

var splitAligns = map[string]panes.SplitAlign{
	"":        panes.SplitStart,
	"start":   panes.SplitStart,
	"center":  panes.SplitCenter,
	"end":     panes.SplitEnd,
	"justify": panes.SplitJustify,
}

func (b *builder) split(n *Node, path string) (panes.Container, error) {
	children, err := b.children(n, path)
	if err != nil {
		return nil, err
	}
	align, ok := splitAligns[n.Align]
	if !ok {
		return nil, invalid(path, "unknown split align %q", n.Align)
	}

	opts := []panes.SplitOption{
		panes.WithSplitAlign(align),
		panes.WithPadding(n.Padding),
		panes.WithSplitStyle(panes.Style(n.Style)),
		panes.WithPaddingStyle(panes.Style(n.PaddingStyle)),
	}
	if n.PaddingChar != "" {
		opts = append(opts, panes.WithPaddingChar(n.PaddingChar))
	}
	if n.Width != nil {
		opts = append(opts, panes.WithSplitWidth(n.Width.Dimension()))
	}
	if n.Height != nil {
		opts = append(opts, panes.WithSplitHeight(n.Height.Dimension()))
	}

	if n.Type == "hsplit" {
		return panes.NewHSplit(children, opts...), nil
	}
	return panes.NewVSplit(children, opts...), nil
}

func (b *builder) body(n *Node, path string) (panes.Container, error) {
	if n.Body == nil {
		return nil, invalid(path, "%s node needs a body", n.Type)
	}
	return b.build(n.Body, path+".body")
}

func (b *builder) frame(n *Node, path string) (panes.Container, error) {
	body, err := b.body(n, path)
	if err != nil {
		return nil, err
	}
	border, ok := panes.ParseBorderStyle(n.Border)
	if !ok {
		return nil, invalid(path, "unknown border %q", n.Border)
	}
	if n.Border == "" {
		border = panes.BorderSingle
	}

	opts := []panes.FrameOption{panes.WithFrameBorder(border)}
	if n.Title != "" {
		opts = append(opts, panes.WithFrameTitle(panes.Styled("class:frame.title", " "+n.Title+" ")))
	}
	if n.Style != "" {
		opts = append(opts, panes.WithFrameStyle(panes.Style(n.Style)))
	}
	return panes.NewFrame(body, opts...), nil
}

func (b *builder) conditional(n *Node, path string) (panes.Container, error) {
	body, err := b.body(n, path)
	if err != nil {
		return nil, err
	}
	if n.When == "" {
		return nil, invalid(path, "conditional node needs a when flag")
	}
	name := n.When
	negate := strings.HasPrefix(name, "!")
	name = strings.TrimPrefix(name, "!")

	test, ok := b.cfg.conditions[name]
	if !ok {
		test = func() bool { return b.out.flags[name] }
	}
	return panes.NewConditionalContainer(body, func() bool { return test() != negate }), nil
}

func (b *builder) floats(n *Node, path string) (panes.Container, error) {
	if n.Content == nil {
		return nil, invalid(path, "floats node needs content")
	}
	content, err := b.build(n.Content, path+".content")
	if err != nil {
		return nil, err
	}

	floats := make([]*panes.Float, len(n.Floats))
	for i := range n.Floats {
		fn := &n.Floats[i]
		fpath := fmt.Sprintf("%s.floats[%d]", path, i)
		body, err := b.build(&fn.Content, fpath+".content")
		if err != nil {
			return nil, err
		}
		opts, err := b.floatOptions(fn, fpath)
		if err != nil {
			return nil, err
		}
		floats[i] = panes.NewFloat(body, opts...)
	}
	return panes.NewFloatContainer(content, floats...), nil
}

func (b *builder) floatOptions(fn *FloatNode, path string) ([]panes.FloatOption, error) {
	var opts []panes.FloatOption
	edges := []struct {
		v   *int
		opt func(int) panes.FloatOption
	}{
		{fn.Left, panes.WithFloatLeft},
		{fn.Right, panes.WithFloatRight},
		{fn.Top, panes.WithFloatTop},
		{fn.Bottom, panes.WithFloatBottom},
		{fn.Width, panes.WithFloatWidth},
		{fn.Height, panes.WithFloatHeight},
	}
	for _, e := range edges {
		if e.v != nil {
			opts = append(opts, e.opt(*e.v))
		}
	}
	if fn.XCursor {
		opts = append(opts, panes.WithXCursor())
	}
	if fn.YCursor {
		opts = append(opts, panes.WithYCursor())
	}
	if fn.AllowCover {
		opts = append(opts, panes.WithAllowCoverCursor())
	}
	if fn.Transparent {
		opts = append(opts, panes.WithTransparent())
	}
	if fn.AttachTo != "" {
		w, ok := b.out.windows[fn.AttachTo]
		if !ok {
			return nil, invalid(path, "attach_to names no window: %q", fn.AttachTo)
		}
		opts = append(opts, panes.WithAttachTo(w))
	}
	return opts, nil
}

func (b *builder) menu(n *Node) panes.Container {
	state := &menuState{selected: n.Selected}
	for _, it := range n.Items {
		state.items = append(state.items, panes.MenuItem{Text: it.Text, Meta: it.Meta})
	}
	if n.Name != "" {
		b.out.menus[n.Name] = state
	}

	var opts []panes.CompletionsMenuOption
	if n.MaxHeight > 0 {
		opts = append(opts, panes.WithMenuMaxHeight(n.MaxHeight))
	}
	return panes.NewCompletionsMenu(
		func() []panes.MenuItem { return state.items },
		func() int { return state.selected },
		opts...,
	)
}

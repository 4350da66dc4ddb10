package panes

// ConditionalContainer shows its content only while Filter returns true.
// The filter is evaluated fresh on every query, so toggling visibility
// never changes the tree.
type ConditionalContainer struct {
	content Container
	filter  func() bool
}

// NewConditionalContainer wraps content. A nil filter is always true.
func NewConditionalContainer(content Container, filter func() bool) *ConditionalContainer {
	return &ConditionalContainer{content: content, filter: filter}
}

// Content returns the wrapped container.
func (c *ConditionalContainer) Content() Container {
	return c.content
}

func (c *ConditionalContainer) visible() bool {
	return c.filter == nil || c.filter()
}

// PreferredWidth is the content's width, or zero while hidden.
func (c *ConditionalContainer) PreferredWidth(maxAvailable int) Dimension {
	if !c.visible() {
		return Dimension{}
	}
	return c.content.PreferredWidth(maxAvailable)
}

// PreferredHeight is the content's height, or zero while hidden.
func (c *ConditionalContainer) PreferredHeight(width, maxAvailable int) Dimension {
	if !c.visible() {
		return Dimension{}
	}
	return c.content.PreferredHeight(width, maxAvailable)
}

// WriteToScreen draws the content while visible.
func (c *ConditionalContainer) WriteToScreen(ctx *RenderContext, rect Rect, parentStyle Style) {
	if !c.visible() {
		return
	}
	c.content.WriteToScreen(ctx, rect, parentStyle)
}

// Children returns the content even while hidden.
func (c *ConditionalContainer) Children() []Container {
	return []Container{c.content}
}

func (*ConditionalContainer) container() {}

package ggui

import "image"

// Panel is a container that fills its background with the style's
// background color and composites its children on top.
type Panel struct {
	node
}

var _ Container = (*Panel)(nil)

// NewPanel creates a panel under parent. It panics if parent is nil.
func NewPanel(parent Container, xy image.Point, size Size, opts ...Option) *Panel {
	p := &Panel{node: newNode(parent, xy, size, opts)}
	parent.addChild(p)
	return p
}

// Draw fills the panel background.
func (p *Panel) Draw() {
	p.surface.Fill(p.style.BgColor)
}

// Update redraws the panel.
func (p *Panel) Update(upwards, downwards bool) {
	Redraw(p, upwards, downwards)
}

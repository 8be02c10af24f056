package ggui

import (
	"fmt"
	"image"
)

// Action is the phase of a touch event.
type Action uint8

const (
	// Down is sent when a finger first touches the display.
	Down Action = iota
	// Move is sent while the finger stays on the display.
	Move
	// Up is sent when the finger is lifted.
	Up
)

// String returns the lowercase name of the action.
func (a Action) String() string {
	switch a {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Widget is an element of the retained widget tree. Every widget owns a
// surface of its own size; parents composite their children's surfaces.
type Widget interface {
	// Bounds returns the widget rectangle in its parent's coordinates.
	Bounds() image.Rectangle
	// Surface returns the surface the widget draws its content into.
	Surface() *Surface
	// Parent returns the enclosing container, or nil for the root.
	Parent() Container
	Visible() bool
	SetVisible(visible bool)
	Style() Style

	// Draw renders the widget's own content onto its surface.
	Draw()
	// Update redraws the widget if visible. upwards asks ancestors to
	// redraw too; downwards forces descendants to redraw first.
	Update(upwards, downwards bool)
	// OnTouch handles a touch at xy in the widget's own coordinates.
	OnTouch(xy image.Point, action Action)
	// AbsolutePosition returns the screen position of the widget origin.
	AbsolutePosition() image.Point
}

// Container is a widget with children.
type Container interface {
	Widget
	Children() []Widget
	// Place composites child's surface into the container's surface.
	Place(child Widget)

	addChild(child Widget)
}

// OffsetProvider is implemented by containers whose content is shifted
// by a scroll offset, such as Viewport.
type OffsetProvider interface {
	Offset() image.Point
}

// node is the state shared by all widgets. Concrete widgets embed it and
// add Draw and Update.
type node struct {
	bounds   image.Rectangle
	surface  *Surface
	parent   Container
	style    Style
	visible  bool
	children []Widget

	// capture is the child that received the last Down; it keeps
	// receiving Move and Up until release.
	capture Widget
}

// newNode places a widget of the given size under parent.
// It panics if parent is nil.
func newNode(parent Container, xy image.Point, size Size, opts []Option) node {
	if parent == nil {
		panic(ErrNilParent)
	}
	o := applyOptions(opts)
	style := parent.Style()
	if o.style != nil {
		style = *o.style
	}
	return node{
		bounds:  o.align.Rect(xy, size),
		surface: parent.Surface().NewCompatible(size),
		parent:  parent,
		style:   style,
		visible: true,
	}
}

// Bounds returns the widget rectangle in parent coordinates.
func (n *node) Bounds() image.Rectangle { return n.bounds }

// Surface returns the widget's surface.
func (n *node) Surface() *Surface { return n.surface }

// Parent returns the enclosing container.
func (n *node) Parent() Container { return n.parent }

// Visible reports whether the widget is drawn and receives touches.
func (n *node) Visible() bool { return n.visible }

// SetVisible shows or hides the widget. The change becomes visible on the
// next update of the parent.
func (n *node) SetVisible(visible bool) { n.visible = visible }

// Style returns the widget's style.
func (n *node) Style() Style { return n.style }

// Children returns the widget's children in stacking order, bottom first.
func (n *node) Children() []Widget { return n.children }

func (n *node) addChild(child Widget) {
	n.children = append(n.children, child)
}

// Place copies child's surface into n's surface at the child's bounds.
func (n *node) Place(child Widget) {
	s := child.Surface()
	n.surface.Blit(child.Bounds().Min, s, s.Bounds())
}

// AbsolutePosition returns the parent's absolute position plus the
// widget's offset inside it.
func (n *node) AbsolutePosition() image.Point {
	if n.parent == nil {
		return n.bounds.Min
	}
	return n.parent.AbsolutePosition().Add(n.bounds.Min)
}

// OnTouch forwards the touch to the topmost visible child under xy,
// translated into the child's coordinates. A Down captures that child
// until the matching Up.
func (n *node) OnTouch(xy image.Point, action Action) {
	target := n.capture
	if action == Down || target == nil {
		target = n.childAt(xy)
	}
	switch action {
	case Down:
		n.capture = target
	case Up:
		n.capture = nil
	}
	if target == nil {
		return
	}
	target.OnTouch(xy.Sub(target.Bounds().Min), action)
}

func (n *node) childAt(xy image.Point) Widget {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c.Visible() && xy.In(c.Bounds()) {
			return c
		}
	}
	return nil
}

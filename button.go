package ggui

import "image"

// Button is a filled rectangle with a centered caption. The click
// callback fires when a touch that started on the button is released on it.
type Button struct {
	node
	label   string
	pressed bool
	onClick func()
}

// NewButton creates a button under parent. It panics if parent is nil.
func NewButton(parent Container, xy image.Point, size Size, label string, opts ...Option) *Button {
	b := &Button{node: newNode(parent, xy, size, opts), label: label}
	parent.addChild(b)
	return b
}

// Label returns the caption.
func (b *Button) Label() string {
	return b.label
}

// Pressed reports whether a touch is currently held on the button.
func (b *Button) Pressed() bool {
	return b.pressed
}

// OnClick registers the click callback, replacing any previous one.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// OnTouch tracks the press state and fires the click callback.
func (b *Button) OnTouch(xy image.Point, action Action) {
	inside := xy.In(b.surface.Bounds())
	switch action {
	case Down:
		b.setPressed(inside)
	case Move:
		b.setPressed(inside)
	case Up:
		clicked := b.pressed && inside
		b.setPressed(false)
		if clicked && b.onClick != nil {
			b.onClick()
		}
	}
}

func (b *Button) setPressed(pressed bool) {
	if b.pressed == pressed {
		return
	}
	b.pressed = pressed
	b.Update(true, false)
}

// Draw renders the button face and caption.
func (b *Button) Draw() {
	bg := b.style.ButtonColor
	if b.pressed {
		bg = bg.Lerp(White, 0.3)
	}
	b.surface.Fill(bg)
	drawText(b.surface, b.surface.Bounds(), b.label, Center, b.style.ButtonTextColor)
}

// Update redraws the button.
func (b *Button) Update(upwards, downwards bool) {
	Redraw(b, upwards, downwards)
}

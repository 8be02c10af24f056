package ggui

import "image"

// Label draws a single line of text on the style's background.
type Label struct {
	node
	text      string
	textAlign Align
}

// NewLabel creates a label under parent with the text centered in its
// bounds. It panics if parent is nil.
func NewLabel(parent Container, xy image.Point, size Size, text string, opts ...Option) *Label {
	l := &Label{node: newNode(parent, xy, size, opts), text: text, textAlign: Center}
	parent.addChild(l)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and redraws the label.
func (l *Label) SetText(text string) {
	l.text = text
	l.Update(true, false)
}

// SetTextAlign selects where the text sits inside the label.
func (l *Label) SetTextAlign(a Align) {
	l.textAlign = a
	l.Update(true, false)
}

// Draw renders the text.
func (l *Label) Draw() {
	l.surface.Fill(l.style.BgColor)
	drawText(l.surface, l.surface.Bounds(), l.text, l.textAlign, l.style.FgColor)
}

// Update redraws the label.
func (l *Label) Update(upwards, downwards bool) {
	Redraw(l, upwards, downwards)
}

package ggui

import "image"

// damageSink is implemented by the root of a widget tree to collect the
// screen areas touched by a redraw.
type damageSink interface {
	invalidate(r image.Rectangle)
}

// Redraw is the generic update traversal used by every widget's Update.
//
// If w is visible: with downwards set, w's children update first; then w
// draws its own content, re-places its visible children on top, and is
// placed into its parent. With upwards set the parent is then asked to
// update itself, which carries the change to the root.
func Redraw(w Widget, upwards, downwards bool) {
	if !w.Visible() {
		return
	}
	c, isContainer := w.(Container)
	if isContainer && downwards {
		for _, child := range c.Children() {
			child.Update(false, true)
		}
	}

	w.Draw()
	if isContainer {
		for _, child := range c.Children() {
			if child.Visible() {
				c.Place(child)
			}
		}
	}

	p := w.Parent()
	if p == nil {
		return
	}
	invalidate(w)
	p.Place(w)
	if upwards {
		p.Update(true, false)
	}
}

// invalidate reports the visible part of w's screen rectangle to the root
// of its tree. Each ancestor clips it, so content scrolled out of a
// viewport is not reported.
func invalidate(w Widget) {
	r := screenRect(w)
	root := w
	for root.Parent() != nil {
		root = root.Parent()
		r = r.Intersect(screenRect(root))
	}
	sink, ok := root.(damageSink)
	if !ok || r.Empty() {
		return
	}
	sink.invalidate(r)
}

func screenRect(w Widget) image.Rectangle {
	origin := w.AbsolutePosition()
	return image.Rectangle{Min: origin, Max: origin.Add(w.Bounds().Size())}
}

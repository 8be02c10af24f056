package ggui

import "image"

// maxDirtyRects is the threshold after which Damage switches to a full redraw.
// Past this many rects a single full present is cheaper than many small ones.
const maxDirtyRects = 16

// Damage accumulates the screen regions that changed since the last present.
type Damage struct {
	rects []image.Rectangle
	full  bool
}

// Invalidate marks r as needing to be presented.
// Empty rectangles are ignored, rectangles contained in one already
// recorded are dropped, and more than maxDirtyRects collapses to a full
// redraw.
func (d *Damage) Invalidate(r image.Rectangle) {
	if d.full || r.Empty() {
		return
	}
	for i, have := range d.rects {
		if r.In(have) {
			return
		}
		if have.In(r) {
			d.rects[i] = r
			return
		}
	}

	d.rects = append(d.rects, r)
	if len(d.rects) > maxDirtyRects {
		d.InvalidateAll()
	}
}

// InvalidateAll marks the whole screen as needing to be presented.
func (d *Damage) InvalidateAll() {
	d.full = true
	d.rects = d.rects[:0]
}

// Rects returns the accumulated dirty rectangles.
// Returns nil when a full redraw is pending (check Full first).
// The returned slice should not be modified by the caller.
func (d *Damage) Rects() []image.Rectangle {
	if d.full {
		return nil
	}
	return d.rects
}

// Full reports whether the whole screen must be presented.
func (d *Damage) Full() bool {
	return d.full
}

// Dirty reports whether anything needs to be presented.
func (d *Damage) Dirty() bool {
	return d.full || len(d.rects) > 0
}

// Clear resets the damage after a present.
func (d *Damage) Clear() {
	d.rects = d.rects[:0]
	d.full = false
}

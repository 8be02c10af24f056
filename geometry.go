package ggui

import "image"

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// SizeOf returns the size of r.
func SizeOf(r image.Rectangle) Size {
	return Size{W: r.Dx(), H: r.Dy()}
}

// Rect returns the rectangle of size s anchored at the origin.
func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// Empty reports whether s has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Point returns s as the point (W, H).
func (s Size) Point() image.Point {
	return image.Pt(s.W, s.H)
}

// Sub returns s - o per axis, floored at zero.
func (s Size) Sub(o Size) Size {
	return Size{W: max(0, s.W-o.W), H: max(0, s.H-o.H)}
}

// clampInt restricts v to [lo, hi].
func clampInt(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

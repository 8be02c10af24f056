package ggui

import (
	"fmt"
	"image"
)

// Display is the output device a Screen presents to.
type Display interface {
	// Present shows s on the device. rects lists the regions that changed;
	// nil means the whole surface.
	Present(s *Surface, rects []image.Rectangle) error
}

// Screen is the root of a widget tree. It owns the display sized surface,
// receives touches from the input loop and presents damaged regions.
type Screen struct {
	node
	damage Damage
}

var _ Container = (*Screen)(nil)

// NewScreen creates a root widget covering a display of the given size.
// Without WithStyle the screen uses DefaultStyle. WithAlign is ignored; the
// screen always sits at the origin.
func NewScreen(size Size, opts ...Option) *Screen {
	o := applyOptions(opts)
	style := DefaultStyle()
	if o.style != nil {
		style = *o.style
	}
	s := &Screen{node: node{
		bounds:  size.Rect(),
		surface: NewSurface(size),
		style:   style,
		visible: true,
	}}
	s.damage.InvalidateAll()
	return s
}

// Draw clears the screen to the background color.
func (s *Screen) Draw() {
	s.surface.Fill(s.style.BgColor)
}

// Update redraws the screen. upwards means a descendant changed and has
// already reported its damage; otherwise the whole screen is damaged.
func (s *Screen) Update(upwards, downwards bool) {
	if !upwards {
		s.damage.InvalidateAll()
	}
	Redraw(s, upwards, downwards)
}

// Dirty reports whether the screen has changes not yet presented.
func (s *Screen) Dirty() bool {
	return s.damage.Dirty()
}

// Flush presents the damaged regions to d and clears the damage.
// It does nothing when the screen is clean. On error the damage is kept so
// the next Flush retries.
func (s *Screen) Flush(d Display) error {
	if !s.damage.Dirty() {
		return nil
	}
	var rects []image.Rectangle
	if !s.damage.Full() {
		rects = append(rects, s.damage.Rects()...)
	}
	if err := d.Present(s.surface, rects); err != nil {
		return fmt.Errorf("ggui: present: %w", err)
	}
	s.damage.Clear()
	return nil
}

func (s *Screen) invalidate(r image.Rectangle) {
	s.damage.Invalidate(r.Intersect(s.bounds))
}

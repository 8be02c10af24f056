package ggui

import "image"

// ScrollBar is the contract a Viewport needs from a scrollbar widget:
// a range [0, Max], a current value, a silent setter for values the
// viewport computed itself, and a single change subscriber that fires
// for user-driven changes only.
type ScrollBar interface {
	Value() int
	SetMax(m int)
	// SyncValue sets the value without notifying the subscriber.
	SyncValue(v int)
	// OnChange registers the subscriber. Last writer wins.
	OnChange(fn func(v int))
}

// Slider is a track with a draggable handle selecting a value in [0, Max].
// A vertical slider has value 0 at
// the bottom and Max at the top.
type Slider struct {
	node
	value    int
	max      int
	vertical bool
	onChange func(v int)
}

var _ ScrollBar = (*Slider)(nil)

// NewSlider creates a slider under parent with range [0, 0], vertical
// when size is taller than wide. It panics if parent is nil.
func NewSlider(parent Container, xy image.Point, size Size, opts ...Option) *Slider {
	return newSlider(parent, xy, size, size.H > size.W, opts)
}

// newSlider creates a slider with the given orientation whatever its shape.
func newSlider(parent Container, xy image.Point, size Size, vertical bool, opts []Option) *Slider {
	s := &Slider{node: newNode(parent, xy, size, opts), vertical: vertical}
	parent.addChild(s)
	return s
}

// Value returns the current value.
func (s *Slider) Value() int {
	return s.value
}

// Max returns the upper bound of the range.
func (s *Slider) Max() int {
	return s.max
}

// Vertical reports the slider orientation.
func (s *Slider) Vertical() bool {
	return s.vertical
}

// SetMax sets the upper bound of the range, clamping the current value
// into it. Negative bounds are treated as zero.
func (s *Slider) SetMax(m int) {
	s.max = max(0, m)
	s.value = clampInt(0, s.max, s.value)
}

// SyncValue sets the value, clamped into range, without notifying the
// subscriber or redrawing. Owners redraw the slider as part of their own
// update.
func (s *Slider) SyncValue(v int) {
	s.value = clampInt(0, s.max, v)
}

// SetValue sets the value as if the user had moved the handle: the value
// is clamped, the slider redraws, and the subscriber is notified if the
// value changed.
func (s *Slider) SetValue(v int) {
	v = clampInt(0, s.max, v)
	if v == s.value {
		return
	}
	s.value = v
	s.Update(true, false)
	if s.onChange != nil {
		s.onChange(v)
	}
}

// OnChange registers the change subscriber, replacing any previous one.
func (s *Slider) OnChange(fn func(v int)) {
	s.onChange = fn
}

// OnTouch moves the handle to the touched position.
func (s *Slider) OnTouch(xy image.Point, action Action) {
	if action == Up {
		return
	}
	s.SetValue(s.valueAt(xy))
}

// trackLength is the distance the handle's leading edge can travel.
func (s *Slider) trackLength() int {
	length := s.bounds.Dx()
	if s.vertical {
		length = s.bounds.Dy()
	}
	return max(0, length-s.handleSize())
}

func (s *Slider) handleSize() int {
	length := s.bounds.Dx()
	if s.vertical {
		length = s.bounds.Dy()
	}
	return clampInt(1, max(1, length), s.style.SliderHandleSize)
}

// valueAt maps a touch position to a value, centering the handle on it.
func (s *Slider) valueAt(xy image.Point) int {
	track := s.trackLength()
	if track == 0 || s.max == 0 {
		return 0
	}
	pos := xy.X - s.handleSize()/2
	if s.vertical {
		pos = track - (xy.Y - s.handleSize()/2)
	}
	pos = clampInt(0, track, pos)
	// Round to the nearest value.
	return (pos*s.max + track/2) / track
}

// handleRect returns the handle rectangle in slider coordinates.
func (s *Slider) handleRect() image.Rectangle {
	track := s.trackLength()
	pos := 0
	if s.max > 0 {
		pos = s.value * track / s.max
	}
	size := s.Bounds().Size()
	if s.vertical {
		y := track - pos
		return image.Rect(0, y, size.X, y+s.handleSize())
	}
	return image.Rect(pos, 0, pos+s.handleSize(), size.Y)
}

// Draw renders the track line and the handle.
func (s *Slider) Draw() {
	s.surface.Fill(s.style.BgColor)
	size := s.Bounds().Size()
	var line image.Rectangle
	if s.vertical {
		x := size.X / 2
		line = image.Rect(x-1, 0, x+1, size.Y)
	} else {
		y := size.Y / 2
		line = image.Rect(0, y-1, size.X, y+1)
	}
	s.surface.FillRect(line, s.style.SliderLineColor)
	s.surface.FillRect(s.handleRect(), s.style.SliderHandleColor)
}

// Update redraws the slider.
func (s *Slider) Update(upwards, downwards bool) {
	Redraw(s, upwards, downwards)
}

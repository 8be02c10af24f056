package ggui

import (
	"image"
	"testing"
)

func newTestSlider(t *testing.T, size Size, maxValue int) (*Screen, *Slider) {
	t.Helper()
	screen := NewScreen(Sz(200, 200))
	s := NewSlider(screen, image.Pt(0, 0), size)
	s.SetMax(maxValue)
	return screen, s
}

func TestSliderOrientation(t *testing.T) {
	_, h := newTestSlider(t, Sz(110, 10), 10)
	_, v := newTestSlider(t, Sz(10, 110), 10)
	_, sq := newTestSlider(t, Sz(10, 10), 10)
	if h.Vertical() {
		t.Error("wide slider reported vertical")
	}
	if !v.Vertical() {
		t.Error("tall slider reported horizontal")
	}
	if sq.Vertical() {
		t.Error("square slider reported vertical")
	}
}

func TestSliderSetMaxClamps(t *testing.T) {
	_, s := newTestSlider(t, Sz(110, 10), 50)
	s.SyncValue(50)

	s.SetMax(20)
	if s.Max() != 20 || s.Value() != 20 {
		t.Errorf("after SetMax(20): %d/%d, want 20/20", s.Value(), s.Max())
	}
	s.SetMax(-5)
	if s.Max() != 0 || s.Value() != 0 {
		t.Errorf("after SetMax(-5): %d/%d, want 0/0", s.Value(), s.Max())
	}
}

func TestSliderSyncValueIsSilent(t *testing.T) {
	_, s := newTestSlider(t, Sz(110, 10), 50)
	calls := 0
	s.OnChange(func(int) { calls++ })

	for _, v := range []int{10, -4, 99} {
		s.SyncValue(v)
	}
	if calls != 0 {
		t.Errorf("SyncValue notified the subscriber %d times", calls)
	}
	if s.Value() != 50 {
		t.Errorf("Value() = %d, want clamped 50", s.Value())
	}
}

func TestSliderSetValue(t *testing.T) {
	_, s := newTestSlider(t, Sz(110, 10), 50)
	var got []int
	s.OnChange(func(v int) { got = append(got, v) })

	s.SetValue(10)
	s.SetValue(10)
	s.SetValue(80)
	s.SetValue(-1)

	want := []int{10, 50, 0}
	if len(got) != len(want) {
		t.Fatalf("callbacks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("callback %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSliderOnChangeLastWriterWins(t *testing.T) {
	_, s := newTestSlider(t, Sz(110, 10), 50)
	first, second := 0, 0
	s.OnChange(func(int) { first++ })
	s.OnChange(func(int) { second++ })
	s.SetValue(3)
	if first != 0 || second != 1 {
		t.Errorf("first = %d, second = %d; want 0, 1", first, second)
	}
}

func TestSliderValueAt(t *testing.T) {
	tests := []struct {
		name string
		size Size
		xy   image.Point
		want int
	}{
		{"horizontal start", Sz(110, 10), image.Pt(5, 5), 0},
		{"horizontal before start", Sz(110, 10), image.Pt(-20, 5), 0},
		{"horizontal middle", Sz(110, 10), image.Pt(55, 5), 25},
		{"horizontal end", Sz(110, 10), image.Pt(105, 5), 50},
		{"horizontal past end", Sz(110, 10), image.Pt(300, 5), 50},
		{"vertical top is max", Sz(10, 110), image.Pt(5, 5), 50},
		{"vertical bottom is zero", Sz(10, 110), image.Pt(5, 105), 0},
		{"vertical middle", Sz(10, 110), image.Pt(5, 55), 25},
		{"no track", Sz(10, 10), image.Pt(5, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newTestSlider(t, tt.size, 50)
			if got := s.valueAt(tt.xy); got != tt.want {
				t.Errorf("valueAt(%v) = %d, want %d", tt.xy, got, tt.want)
			}
		})
	}
}

func TestSliderHandleRect(t *testing.T) {
	_, h := newTestSlider(t, Sz(110, 10), 50)
	h.SyncValue(25)
	if got := h.handleRect(); got != image.Rect(50, 0, 60, 10) {
		t.Errorf("horizontal handle = %v", got)
	}

	_, v := newTestSlider(t, Sz(10, 110), 50)
	v.SyncValue(50)
	if got := v.handleRect(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("vertical handle at max = %v, want top", got)
	}
	v.SyncValue(0)
	if got := v.handleRect(); got != image.Rect(0, 100, 10, 110) {
		t.Errorf("vertical handle at zero = %v, want bottom", got)
	}
}

func TestSliderTouch(t *testing.T) {
	screen, s := newTestSlider(t, Sz(110, 10), 50)
	calls := 0
	s.OnChange(func(int) { calls++ })

	screen.OnTouch(image.Pt(105, 5), Down)
	if s.Value() != 50 {
		t.Errorf("after Down: Value() = %d, want 50", s.Value())
	}
	screen.OnTouch(image.Pt(55, 5), Move)
	if s.Value() != 25 {
		t.Errorf("after Move: Value() = %d, want 25", s.Value())
	}
	screen.OnTouch(image.Pt(5, 5), Up)
	if s.Value() != 25 {
		t.Errorf("Up moved the handle to %d", s.Value())
	}
	if calls != 2 {
		t.Errorf("subscriber called %d times, want 2", calls)
	}
}

func TestSliderSetValueRedraws(t *testing.T) {
	screen, s := newTestSlider(t, Sz(110, 10), 50)
	screen.Update(false, true)
	handle := s.Style().SliderHandleColor

	if got := screen.Surface().GetPixel(2, 1); got != handle {
		t.Fatalf("initial handle pixel = %v, want %v", got, handle)
	}
	s.SetValue(50)
	if got := screen.Surface().GetPixel(105, 1); got != handle {
		t.Errorf("moved handle pixel = %v, want %v", got, handle)
	}
	if got := screen.Surface().GetPixel(2, 1); got == handle {
		t.Error("old handle position still drawn")
	}
}

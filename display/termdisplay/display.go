// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termdisplay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggui"
)

// Common errors returned by Display operations.
var (
	// ErrClosed is returned when operations are attempted on a closed display.
	ErrClosed = errors.New("termdisplay: display is closed")

	// ErrInvalidScale is returned when the scale factor is not positive.
	ErrInvalidScale = errors.New("termdisplay: invalid scale")
)

// upperHalf is drawn in every cell: foreground is the top pixel,
// background the bottom pixel.
const upperHalf = '▀'

// Display is a ggui.Display backed by a tcell screen.
//
// A single goroutine owned by the Display reads terminal events. It starts
// with the first Run and stops on Close, so events that arrive between two
// Runs are delivered to the second.
type Display struct {
	screen  tcell.Screen
	scale   int
	pressed bool
	closed  bool

	events     chan tcell.Event
	quit       chan struct{}
	readerOnce sync.Once
}

var _ ggui.Display = (*Display)(nil)

// Option configures a Display.
type Option func(*Display)

// WithScale sets how many surface pixels, per axis, one half cell stands
// for. The default is 1.
func WithScale(scale int) Option {
	return func(d *Display) {
		d.scale = scale
	}
}

// New opens the controlling terminal.
func New(opts ...Option) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termdisplay: %w", err)
	}
	return NewWithScreen(screen, opts...)
}

// NewWithScreen wraps an existing, not yet initialized, tcell screen.
// On error the screen is left uninitialized.
func NewWithScreen(screen tcell.Screen, opts ...Option) (*Display, error) {
	d := &Display{
		screen: screen,
		scale:  1,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, d.scale)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termdisplay: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()
	ggui.Logger().Info("termdisplay: opened", "scale", d.scale)
	return d, nil
}

// Scale returns the pixel scale factor.
func (d *Display) Scale() int {
	return d.scale
}

// Present draws the given regions of s, or all of it when rects is nil,
// and shows the result.
func (d *Display) Present(s *ggui.Surface, rects []image.Rectangle) error {
	if d.closed {
		return ErrClosed
	}
	if rects == nil {
		rects = []image.Rectangle{s.Bounds()}
	}
	for _, r := range rects {
		d.presentRect(s, r.Intersect(s.Bounds()))
	}
	d.screen.Show()
	return nil
}

// presentRect redraws every cell overlapping r.
func (d *Display) presentRect(s *ggui.Surface, r image.Rectangle) {
	if r.Empty() {
		return
	}
	cellH := 2 * d.scale
	for row := r.Min.Y / cellH; row*cellH < r.Max.Y; row++ {
		for col := r.Min.X / d.scale; col*d.scale < r.Max.X; col++ {
			top := s.GetPixel(col*d.scale+d.scale/2, row*cellH+d.scale/2)
			bottom := s.GetPixel(col*d.scale+d.scale/2, row*cellH+d.scale+d.scale/2)
			d.screen.SetContent(col, row, upperHalf, nil, cellStyle(top.NRGBA(), bottom.NRGBA()))
		}
	}
}

func cellStyle(top, bottom color.NRGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

// touch converts a mouse event into a touch at the center of the pixels
// under the cell. ok is false for mouse motion without the button held.
func (d *Display) touch(ev *tcell.EventMouse) (xy image.Point, action ggui.Action, ok bool) {
	col, row := ev.Position()
	xy = image.Pt(col*d.scale+d.scale/2, row*2*d.scale+d.scale)
	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !d.pressed:
		action = ggui.Down
	case held:
		action = ggui.Move
	case d.pressed:
		action = ggui.Up
	default:
		return xy, action, false
	}
	d.pressed = held
	return xy, action, true
}

// readEvents forwards terminal events to d.events until the screen is
// finalized or the display is closed.
func (d *Display) readEvents() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

// Run draws root, then dispatches terminal input to it and presents the
// resulting damage until ctx is done, the user presses Esc or Ctrl+C, or
// the display is closed. It returns ctx.Err() on cancellation and nil
// otherwise. Run may be called again after it returns; calls must not
// overlap.
func (d *Display) Run(ctx context.Context, root *ggui.Screen) error {
	if d.closed {
		return ErrClosed
	}
	d.readerOnce.Do(func() { go d.readEvents() })

	root.Update(false, true)
	d.flush(root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-d.events:
			if !ok {
				return nil
			}
			if quit := d.handle(root, ev); quit {
				return nil
			}
			d.flush(root)
		}
	}
}

func (d *Display) handle(root *ggui.Screen, ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
	case *tcell.EventResize:
		d.screen.Sync()
		root.Update(false, true)
	case *tcell.EventMouse:
		if xy, action, ok := d.touch(ev); ok {
			ggui.Logger().Debug("termdisplay: touch", "x", xy.X, "y", xy.Y, "action", action)
			root.OnTouch(xy, action)
		}
	}
	return false
}

func (d *Display) flush(root *ggui.Screen) {
	if err := root.Flush(d); err != nil {
		ggui.Logger().Warn("termdisplay: present failed", "err", err)
	}
}

// Close restores the terminal. Close is idempotent.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	close(d.quit)
	d.screen.Fini()
	ggui.Logger().Info("termdisplay: closed")
	return nil
}

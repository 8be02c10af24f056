package ggui

import (
	"fmt"
	"image"
	"math"
)

// VirtualCanvas is the oversized surface holding a scroll area's content.
// Widgets created under it draw in canvas coordinates; the enclosing
// Viewport shows a window of it.
type VirtualCanvas struct {
	node
}

var _ Container = (*VirtualCanvas)(nil)

// newVirtualCanvas creates a canvas of the given extent at the origin of
// parent, sharing parent's pixel layout. The extent never changes.
func newVirtualCanvas(parent Container, extent Size) *VirtualCanvas {
	c := &VirtualCanvas{node: newNode(parent, image.Point{}, extent, nil)}
	parent.addChild(c)
	return c
}

// Extent returns the size of the canvas.
func (c *VirtualCanvas) Extent() Size {
	return SizeOf(c.bounds)
}

// AbsolutePosition returns the screen position of the canvas origin. When
// the parent scrolls its content the origin lies above and to the left of
// the parent by the scroll offset.
func (c *VirtualCanvas) AbsolutePosition() image.Point {
	if op, ok := c.parent.(OffsetProvider); ok {
		return c.parent.AbsolutePosition().Sub(op.Offset())
	}
	return c.node.AbsolutePosition()
}

// Draw fills the canvas background.
func (c *VirtualCanvas) Draw() {
	c.surface.Fill(c.style.BgColor)
}

// Update redraws the canvas and its content.
func (c *VirtualCanvas) Update(upwards, downwards bool) {
	Redraw(c, upwards, downwards)
}

// Viewport shows the window of a VirtualCanvas starting at its scroll
// offset. The offset always lies in [0, MaxOffset] on both axes.
//
// A vertical scrollbar counts the other way round from the offset: value 0
// means scrolled fully down. A horizontal scrollbar's value equals the
// horizontal offset.
type Viewport struct {
	node
	canvas    *VirtualCanvas
	offset    image.Point
	maxOffset image.Point
	vbar      ScrollBar
	hbar      ScrollBar
}

var (
	_ Container      = (*Viewport)(nil)
	_ OffsetProvider = (*Viewport)(nil)
)

// newViewport creates a viewport of the given size onto a new canvas of
// canvasSize. Either scrollbar may be nil.
func newViewport(parent Container, xy image.Point, size, canvasSize Size, vbar, hbar ScrollBar, opts ...Option) *Viewport {
	vp := &Viewport{
		node:      newNode(parent, xy, size, opts),
		maxOffset: canvasSize.Sub(size).Point(),
		vbar:      vbar,
		hbar:      hbar,
	}
	parent.addChild(vp)
	vp.canvas = newVirtualCanvas(vp, canvasSize)

	if vbar != nil {
		vbar.SetMax(vp.maxOffset.Y)
		vbar.SyncValue(vp.maxOffset.Y)
		vbar.OnChange(vp.onVerticalScroll)
	}
	if hbar != nil {
		hbar.SetMax(vp.maxOffset.X)
		hbar.SyncValue(0)
		hbar.OnChange(vp.onHorizontalScroll)
	}
	return vp
}

// Canvas returns the canvas the viewport looks at.
func (vp *Viewport) Canvas() *VirtualCanvas {
	return vp.canvas
}

// Offset returns the canvas point shown at the viewport's top-left corner.
func (vp *Viewport) Offset() image.Point {
	return vp.offset
}

// MaxOffset returns the largest legal offset per axis.
func (vp *Viewport) MaxOffset() image.Point {
	return vp.maxOffset
}

// SetOffsetX scrolls horizontally. v is floored and clamped into
// [0, MaxOffset().X]; out of range values are not an error.
func (vp *Viewport) SetOffsetX(v float64) {
	vp.scrollTo(clampOffset(v, vp.maxOffset.X), vp.offset.Y)
}

// SetOffsetY scrolls vertically. v is floored and clamped into
// [0, MaxOffset().Y]; out of range values are not an error.
func (vp *Viewport) SetOffsetY(v float64) {
	vp.scrollTo(vp.offset.X, clampOffset(v, vp.maxOffset.Y))
}

// ScrollTo sets both offsets at once with the clamping of SetOffsetX and
// SetOffsetY, redrawing once.
func (vp *Viewport) ScrollTo(x, y float64) {
	vp.scrollTo(clampOffset(x, vp.maxOffset.X), clampOffset(y, vp.maxOffset.Y))
}

// ScrollBy moves the offset by (dx, dy), clamped.
func (vp *Viewport) ScrollBy(dx, dy int) {
	vp.ScrollTo(float64(vp.offset.X+dx), float64(vp.offset.Y+dy))
}

// EnsureVisible scrolls the minimum distance that brings r, in canvas
// coordinates, into view. When r is larger than the viewport its top-left
// corner is shown.
func (vp *Viewport) EnsureVisible(r image.Rectangle) {
	size := vp.bounds.Size()
	off := vp.offset
	if r.Max.X > off.X+size.X {
		off.X = r.Max.X - size.X
	}
	if r.Min.X < off.X {
		off.X = r.Min.X
	}
	if r.Max.Y > off.Y+size.Y {
		off.Y = r.Max.Y - size.Y
	}
	if r.Min.Y < off.Y {
		off.Y = r.Min.Y
	}
	if off == vp.offset {
		return
	}
	vp.ScrollTo(float64(off.X), float64(off.Y))
}

func (vp *Viewport) scrollTo(x, y int) {
	vp.offset = image.Pt(x, y)
	Logger().Debug("viewport offset", "x", x, "y", y, "max_x", vp.maxOffset.X, "max_y", vp.maxOffset.Y)

	if vp.hbar != nil {
		vp.hbar.SyncValue(x)
	}
	if vp.vbar != nil {
		vp.vbar.SyncValue(vp.maxOffset.Y - y)
	}
	vp.Update(true, false)
}

func (vp *Viewport) onVerticalScroll(v int) {
	vp.SetOffsetY(float64(vp.maxOffset.Y - v))
}

func (vp *Viewport) onHorizontalScroll(v int) {
	vp.SetOffsetX(float64(v))
}

// OnTouch forwards the touch to the canvas, moved into canvas coordinates.
func (vp *Viewport) OnTouch(xy image.Point, action Action) {
	vp.canvas.OnTouch(xy.Add(vp.offset), action)
}

// Place does nothing: the viewport copies from the canvas in Draw instead
// of compositing it whole.
func (vp *Viewport) Place(Widget) {}

// Draw copies the visible window of the canvas onto the viewport.
func (vp *Viewport) Draw() {
	size := vp.bounds.Size()
	window := image.Rectangle{Min: vp.offset, Max: vp.offset.Add(size)}
	if !window.In(vp.canvas.surface.Bounds()) {
		// Canvas smaller than the viewport on some axis.
		vp.surface.Fill(vp.style.BgColor)
	}
	vp.surface.Blit(image.Point{}, vp.canvas.surface, window)
}

// Update redraws the viewport.
func (vp *Viewport) Update(upwards, downwards bool) {
	Redraw(vp, upwards, downwards)
}

// clampOffset floors v and clamps it into [0, hi].
func clampOffset(v float64, hi int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(hi) {
		return hi
	}
	return int(math.Floor(v))
}

// ScrollAreaConfig describes a scroll area.
type ScrollAreaConfig struct {
	// Position is the anchor point in the parent, interpreted per Align.
	Position image.Point
	// Size is the full area, including any scrollbars.
	Size  Size
	Align Align
	// Parent is required.
	Parent Container
	// Style overrides the parent's style when non-nil. ScrollbarWidth,
	// SliderLineColor and SliderHandleColor are used by the scrollbars.
	Style *Style
	// CanvasSize is the size of the virtual content. Required.
	CanvasSize Size
}

// ScrollArea is a window onto a canvas larger than itself, with a
// horizontal and/or vertical scrollbar where the canvas overflows.
// Which scrollbars exist is decided once at construction.
type ScrollArea struct {
	node
	viewport *Viewport
	vslider  *Slider
	hslider  *Slider
}

var _ Container = (*ScrollArea)(nil)

// NewScrollArea creates a scroll area. Configuration errors are reported
// before anything is allocated.
func NewScrollArea(cfg ScrollAreaConfig) (*ScrollArea, error) {
	if cfg.CanvasSize == (Size{}) {
		return nil, ErrMissingCanvasSize
	}
	if cfg.CanvasSize.Empty() {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidSize, cfg.CanvasSize.W, cfg.CanvasSize.H)
	}
	if cfg.Parent == nil {
		return nil, ErrNilParent
	}
	if cfg.Size.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Size.W, cfg.Size.H)
	}
	style := cfg.Parent.Style()
	if cfg.Style != nil {
		style = *cfg.Style
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	sa := &ScrollArea{node: newNode(cfg.Parent, cfg.Position, cfg.Size, []Option{WithAlign(cfg.Align), WithStyle(style)})}
	cfg.Parent.addChild(sa)

	layout := layoutScrollbars(cfg.Size, cfg.CanvasSize, style.ScrollbarWidth)
	view := layout.viewport.Rect()
	sw := style.ScrollbarWidth

	var vbar, hbar ScrollBar
	if layout.vertical {
		sa.vslider = newSlider(sa, image.Pt(view.Max.X, view.Min.Y), Sz(sw, view.Max.Y), true, nil)
		vbar = sa.vslider
	}
	if layout.horizontal {
		sa.hslider = newSlider(sa, image.Pt(view.Min.X, view.Max.Y), Sz(view.Max.X, sw), false, nil)
		hbar = sa.hslider
	}
	sa.viewport = newViewport(sa, image.Point{}, layout.viewport, cfg.CanvasSize, vbar, hbar)

	Logger().Debug("scroll area layout",
		"size", cfg.Size, "canvas", cfg.CanvasSize, "viewport", layout.viewport,
		"horizontal", layout.horizontal, "vertical", layout.vertical)
	return sa, nil
}

// MustNewScrollArea is like NewScrollArea but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded sizes).
func MustNewScrollArea(cfg ScrollAreaConfig) *ScrollArea {
	sa, err := NewScrollArea(cfg)
	if err != nil {
		panic(err)
	}
	return sa
}

// ScrolledArea returns the canvas to create content widgets under.
func (sa *ScrollArea) ScrolledArea() *VirtualCanvas {
	return sa.viewport.canvas
}

// Viewport returns the viewport owning the scroll offset.
func (sa *ScrollArea) Viewport() *Viewport {
	return sa.viewport
}

// VerticalSlider returns the vertical scrollbar, or nil if the canvas
// fits vertically.
func (sa *ScrollArea) VerticalSlider() *Slider {
	return sa.vslider
}

// HorizontalSlider returns the horizontal scrollbar, or nil if the
// canvas fits horizontally.
func (sa *ScrollArea) HorizontalSlider() *Slider {
	return sa.hslider
}

// Draw does nothing; the area's pixels come from its viewport and sliders.
func (sa *ScrollArea) Draw() {}

// Update redraws the area. The scrollbars are drawn directly onto the
// area's surface, so they are refreshed before it is composited upwards.
func (sa *ScrollArea) Update(upwards, downwards bool) {
	if !sa.visible {
		return
	}
	if sa.vslider != nil {
		sa.vslider.Update(false, false)
	}
	if sa.hslider != nil {
		sa.hslider.Update(false, false)
	}
	Redraw(sa, upwards, downwards)
}

// scrollLayout is the outcome of scrollbar placement.
type scrollLayout struct {
	viewport   Size
	horizontal bool
	vertical   bool
}

// layoutScrollbars decides which scrollbars a canvas needs inside an area
// and how much room is left for the viewport. Reserving one scrollbar can
// make the other axis overflow, so both axes are re-evaluated until
// neither changes.
func layoutScrollbars(area, canvas Size, scrollbarWidth int) scrollLayout {
	l := scrollLayout{viewport: area}
	for {
		changed := false
		if !l.horizontal && canvas.W > l.viewport.W {
			l.horizontal = true
			l.viewport.H -= scrollbarWidth
			changed = true
		}
		if !l.vertical && canvas.H > l.viewport.H {
			l.vertical = true
			l.viewport.W -= scrollbarWidth
			changed = true
		}
		if !changed {
			break
		}
	}
	l.viewport = Size{W: max(0, l.viewport.W), H: max(0, l.viewport.H)}
	return l
}

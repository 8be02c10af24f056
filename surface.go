package ggui

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Surface is a rectangular RGBA pixel buffer that widgets draw into.
// It implements draw.Image, so any drawer from image/draw or
// golang.org/x/image can target it.
type Surface struct {
	img *image.RGBA
}

var _ xdraw.Image = (*Surface)(nil)

// NewSurface creates a transparent surface of the given size.
// Non-positive dimensions produce an empty surface.
func NewSurface(size Size) *Surface {
	size = Size{W: max(0, size.W), H: max(0, size.H)}
	return &Surface{img: image.NewRGBA(size.Rect())}
}

// NewCompatible creates a surface of the given size with the same pixel
// layout as s, so blits between the two are plain row copies.
func (s *Surface) NewCompatible(size Size) *Surface {
	return NewSurface(size)
}

// SurfaceFromImage copies img into a new surface.
func SurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(SizeOf(b))
	xdraw.Copy(s.img, image.Point{}, img, b, xdraw.Src, nil)
	return s
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Size returns the dimensions of the surface.
func (s *Surface) Size() Size {
	return SizeOf(s.img.Rect)
}

// Image returns the backing image. Writes to it are visible in s.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// SetPixel sets the color of a single pixel. Out of range writes are ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	s.img.Set(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel, or Transparent when out of range.
func (s *Surface) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return Transparent
	}
	return FromColor(s.img.RGBAAt(x, y))
}

// Fill fills the entire surface with a color.
func (s *Surface) Fill(c RGBA) {
	s.FillRect(s.img.Rect, c)
}

// FillRect fills r, clipped to the surface, with a color.
func (s *Surface) FillRect(r image.Rectangle, c RGBA) {
	xdraw.Draw(s.img, r.Intersect(s.img.Rect), image.NewUniform(c.NRGBA()), image.Point{}, xdraw.Src)
}

// Blit copies the sr sub-rectangle of src onto s so that sr.Min lands on dst.
// Pixels are replaced, not blended. Both sides are clipped.
func (s *Surface) Blit(dst image.Point, src *Surface, sr image.Rectangle) {
	if src == nil {
		return
	}
	xdraw.Copy(s.img, dst, src.img, sr, xdraw.Src, nil)
}

// BlitOver is like Blit but alpha-composites src over the existing pixels.
func (s *Surface) BlitOver(dst image.Point, src *Surface, sr image.Rectangle) {
	if src == nil {
		return
	}
	xdraw.Copy(s.img, dst, src.img, sr, xdraw.Over, nil)
}

// SubImage returns a surface sharing pixels with the r portion of s.
// The returned surface keeps s's coordinates: its bounds are r ∩ s.Bounds().
func (s *Surface) SubImage(r image.Rectangle) *Surface {
	return &Surface{img: s.img.SubImage(r).(*image.RGBA)}
}

// ToImage returns a copy of the surface as an image.RGBA anchored at the origin.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(s.Size().Rect())
	xdraw.Copy(img, image.Point{}, s.img, s.img.Rect, xdraw.Src, nil)
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

package ggui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want Size
	}{
		{"normal", Sz(10, 20), Sz(10, 20)},
		{"zero", Sz(0, 0), Sz(0, 0)},
		{"negative", Sz(-3, 5), Sz(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.size)
			if got := s.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
			if s.Width() != tt.want.W || s.Height() != tt.want.H {
				t.Errorf("Width/Height = %d/%d, want %d/%d", s.Width(), s.Height(), tt.want.W, tt.want.H)
			}
		})
	}
}

func TestSurfacePixels(t *testing.T) {
	s := NewSurface(Sz(4, 4))
	if got := s.GetPixel(1, 1); got != Transparent {
		t.Errorf("new surface pixel = %v, want transparent", got)
	}

	s.SetPixel(2, 3, Green)
	if got := s.GetPixel(2, 3); got != Green {
		t.Errorf("GetPixel(2,3) = %v, want green", got)
	}

	// Out of range access is ignored.
	s.SetPixel(-1, 0, Red)
	s.SetPixel(4, 4, Red)
	if got := s.GetPixel(10, 10); got != Transparent {
		t.Errorf("GetPixel out of range = %v, want transparent", got)
	}
}

func TestSurfaceFillRectClips(t *testing.T) {
	s := NewSurface(Sz(10, 10))
	s.Fill(Black)
	s.FillRect(image.Rect(5, 5, 50, 50), Blue)

	if got := s.GetPixel(9, 9); got != Blue {
		t.Errorf("inside fill = %v, want blue", got)
	}
	if got := s.GetPixel(4, 4); got != Black {
		t.Errorf("outside fill = %v, want black", got)
	}
}

func TestSurfaceBlit(t *testing.T) {
	src := NewSurface(Sz(4, 4))
	src.Fill(Red)
	src.SetPixel(0, 0, Green)

	dst := NewSurface(Sz(6, 6))
	dst.Fill(Blue)
	dst.Blit(image.Pt(1, 2), src, image.Rect(0, 0, 2, 2))

	tests := []struct {
		x, y int
		want RGBA
	}{
		{1, 2, Green},
		{2, 3, Red},
		{0, 0, Blue},
		{3, 2, Blue},
		{1, 4, Blue},
	}
	for _, tt := range tests {
		if got := dst.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSurfaceBlitReplacesAlpha(t *testing.T) {
	src := NewSurface(Sz(2, 2)) // transparent
	dst := NewSurface(Sz(2, 2))
	dst.Fill(White)

	dst.Blit(image.Point{}, src, src.Bounds())
	if got := dst.GetPixel(0, 0); got != Transparent {
		t.Errorf("Blit pixel = %v, want transparent", got)
	}

	dst.Fill(White)
	dst.BlitOver(image.Point{}, src, src.Bounds())
	if got := dst.GetPixel(0, 0); got != White {
		t.Errorf("BlitOver pixel = %v, want white", got)
	}
}

func TestSurfaceBlitClipsSource(t *testing.T) {
	src := NewSurface(Sz(3, 3))
	src.Fill(Red)
	dst := NewSurface(Sz(5, 5))
	dst.Fill(Blue)

	// The source window runs past src; only the overlapping part is copied.
	dst.Blit(image.Point{}, src, image.Rect(1, 1, 5, 5))
	if got := dst.GetPixel(1, 1); got != Red {
		t.Errorf("copied pixel = %v, want red", got)
	}
	if got := dst.GetPixel(3, 3); got != Blue {
		t.Errorf("pixel beyond source = %v, want blue", got)
	}

	dst.Blit(image.Point{}, nil, image.Rect(0, 0, 5, 5))
}

func TestSurfaceFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.Set(10, 10, color.NRGBA{R: 255, A: 255})

	s := SurfaceFromImage(img)
	if got := s.Size(); got != Sz(3, 2) {
		t.Fatalf("Size() = %v, want 3x2", got)
	}
	if got := s.GetPixel(0, 0); got != Red {
		t.Errorf("GetPixel(0,0) = %v, want red", got)
	}
}

func TestSurfaceSubImageShares(t *testing.T) {
	s := NewSurface(Sz(8, 8))
	sub := s.SubImage(image.Rect(2, 2, 4, 4))
	sub.Fill(Green)

	if got := s.GetPixel(3, 3); got != Green {
		t.Errorf("parent pixel = %v, want green", got)
	}
	if got := s.GetPixel(5, 5); got != Transparent {
		t.Errorf("pixel outside sub image = %v, want transparent", got)
	}

	img := sub.ToImage()
	if img.Rect != image.Rect(0, 0, 2, 2) {
		t.Errorf("ToImage bounds = %v, want origin anchored 2x2", img.Rect)
	}
}

func TestSurfaceSavePNG(t *testing.T) {
	s := NewSurface(Sz(3, 3))
	s.Fill(Red)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if got := FromColor(img.At(1, 1)); got != Red {
		t.Errorf("decoded pixel = %v, want red", got)
	}
}

func TestSurfaceSavePNGBadPath(t *testing.T) {
	s := NewSurface(Sz(1, 1))
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

package ggui

import (
	"bytes"
	"image"
	"sync"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"
)

// textPixelSize is the pixel size of all widget text.
const textPixelSize = 13

// defaultTypeface is the face Label and Button draw with.
var defaultTypeface = sync.OnceValue(func() *typeface {
	return newTypeface(goregular.TTF, textPixelSize)
})

// textSize returns the pixel size of text in the widget typeface.
func textSize(text string) Size {
	return defaultTypeface().measure(text)
}

// drawText draws text aligned inside r in the widget typeface.
func drawText(dst *Surface, r image.Rectangle, text string, align Align, c RGBA) {
	defaultTypeface().draw(dst, r, text, align, c)
}

// typeface shapes text with HarfBuzz and rasterizes the shaped glyphs from
// the outlines of the same font data. Glyph indices from the shaper index
// the outlines directly.
//
// A typeface whose font data failed to parse draws with the 7x13 bitmap
// face instead. Not safe for concurrent use; widgets are drawn from one
// goroutine.
type typeface struct {
	face     *tsfont.Face
	outlines *sfnt.Font
	ppem     fixed.Int26_6
	ascent   fixed.Int26_6
	descent  fixed.Int26_6

	shaper   shaping.HarfbuzzShaper
	buf      sfnt.Buffer
	fallback font.Face
}

func newTypeface(ttf []byte, pixelSize int) *typeface {
	tf := &typeface{ppem: fixed.I(pixelSize), fallback: basicfont.Face7x13}

	face, err := tsfont.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		Logger().Warn("typeface: shaping font unavailable, using bitmap face", "err", err)
		return tf
	}
	outlines, err := sfnt.Parse(ttf)
	if err != nil {
		Logger().Warn("typeface: outlines unavailable, using bitmap face", "err", err)
		return tf
	}
	m, err := outlines.Metrics(&tf.buf, tf.ppem, font.HintingNone)
	if err != nil {
		Logger().Warn("typeface: metrics unavailable, using bitmap face", "err", err)
		return tf
	}
	tf.face, tf.outlines = face, outlines
	tf.ascent, tf.descent = m.Ascent, m.Descent
	return tf
}

// shapedGlyph is a glyph positioned on the baseline, y increasing down.
type shapedGlyph struct {
	id   sfnt.GlyphIndex
	x, y fixed.Int26_6
}

// shape lays text out on a single line in visual order and returns the
// glyphs and the total advance.
func (tf *typeface) shape(text string) ([]shapedGlyph, fixed.Int26_6) {
	var (
		glyphs []shapedGlyph
		pen    fixed.Int26_6
	)
	for _, run := range bidiRuns(text) {
		out := tf.shaper.Shape(shaping.Input{
			Text:      run.runes,
			RunStart:  0,
			RunEnd:    len(run.runes),
			Direction: run.dir,
			Face:      tf.face,
			Size:      tf.ppem,
			Script:    detectScript(run.runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			glyphs = append(glyphs, shapedGlyph{
				id: sfnt.GlyphIndex(uint16(g.GlyphID)), //nolint:gosec // TrueType glyph ids are 16 bit
				x:  pen + g.XOffset,
				y:  -g.YOffset,
			})
			pen += g.Advance
		}
	}
	return glyphs, pen
}

// measure returns the pixel size of text set on one line.
func (tf *typeface) measure(text string) Size {
	if tf.face == nil {
		m := tf.fallback.Metrics()
		return Size{
			W: font.MeasureString(tf.fallback, text).Ceil(),
			H: (m.Ascent + m.Descent).Ceil(),
		}
	}
	_, advance := tf.shape(text)
	return Size{W: advance.Ceil(), H: (tf.ascent + tf.descent).Ceil()}
}

// draw draws text aligned inside r in color c.
func (tf *typeface) draw(dst *Surface, r image.Rectangle, text string, align Align, c RGBA) {
	if text == "" {
		return
	}
	if tf.face == nil {
		tf.drawFallback(dst, r, text, align, c)
		return
	}

	glyphs, advance := tf.shape(text)
	size := Size{W: advance.Ceil(), H: (tf.ascent + tf.descent).Ceil()}
	if size.Empty() {
		return
	}
	z := vector.NewRasterizer(size.W, size.H)
	for _, g := range glyphs {
		segments, err := tf.outlines.LoadGlyph(&tf.buf, g.id, tf.ppem, nil)
		if err != nil {
			continue
		}
		addSegments(z, segments, fixed.Point26_6{X: g.x, Y: tf.ascent + g.y})
	}
	mask := image.NewAlpha(size.Rect())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	box := align.Rect(align.Anchor(r), size)
	xdraw.DrawMask(dst.img, box, image.NewUniform(c.NRGBA()), image.Point{}, mask, image.Point{}, xdraw.Over)
}

func (tf *typeface) drawFallback(dst *Surface, r image.Rectangle, text string, align Align, c RGBA) {
	box := align.Rect(align.Anchor(r), tf.measure(text))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: tf.fallback,
		Dot:  fixed.Point26_6{X: fixed.I(box.Min.X), Y: fixed.I(box.Min.Y) + tf.fallback.Metrics().Ascent},
	}
	d.DrawString(text)
}

// addSegments adds a glyph outline to z with its origin at o.
func addSegments(z *vector.Rasterizer, segments sfnt.Segments, o fixed.Point26_6) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+o.X) / 64, float32(p.Y+o.Y) / 64
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
}

// textRun is a maximal run of text with one direction.
type textRun struct {
	runes []rune
	dir   di.Direction
}

// bidiRuns splits text into directional runs in visual order. Text the
// bidi algorithm cannot order is treated as one left-to-right run.
func bidiRuns(text string) []textRun {
	runes := []rune(text)
	whole := []textRun{{runes: runes, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]textRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos is an inclusive rune range.
		start, end := run.Pos()
		if start < 0 || end >= len(runes) || start > end {
			return whole
		}
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, textRun{runes: runes[start : end+1], dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

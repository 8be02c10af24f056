package ggui

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnknownAlign is returned when an alignment name is not recognized.
var ErrUnknownAlign = errors.New("ggui: unknown alignment")

// Align names the point of a widget's rectangle that is placed on the
// position passed at construction.
type Align uint8

const (
	TopLeft Align = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

var alignNames = [...]string{
	TopLeft:     "topleft",
	Top:         "top",
	TopRight:    "topright",
	Left:        "left",
	Center:      "center",
	Right:       "right",
	BottomLeft:  "bottomleft",
	Bottom:      "bottom",
	BottomRight: "bottomright",
}

// String returns the lowercase name of the alignment.
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Align(%d)", a)
}

// ParseAlign returns the alignment with the given name.
func ParseAlign(name string) (Align, error) {
	for i, n := range alignNames {
		if n == name {
			return Align(i), nil
		}
	}
	return TopLeft, fmt.Errorf("%w: %q", ErrUnknownAlign, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Rect returns the rectangle of the given size whose anchor point sits on xy.
func (a Align) Rect(xy image.Point, size Size) image.Rectangle {
	x, y := xy.X, xy.Y
	switch a {
	case Top, Center, Bottom:
		x -= size.W / 2
	case TopRight, Right, BottomRight:
		x -= size.W
	}
	switch a {
	case Left, Center, Right:
		y -= size.H / 2
	case BottomLeft, Bottom, BottomRight:
		y -= size.H
	}
	return image.Rect(x, y, x+size.W, y+size.H)
}

// Anchor returns the point of r named by the alignment.
func (a Align) Anchor(r image.Rectangle) image.Point {
	p := r.Min
	switch a {
	case Top, Center, Bottom:
		p.X += r.Dx() / 2
	case TopRight, Right, BottomRight:
		p.X = r.Max.X
	}
	switch a {
	case Left, Center, Right:
		p.Y += r.Dy() / 2
	case BottomLeft, Bottom, BottomRight:
		p.Y = r.Max.Y
	}
	return p
}

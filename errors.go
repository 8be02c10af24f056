package ggui

import "errors"

// Configuration errors returned by widget constructors.
var (
	// ErrMissingCanvasSize is returned when a scroll area is configured
	// without the size of its virtual canvas.
	ErrMissingCanvasSize = errors.New("ggui: canvas size must be specified")

	// ErrNilParent is returned when a widget is created without a parent.
	ErrNilParent = errors.New("ggui: nil parent")

	// ErrInvalidSize is returned when a widget size is not positive.
	ErrInvalidSize = errors.New("ggui: invalid size")

	// ErrInvalidStyle is returned when a style fails validation.
	ErrInvalidStyle = errors.New("ggui: invalid style")
)

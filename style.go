package ggui

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Style holds the theme values widgets draw with.
//
// Styles are plain values threaded through construction: a widget created
// without WithStyle inherits its parent's style, and the Screen starts from
// DefaultStyle unless given one.
type Style struct {
	BgColor         RGBA `toml:"bg_color"`
	FgColor         RGBA `toml:"fg_color"`
	ButtonColor     RGBA `toml:"button_color"`
	ButtonTextColor RGBA `toml:"button_text_color"`

	// ScrollbarWidth is the number of pixels reserved for each scrollbar.
	ScrollbarWidth int `toml:"scrollbar_width"`

	SliderLineColor   RGBA `toml:"slider_line_color"`
	SliderHandleColor RGBA `toml:"slider_handle_color"`
	// SliderHandleSize is the length of the slider handle along its track.
	SliderHandleSize int `toml:"slider_handle_size"`
}

// DefaultStyle returns the built-in theme.
func DefaultStyle() Style {
	return Style{
		BgColor:           Hex("#000000"),
		FgColor:           Hex("#ffffff"),
		ButtonColor:       Hex("#303040"),
		ButtonTextColor:   Hex("#ffffff"),
		ScrollbarWidth:    10,
		SliderLineColor:   Hex("#c8c8c8"),
		SliderHandleColor: Hex("#ffffff"),
		SliderHandleSize:  10,
	}
}

// Validate reports whether the style can be used to lay out widgets.
func (s Style) Validate() error {
	if s.ScrollbarWidth <= 0 {
		return fmt.Errorf("%w: scrollbar_width=%d", ErrInvalidStyle, s.ScrollbarWidth)
	}
	if s.SliderHandleSize <= 0 {
		return fmt.Errorf("%w: slider_handle_size=%d", ErrInvalidStyle, s.SliderHandleSize)
	}
	return nil
}

// DecodeStyle reads a TOML theme from r on top of base. Keys absent from
// the document keep base's values; unknown keys are an error.
//
// Example document:
//
//	scrollbar_width = 16
//	slider_line_color = "#808080"
//	slider_handle_color = "#ff8000"
func DecodeStyle(r io.Reader, base Style) (Style, error) {
	style := base
	md, err := toml.NewDecoder(r).Decode(&style)
	if err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("%w: unknown key %q", ErrInvalidStyle, undecoded[0].String())
	}
	if err := style.Validate(); err != nil {
		return base, err
	}
	return style, nil
}

// LoadStyle reads a TOML theme file on top of base.
func LoadStyle(path string, base Style) (Style, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return base, err
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodeStyle(f, base)
}

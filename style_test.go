package ggui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStyleValid(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Fatalf("DefaultStyle().Validate() = %v", err)
	}
}

func TestDefaultStyleIsFreshValue(t *testing.T) {
	s := DefaultStyle()
	s.ScrollbarWidth = 99
	if DefaultStyle().ScrollbarWidth == 99 {
		t.Error("mutating a returned style changed the default")
	}
}

func TestDecodeStyle(t *testing.T) {
	doc := `
scrollbar_width = 16
slider_line_color = "#808080"
slider_handle_color = "#ff8000"
`
	got, err := DecodeStyle(strings.NewReader(doc), DefaultStyle())
	if err != nil {
		t.Fatalf("DecodeStyle() = %v", err)
	}
	if got.ScrollbarWidth != 16 {
		t.Errorf("ScrollbarWidth = %d, want 16", got.ScrollbarWidth)
	}
	if got.SliderHandleColor != Hex("#ff8000") {
		t.Errorf("SliderHandleColor = %v, want #ff8000", got.SliderHandleColor)
	}
	// Untouched keys keep the base value.
	if got.BgColor != DefaultStyle().BgColor {
		t.Errorf("BgColor = %v, want default", got.BgColor)
	}
}

func TestDecodeStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", `scrollbar_colour = "#fff"`},
		{"bad color", `slider_line_color = "#zzz"`},
		{"zero width", `scrollbar_width = 0`},
		{"syntax", `scrollbar_width = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultStyle()
			got, err := DecodeStyle(strings.NewReader(tt.doc), base)
			if !errors.Is(err, ErrInvalidStyle) {
				t.Fatalf("DecodeStyle() error = %v, want ErrInvalidStyle", err)
			}
			if got != base {
				t.Error("DecodeStyle() should return base on error")
			}
		})
	}
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("scrollbar_width = 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadStyle(path, DefaultStyle())
	if err != nil {
		t.Fatalf("LoadStyle() = %v", err)
	}
	if got.ScrollbarWidth != 24 {
		t.Errorf("ScrollbarWidth = %d, want 24", got.ScrollbarWidth)
	}

	if _, err := LoadStyle(filepath.Join(t.TempDir(), "missing.toml"), DefaultStyle()); err == nil {
		t.Error("LoadStyle() of a missing file should fail")
	}
}

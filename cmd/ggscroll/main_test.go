package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggui"
)

func TestBuildTapUpdatesTitle(t *testing.T) {
	screen, area, err := build(ggui.Sz(320, 240), ggui.Sz(640, 480), ggui.DefaultStyle())
	if err != nil {
		t.Fatalf("build() = %v", err)
	}
	screen.Update(false, true)

	title, ok := screen.Children()[0].(*ggui.Label)
	if !ok {
		t.Fatalf("first child is %T, want *ggui.Label", screen.Children()[0])
	}

	// Scroll one button pitch right and down, then tap the top-left button
	// now visible: it is the one in row 1, column 1.
	area.Viewport().ScrollTo(68, 68)
	tap := image.Pt(8+30, titleHeight+8+30)
	screen.OnTouch(tap, ggui.Down)
	screen.OnTouch(tap, ggui.Up)

	if got, want := title.Text(), "tapped 1,1"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}

func TestBuildRejectsMissingCanvas(t *testing.T) {
	if _, _, err := build(ggui.Sz(320, 240), ggui.Size{}, ggui.DefaultStyle()); err == nil {
		t.Error("build() with zero canvas should fail")
	}
}

func testOptions(t *testing.T) options {
	t.Helper()
	t.Cleanup(func() { ggui.SetLogger(nil) })
	return options{
		size:    ggui.Sz(320, 240),
		canvas:  ggui.Sz(640, 480),
		output:  filepath.Join(t.TempDir(), "scroll.png"),
		offsetY: 100,
		scale:   2,
	}
}

func TestRunWritesFrame(t *testing.T) {
	o := testOptions(t)
	if err := run(o); err != nil {
		t.Fatalf("run() = %v", err)
	}

	f, err := os.Open(o.output)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("frame = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
}

func TestRunReturnsErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*options)
		want string
	}{
		{"missing style", func(o *options) { o.stylePath = filepath.Join(t.TempDir(), "none.toml") }, "failed to load style"},
		{"zero canvas", func(o *options) { o.canvas = ggui.Size{} }, "failed to build UI"},
		{"unwritable output", func(o *options) { o.output = filepath.Join(t.TempDir(), "missing", "scroll.png") }, "failed to save"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions(t)
			tt.edit(&o)
			err := run(o)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() = %v, want an error containing %q", err, tt.want)
			}
		})
	}
}

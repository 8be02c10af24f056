// Command ggscroll demonstrates the ggui scroll area.
//
// By default it renders one frame to a PNG file at the requested scroll
// offset. With -term it runs interactively in the terminal; use the mouse
// as the finger on the scrollbars and buttons.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/display/termdisplay"
)

const titleHeight = 20

// options holds the command line flags.
type options struct {
	size, canvas     ggui.Size
	stylePath        string
	output           string
	offsetX, offsetY float64
	term             bool
	scale            int
	verbose          bool
}

func main() {
	var (
		o                options
		width, height    int
		canvasW, canvasH int
	)
	flag.IntVar(&width, "width", 320, "display width")
	flag.IntVar(&height, "height", 240, "display height")
	flag.IntVar(&canvasW, "canvas-width", 640, "virtual canvas width")
	flag.IntVar(&canvasH, "canvas-height", 480, "virtual canvas height")
	flag.StringVar(&o.stylePath, "style", "", "TOML style file")
	flag.StringVar(&o.output, "output", "scroll.png", "output file")
	flag.Float64Var(&o.offsetX, "x", 0, "horizontal scroll offset")
	flag.Float64Var(&o.offsetY, "y", 0, "vertical scroll offset")
	flag.BoolVar(&o.term, "term", false, "run interactively in the terminal")
	flag.IntVar(&o.scale, "scale", 2, "pixels per half cell in terminal mode")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()
	o.size = ggui.Sz(width, height)
	o.canvas = ggui.Sz(canvasW, canvasH)

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o options) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logFile := os.Stderr
	if o.term {
		// The terminal belongs to the display; log to a file instead.
		f, err := os.Create("ggscroll.log")
		if err != nil {
			return fmt.Errorf("failed to create log: %w", err)
		}
		defer func() { _ = f.Close() }()
		logFile = f
	}
	ggui.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})))

	style := ggui.DefaultStyle()
	if o.stylePath != "" {
		var err error
		if style, err = ggui.LoadStyle(o.stylePath, style); err != nil {
			return fmt.Errorf("failed to load style: %w", err)
		}
	}

	screen, area, err := build(o.size, o.canvas, style)
	if err != nil {
		return fmt.Errorf("failed to build UI: %w", err)
	}

	if o.term {
		if err := runTerminal(screen, o.scale); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return nil
	}

	screen.Update(false, true)
	area.Viewport().ScrollTo(o.offsetX, o.offsetY)
	if err := screen.Surface().SavePNG(o.output); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	off := area.Viewport().Offset()
	log.Printf("Frame saved to %s (%dx%d, offset %d,%d)\n", o.output, o.size.W, o.size.H, off.X, off.Y)
	return nil
}

// build creates a title bar and a scroll area filled with a grid of buttons.
// Tapping a button writes its name into the title.
func build(size, canvas ggui.Size, style ggui.Style) (*ggui.Screen, *ggui.ScrollArea, error) {
	screen := ggui.NewScreen(size, ggui.WithStyle(style))
	title := ggui.NewLabel(screen, image.Pt(0, 0), ggui.Sz(size.W, titleHeight), "tap a button")

	area, err := ggui.NewScrollArea(ggui.ScrollAreaConfig{
		Position:   image.Pt(0, titleHeight),
		Size:       ggui.Sz(size.W, size.H-titleHeight),
		Parent:     screen,
		CanvasSize: canvas,
	})
	if err != nil {
		return nil, nil, err
	}

	const cell, gap = 60, 8
	content := area.ScrolledArea()
	for row := 0; (row+1)*(cell+gap) <= canvas.H; row++ {
		for col := 0; (col+1)*(cell+gap) <= canvas.W; col++ {
			name := fmt.Sprintf("%d,%d", row, col)
			b := ggui.NewButton(content, image.Pt(gap+col*(cell+gap), gap+row*(cell+gap)), ggui.Sz(cell, cell), name)
			b.OnClick(func() { title.SetText("tapped " + name) })
		}
	}
	return screen, area, nil
}

func runTerminal(screen *ggui.Screen, scale int) error {
	d, err := termdisplay.New(termdisplay.WithScale(scale))
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := d.Run(ctx, screen); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

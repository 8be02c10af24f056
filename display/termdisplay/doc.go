// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termdisplay presents a ggui Screen in a terminal and feeds
// mouse input back to it as touch events.
//
// It is a development preview for code that targets a small touchscreen:
// every terminal cell shows two vertically stacked pixels using the upper
// half block character, foreground for the top pixel and background for
// the bottom one. A scale factor samples one pixel out of each scale×scale
// block so a 320x240 display fits a 160x60 terminal at scale 2.
//
// # Usage
//
//	d, err := termdisplay.New(termdisplay.WithScale(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	screen := ggui.NewScreen(ggui.Sz(320, 240))
//	// ... build widgets ...
//	err = d.Run(ctx, screen)
//
// # Input
//
// The left mouse button is the finger: pressing sends Down, dragging with
// the button held sends Move, releasing sends Up. Esc or Ctrl+C ends Run.
//
// # Thread Safety
//
// Run owns the widget tree while it executes. Widgets must only be touched
// from callbacks invoked by Run.
package termdisplay

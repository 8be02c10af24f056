// Package ggui provides a small retained-mode widget toolkit for embedded
// touchscreens.
//
// # Overview
//
// Every widget owns an RGBA Surface of its own size. Parents composite
// their children's surfaces into their own, and the root Screen collects
// the damaged regions and presents them to a Display.
//
// # Quick Start
//
//	import "github.com/gogpu/ggui"
//
//	screen := ggui.NewScreen(ggui.Sz(320, 240))
//
//	// A 320x240 window onto a 640x480 canvas, with scrollbars as needed
//	sa := ggui.MustNewScrollArea(ggui.ScrollAreaConfig{
//		Parent:     screen,
//		Size:       ggui.Sz(320, 240),
//		CanvasSize: ggui.Sz(640, 480),
//	})
//
//	// Content widgets live on the canvas, in canvas coordinates
//	b := ggui.NewButton(sa.ScrolledArea(), image.Pt(400, 300), ggui.Sz(80, 30), "OK")
//	b.OnClick(func() { sa.Viewport().ScrollTo(0, 0) })
//
//	screen.Update(false, true)
//	screen.Surface().SavePNG("screen.png")
//
// # Updates
//
// Widget.Update(upwards, downwards) redraws a widget. downwards redraws its
// descendants first; upwards carries the change to the root so the screen
// surface reflects it. Setters such as Label.SetText and Viewport.SetOffsetY
// update upwards themselves.
//
// # Coordinate System
//
//   - Origin (0,0) at the widget's top-left corner
//   - X increases right
//   - Y increases down
//   - Touches arrive in the receiving widget's own coordinates
//
// # Scrolling
//
// A ScrollArea pairs a Viewport with up to two Sliders. The Viewport owns
// the scroll offset and keeps the sliders in step without re-triggering
// their change callbacks. A vertical slider's value counts up from the
// bottom, so value 0 means scrolled fully down.
package ggui

// Version is the current version of the library.
const Version = "0.1.0-alpha.1"

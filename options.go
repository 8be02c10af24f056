package ggui

// Option configures a widget during creation.
// Use functional options to customize placement and theme.
//
// Example:
//
//	// Centered on (160, 120), parent's style
//	b := ggui.NewButton(screen, image.Pt(160, 120), ggui.Sz(80, 30), "OK", ggui.WithAlign(ggui.Center))
//
//	// Explicit theme for one subtree
//	p := ggui.NewPanel(screen, image.Pt(0, 0), ggui.Sz(320, 40), ggui.WithStyle(dark))
type Option func(*widgetOptions)

// widgetOptions holds optional configuration for widget creation.
type widgetOptions struct {
	align Align
	style *Style
}

// defaultOptions returns the default widget options: top-left anchored,
// style inherited from the parent.
func defaultOptions() widgetOptions {
	return widgetOptions{
		align: TopLeft,
		style: nil, // Inherited from the parent if nil
	}
}

func applyOptions(opts []Option) widgetOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlign selects which point of the widget's rectangle is placed on the
// position passed to the constructor.
func WithAlign(a Align) Option {
	return func(o *widgetOptions) {
		o.align = a
	}
}

// WithStyle overrides the style inherited from the parent.
// Children created later under this widget inherit s in turn.
func WithStyle(s Style) Option {
	return func(o *widgetOptions) {
		o.style = &s
	}
}

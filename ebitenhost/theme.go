package ebitenhost

import "github.com/phanxgames/willowui"

// PanelStyle is how a named panel style fills a rectangle.
type PanelStyle struct {
	Fill     willowui.Color
	Hover    willowui.Color
	Pressed  willowui.Color
	Disabled willowui.Color
	// Focused replaces Fill while the widget holds keyboard focus or is
	// highlighted. Zero alpha keeps Fill.
	Focused     willowui.Color
	Border      willowui.Color
	BorderWidth float32
}

// fill returns the fill color for state. Zero-alpha variants fall back to
// Fill.
func (p PanelStyle) fill(state willowui.WidgetState) willowui.Color {
	pick := func(c willowui.Color) willowui.Color {
		if c.A == 0 {
			return p.Fill
		}
		return c
	}
	switch {
	case state.Disabled:
		return pick(p.Disabled)
	case state.Pressed:
		return pick(p.Pressed)
	case state.Focused || state.Highlighted:
		return pick(p.Focused)
	case state.Hover:
		return pick(p.Hover)
	}
	return p.Fill
}

// FontStyle is how a named font draws with the debug font.
type FontStyle struct {
	// Scale is an integer magnification; zero means 1.
	Scale int
	// Bold draws every glyph twice one pixel apart.
	Bold bool
}

func (f FontStyle) scale() int {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// Theme maps the style and font names widgets use to concrete looks.
type Theme struct {
	Panels map[string]PanelStyle
	Fonts  map[string]FontStyle
}

func rgb(r, g, b uint8) willowui.Color {
	return willowui.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// DefaultTheme returns a flat dark theme covering the built-in widget
// styles.
func DefaultTheme() Theme {
	border := rgb(90, 96, 110)
	return Theme{
		Panels: map[string]PanelStyle{
			"dialog": {Fill: rgb(36, 38, 46), Border: border, BorderWidth: 1},
			"button": {
				Fill: rgb(58, 64, 80), Hover: rgb(72, 80, 100), Pressed: rgb(40, 44, 56),
				Disabled: rgb(48, 48, 52), Focused: rgb(80, 96, 128),
				Border: border, BorderWidth: 1,
			},
			"textfield":          {Fill: rgb(20, 22, 28), Focused: rgb(26, 30, 40), Border: border, BorderWidth: 1},
			"dropdown":           {Fill: rgb(28, 30, 38), Border: border, BorderWidth: 1},
			"scrollpanel-button": {Fill: rgb(58, 64, 80), Hover: rgb(72, 80, 100), Pressed: rgb(40, 44, 56), Disabled: rgb(40, 40, 44)},
			"scrollthumb":        {Fill: rgb(110, 118, 140), Pressed: rgb(140, 150, 176)},
			"tooltip":            {Fill: rgb(16, 16, 20), Border: rgb(200, 190, 140), BorderWidth: 1},
		},
		Fonts: map[string]FontStyle{
			"regular": {},
			"bold":    {Bold: true},
			"title":   {Scale: 2, Bold: true},
		},
	}
}

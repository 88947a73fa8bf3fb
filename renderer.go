package willowui

// WidgetState is the interaction state a renderer picks a panel variant by.
type WidgetState struct {
	Disabled    bool
	Pressed     bool
	Hover       bool
	Focused     bool
	Highlighted bool
}

// Renderer is the drawing surface widgets paint through. Coordinates are
// screen pixels. Style names are interpreted by the renderer, typically as
// keys into a theme.
type Renderer interface {
	// DrawPanel fills r using the named style.
	DrawPanel(style string, r Rect, state WidgetState)
	// DrawText draws a single line with its top-left corner at at.
	DrawText(text, font string, at Point, c Color)
	// MeasureText returns the pixel size of a single line.
	MeasureText(text, font string) Point
	// PushClip intersects the clip region with r until the matching PopClip.
	PushClip(r Rect)
	PopClip()
}

// alignText returns the top-left position for text aligned within r and
// vertically centered.
func alignText(r Renderer, text, font string, bounds Rect, align TextAlign) Point {
	size := r.MeasureText(text, font)
	y := bounds.Y + (bounds.Height-size.Y)/2
	switch align {
	case AlignCenter:
		return Point{bounds.X + (bounds.Width-size.X)/2, y}
	case AlignRight:
		return Point{bounds.Right() - size.X, y}
	}
	return Point{bounds.X, y}
}

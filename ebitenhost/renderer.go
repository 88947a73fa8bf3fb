package ebitenhost

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/willowui"
)

// Debug font glyph cell size.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Renderer draws widgets onto an Ebitengine image. Call Begin with the
// frame's target before Context.Draw.
type Renderer struct {
	Theme Theme

	screen *ebiten.Image
	target *ebiten.Image
	clips  []image.Rectangle

	// Rendered text by string, tinted and scaled at draw time.
	glyphs map[string]*ebiten.Image
}

// NewRenderer creates a renderer using theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme, glyphs: make(map[string]*ebiten.Image)}
}

// Begin starts a frame on screen and resets the clip stack.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.target = screen
	r.clips = r.clips[:0]
}

func (r *Renderer) DrawPanel(style string, rect willowui.Rect, state willowui.WidgetState) {
	ps, ok := r.Theme.Panels[style]
	if !ok || rect.Empty() {
		return
	}
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.Width), float32(rect.Height)
	if c := ps.fill(state); c.A > 0 {
		vector.DrawFilledRect(r.target, x, y, w, h, c.RGBA8(), false)
	}
	if ps.BorderWidth > 0 && ps.Border.A > 0 {
		vector.StrokeRect(r.target, x, y, w, h, ps.BorderWidth, ps.Border.RGBA8(), false)
	}
}

func (r *Renderer) DrawText(text, font string, at willowui.Point, c willowui.Color) {
	if text == "" || c.A <= 0 {
		return
	}
	fs := r.Theme.Fonts[font]
	if fs.scale() == 1 && c == willowui.ColorWhite {
		ebitenutil.DebugPrintAt(r.target, text, at.X, at.Y)
		if fs.Bold {
			ebitenutil.DebugPrintAt(r.target, text, at.X+1, at.Y)
		}
		return
	}

	img := r.glyphImage(text)
	op := &ebiten.DrawImageOptions{}
	s := float64(fs.scale())
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c.RGBA8())
	r.target.DrawImage(img, op)
	if fs.Bold {
		op.GeoM.Translate(s, 0)
		r.target.DrawImage(img, op)
	}
}

// glyphImage returns text printed white on a transparent image, cached.
func (r *Renderer) glyphImage(text string) *ebiten.Image {
	if img, ok := r.glyphs[text]; ok {
		return img
	}
	img := ebiten.NewImage(utf8.RuneCountInString(text)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(img, text)
	r.glyphs[text] = img
	return img
}

func (r *Renderer) MeasureText(text, font string) willowui.Point {
	return measureText(text, r.Theme.Fonts[font])
}

func measureText(text string, fs FontStyle) willowui.Point {
	s := fs.scale()
	w := utf8.RuneCountInString(text) * glyphWidth * s
	if fs.Bold && w > 0 {
		w += s
	}
	return willowui.Point{X: w, Y: glyphHeight * s}
}

func (r *Renderer) PushClip(rect willowui.Rect) {
	clip := image.Rect(rect.X, rect.Y, rect.Right(), rect.Bottom())
	if n := len(r.clips); n > 0 {
		clip = clip.Intersect(r.clips[n-1])
	}
	r.clips = append(r.clips, clip)
	r.target = r.screen.SubImage(clip).(*ebiten.Image)
}

func (r *Renderer) PopClip() {
	n := len(r.clips)
	if n == 0 {
		return
	}
	r.clips = r.clips[:n-1]
	if n == 1 {
		r.target = r.screen
		return
	}
	r.target = r.screen.SubImage(r.clips[n-2]).(*ebiten.Image)
}

// ClearTextCache drops cached text images. Long-running screens with
// changing labels should call it occasionally.
func (r *Renderer) ClearTextCache() {
	for k, img := range r.glyphs {
		img.Deallocate()
		delete(r.glyphs, k)
	}
}

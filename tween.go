package willowui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 integer fields of a widget simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenBounds) and either call Update(dt) each frame or hand it to
// Context.Animate. Values are rounded to whole pixels. If the target widget
// was attached when the group was created and has since left the tree, the
// group stops immediately.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*int
	target   *Widget
	attached bool
	Done     bool
	// OnDone runs once when the group finishes.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.attached && g.target.ui == nil {
		g.finish()
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = int(math.Round(float64(val)))
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.finish()
	}
}

// Cancel stops the group where it is.
func (g *TweenGroup) Cancel() { g.Done = true }

func (g *TweenGroup) finish() {
	g.Done = true
	if g.OnDone != nil {
		g.OnDone()
	}
}

func newTweenGroup(w *Widget, count int) *TweenGroup {
	return &TweenGroup{count: count, target: w, attached: w.ui != nil}
}

// TweenPosition creates a TweenGroup that animates w.Bounds.X and
// w.Bounds.Y to the given coordinates over duration seconds.
func TweenPosition(w *Widget, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w, 2)
	g.tweens[0] = gween.New(float32(w.Bounds.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(w.Bounds.Y), float32(toY), duration, fn)
	g.fields[0] = &w.Bounds.X
	g.fields[1] = &w.Bounds.Y
	return g
}

// TweenSize creates a TweenGroup that animates w.Bounds.Width and
// w.Bounds.Height.
func TweenSize(w *Widget, toW, toH int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w, 2)
	g.tweens[0] = gween.New(float32(w.Bounds.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(w.Bounds.Height), float32(toH), duration, fn)
	g.fields[0] = &w.Bounds.Width
	g.fields[1] = &w.Bounds.Height
	return g
}

// TweenBounds creates a TweenGroup that animates all four bounds fields.
func TweenBounds(w *Widget, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w, 4)
	from := w.Bounds
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(from.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(from.Height), float32(to.Height), duration, fn)
	g.fields[0] = &w.Bounds.X
	g.fields[1] = &w.Bounds.Y
	g.fields[2] = &w.Bounds.Width
	g.fields[3] = &w.Bounds.Height
	return g
}

// Animate registers g to be advanced by every Tick until it is done.
func (ui *Context) Animate(g *TweenGroup) {
	ui.tweens = append(ui.tweens, g)
}

func (ui *Context) updateTweens(dt float32) {
	if len(ui.tweens) == 0 {
		return
	}
	current := ui.tweens
	ui.tweens = nil
	var live []*TweenGroup
	for _, g := range current {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	// Groups registered from OnDone callbacks run from the next tick.
	ui.tweens = append(live, ui.tweens...)
}

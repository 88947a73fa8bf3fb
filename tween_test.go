package willowui

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	w := box("pos", 10, 20, 5, 5)

	g := TweenPosition(w, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if w.Bounds.X != 100 || w.Bounds.Y != 200 {
		t.Errorf("position = (%d,%d), want (100,200)", w.Bounds.X, w.Bounds.Y)
	}
}

func TestTweenSizeRounds(t *testing.T) {
	w := box("size", 0, 0, 0, 0)
	g := TweenSize(w, 101, 51, 1.0, ease.Linear)
	g.Update(0.5)
	if w.Bounds.Width != 51 || w.Bounds.Height != 26 {
		t.Errorf("size = %dx%d at halfway, want 51x26", w.Bounds.Width, w.Bounds.Height)
	}
}

func TestTweenBoundsAllFields(t *testing.T) {
	w := box("b", 0, 0, 10, 10)
	to := Rect{40, 30, 20, 0}
	g := TweenBounds(w, to, 0.5, ease.OutQuad)
	g.Update(0.25)
	g.Update(0.25)
	if w.Bounds != to {
		t.Errorf("Bounds = %v, want %v", w.Bounds, to)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	w := NewContainer("done")
	calls := 0
	g := TweenPosition(w, 50, 50, 0.5, ease.Linear)
	g.OnDone = func() { calls++ }

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if calls != 1 {
		t.Errorf("OnDone ran %d times, want 1", calls)
	}
}

func TestTweenGroupStopsWhenRemoved(t *testing.T) {
	ui := newTestContext()
	w := box("mid-remove", 0, 0, 10, 10)
	ui.Root().AddChild(w)

	g := TweenPosition(w, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	ui.Root().RemoveChild(w)
	saved := w.Bounds
	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done after the widget left the tree")
	}
	if w.Bounds != saved {
		t.Error("bounds changed after removal")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	wl := NewContainer("linear")
	wc := NewContainer("cubic")

	gl := TweenPosition(wl, 100, 0, 1.0, ease.Linear)
	gc := TweenPosition(wc, 100, 0, 1.0, ease.OutCubic)

	gl.Update(0.5)
	gc.Update(0.5)

	if wc.Bounds.X <= wl.Bounds.X {
		t.Errorf("OutCubic should lead linear at the midpoint: linear=%d cubic=%d", wl.Bounds.X, wc.Bounds.X)
	}
}

func TestAnimateRunsOnTick(t *testing.T) {
	ui := NewContext(Settings{Width: 800, Height: 600, TicksPerSecond: 10})
	w := box("w", 0, 0, 10, 10)
	ui.Root().AddChild(w)

	g := TweenPosition(w, 50, 0, 0.45, ease.Linear)
	chained := false
	g.OnDone = func() {
		ui.Animate(TweenSize(w, 20, 20, 0.1, ease.Linear))
		chained = true
	}
	ui.Animate(g)

	for range 5 {
		ui.Tick()
	}
	if !g.Done || w.Bounds.X != 50 {
		t.Errorf("done = %v, X = %d; want true, 50", g.Done, w.Bounds.X)
	}
	if !chained || w.Bounds.Width != 10 {
		t.Errorf("chained tween ran in the same tick: width %d", w.Bounds.Width)
	}
	ui.Tick()
	if w.Bounds.Width != 20 {
		t.Errorf("Width = %d, want 20 one tick later", w.Bounds.Width)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	w := NewContainer("alloc")
	g := TweenPosition(w, 100, 100, 1000, ease.Linear)
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

package willowui

import "testing"

func newTestTooltips(ui *Context) *TooltipContainer {
	tc := NewTooltipContainer("tooltips")
	tc.DelayTicks = 3
	ui.Root().AddChild(tc.Widget)
	return tc
}

func tip(w, h int) func() *Widget {
	return func() *Widget { return sized("tip", w, h) }
}

func TestTooltipShowsAfterDelay(t *testing.T) {
	ui := newTestContext()
	tc := newTestTooltips(ui)
	if tc.IsVisible() {
		t.Error("empty container should be hidden")
	}
	tc.SetTooltip(tip(50, 10))
	ui.HandleMouseInput(move(100, 100))
	for i := range 3 {
		if tc.IsVisible() {
			t.Fatalf("visible after %d ticks, want hidden until 3", i)
		}
		ui.Tick()
	}
	if !tc.IsVisible() {
		t.Error("tooltip hidden after the delay")
	}
	ui.HandleMouseInput(move(101, 100))
	if tc.IsVisible() {
		t.Error("moving should hide the tooltip again")
	}
}

func TestTooltipFollowsCursor(t *testing.T) {
	ui := newTestContext()
	tc := newTestTooltips(ui)
	tc.SetTooltip(tip(50, 10))

	ui.HandleMouseInput(move(100, 100))
	if got := tc.Tooltip().RenderOrigin(); got != (Point{100, 120}) {
		t.Errorf("origin = %v, want (100,120)", got)
	}
	ui.HandleMouseInput(move(780, 100))
	if got := tc.Tooltip().RenderOrigin().X; got != 750 {
		t.Errorf("X = %d, want 750 at the right edge", got)
	}
	ui.HandleMouseInput(move(100, 590))
	if got := tc.Tooltip().RenderOrigin().Y; got != 575 {
		t.Errorf("Y = %d, want 575 above the cursor", got)
	}
}

func TestTooltipTokens(t *testing.T) {
	ui := newTestContext()
	tc := newTestTooltips(ui)
	first := tc.SetTooltip(tip(10, 10))
	second := tc.SetTooltip(tip(20, 10))
	if tc.NumChildren() != 1 || tc.Tooltip().Bounds.Width != 20 {
		t.Fatal("SetTooltip should replace the previous tooltip")
	}

	tc.RemoveTooltip(first)
	if tc.Tooltip() == nil {
		t.Error("stale token removed the current tooltip")
	}
	tc.RemoveTooltip(second)
	if tc.Tooltip() != nil || tc.NumChildren() != 0 {
		t.Error("current token did not remove the tooltip")
	}
}

func TestTooltipNeverReceivesInput(t *testing.T) {
	ui := newTestContext()
	var log []string
	under := newProbe("under", Rect{0, 0, 800, 600}, &log)
	ui.Root().AddChild(under.Widget)
	tc := newTestTooltips(ui)
	tc.DelayTicks = 0
	tc.SetTooltip(tip(50, 10))

	ui.HandleMouseInput(move(100, 100))
	ui.HandleMouseInput(down(110, 125))
	if want := []string{"under:move", "under:enter", "under:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestAttachTooltip(t *testing.T) {
	ui := newTestContext()
	tc := newTestTooltips(ui)
	target := box("target", 0, 0, 50, 50)
	left := 0
	target.OnMouseLeave = func() { left++ }
	ui.Root().AddChild(target)
	AttachTooltip(target, tc, tip(30, 10))

	ui.HandleMouseInput(move(10, 10))
	if tc.Tooltip() == nil {
		t.Fatal("hovering the target did not install its tooltip")
	}
	ui.HandleMouseInput(move(300, 300))
	if tc.Tooltip() != nil {
		t.Error("leaving the target did not remove its tooltip")
	}
	if left != 1 {
		t.Errorf("existing OnMouseLeave ran %d times, want 1", left)
	}
}

func TestTooltipDrawnOnlyWhenVisible(t *testing.T) {
	ui := newTestContext()
	tc := newTestTooltips(ui)
	l := NewLabel("tip", "hint")
	tc.SetTooltip(func() *Widget { return l.Widget })
	ui.HandleMouseInput(move(10, 10))

	r := &recordingRenderer{}
	ui.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("drew %v before the delay", r.calls)
	}
	for range 3 {
		ui.Tick()
	}
	ui.Draw(r)
	if len(r.calls) != 1 {
		t.Errorf("calls = %v, want the tooltip label", r.calls)
	}
}

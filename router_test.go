package willowui

import "testing"

// --- Mouse bubbling ---

func TestMouseBubblesFromTopmostChild(t *testing.T) {
	ui := newTestContext()
	var log []string
	bottom := newProbe("bottom", Rect{0, 0, 100, 100}, &log)
	top := newProbe("top", Rect{0, 0, 100, 100}, &log)
	ui.Root().AddChild(bottom.Widget)
	ui.Root().AddChild(top.Widget)

	if ui.HandleMouseInput(down(10, 10)) {
		t.Error("no widget consumed the event, want false")
	}
	if want := []string{"top:down", "bottom:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}

	log = nil
	top.consumeMouse = true
	if !ui.HandleMouseInput(down(10, 10)) {
		t.Error("top consumed the event, want true")
	}
	if want := []string{"top:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestMouseChildBeforeParent(t *testing.T) {
	ui := newTestContext()
	var log []string
	parent := newProbe("parent", Rect{0, 0, 100, 100}, &log)
	child := newProbe("child", Rect{10, 10, 20, 20}, &log)
	parent.AddChild(child.Widget)
	ui.Root().AddChild(parent.Widget)

	ui.HandleMouseInput(down(15, 15))
	if want := []string{"child:down", "parent:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestMouseSkipsInvisibleAndOutside(t *testing.T) {
	ui := newTestContext()
	var log []string
	hidden := newProbe("hidden", Rect{0, 0, 100, 100}, &log)
	hidden.Visible = false
	away := newProbe("away", Rect{200, 200, 10, 10}, &log)
	zero := newProbe("zero", Rect{5, 5, 0, 0}, &log)
	ui.Root().AddChild(hidden.Widget)
	ui.Root().AddChild(away.Widget)
	ui.Root().AddChild(zero.Widget)

	ui.HandleMouseInput(down(5, 5))
	if len(log) != 0 {
		t.Errorf("log = %v, want no deliveries", log)
	}
}

func TestNonClickThroughConsumes(t *testing.T) {
	ui := newTestContext()
	var log []string
	under := newProbe("under", Rect{0, 0, 100, 100}, &log)
	panel := NewContainer("panel")
	panel.Bounds = Rect{0, 0, 50, 50}
	panel.ClickThrough = false
	ui.Root().AddChild(under.Widget)
	ui.Root().AddChild(panel)

	if !ui.HandleMouseInput(down(10, 10)) {
		t.Error("opaque widget should consume")
	}
	if len(log) != 0 {
		t.Errorf("event leaked to widget behind: %v", log)
	}
	ui.HandleMouseInput(down(80, 80))
	if want := []string{"under:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

// --- Capture ---

func TestMouseCaptureReceivesEventsOutsideBounds(t *testing.T) {
	ui := newTestContext()
	var log []string
	a := newProbe("a", Rect{0, 0, 10, 10}, &log)
	b := newProbe("b", Rect{100, 100, 10, 10}, &log)
	ui.Root().AddChild(a.Widget)
	ui.Root().AddChild(b.Widget)

	if !ui.TakeMouseFocus(a.Widget, down(5, 5)) {
		t.Fatal("TakeMouseFocus failed")
	}
	// Declined by the capture owner, the event bubbles from the root and the
	// owner is offered it again there.
	ui.HandleMouseInput(down(105, 105))
	if want := []string{"a:down", "b:down", "a:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}

	log = nil
	a.consumeMouse = true
	ui.HandleMouseInput(down(105, 105))
	if want := []string{"a:down"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

// --- Mouse-over ---

func TestMouseOverEnterExit(t *testing.T) {
	ui := newTestContext()
	var log []string
	a := newProbe("a", Rect{0, 0, 10, 10}, &log)
	b := newProbe("b", Rect{20, 0, 10, 10}, &log)
	ui.Root().AddChild(a.Widget)
	ui.Root().AddChild(b.Widget)

	ui.HandleMouseInput(move(5, 5))
	if ui.MouseOver() != a.Widget {
		t.Fatalf("MouseOver = %v, want a", ui.MouseOver())
	}
	log = nil
	ui.HandleMouseInput(move(25, 5))
	if want := []string{"b:move", "a:exit", "b:enter"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	log = nil
	ui.HandleMouseInput(move(500, 500))
	if ui.MouseOver() != nil {
		t.Errorf("MouseOver = %v, want nil over empty space", ui.MouseOver())
	}
	if want := []string{"b:exit"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestMouseOverCallbacks(t *testing.T) {
	ui := newTestContext()
	w := box("w", 0, 0, 10, 10)
	entered, left := 0, 0
	w.OnMouseEnter = func() { entered++ }
	w.OnMouseLeave = func() { left++ }
	ui.Root().AddChild(w)

	ui.HandleMouseInput(move(1, 1))
	ui.HandleMouseInput(move(2, 2))
	ui.HandleMouseInput(move(50, 50))
	if entered != 1 || left != 1 {
		t.Errorf("entered/left = %d/%d, want 1/1", entered, left)
	}
}

func TestIgnoreChildMouseOver(t *testing.T) {
	ui := newTestContext()
	parent := box("parent", 0, 0, 100, 100)
	parent.IgnoreChildMouseOver = true
	child := box("child", 0, 0, 10, 10)
	parent.AddChild(child)
	ui.Root().AddChild(parent)

	ui.HandleMouseInput(move(5, 5))
	if ui.MouseOver() != parent {
		t.Errorf("MouseOver = %v, want parent", ui.MouseOver())
	}
}

func TestIgnoreMouseOver(t *testing.T) {
	ui := newTestContext()
	parent := box("parent", 0, 0, 100, 100)
	child := box("child", 0, 0, 10, 10)
	child.IgnoreMouseOver = true
	parent.AddChild(child)
	ui.Root().AddChild(parent)

	ui.HandleMouseInput(move(5, 5))
	if ui.MouseOver() != parent {
		t.Errorf("MouseOver = %v, want parent", ui.MouseOver())
	}
}

func TestMoveUpdatesLastMousePos(t *testing.T) {
	ui := newTestContext()
	ui.Tick()
	ui.Tick()
	ui.HandleMouseInput(move(7, 8))
	if ui.LastMousePos() != (Point{7, 8}) {
		t.Errorf("LastMousePos = %v", ui.LastMousePos())
	}
	if ui.TicksSinceLastMove() != 0 {
		t.Errorf("TicksSinceLastMove = %d, want 0", ui.TicksSinceLastMove())
	}
	ui.Tick()
	if ui.TicksSinceLastMove() != 1 {
		t.Errorf("TicksSinceLastMove = %d, want 1", ui.TicksSinceLastMove())
	}
}

// --- Keys and text ---

func TestKeyGoesToFocusFirst(t *testing.T) {
	ui := newTestContext()
	var log []string
	a := newProbe("a", Rect{}, &log)
	b := newProbe("b", Rect{}, &log)
	ui.Root().AddChild(a.Widget)
	ui.Root().AddChild(b.Widget)
	ui.TakeKeyboardFocus(a.Widget)

	ui.HandleKeyPress(press(KeyEnter))
	if want := []string{"a:key enter", "b:key enter"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}

	log = nil
	a.consumeKeys = true
	if !ui.HandleKeyPress(press(KeyEnter)) {
		t.Error("focused widget consumed, want true")
	}
	if want := []string{"a:key enter"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestKeyFallbackTopmostFirst(t *testing.T) {
	ui := newTestContext()
	var log []string
	ui.Root().AddChild(newProbe("a", Rect{}, &log).Widget)
	ui.Root().AddChild(newProbe("b", Rect{}, &log).Widget)

	ui.HandleKeyPress(press(Key('x')))
	if want := []string{"b:key x", "a:key x"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestTextInputRouting(t *testing.T) {
	ui := newTestContext()
	var log []string
	a := newProbe("a", Rect{}, &log)
	a.consumeKeys = true
	ui.Root().AddChild(a.Widget)
	ui.TakeKeyboardFocus(a.Widget)

	if !ui.HandleTextInput("hi") {
		t.Error("want handled")
	}
	if want := []string{"a:text hi"}; !equalLog(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

// --- Cursor ---

func TestCursorAt(t *testing.T) {
	ui := newTestContext()
	b := NewButton("b", "B")
	b.Bounds = Rect{0, 0, 50, 20}
	b.CursorName = "pointer"
	ui.Root().AddChild(b.Widget)

	if got := ui.CursorAt(Point{10, 10}); got != "pointer" {
		t.Errorf("CursorAt over button = %q, want pointer", got)
	}
	if got := ui.CursorAt(Point{300, 300}); got != "default" {
		t.Errorf("CursorAt over nothing = %q, want default", got)
	}
}

// --- Event sink ---

type sinkRecorder struct{ events []InputEvent }

func (s *sinkRecorder) EmitInput(ev InputEvent) { s.events = append(s.events, ev) }

func TestEventSinkReceivesRoutedInput(t *testing.T) {
	sink := &sinkRecorder{}
	ui := NewContext(Settings{}, WithEventSink(sink))
	w := box("w", 0, 0, 10, 10)
	w.ClickThrough = false
	ui.Root().AddChild(w)

	ui.HandleMouseInput(move(5, 5))
	ui.HandleKeyPress(press(KeyEscape))
	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want 2", len(sink.events))
	}
	if e := sink.events[0]; e.Kind != InputMouse || !e.Handled || e.TargetID != "w" {
		t.Errorf("event 0 = %+v", e)
	}
	if e := sink.events[1]; e.Kind != InputKey || e.Handled {
		t.Errorf("event 1 = %+v", e)
	}
}

package willowui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newDebugContext(buf *bytes.Buffer) *Context {
	ui := NewContext(Settings{Width: 800, Height: 600, Debug: true},
		WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	return ui
}

func TestDebugMode_DetachedWidgetPanics(t *testing.T) {
	var buf bytes.Buffer
	ui := newDebugContext(&buf)
	w := NewContainer("loose")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for focus on a detached widget")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "TakeMouseFocus") || !strings.Contains(msg, "Container@loose") {
			t.Errorf("panic message = %v", r)
		}
	}()
	ui.TakeMouseFocus(w, down(0, 0))
}

func TestDebugMode_ForeignWidgetPanics(t *testing.T) {
	var buf bytes.Buffer
	ui := newDebugContext(&buf)
	other := newTestContext()
	w := NewContainer("elsewhere")
	other.Root().AddChild(w)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a widget owned by another context")
		}
	}()
	ui.TakeKeyboardFocus(w)
}

func TestReleaseMode_DetachedWidgetNoOp(t *testing.T) {
	ui := newTestContext()
	if ui.TakeKeyboardFocus(NewContainer("loose")) {
		t.Error("release mode should refuse focus without panicking")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	ui := newDebugContext(&buf)

	parent := ui.Root()
	for range debugMaxTreeDepth - 1 {
		c := NewContainer("level")
		parent.AddChild(c)
		parent = c
	}
	if strings.Contains(buf.String(), "tree depth") {
		t.Fatalf("warned at the threshold: %s", buf.String())
	}
	parent.AddChild(NewContainer("deep"))
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	var buf bytes.Buffer
	ui := newDebugContext(&buf)
	for range debugMaxChildCount {
		ui.Root().AddChild(NewContainer("c"))
	}
	if strings.Contains(buf.String(), "child count") {
		t.Fatal("warned at the threshold")
	}
	ui.Root().AddChild(NewContainer("one-more"))
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Errorf("expected child count warning, got %q", buf.String())
	}
}

func TestReleaseMode_NoWarnings(t *testing.T) {
	var buf bytes.Buffer
	ui := NewContext(Settings{}, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	for range debugMaxChildCount + 1 {
		ui.Root().AddChild(NewContainer("c"))
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestDumpTree(t *testing.T) {
	root := box("menu", 10, 20, 300, 200)
	l := NewLabel("title", "Hi")
	l.Bounds = Rect{0, 5, 300, 20}
	root.AddChild(l.Widget)
	hidden := NewButton("quit", "Quit")
	hidden.Visible = false
	root.AddChild(hidden.Widget)

	var buf bytes.Buffer
	if err := DumpTree(&buf, root); err != nil {
		t.Fatal(err)
	}
	want := "Container@menu (10,20 300x200)\n" +
		"  Label@title (0,5 300x20)\n" +
		"  Button@quit (0,0 0x0) hidden\n"
	if buf.String() != want {
		t.Errorf("DumpTree =\n%s\nwant\n%s", buf.String(), want)
	}
}

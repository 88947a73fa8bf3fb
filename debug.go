package willowui

import (
	"fmt"
	"io"
	"strings"
)

// debugMaxTreeDepth is the depth past which AddChild warns in debug mode.
const debugMaxTreeDepth = 32

// debugMaxChildCount is the child count past which AddChild warns in debug mode.
const debugMaxChildCount = 1000

func (ui *Context) debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		ui.logger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "widget", w.String())
	}
}

func (ui *Context) debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		ui.logger.Warn("child count exceeds threshold",
			"widget", w.String(), "children", len(w.children), "threshold", debugMaxChildCount)
	}
}

// debugPanicDetached panics with a descriptive message when a widget outside
// the context's tree is used in a focus operation.
func debugPanicDetached(w *Widget, op string) {
	if w == nil {
		panic(fmt.Sprintf("willowui debug: %s on nil widget", op))
	}
	panic(fmt.Sprintf("willowui debug: %s on detached widget %s", op, w))
}

// DumpTree writes an indented outline of w's subtree with resolved bounds.
func DumpTree(out io.Writer, w *Widget) error {
	return dumpTree(out, w, 0)
}

func dumpTree(out io.Writer, w *Widget, depth int) error {
	vis := ""
	if !w.IsVisible() {
		vis = " hidden"
	}
	b := w.Bounds
	if _, err := fmt.Fprintf(out, "%s%s (%d,%d %dx%d)%s\n",
		strings.Repeat("  ", depth), w, b.X, b.Y, b.Width, b.Height, vis); err != nil {
		return err
	}
	for _, c := range w.children {
		if err := dumpTree(out, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

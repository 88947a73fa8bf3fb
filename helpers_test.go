package willowui

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

func newTestContext() *Context {
	return NewContext(Settings{Width: 800, Height: 600},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func box(id string, x, y, w, h int) *Widget {
	c := NewContainer(id)
	c.Bounds = Rect{x, y, w, h}
	return c
}

// probe is a test widget kind that records every hook call.
type probe struct {
	*Widget
	log *[]string

	consumeMouse bool
	consumeKeys  bool
	refuseYield  bool
}

func newProbe(id string, r Rect, log *[]string) *probe {
	p := &probe{log: log}
	p.Widget = NewWidget("Probe", p)
	p.ID = id
	p.Bounds = r
	return p
}

func (p *probe) record(format string, args ...any) {
	*p.log = append(*p.log, p.ID+":"+fmt.Sprintf(format, args...))
}

func (p *probe) HandleMouseInput(ui *Context, mi MouseInput) bool {
	p.record("%s", mi.Event)
	return p.consumeMouse
}

func (p *probe) HandleKeyPress(ui *Context, ki KeyInput) bool {
	p.record("key %s", ki.Key)
	return p.consumeKeys
}

func (p *probe) HandleTextInput(ui *Context, text string) bool {
	p.record("text %s", text)
	return p.consumeKeys
}

func (p *probe) YieldKeyboardFocus(ui *Context) bool {
	p.record("yield")
	return !p.refuseYield
}

func (p *probe) MouseEntered(ui *Context) { p.record("enter") }
func (p *probe) MouseExited(ui *Context)  { p.record("exit") }
func (p *probe) Tick(ui *Context)         { p.record("tick") }
func (p *probe) Removed(ui *Context)      { p.record("removed") }
func (p *probe) Hidden(ui *Context)       { p.record("hidden") }

// recordingRenderer captures draw calls. Text is measured as 6x10 pixels
// per rune.
type recordingRenderer struct {
	calls []string
	clips []Rect
}

func (r *recordingRenderer) DrawPanel(style string, rect Rect, state WidgetState) {
	r.calls = append(r.calls, fmt.Sprintf("panel %s %v", style, rect))
}

func (r *recordingRenderer) DrawText(text, font string, at Point, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %s %v", text, at))
}

func (r *recordingRenderer) MeasureText(text, font string) Point {
	return Point{6 * utf8.RuneCountInString(text), 10}
}

func (r *recordingRenderer) PushClip(rect Rect) {
	r.clips = append(r.clips, rect)
	r.calls = append(r.calls, fmt.Sprintf("clip %v", rect))
}

func (r *recordingRenderer) PopClip() {
	r.clips = r.clips[:len(r.clips)-1]
	r.calls = append(r.calls, "unclip")
}

func move(x, y int) MouseInput {
	return MouseInput{Event: MouseMove, Location: Point{x, y}}
}

func down(x, y int) MouseInput {
	return MouseInput{Event: MouseDown, Location: Point{x, y}, Button: MouseButtonLeft}
}

func up(x, y int) MouseInput {
	return MouseInput{Event: MouseUp, Location: Point{x, y}, Button: MouseButtonLeft}
}

func press(k Key) KeyInput {
	return KeyInput{Event: KeyPressed, Key: k}
}

func equalLog(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

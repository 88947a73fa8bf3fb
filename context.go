package willowui

import (
	"log/slog"
	"slices"
)

// Context owns one UI: the root widget, the window stack, focus state and
// input bookkeeping. There is no global UI state; every operation goes
// through a Context.
type Context struct {
	root    *Widget
	windows []*Widget

	keyboardFocus *Widget
	mouseFocus    *Widget
	mouseOver     *Widget

	width, height int
	settings      Settings

	registry  *Registry
	templates *Templates
	logger    *slog.Logger
	sink      EventSink
	debug     bool

	ticks          uint64
	ticksSinceMove int
	lastMousePos   Point

	dispatchDepth int
	pending       []func()
	inject        []syntheticInput

	tweens []*TweenGroup
}

// Option configures a Context at construction.
type Option func(*Context)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(ui *Context) { ui.logger = l }
}

// WithRegistry sets the widget kind registry used by template loading.
func WithRegistry(r *Registry) Option {
	return func(ui *Context) { ui.registry = r }
}

// WithTemplates sets the template set used by OpenWindow and LoadWidget.
func WithTemplates(t *Templates) Option {
	return func(ui *Context) { ui.templates = t }
}

// WithEventSink forwards every routed input to sink.
func WithEventSink(sink EventSink) Option {
	return func(ui *Context) { ui.sink = sink }
}

// NewContext creates a UI sized to settings.Width x settings.Height.
func NewContext(settings Settings, opts ...Option) *Context {
	ui := &Context{
		settings: settings.withDefaults(),
		logger:   slog.Default(),
	}
	ui.width, ui.height = ui.settings.Width, ui.settings.Height
	ui.debug = ui.settings.Debug
	for _, opt := range opts {
		opt(ui)
	}
	if ui.registry == nil {
		ui.registry = DefaultRegistry()
	}
	if ui.templates == nil {
		ui.templates = NewTemplates()
	}
	root := NewWidget("Root", nil)
	root.Bounds = Rect{Width: ui.width, Height: ui.height}
	root.IgnoreMouseOver = true
	root.ui = ui
	ui.root = root
	return ui
}

// Root returns the root widget.
func (ui *Context) Root() *Widget { return ui.root }

// Settings returns the settings the context was created with.
func (ui *Context) Settings() Settings { return ui.settings }

// Registry returns the widget kind registry.
func (ui *Context) Registry() *Registry { return ui.registry }

// Templates returns the loaded template set.
func (ui *Context) Templates() *Templates { return ui.templates }

// Logger returns the context's logger.
func (ui *Context) Logger() *slog.Logger { return ui.logger }

// SetEventSink sets or clears the input event sink.
func (ui *Context) SetEventSink(sink EventSink) { ui.sink = sink }

// SetDebugMode enables tree-size warnings and misuse panics.
func (ui *Context) SetDebugMode(enabled bool) { ui.debug = enabled }

// WindowSize returns the current window size.
func (ui *Context) WindowSize() (width, height int) { return ui.width, ui.height }

// SetWindowSize resizes the window and the root widget. Already-resolved
// widget bounds are not recomputed.
func (ui *Context) SetWindowSize(width, height int) {
	ui.width, ui.height = width, height
	ui.root.Bounds.Width, ui.root.Bounds.Height = width, height
}

// Ticks returns the number of Tick calls so far.
func (ui *Context) Ticks() uint64 { return ui.ticks }

// TicksSinceLastMove returns the ticks elapsed since the last mouse move.
func (ui *Context) TicksSinceLastMove() int { return ui.ticksSinceMove }

// LastMousePos returns the location of the last mouse move.
func (ui *Context) LastMousePos() Point { return ui.lastMousePos }

// --- Frame ---

// Tick advances the UI by one frame: one queued synthetic input is
// dispatched, every visible widget is ticked in tree order, then registered
// tweens advance.
func (ui *Context) Tick() {
	ui.processInjectedInput()
	ui.beginDispatch()
	defer ui.endDispatch()
	ui.ticks++
	ui.ticksSinceMove++
	ui.root.TickOuter(ui)
	ui.updateTweens(ui.frameSeconds())
}

// Draw paints the tree through r.
func (ui *Context) Draw(r Renderer) {
	ui.root.DrawOuter(ui, r)
}

func (ui *Context) frameSeconds() float32 {
	return 1 / float32(ui.settings.TicksPerSecond)
}

// RunAfterDispatch runs fn once the outermost input dispatch or tick
// returns. Outside a dispatch fn runs immediately.
func (ui *Context) RunAfterDispatch(fn func()) {
	if ui.dispatchDepth == 0 {
		fn()
		return
	}
	ui.pending = append(ui.pending, fn)
}

func (ui *Context) beginDispatch() { ui.dispatchDepth++ }

func (ui *Context) endDispatch() {
	ui.dispatchDepth--
	if ui.dispatchDepth > 0 {
		return
	}
	for len(ui.pending) > 0 {
		fn := ui.pending[0]
		ui.pending = ui.pending[1:]
		fn()
	}
	ui.pending = nil
}

// --- Window stack ---

// OpenWindow builds the template with the given ID against the root and
// pushes it as the new top window. The previous top window is hidden with
// its state intact.
func (ui *Context) OpenWindow(id string, subs Vars) (*Widget, error) {
	w, err := ui.BuildWidget(id, ui.root, subs)
	if err != nil {
		return nil, err
	}
	ui.PushWindow(w)
	return w, nil
}

// PushWindow pushes an already-built widget as the new top window. During
// input dispatch or a tick the stack change is applied when the dispatch
// returns.
//
// The new window takes the root slot of the window it hides, so root
// children added after that window (tooltips, overlays) stay above it.
// With no window open it is appended.
func (ui *Context) PushWindow(w *Widget) {
	ui.RunAfterDispatch(func() { ui.pushWindow(w) })
}

func (ui *Context) pushWindow(w *Widget) {
	slot := -1
	if top := ui.TopWindow(); top != nil && top.Parent == ui.root {
		slot = ui.root.indexOf(top)
		ui.root.HideChild(top)
	}
	ui.windows = append(ui.windows, w)
	ui.root.AddChildAt(w, slot)
	ui.logger.Debug("window opened", "window", w.String(), "depth", len(ui.windows))
}

// CloseWindow removes the top window and restores the one beneath it.
// No-op on an empty stack.
func (ui *Context) CloseWindow() {
	ui.RunAfterDispatch(ui.closeWindow)
}

func (ui *Context) closeWindow() {
	if len(ui.windows) == 0 {
		return
	}
	top := ui.windows[len(ui.windows)-1]
	ui.windows[len(ui.windows)-1] = nil
	ui.windows = ui.windows[:len(ui.windows)-1]
	slot := -1
	if top.Parent == ui.root {
		slot = ui.root.indexOf(top)
		ui.root.RemoveChild(top)
	}
	if next := ui.TopWindow(); next != nil {
		ui.root.AddChildAt(next, slot)
	}
	ui.logger.Debug("window closed", "window", top.String(), "depth", len(ui.windows))
}

// CloseAllWindows closes every window on the stack.
func (ui *Context) CloseAllWindows() {
	ui.RunAfterDispatch(func() {
		for len(ui.windows) > 0 {
			ui.closeWindow()
		}
	})
}

// TopWindow returns the current top window, or nil.
func (ui *Context) TopWindow() *Widget {
	if len(ui.windows) == 0 {
		return nil
	}
	return ui.windows[len(ui.windows)-1]
}

// WindowCount returns the depth of the window stack.
func (ui *Context) WindowCount() int { return len(ui.windows) }

// IsWindowOpen reports whether w is anywhere on the stack.
func (ui *Context) IsWindowOpen(w *Widget) bool {
	return slices.Contains(ui.windows, w)
}

// ResetAll closes every window, detaches every root child and clears focus
// and pending work.
func (ui *Context) ResetAll() {
	ui.RunAfterDispatch(func() {
		for len(ui.windows) > 0 {
			ui.closeWindow()
		}
		ui.root.RemoveChildren()
		ui.keyboardFocus = nil
		ui.mouseFocus = nil
		ui.mouseOver = nil
		ui.tweens = nil
	})
}

// --- Templates ---

// BuildWidget constructs the template with the given ID, resolving bounds
// against parent. The result is not attached; parent may be nil to resolve
// against the window.
func (ui *Context) BuildWidget(id string, parent *Widget, subs Vars) (*Widget, error) {
	n, ok := ui.templates.Lookup(id)
	if !ok {
		return nil, &LoadError{Path: id, Err: ErrUnknownTemplate}
	}
	return ui.buildNode(n, parent, subs, n.ID)
}

// LoadWidget builds the template with the given ID and appends it to parent.
func (ui *Context) LoadWidget(id string, parent *Widget, subs Vars) (*Widget, error) {
	w, err := ui.BuildWidget(id, parent, subs)
	if err != nil {
		return nil, err
	}
	parent.AddChild(w)
	return w, nil
}

// LoadTemplates parses YAML template data and merges it into the context's
// template set.
func (ui *Context) LoadTemplates(data []byte) error {
	t, err := ParseTemplates(data)
	if err != nil {
		return err
	}
	return ui.templates.Merge(t)
}

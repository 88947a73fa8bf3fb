package willowui

// HandleMouseInput routes one mouse event. The mouse-capture widget gets
// the first chance; otherwise the event bubbles from the topmost widget
// under the cursor toward the root. On move the mouse-over widget is
// recomputed and enter/leave notifications fire after routing. Returns
// whether any widget consumed the event.
func (ui *Context) HandleMouseInput(mi MouseInput) bool {
	ui.beginDispatch()
	defer ui.endDispatch()

	wasOver := ui.mouseOver
	if mi.Event == MouseMove {
		ui.mouseOver = nil
	}

	handled := false
	if mf := ui.mouseFocus; mf != nil && mf.ui == ui {
		handled = mf.HandleMouseInputOuter(ui, mi)
	}
	if !handled {
		handled = ui.root.HandleMouseInputOuter(ui, mi)
	}

	if mi.Event == MouseMove {
		ui.lastMousePos = mi.Location
		ui.ticksSinceMove = 0
	}

	if wasOver != ui.mouseOver {
		if wasOver != nil && wasOver.ui == ui {
			notifyExited(ui, wasOver)
		}
		if now := ui.mouseOver; now != nil {
			notifyEntered(ui, now)
		}
	}

	ui.emit(InputEvent{Kind: InputMouse, Mouse: mi, Handled: handled, TargetID: widgetID(ui.mouseOver)})
	return handled
}

func notifyEntered(ui *Context, w *Widget) {
	if h, ok := w.behavior.(HoverNotifier); ok {
		h.MouseEntered(ui)
	}
	if w.OnMouseEnter != nil {
		w.OnMouseEnter()
	}
}

func notifyExited(ui *Context, w *Widget) {
	if h, ok := w.behavior.(HoverNotifier); ok {
		h.MouseExited(ui)
	}
	if w.OnMouseLeave != nil {
		w.OnMouseLeave()
	}
}

// HandleMouseInputOuter offers mi to w's subtree: children first in reverse
// paint order, then w itself. A widget is considered when it holds mouse or
// keyboard focus, or is visible with the location inside its event bounds.
func (w *Widget) HandleMouseInputOuter(ui *Context, mi MouseInput) bool {
	focused := ui.mouseFocus == w || ui.keyboardFocus == w
	if !focused && !(w.IsVisible() && w.EventBoundsContains(mi.Location)) {
		return false
	}

	oldOver := ui.mouseOver
	children := w.snapshot()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.Parent != w {
			continue
		}
		if c.HandleMouseInputOuter(ui, mi) {
			return true
		}
	}

	if w.IgnoreChildMouseOver {
		ui.mouseOver = oldOver
	}
	if mi.Event == MouseMove && ui.mouseOver == nil && !w.IgnoreMouseOver {
		ui.mouseOver = w
	}

	if h, ok := w.behavior.(MouseHandler); ok && h.HandleMouseInput(ui, mi) {
		return true
	}
	return !w.ClickThrough && w.IsVisible() && w.EventBounds().Contains(mi.Location)
}

// HandleKeyPress routes one key event. The keyboard-focus widget is tried
// first; if it declines, the tree is searched from the topmost widget down,
// skipping the focus widget's subtree.
func (ui *Context) HandleKeyPress(ki KeyInput) bool {
	ui.beginDispatch()
	defer ui.endDispatch()

	kf := ui.keyboardFocus
	if kf != nil && kf.ui != ui {
		kf = nil
	}
	handled := false
	if kf != nil {
		handled = kf.handleKeyPressOuter(ui, ki, nil)
	}
	if !handled {
		handled = ui.root.handleKeyPressOuter(ui, ki, kf)
	}
	ui.emit(InputEvent{Kind: InputKey, Key: ki, Handled: handled, TargetID: widgetID(kf)})
	return handled
}

// HandleKeyPressOuter offers ki to w's visible subtree, children first in
// reverse paint order.
func (w *Widget) HandleKeyPressOuter(ui *Context, ki KeyInput) bool {
	return w.handleKeyPressOuter(ui, ki, nil)
}

func (w *Widget) handleKeyPressOuter(ui *Context, ki KeyInput, skip *Widget) bool {
	if w == skip || !w.IsVisible() {
		return false
	}
	children := w.snapshot()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.Parent == w && c.handleKeyPressOuter(ui, ki, skip) {
			return true
		}
	}
	if h, ok := w.behavior.(KeyHandler); ok {
		return h.HandleKeyPress(ui, ki)
	}
	return false
}

// HandleTextInput routes committed text the same way as key presses.
func (ui *Context) HandleTextInput(text string) bool {
	ui.beginDispatch()
	defer ui.endDispatch()

	kf := ui.keyboardFocus
	if kf != nil && kf.ui != ui {
		kf = nil
	}
	handled := false
	if kf != nil {
		handled = kf.handleTextInputOuter(ui, text, nil)
	}
	if !handled {
		handled = ui.root.handleTextInputOuter(ui, text, kf)
	}
	ui.emit(InputEvent{Kind: InputText, Text: text, Handled: handled, TargetID: widgetID(kf)})
	return handled
}

// HandleTextInputOuter offers text to w's visible subtree.
func (w *Widget) HandleTextInputOuter(ui *Context, text string) bool {
	return w.handleTextInputOuter(ui, text, nil)
}

func (w *Widget) handleTextInputOuter(ui *Context, text string, skip *Widget) bool {
	if w == skip || !w.IsVisible() {
		return false
	}
	children := w.snapshot()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.Parent == w && c.handleTextInputOuter(ui, text, skip) {
			return true
		}
	}
	if h, ok := w.behavior.(TextHandler); ok {
		return h.HandleTextInput(ui, text)
	}
	return false
}

// CursorAt returns the cursor name for p: the topmost visible widget whose
// event bounds contain p and that names a cursor, or the default cursor.
func (ui *Context) CursorAt(p Point) string {
	if c := ui.root.cursorOuter(p); c != "" {
		return c
	}
	return ui.settings.DefaultCursor
}

func (w *Widget) cursorOuter(p Point) string {
	if !w.IsVisible() || !w.EventBoundsContains(p) {
		return ""
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		if c := w.children[i].cursorOuter(p); c != "" {
			return c
		}
	}
	if cp, ok := w.behavior.(CursorProvider); ok && w.EventBounds().Contains(p) {
		return cp.Cursor(p)
	}
	return ""
}

func (ui *Context) emit(ev InputEvent) {
	if ui.sink != nil {
		ui.sink.EmitInput(ev)
	}
}

func widgetID(w *Widget) string {
	if w == nil {
		return ""
	}
	return w.ID
}

package willowui

// KeyboardFocus returns the widget holding keyboard focus, or nil.
func (ui *Context) KeyboardFocus() *Widget { return ui.keyboardFocus }

// MouseFocus returns the widget holding mouse capture, or nil.
func (ui *Context) MouseFocus() *Widget { return ui.mouseFocus }

// MouseOver returns the most specific widget under the cursor as of the
// last mouse move, or nil.
func (ui *Context) MouseOver() *Widget { return ui.mouseOver }

// TakeKeyboardFocus gives w keyboard focus. The current holder is asked to
// yield first; if it refuses, focus does not move and false is returned.
func (ui *Context) TakeKeyboardFocus(w *Widget) bool {
	if !ui.checkAttached(w, "TakeKeyboardFocus") {
		return false
	}
	if ui.keyboardFocus == w {
		return true
	}
	if cur := ui.keyboardFocus; cur != nil && !ui.YieldKeyboardFocus(cur) {
		ui.logger.Debug("keyboard focus refused", "holder", cur.String(), "requester", w.String())
		return false
	}
	ui.keyboardFocus = w
	return true
}

// YieldKeyboardFocus asks w to give up keyboard focus. It returns false
// only when w refuses. Yielding when w does not hold focus succeeds.
func (ui *Context) YieldKeyboardFocus(w *Widget) bool {
	if y, ok := w.behavior.(KeyboardFocusYielder); ok && !y.YieldKeyboardFocus(ui) {
		return false
	}
	if ui.keyboardFocus == w {
		ui.keyboardFocus = nil
	}
	return true
}

// ForceYieldKeyboardFocus clears keyboard focus from w regardless of its
// answer.
func (ui *Context) ForceYieldKeyboardFocus(w *Widget) {
	if ui.keyboardFocus != w {
		return
	}
	ui.YieldKeyboardFocus(w)
	ui.keyboardFocus = nil
}

// TakeMouseFocus gives w mouse capture, routing every mouse event to it
// first until released. The current holder is asked to yield first.
func (ui *Context) TakeMouseFocus(w *Widget, mi MouseInput) bool {
	if !ui.checkAttached(w, "TakeMouseFocus") {
		return false
	}
	if ui.mouseFocus == w {
		return true
	}
	if cur := ui.mouseFocus; cur != nil && !ui.YieldMouseFocus(cur, mi) {
		return false
	}
	ui.mouseFocus = w
	return true
}

// YieldMouseFocus asks w to release mouse capture.
func (ui *Context) YieldMouseFocus(w *Widget, mi MouseInput) bool {
	if y, ok := w.behavior.(MouseFocusYielder); ok && !y.YieldMouseFocus(ui, mi) {
		return false
	}
	if ui.mouseFocus == w {
		ui.mouseFocus = nil
	}
	return true
}

// ForceYieldMouseFocus clears mouse capture from w regardless of its answer.
func (ui *Context) ForceYieldMouseFocus(w *Widget) {
	if ui.mouseFocus != w {
		return
	}
	ui.YieldMouseFocus(w, MouseInput{Event: MouseUp, Location: ui.lastMousePos})
	ui.mouseFocus = nil
}

// forceYieldFocus releases every focus pointer held by w. Used when w
// leaves the tree.
func (ui *Context) forceYieldFocus(w *Widget) {
	ui.ForceYieldKeyboardFocus(w)
	ui.ForceYieldMouseFocus(w)
	if ui.mouseOver == w {
		ui.mouseOver = nil
		notifyExited(ui, w)
	}
}

// checkAttached reports whether w belongs to ui. In debug mode a foreign or
// detached widget panics instead.
func (ui *Context) checkAttached(w *Widget, op string) bool {
	if w != nil && w.ui == ui {
		return true
	}
	if ui.debug {
		debugPanicDetached(w, op)
	}
	return false
}

package willowui

// syntheticInput is one queued input event. Exactly one of the fields is
// meaningful, selected by kind.
type syntheticInput struct {
	kind  InputKind
	mouse MouseInput
	key   KeyInput
	text  string
}

// InjectMove queues a mouse move to p. Queued events are dispatched one per
// Tick, before widgets are ticked.
func (ui *Context) InjectMove(p Point) {
	ui.injectMouse(MouseInput{Event: MouseMove, Location: p})
}

// InjectPress queues a left-button press at p.
func (ui *Context) InjectPress(p Point) {
	ui.injectMouse(MouseInput{Event: MouseDown, Location: p, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at p.
func (ui *Context) InjectRelease(p Point) {
	ui.injectMouse(MouseInput{Event: MouseUp, Location: p, Button: MouseButtonLeft})
}

// InjectClick queues a move, press and release at p. Consumes three ticks.
func (ui *Context) InjectClick(p Point) {
	ui.InjectMove(p)
	ui.InjectPress(p)
	ui.InjectRelease(p)
}

// InjectWheel queues one wheel step at p. Positive steps scroll up.
func (ui *Context) InjectWheel(p Point, steps int) {
	ev := MouseWheelUp
	if steps < 0 {
		ev, steps = MouseWheelDown, -steps
	}
	for range steps {
		ui.injectMouse(MouseInput{Event: ev, Location: p})
	}
}

// InjectDrag queues a press at from, frames-2 interpolated moves and a
// release at to. Minimum frames is 2.
func (ui *Context) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	ui.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		ui.injectMouse(MouseInput{
			Event:    MouseMove,
			Location: Point{from.X + (to.X-from.X)*i/(steps+1), from.Y + (to.Y-from.Y)*i/(steps+1)},
			Button:   MouseButtonLeft,
		})
	}
	ui.InjectRelease(to)
}

// InjectKey queues a press and release of k.
func (ui *Context) InjectKey(k Key, mods KeyModifiers) {
	ui.inject = append(ui.inject,
		syntheticInput{kind: InputKey, key: KeyInput{Event: KeyPressed, Key: k, Modifiers: mods}},
		syntheticInput{kind: InputKey, key: KeyInput{Event: KeyReleased, Key: k, Modifiers: mods}})
}

// InjectText queues committed text input.
func (ui *Context) InjectText(text string) {
	ui.inject = append(ui.inject, syntheticInput{kind: InputText, text: text})
}

// PendingInjected returns the number of queued synthetic events.
func (ui *Context) PendingInjected() int { return len(ui.inject) }

func (ui *Context) injectMouse(mi MouseInput) {
	ui.inject = append(ui.inject, syntheticInput{kind: InputMouse, mouse: mi})
}

// processInjectedInput pops and dispatches one queued event. Returns true
// if an event was dispatched.
func (ui *Context) processInjectedInput() bool {
	if len(ui.inject) == 0 {
		return false
	}
	ev := ui.inject[0]
	copy(ui.inject, ui.inject[1:])
	ui.inject = ui.inject[:len(ui.inject)-1]

	switch ev.kind {
	case InputMouse:
		ui.HandleMouseInput(ev.mouse)
	case InputKey:
		ui.HandleKeyPress(ev.key)
	case InputText:
		ui.HandleTextInput(ev.text)
	}
	return true
}

package willowui

// Widget kinds attach behavior by embedding *Widget and registering
// themselves with NewWidget. The tree and the router look for the optional
// hook interfaces below on that behavior value. Hook method names never
// collide with *Widget methods, so embedding does not satisfy them by
// accident.

// Drawer paints a widget. Children are painted after their parent.
type Drawer interface {
	Draw(ui *Context, r Renderer)
}

// Ticker advances per-frame widget state.
type Ticker interface {
	Tick(ui *Context)
}

// MouseHandler handles a mouse event after none of the widget's children
// consumed it. Returning true consumes the event.
type MouseHandler interface {
	HandleMouseInput(ui *Context, mi MouseInput) bool
}

// KeyHandler handles a key event after none of the widget's children
// consumed it.
type KeyHandler interface {
	HandleKeyPress(ui *Context, ki KeyInput) bool
}

// TextHandler handles committed text input.
type TextHandler interface {
	HandleTextInput(ui *Context, text string) bool
}

// KeyboardFocusYielder is asked before keyboard focus moves away. Returning
// false keeps focus. Forced yields ignore the answer.
type KeyboardFocusYielder interface {
	YieldKeyboardFocus(ui *Context) bool
}

// MouseFocusYielder is asked before mouse capture is released.
type MouseFocusYielder interface {
	YieldMouseFocus(ui *Context, mi MouseInput) bool
}

// HoverNotifier is told when the cursor enters or leaves the widget as the
// context's mouse-over widget.
type HoverNotifier interface {
	MouseEntered(ui *Context)
	MouseExited(ui *Context)
}

// EventAreaProvider replaces the widget's own event rectangle.
type EventAreaProvider interface {
	EventArea() Rect
}

// HitTester replaces the whole containment test, children included.
type HitTester interface {
	HitTest(p Point) bool
}

// ChildOriginOffsetter maps the widget's render origin to the origin its
// children are positioned against.
type ChildOriginOffsetter interface {
	OffsetChildOrigin(base Point) Point
}

// ChildClipper restricts child drawing to a screen rectangle. Children that
// do not intersect it are skipped.
type ChildClipper interface {
	ClipChildren() Rect
}

// ChildObserver is notified of child list changes. ChildAdding runs before
// the child is appended, so Children does not include it yet.
// ChildReplaced runs after replacement has taken old's slot.
type ChildObserver interface {
	ChildAdding(child *Widget)
	ChildRemoved(child *Widget)
	ChildReplaced(old, replacement *Widget)
	ChildrenCleared()
}

// RemovalNotifier runs when the widget leaves the tree through RemoveChild
// or RemoveChildren.
type RemovalNotifier interface {
	Removed(ui *Context)
}

// HideNotifier runs when the widget is detached by HideChild.
type HideNotifier interface {
	Hidden(ui *Context)
}

// Cloner copies behavior onto a cloned widget. It must return a fresh
// behavior value whose embedded widget is clone.
type Cloner interface {
	CloneBehavior(clone *Widget) any
}

// Configurer reads kind-specific template fields.
type Configurer interface {
	Configure(f *Fields) error
}

// CursorProvider names the cursor shown while hovering the widget.
type CursorProvider interface {
	Cursor(p Point) string
}

package willowui

import (
	"errors"
	"fmt"
)

// Widget is the single node type in the UI tree. Concrete kinds embed
// *Widget and attach themselves as its behavior; the hooks in behavior.go
// are looked up on that value.
type Widget struct {
	// ID names the widget for Get lookups. Not required to be unique; the
	// first match in depth-first order wins.
	ID string
	// Kind is the registry name the widget was created under.
	Kind string

	// X, Y, Width and Height are the declared bounds, resolved by Initialize.
	X, Y, Width, Height Expr

	// Bounds is relative to the parent's child origin.
	Bounds Rect

	// Visible is used when no visibility accessor is bound.
	Visible bool
	// ClickThrough lets events the widget does not handle pass to widgets
	// behind it. When false, any mouse event inside the event bounds is
	// consumed.
	ClickThrough bool
	// IgnoreMouseOver keeps the widget from becoming the mouse-over widget.
	IgnoreMouseOver bool
	// IgnoreChildMouseOver keeps descendants from becoming the mouse-over
	// widget.
	IgnoreChildMouseOver bool

	// OnMouseEnter and OnMouseLeave run when the widget becomes or stops
	// being the mouse-over widget.
	OnMouseEnter func()
	OnMouseLeave func()

	Parent   *Widget
	children []*Widget

	behavior  any
	visibleFn func() bool
	ui        *Context

	hint    Point
	hasHint bool
}

// NewWidget creates a widget of the given kind. behavior is the value hooks
// are looked up on; nil gives a plain container.
func NewWidget(kind string, behavior any) *Widget {
	return &Widget{
		Kind:         kind,
		Visible:      true,
		ClickThrough: true,
		behavior:     behavior,
	}
}

// NewContainer creates a plain grouping widget with no drawing or input.
func NewContainer(id string) *Widget {
	w := NewWidget("Container", nil)
	w.ID = id
	return w
}

// Behavior returns the value the widget's hooks are resolved on.
func (w *Widget) Behavior() any { return w.behavior }

// Context returns the context the widget is attached to, or nil while it is
// outside the root's subtree.
func (w *Widget) Context() *Context { return w.ui }

func (w *Widget) String() string {
	if w.ID == "" {
		return w.Kind
	}
	return w.Kind + "@" + w.ID
}

// --- Visibility ---

// IsVisible reports whether the widget is drawn, ticked and routed to. A
// bound accessor takes precedence over the Visible field.
func (w *Widget) IsVisible() bool {
	if w.visibleFn != nil {
		return w.visibleFn()
	}
	return w.Visible
}

// BindVisible makes visibility a live predicate. Pass nil to go back to the
// Visible field.
func (w *Widget) BindVisible(fn func() bool) {
	w.visibleFn = fn
}

// --- Bounds ---

// Initialize resolves the declared bounds. The parent used for PARENT_*
// variables is w.Parent, or the window when there is none. Width and Height
// are resolved first and exposed as WIDTH and HEIGHT to X and Y. Unset
// expressions evaluate to 0.
func (w *Widget) Initialize(ui *Context, subs Vars) error {
	var parent Rect
	if w.Parent != nil {
		parent = w.Parent.Bounds
	} else if ui != nil {
		parent = Rect{Width: ui.width, Height: ui.height}
	}
	vars := make(Vars, len(subs)+8)
	for k, v := range subs {
		vars[k] = v
	}
	if ui != nil {
		vars["WINDOW_RIGHT"] = ui.width
		vars["WINDOW_BOTTOM"] = ui.height
	}
	vars["PARENT_LEFT"] = 0
	vars["PARENT_TOP"] = 0
	vars["PARENT_RIGHT"] = parent.Width
	vars["PARENT_BOTTOM"] = parent.Height

	width, err := w.Width.Eval(vars)
	if err != nil {
		return &BoundsError{WidgetID: w.ID, Field: "Width", Err: err}
	}
	height, err := w.Height.Eval(vars)
	if err != nil {
		return &BoundsError{WidgetID: w.ID, Field: "Height", Err: err}
	}
	vars["WIDTH"] = width
	vars["HEIGHT"] = height
	x, err := w.X.Eval(vars)
	if err != nil {
		return &BoundsError{WidgetID: w.ID, Field: "X", Err: err}
	}
	y, err := w.Y.Eval(vars)
	if err != nil {
		return &BoundsError{WidgetID: w.ID, Field: "Y", Err: err}
	}
	w.Bounds = Rect{x, y, width, height}
	w.hint = Point{x, y}
	w.hasHint = true
	return nil
}

// layoutHint is the declared position layouts offset children from.
// Widgets never initialized use their position at first layout.
func (w *Widget) layoutHint() Point {
	if !w.hasHint {
		w.hint = w.Bounds.Origin()
		w.hasHint = true
	}
	return w.hint
}

// RenderOrigin returns the widget's top-left corner in screen space.
func (w *Widget) RenderOrigin() Point {
	o := w.Bounds.Origin()
	if w.Parent != nil {
		o = o.Add(w.Parent.ChildOrigin())
	}
	return o
}

// ChildOrigin returns the screen-space origin children's bounds are
// relative to.
func (w *Widget) ChildOrigin() Point {
	o := w.RenderOrigin()
	if off, ok := w.behavior.(ChildOriginOffsetter); ok {
		o = off.OffsetChildOrigin(o)
	}
	return o
}

// RenderBounds returns the widget's rectangle in screen space.
func (w *Widget) RenderBounds() Rect {
	o := w.RenderOrigin()
	return Rect{o.X, o.Y, w.Bounds.Width, w.Bounds.Height}
}

// EventBounds returns the screen rectangle the widget itself accepts
// events in.
func (w *Widget) EventBounds() Rect {
	if p, ok := w.behavior.(EventAreaProvider); ok {
		return p.EventArea()
	}
	return w.RenderBounds()
}

// EventBoundsContains reports whether p is inside the widget's own event
// bounds or those of any visible descendant.
func (w *Widget) EventBoundsContains(p Point) bool {
	if h, ok := w.behavior.(HitTester); ok {
		return h.HitTest(p)
	}
	if w.EventBounds().Contains(p) {
		return true
	}
	for _, c := range w.children {
		if c.IsVisible() && c.EventBoundsContains(p) {
			return true
		}
	}
	return false
}

// --- Tree manipulation ---

// AddChild appends child as the topmost child. If child already has a
// parent, it is removed from that parent first without removal hooks.
// Panics if child is nil or an ancestor of w.
func (w *Widget) AddChild(child *Widget) {
	w.AddChildAt(child, -1)
}

// AddChildAt inserts child at index. An index of -1 appends.
func (w *Widget) AddChildAt(child *Widget, index int) {
	if child == nil {
		panic("willowui: cannot add nil child")
	}
	if isAncestor(child, w) {
		panic("willowui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(w.children) {
		index = len(w.children)
	}
	if obs, ok := w.behavior.(ChildObserver); ok {
		obs.ChildAdding(child)
	}
	child.Parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	setSubtreeContext(child, w.ui)
	if w.ui != nil && w.ui.debug {
		w.ui.debugCheckTreeDepth(child)
		w.ui.debugCheckChildCount(w)
	}
}

// RemoveChild detaches child and runs removal hooks on its subtree. Focus
// held anywhere in the subtree is force-released. Panics if child.Parent
// is not w.
func (w *Widget) RemoveChild(child *Widget) {
	if child.Parent != w {
		panic("willowui: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
	child.removed(w.ui)
	setSubtreeContext(child, nil)
	if obs, ok := w.behavior.(ChildObserver); ok {
		obs.ChildRemoved(child)
	}
}

// HideChild detaches child without removal hooks, keeping its state for a
// later AddChild. Focus held in the subtree is force-released and hide
// hooks run.
func (w *Widget) HideChild(child *Widget) {
	if child.Parent != w {
		panic("willowui: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
	child.hidden(w.ui)
	setSubtreeContext(child, nil)
	if obs, ok := w.behavior.(ChildObserver); ok {
		obs.ChildRemoved(child)
	}
}

// RemoveFromParent detaches w from its parent with removal hooks.
// No-op if w has no parent.
func (w *Widget) RemoveFromParent() {
	if w.Parent == nil {
		return
	}
	w.Parent.RemoveChild(w)
}

// RemoveChildren detaches every child with removal hooks.
func (w *Widget) RemoveChildren() {
	old := w.children
	w.children = nil
	for _, c := range old {
		c.Parent = nil
		c.removed(w.ui)
		setSubtreeContext(c, nil)
	}
	if obs, ok := w.behavior.(ChildObserver); ok {
		obs.ChildrenCleared()
	}
}

// ReplaceChild swaps replacement into old's slot. Removal hooks run on old;
// a replacement that already has a parent is detached from it first.
func (w *Widget) ReplaceChild(old, replacement *Widget) {
	if old.Parent != w {
		panic("willowui: child's parent is not this widget")
	}
	if replacement == nil {
		panic("willowui: cannot add nil child")
	}
	if replacement == old {
		return
	}
	if isAncestor(replacement, w) {
		panic("willowui: adding child would create a cycle")
	}
	if replacement.Parent != nil {
		replacement.Parent.removeChildByPtr(replacement)
	}
	w.children[w.indexOf(old)] = replacement
	old.Parent = nil
	old.removed(w.ui)
	setSubtreeContext(old, nil)
	replacement.Parent = w
	setSubtreeContext(replacement, w.ui)
	if w.ui != nil && w.ui.debug {
		w.ui.debugCheckTreeDepth(replacement)
	}
	if obs, ok := w.behavior.(ChildObserver); ok {
		obs.ChildReplaced(old, replacement)
	}
}

// Children returns the child list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (w *Widget) Children() []*Widget { return w.children }

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return len(w.children) }

// ChildAt returns the child at index.
func (w *Widget) ChildAt(index int) *Widget { return w.children[index] }

func (w *Widget) indexOf(child *Widget) int {
	for i, c := range w.children {
		if c == child {
			return i
		}
	}
	return -1
}

// snapshot copies the child list so hooks can mutate the tree mid-pass.
func (w *Widget) snapshot() []*Widget {
	if len(w.children) == 0 {
		return nil
	}
	return append([]*Widget(nil), w.children...)
}

func (w *Widget) removed(ui *Context) {
	if ui != nil {
		ui.forceYieldFocus(w)
	}
	for _, c := range w.snapshot() {
		c.removed(ui)
	}
	if r, ok := w.behavior.(RemovalNotifier); ok {
		r.Removed(ui)
	}
}

func (w *Widget) hidden(ui *Context) {
	if ui != nil {
		ui.forceYieldFocus(w)
	}
	for _, c := range w.snapshot() {
		c.hidden(ui)
	}
	if h, ok := w.behavior.(HideNotifier); ok {
		h.Hidden(ui)
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	if i := w.indexOf(child); i >= 0 {
		copy(w.children[i:], w.children[i+1:])
		w.children[len(w.children)-1] = nil
		w.children = w.children[:len(w.children)-1]
	}
}

func setSubtreeContext(w *Widget, ui *Context) {
	w.ui = ui
	for _, c := range w.children {
		setSubtreeContext(c, ui)
	}
}

// --- Lookup ---

// GetOrNil returns the first descendant with the given ID in depth-first
// order, or nil.
func (w *Widget) GetOrNil(id string) *Widget {
	for _, c := range w.children {
		if c.ID == id {
			return c
		}
		if found := c.GetOrNil(id); found != nil {
			return found
		}
	}
	return nil
}

// Get is like GetOrNil but returns ErrWidgetNotFound when nothing matches.
func (w *Widget) Get(id string) (*Widget, error) {
	if found := w.GetOrNil(id); found != nil {
		return found, nil
	}
	return nil, fmt.Errorf("%w: %q under %s", ErrWidgetNotFound, id, w)
}

// GetAs finds the descendant with the given ID and returns its behavior as T.
func GetAs[T any](w *Widget, id string) (T, error) {
	var zero T
	found, err := w.Get(id)
	if err != nil {
		return zero, err
	}
	if t, ok := found.behavior.(T); ok {
		return t, nil
	}
	if t, ok := any(found).(T); ok {
		return t, nil
	}
	return zero, fmt.Errorf("widget %q is %s, not %T", id, found.Kind, zero)
}

// --- Clone ---

// Clone deep-copies the widget and its subtree. The copy is detached.
// Kinds whose behavior does not implement Cloner return ErrNotCloneable.
func (w *Widget) Clone() (*Widget, error) {
	c := &Widget{
		ID:                   w.ID,
		Kind:                 w.Kind,
		X:                    w.X,
		Y:                    w.Y,
		Width:                w.Width,
		Height:               w.Height,
		Bounds:               w.Bounds,
		Visible:              w.Visible,
		ClickThrough:         w.ClickThrough,
		IgnoreMouseOver:      w.IgnoreMouseOver,
		IgnoreChildMouseOver: w.IgnoreChildMouseOver,
		OnMouseEnter:         w.OnMouseEnter,
		OnMouseLeave:         w.OnMouseLeave,
		visibleFn:            w.visibleFn,
		hint:                 w.hint,
		hasHint:              w.hasHint,
	}
	if w.behavior != nil {
		cl, ok := w.behavior.(Cloner)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotCloneable, w.Kind)
		}
		c.behavior = cl.CloneBehavior(c)
	}
	for _, child := range w.children {
		cc, err := child.Clone()
		if err != nil {
			return nil, err
		}
		c.AddChild(cc)
	}
	return c, nil
}

// --- Focus helpers ---

// HasKeyboardFocus reports whether w holds keyboard focus in its context.
func (w *Widget) HasKeyboardFocus() bool {
	return w.ui != nil && w.ui.keyboardFocus == w
}

// HasMouseFocus reports whether w holds mouse capture in its context.
func (w *Widget) HasMouseFocus() bool {
	return w.ui != nil && w.ui.mouseFocus == w
}

// IsMouseOver reports whether w is the context's mouse-over widget.
func (w *Widget) IsMouseOver() bool {
	return w.ui != nil && w.ui.mouseOver == w
}

// --- Frame traversal ---

// DrawOuter draws w and its subtree in painter order. Invisible widgets
// skip their whole subtree.
func (w *Widget) DrawOuter(ui *Context, r Renderer) {
	if !w.IsVisible() {
		return
	}
	if d, ok := w.behavior.(Drawer); ok {
		d.Draw(ui, r)
	}
	if len(w.children) == 0 {
		return
	}
	clipper, ok := w.behavior.(ChildClipper)
	if !ok {
		for _, c := range w.children {
			c.DrawOuter(ui, r)
		}
		return
	}
	clip := clipper.ClipChildren()
	r.PushClip(clip)
	for _, c := range w.children {
		if c.RenderBounds().Intersects(clip) {
			c.DrawOuter(ui, r)
		}
	}
	r.PopClip()
}

// TickOuter ticks w and then its children. Invisible widgets skip their
// whole subtree. Children detached by an earlier hook in the same pass are
// skipped.
func (w *Widget) TickOuter(ui *Context) {
	if !w.IsVisible() {
		return
	}
	if t, ok := w.behavior.(Ticker); ok {
		t.Tick(ui)
	}
	for _, c := range w.snapshot() {
		if c.Parent == w {
			c.TickOuter(ui)
		}
	}
}

var errNoBehavior = errors.New("widget has no behavior")

// As returns w's behavior as T.
func As[T any](w *Widget) (T, error) {
	var zero T
	if w.behavior == nil {
		return zero, fmt.Errorf("%s: %w", w, errNoBehavior)
	}
	t, ok := w.behavior.(T)
	if !ok {
		return zero, fmt.Errorf("widget %s is not %T", w, zero)
	}
	return t, nil
}

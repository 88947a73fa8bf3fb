package willowui

import (
	"fmt"
)

// Mask is a full-screen click catcher placed under an open popup. Mouse
// moves pass through so hover keeps working; everything else is consumed
// and a press reports to OnMouseDown.
type Mask struct {
	*Widget
	OnMouseDown func(mi MouseInput)
}

// NewMask creates a mask.
func NewMask() *Mask {
	m := &Mask{}
	m.Widget = NewWidget("Mask", m)
	m.IgnoreMouseOver = true
	return m
}

func (m *Mask) HandleMouseInput(ui *Context, mi MouseInput) bool {
	switch mi.Event {
	case MouseMove:
		return false
	case MouseDown:
		if m.OnMouseDown != nil {
			m.OnMouseDown(mi)
		}
	}
	return true
}

func (m *Mask) Cursor(p Point) string { return "" }

// DropDownButton is a button that opens a popup panel beneath itself. While
// the panel is open a mask covers the screen; pressing anywhere outside the
// panel closes it. The button holds keyboard focus while open so Escape
// closes the panel.
type DropDownButton struct {
	*Button
	// PanelRoot is the ID of the widget the panel is attached under. Empty
	// means the context root.
	PanelRoot string
	// PanelAlign places the panel's left edge, center or right edge at the
	// button's matching edge.
	PanelAlign TextAlign

	panel     *Widget
	mask      *Mask
	panelRoot *Widget
	onCancel  func()
	ctx       *Context
}

// NewDropDownButton creates a dropdown button.
func NewDropDownButton(id, text string) *DropDownButton {
	dd := &DropDownButton{Button: newButton(text)}
	dd.Style = "dropdown"
	dd.Align = AlignLeft
	dd.Widget = NewWidget("DropDownButton", dd)
	dd.ID = id
	return dd
}

// IsOpen reports whether a panel is attached.
func (dd *DropDownButton) IsOpen() bool { return dd.panel != nil }

// Panel returns the attached panel, or nil.
func (dd *DropDownButton) Panel() *Widget { return dd.panel }

// AttachPanel shows panel under the button. onCancel runs when the panel is
// dismissed by a press outside it. Returns ErrPanelOpen if a panel is
// already attached.
func (dd *DropDownButton) AttachPanel(ui *Context, panel *Widget, onCancel func()) error {
	if dd.panel != nil {
		return ErrPanelOpen
	}
	root := ui.Root()
	if dd.PanelRoot != "" {
		r, err := root.Get(dd.PanelRoot)
		if err != nil {
			return fmt.Errorf("dropdown %s panel root: %w", dd.Widget, err)
		}
		root = r
	}

	rootOrigin := root.ChildOrigin()
	mask := NewMask()
	mask.Bounds = Rect{-rootOrigin.X, -rootOrigin.Y, ui.width, ui.height}
	mask.OnMouseDown = func(MouseInput) {
		dd.RemovePanel()
		if onCancel != nil {
			onCancel()
		}
	}

	ro := dd.RenderOrigin().Sub(rootOrigin)
	x := ro.X
	switch dd.PanelAlign {
	case AlignCenter:
		x += (dd.Bounds.Width - panel.Bounds.Width) / 2
	case AlignRight:
		x += dd.Bounds.Width - panel.Bounds.Width
	}
	y := ro.Y + dd.Bounds.Height
	if y+panel.Bounds.Height > ui.height {
		y -= dd.Bounds.Height + panel.Bounds.Height
	}
	panel.Bounds.X, panel.Bounds.Y = x, y

	dd.panel, dd.mask, dd.panelRoot, dd.onCancel, dd.ctx = panel, mask, root, onCancel, ui
	root.AddChild(mask.Widget)
	root.AddChild(panel)
	if dd.ui == ui {
		ui.TakeKeyboardFocus(dd.Widget)
	}
	return nil
}

// RemovePanel detaches the panel and its mask. No-op when closed.
func (dd *DropDownButton) RemovePanel() {
	if dd.panel == nil {
		return
	}
	panel, mask, root, ui := dd.panel, dd.mask, dd.panelRoot, dd.ctx
	dd.panel, dd.mask, dd.panelRoot, dd.onCancel, dd.ctx = nil, nil, nil, nil, nil
	if mask.Parent == root {
		root.RemoveChild(mask.Widget)
	}
	if panel.Parent == root {
		root.RemoveChild(panel)
	}
	if ui != nil && dd.HasKeyboardFocus() {
		ui.YieldKeyboardFocus(dd.Widget)
	}
}

func (dd *DropDownButton) HandleKeyPress(ui *Context, ki KeyInput) bool {
	if dd.panel != nil && ki.Event == KeyPressed && ki.Key == KeyEscape {
		onCancel := dd.onCancel
		dd.RemovePanel()
		if onCancel != nil {
			onCancel()
		}
		return true
	}
	return dd.Button.HandleKeyPress(ui, ki)
}

// YieldKeyboardFocus keeps focus while the panel is open.
func (dd *DropDownButton) YieldKeyboardFocus(ui *Context) bool {
	return dd.panel == nil
}

func (dd *DropDownButton) Removed(ui *Context) { dd.RemovePanel() }

func (dd *DropDownButton) Hidden(ui *Context) { dd.RemovePanel() }

func (dd *DropDownButton) Configure(f *Fields) error {
	f.String("PanelRoot", &dd.PanelRoot)
	f.Align("PanelAlign", &dd.PanelAlign)
	return dd.Button.Configure(f)
}

func (dd *DropDownButton) CloneBehavior(clone *Widget) any {
	b := *dd.Button
	b.Widget = clone
	b.depressed = false
	return &DropDownButton{Button: &b, PanelRoot: dd.PanelRoot, PanelAlign: dd.PanelAlign}
}

// ShowDropDown fills panel with one item per option and attaches it to dd.
// Clicking an item runs the item's own OnClick and closes the panel. The
// panel is sized to its content, capped at maxHeight.
func ShowDropDown[T any](ui *Context, dd *DropDownButton, panel *ScrollPanel, maxHeight int,
	options []T, setupItem func(option T) *Button) error {
	if dd.IsOpen() {
		return ErrPanelOpen
	}
	panel.RemoveChildren()
	for _, option := range options {
		item := setupItem(option)
		onClick := item.OnClick
		item.OnClick = func() {
			if onClick != nil {
				onClick()
			}
			dd.RemovePanel()
		}
		panel.AddChild(item.Widget)
	}
	panel.Bounds.Height = min(maxHeight, panel.ContentHeight)
	panel.ScrollToTop(false)
	return dd.AttachPanel(ui, panel.Widget, nil)
}

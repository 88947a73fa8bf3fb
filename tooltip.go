package willowui

// TooltipContainer shows at most one tooltip near the cursor. It becomes
// visible once the mouse has rested for the delay and never receives input.
// Tooltips are installed with SetTooltip, which returns a token; only the
// holder of the current token can remove it.
type TooltipContainer struct {
	*Widget
	// CursorOffset is added to the cursor position to place the tooltip.
	CursorOffset Point
	// BottomEdgeYOffset places a tooltip that would run off the bottom of
	// the window relative to the cursor, ending this far below it.
	BottomEdgeYOffset int
	// DelayTicks overrides the context's tooltip delay when non-negative.
	DelayTicks int

	tooltip   *Widget
	token     int
	nextToken int
}

// NewTooltipContainer creates an empty tooltip container.
func NewTooltipContainer(id string) *TooltipContainer {
	tc := &TooltipContainer{
		CursorOffset:      Point{0, 20},
		BottomEdgeYOffset: -5,
		DelayTicks:        -1,
	}
	tc.Widget = NewWidget("TooltipContainer", tc)
	tc.ID = id
	tc.IgnoreMouseOver = true
	tc.BindVisible(tc.delayElapsed)
	return tc
}

func (tc *TooltipContainer) delayElapsed() bool {
	ui := tc.ui
	if ui == nil || tc.tooltip == nil {
		return false
	}
	delay := tc.DelayTicks
	if delay < 0 {
		delay = ui.settings.TooltipDelayTicks
	}
	return ui.TicksSinceLastMove() >= delay
}

// Tooltip returns the current tooltip widget, or nil.
func (tc *TooltipContainer) Tooltip() *Widget { return tc.tooltip }

// SetTooltip replaces the current tooltip with the widget build returns and
// returns a token for RemoveTooltip.
func (tc *TooltipContainer) SetTooltip(build func() *Widget) int {
	tc.RemoveCurrentTooltip()
	tc.nextToken++
	tc.token = tc.nextToken
	tc.tooltip = build()
	if tc.tooltip != nil {
		tc.AddChild(tc.tooltip)
	}
	return tc.token
}

// SetTooltipTemplate builds the template with the given ID as the tooltip.
func (tc *TooltipContainer) SetTooltipTemplate(ui *Context, id string, subs Vars) (int, error) {
	w, err := ui.BuildWidget(id, tc.Widget, subs)
	if err != nil {
		return 0, err
	}
	return tc.SetTooltip(func() *Widget { return w }), nil
}

// RemoveTooltip removes the tooltip installed with token. Stale tokens are
// ignored.
func (tc *TooltipContainer) RemoveTooltip(token int) {
	if token != tc.token {
		return
	}
	tc.RemoveCurrentTooltip()
}

// RemoveCurrentTooltip removes whatever tooltip is showing.
func (tc *TooltipContainer) RemoveCurrentTooltip() {
	tc.RemoveChildren()
	tc.tooltip = nil
	tc.token = 0
}

// HitTest keeps the container and its tooltip out of input routing.
func (tc *TooltipContainer) HitTest(p Point) bool { return false }

// OffsetChildOrigin follows the cursor, flipping left at the right window
// edge and above the cursor at the bottom edge.
func (tc *TooltipContainer) OffsetChildOrigin(base Point) Point {
	ui := tc.ui
	if ui == nil {
		return base
	}
	mouse := ui.LastMousePos()
	pos := mouse.Add(tc.CursorOffset)
	if tc.tooltip == nil {
		return pos
	}
	b := tc.tooltip.Bounds
	if pos.X+b.Right() > ui.width {
		pos.X = ui.width - b.Right()
	}
	if pos.Y+b.Bottom() > ui.height {
		pos.Y = mouse.Y + tc.BottomEdgeYOffset - b.Bottom()
	}
	return pos
}

// AttachTooltip makes target show the widget built by build in tc while it
// is the mouse-over widget. Existing enter and leave callbacks still run.
func AttachTooltip(target *Widget, tc *TooltipContainer, build func() *Widget) {
	token := 0
	enter, leave := target.OnMouseEnter, target.OnMouseLeave
	target.OnMouseEnter = func() {
		if enter != nil {
			enter()
		}
		token = tc.SetTooltip(build)
	}
	target.OnMouseLeave = func() {
		if leave != nil {
			leave()
		}
		tc.RemoveTooltip(token)
	}
}

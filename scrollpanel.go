package willowui

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollAlign anchors content shorter than the viewport.
type ScrollAlign uint8

const (
	ScrollAlignTop ScrollAlign = iota
	ScrollAlignBottom
)

// ScrollPanel is a clipping viewport over a vertically laid out child list
// with a scrollbar on the right. The list offset is 0 at the top and
// negative when scrolled down; it always stays within
// [min(0, viewport-content), 0].
type ScrollPanel struct {
	*Widget
	LayoutParams

	Layout Layout

	ScrollbarWidth   int
	BorderWidth      int
	MinimumThumbSize int
	Align            ScrollAlign
	// ScrollStep overrides the context's scroll speed when positive.
	ScrollStep int

	Background     string
	ScrollbarStyle string
	ThumbStyle     string

	currentOffset float64
	targetOffset  float64
	tween         *gween.Tween

	upPressed    bool
	downPressed  bool
	thumbPressed bool
	lastMouse    Point
}

// NewScrollPanel creates a scroll panel with a list layout.
func NewScrollPanel(id string) *ScrollPanel {
	sp := &ScrollPanel{
		LayoutParams:     LayoutParams{TopBottomSpacing: 2},
		ScrollbarWidth:   24,
		BorderWidth:      1,
		MinimumThumbSize: 10,
		Background:       "scrollpanel-bg",
		ScrollbarStyle:   "scrollpanel-button",
		ThumbStyle:       "scrollthumb",
	}
	sp.Widget = NewWidget("ScrollPanel", sp)
	sp.ID = id
	sp.ClickThrough = false
	sp.Layout = NewListLayout(sp)
	return sp
}

// --- Layout target ---

func (sp *ScrollPanel) LayoutChildren() []*Widget { return sp.Children() }
func (sp *ScrollPanel) Params() *LayoutParams     { return &sp.LayoutParams }
func (sp *ScrollPanel) LayoutWidth() int          { return sp.Bounds.Width - sp.ScrollbarWidth }

func (sp *ScrollPanel) ChildAdding(child *Widget) {
	sp.Layout.AdjustChild(child)
	sp.clampOffsets()
}

func (sp *ScrollPanel) ChildRemoved(child *Widget) {
	sp.Layout.AdjustChildren()
	sp.clampOffsets()
}

func (sp *ScrollPanel) ChildReplaced(old, replacement *Widget) {
	sp.Layout.AdjustChildren()
	sp.clampOffsets()
}

func (sp *ScrollPanel) ChildrenCleared() {
	sp.ContentHeight = 0
	sp.clampOffsets()
}

// Relayout repositions every child and clamps the scroll offset.
func (sp *ScrollPanel) Relayout() {
	sp.Layout.AdjustChildren()
	sp.clampOffsets()
}

// --- Offset ---

func (sp *ScrollPanel) minOffset() float64 {
	return float64(min(0, sp.Bounds.Height-sp.ContentHeight))
}

func (sp *ScrollPanel) clamp(v float64) float64 {
	return math.Max(sp.minOffset(), math.Min(0, v))
}

func (sp *ScrollPanel) clampOffsets() {
	t := sp.clamp(sp.targetOffset)
	c := sp.clamp(sp.currentOffset)
	if t != sp.targetOffset || c != sp.currentOffset {
		sp.tween = nil
		c = t
	}
	sp.targetOffset, sp.currentOffset = t, c
}

// ListOffset returns the current vertical offset of the content.
func (sp *ScrollPanel) ListOffset() int {
	return int(math.Round(sp.clamp(sp.currentOffset)))
}

// TargetOffset returns the offset a running smooth scroll is heading to.
func (sp *ScrollPanel) TargetOffset() int {
	return int(math.Round(sp.clamp(sp.targetOffset)))
}

// SetListOffset moves the content to offset, clamped to the valid range.
func (sp *ScrollPanel) SetListOffset(offset int, smooth bool) {
	sp.setOffset(float64(offset), smooth)
}

func (sp *ScrollPanel) setOffset(v float64, smooth bool) {
	sp.targetOffset = sp.clamp(v)
	dur := sp.smoothSeconds()
	if !smooth || dur <= 0 || sp.targetOffset == sp.currentOffset {
		sp.currentOffset = sp.targetOffset
		sp.tween = nil
		return
	}
	sp.tween = gween.New(float32(sp.currentOffset), float32(sp.targetOffset), dur, ease.OutQuad)
}

func (sp *ScrollPanel) smoothSeconds() float32 {
	if sp.ui == nil {
		return float32(DefaultSettings().SmoothScrollSeconds)
	}
	return float32(sp.ui.settings.SmoothScrollSeconds)
}

func (sp *ScrollPanel) step() int {
	if sp.ScrollStep > 0 {
		return sp.ScrollStep
	}
	if sp.ui == nil {
		return DefaultSettings().ScrollSpeed
	}
	return sp.ui.settings.ScrollSpeed
}

// Scroll moves the content by steps scroll steps. Positive steps scroll
// toward the top.
func (sp *ScrollPanel) Scroll(steps int, smooth bool) {
	sp.setOffset(sp.targetOffset+float64(steps*sp.step()), smooth)
}

// ScrollToTop shows the first item.
func (sp *ScrollPanel) ScrollToTop(smooth bool) { sp.setOffset(0, smooth) }

// ScrollToBottom shows the last item.
func (sp *ScrollPanel) ScrollToBottom(smooth bool) { sp.setOffset(sp.minOffset(), smooth) }

// ScrolledToBottom reports whether the last item is fully shown.
func (sp *ScrollPanel) ScrolledToBottom() bool {
	return sp.ListOffset() <= int(sp.minOffset())
}

// ScrollToItem scrolls the least distance that shows item entirely. item
// must be a child of the panel.
func (sp *ScrollPanel) ScrollToItem(item *Widget, smooth bool) error {
	if item.Parent != sp.Widget {
		return fmt.Errorf("%s is not a child of %s", item, sp.Widget)
	}
	top := -float64(item.Bounds.Y - sp.TopBottomSpacing)
	bottom := float64(sp.Bounds.Height - item.Bounds.Bottom() - sp.TopBottomSpacing)
	cur := sp.targetOffset
	switch {
	case cur < top:
		sp.setOffset(top, smooth)
	case cur > bottom:
		sp.setOffset(bottom, smooth)
	}
	return nil
}

// --- Geometry ---

type scrollRects struct {
	background Rect
	up, down   Rect
	bar        Rect
	thumb      Rect
}

func (sp *ScrollPanel) thumbHeight(barHeight int) int {
	if sp.ContentHeight <= 0 {
		return 0
	}
	ratio := math.Min(float64(sp.Bounds.Height)/float64(sp.ContentHeight), 1)
	return max(sp.MinimumThumbSize, int(float64(barHeight)*ratio))
}

func (sp *ScrollPanel) rects() scrollRects {
	rb := sp.RenderBounds()
	sw := sp.ScrollbarWidth
	barH := max(0, rb.Height-2*sw)
	thumbH := min(sp.thumbHeight(barH), barH)
	thumbY := rb.Y + sw
	if overflow := sp.ContentHeight - rb.Height; overflow > 0 {
		frac := -sp.clamp(sp.currentOffset) / float64(overflow)
		thumbY += int(float64(barH-thumbH) * frac)
	}
	if thumbH == barH {
		thumbH = 0
	}
	return scrollRects{
		background: Rect{rb.X, rb.Y, rb.Width - sw + 1, rb.Height},
		up:         Rect{rb.Right() - sw, rb.Y, sw, sw},
		down:       Rect{rb.Right() - sw, rb.Bottom() - sw, sw, sw},
		bar:        Rect{rb.Right() - sw, rb.Y + sw - 1, sw, barH + 2},
		thumb:      Rect{rb.Right() - sw, thumbY, sw, thumbH},
	}
}

// OffsetChildOrigin shifts children by the list offset. Content shorter
// than a bottom-aligned viewport is pushed to the bottom edge.
func (sp *ScrollPanel) OffsetChildOrigin(base Point) Point {
	dy := sp.ListOffset()
	if sp.Align == ScrollAlignBottom && sp.ContentHeight < sp.Bounds.Height {
		dy += sp.Bounds.Height - sp.ContentHeight
	}
	return Point{base.X, base.Y + dy}
}

// ClipChildren clips children to the content area inside the border.
func (sp *ScrollPanel) ClipChildren() Rect {
	return sp.rects().background.Inset(sp.BorderWidth)
}

// HitTest limits events to the panel itself; scrolled-out children do not
// extend it.
func (sp *ScrollPanel) HitTest(p Point) bool {
	return sp.EventBounds().Contains(p)
}

// --- Frame hooks ---

func (sp *ScrollPanel) Draw(ui *Context, r Renderer) {
	rr := sp.rects()
	r.DrawPanel(sp.Background, rr.background, WidgetState{})
	r.DrawPanel(sp.Background, rr.bar, WidgetState{})

	upDisabled := sp.ListOffset() >= 0
	downDisabled := sp.ScrolledToBottom()
	r.DrawPanel(sp.ScrollbarStyle, rr.up, WidgetState{
		Disabled: upDisabled, Pressed: sp.upPressed, Hover: rr.up.Contains(ui.lastMousePos)})
	r.DrawPanel(sp.ScrollbarStyle, rr.down, WidgetState{
		Disabled: downDisabled, Pressed: sp.downPressed, Hover: rr.down.Contains(ui.lastMousePos)})
	if rr.thumb.Height > 0 {
		r.DrawPanel(sp.ThumbStyle, rr.thumb, WidgetState{
			Pressed: sp.thumbPressed, Hover: rr.thumb.Contains(ui.lastMousePos)})
	}
}

func (sp *ScrollPanel) Tick(ui *Context) {
	if sp.upPressed {
		sp.Scroll(1, false)
	}
	if sp.downPressed {
		sp.Scroll(-1, false)
	}
	if sp.tween == nil {
		return
	}
	v, done := sp.tween.Update(ui.frameSeconds())
	sp.currentOffset = sp.clamp(float64(v))
	if done {
		sp.currentOffset = sp.targetOffset
		sp.tween = nil
	}
}

// --- Input ---

func (sp *ScrollPanel) HandleMouseInput(ui *Context, mi MouseInput) bool {
	switch mi.Event {
	case MouseWheelUp:
		sp.Scroll(1, ui.settings.SmoothScroll)
		return true
	case MouseWheelDown:
		sp.Scroll(-1, ui.settings.SmoothScroll)
		return true
	}
	if mi.Event != MouseMove && mi.Button != MouseButtonLeft {
		return false
	}

	rr := sp.rects()
	switch mi.Event {
	case MouseDown:
		sp.upPressed = rr.up.Contains(mi.Location)
		sp.downPressed = rr.down.Contains(mi.Location)
		sp.thumbPressed = rr.thumb.Contains(mi.Location)
		if !sp.upPressed && !sp.downPressed && !sp.thumbPressed {
			return false
		}
		if !ui.TakeMouseFocus(sp.Widget, mi) {
			sp.upPressed, sp.downPressed, sp.thumbPressed = false, false, false
			return false
		}
		sp.lastMouse = mi.Location
		return true
	case MouseUp:
		if !sp.HasMouseFocus() {
			return false
		}
		return ui.YieldMouseFocus(sp.Widget, mi)
	case MouseMove:
		if !sp.thumbPressed || !sp.HasMouseFocus() {
			return false
		}
		sp.dragThumb(rr, mi.Location)
		return true
	}
	return false
}

func (sp *ScrollPanel) dragThumb(rr scrollRects, loc Point) {
	barH := rr.bar.Height - 2
	travel := barH - rr.thumb.Height
	overflow := sp.ContentHeight - sp.Bounds.Height
	if travel <= 0 || overflow <= 0 {
		return
	}
	dy := sp.lastMouse.Y - loc.Y
	before := sp.currentOffset
	sp.setOffset(sp.currentOffset+float64(dy*overflow)/float64(travel), false)
	if sp.currentOffset != before {
		sp.lastMouse = loc
	}
}

func (sp *ScrollPanel) YieldMouseFocus(ui *Context, mi MouseInput) bool {
	sp.upPressed, sp.downPressed, sp.thumbPressed = false, false, false
	return true
}

// --- Templates and cloning ---

func (sp *ScrollPanel) Configure(f *Fields) error {
	f.Int("ItemSpacing", &sp.ItemSpacing)
	f.Int("ItemSpacingH", &sp.ItemSpacingH)
	f.Int("TopBottomSpacing", &sp.TopBottomSpacing)
	f.Int("ScrollbarWidth", &sp.ScrollbarWidth)
	f.Int("BorderWidth", &sp.BorderWidth)
	f.Int("MinimumThumbSize", &sp.MinimumThumbSize)
	f.Int("ScrollStep", &sp.ScrollStep)
	f.Bool("CollapseHiddenChildren", &sp.CollapseHiddenChildren)
	f.String("Background", &sp.Background)
	f.String("ScrollbarStyle", &sp.ScrollbarStyle)
	f.String("ThumbStyle", &sp.ThumbStyle)
	if v, ok := f.Lookup("Align"); ok {
		switch v {
		case "Top":
			sp.Align = ScrollAlignTop
		case "Bottom":
			sp.Align = ScrollAlignBottom
		default:
			f.Fail("Align", errBadChoice("Top or Bottom", v))
		}
	}
	if v, ok := f.Lookup("Layout"); ok {
		switch v {
		case "List":
			sp.Layout = NewListLayout(sp)
		case "Grid":
			sp.Layout = NewGridLayout(sp)
		default:
			f.Fail("Layout", errBadChoice("List or Grid", v))
		}
	}
	return f.Err()
}

func (sp *ScrollPanel) CloneBehavior(clone *Widget) any {
	c := &ScrollPanel{
		Widget:           clone,
		LayoutParams:     sp.LayoutParams,
		ScrollbarWidth:   sp.ScrollbarWidth,
		BorderWidth:      sp.BorderWidth,
		MinimumThumbSize: sp.MinimumThumbSize,
		Align:            sp.Align,
		ScrollStep:       sp.ScrollStep,
		Background:       sp.Background,
		ScrollbarStyle:   sp.ScrollbarStyle,
		ThumbStyle:       sp.ThumbStyle,
	}
	c.ContentHeight = 0
	if _, ok := sp.Layout.(*GridLayout); ok {
		c.Layout = NewGridLayout(c)
	} else {
		c.Layout = NewListLayout(c)
	}
	return c
}

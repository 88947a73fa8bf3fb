package willowui

// LayoutParams are the spacing rules shared by layout containers.
type LayoutParams struct {
	// ItemSpacing separates items and pads the content edges.
	ItemSpacing int
	// ItemSpacingH is extra horizontal space between items in a grid row.
	ItemSpacingH int
	// TopBottomSpacing pads the top and bottom of a list.
	TopBottomSpacing int
	// CollapseHiddenChildren makes invisible children take no space.
	CollapseHiddenChildren bool
	// ContentHeight is the total height of the arranged content. Maintained
	// by the layout.
	ContentHeight int
}

// LayoutTarget is a container a Layout arranges.
type LayoutTarget interface {
	LayoutChildren() []*Widget
	Params() *LayoutParams
	// LayoutWidth is the horizontal space available to children.
	LayoutWidth() int
}

// Layout positions a container's children.
type Layout interface {
	// AdjustChild positions a child about to be appended, after the
	// existing children.
	AdjustChild(child *Widget)
	// AdjustChildren repositions every child from its declared position.
	AdjustChildren()
}

func takesSpace(c *Widget, p *LayoutParams) bool {
	return !p.CollapseHiddenChildren || c.IsVisible()
}

// ListLayout stacks children vertically. X is left as declared.
type ListLayout struct {
	target LayoutTarget
}

// NewListLayout returns a list layout for t.
func NewListLayout(t LayoutTarget) *ListLayout {
	return &ListLayout{target: t}
}

func (l *ListLayout) AdjustChild(child *Widget) {
	p := l.target.Params()
	y := p.TopBottomSpacing
	children := l.target.LayoutChildren()
	for i := len(children) - 1; i >= 0; i-- {
		if takesSpace(children[i], p) {
			y = children[i].Bounds.Bottom() + p.ItemSpacing
			break
		}
	}
	child.Bounds.Y = y
	if takesSpace(child, p) {
		p.ContentHeight = y + child.Bounds.Height + p.TopBottomSpacing
	}
}

func (l *ListLayout) AdjustChildren() {
	p := l.target.Params()
	y := p.TopBottomSpacing
	counted := false
	for _, c := range l.target.LayoutChildren() {
		c.Bounds.Y = y
		if takesSpace(c, p) {
			y += c.Bounds.Height + p.ItemSpacing
			counted = true
		}
	}
	if !counted {
		p.ContentHeight = 0
		return
	}
	p.ContentHeight = y - p.ItemSpacing + p.TopBottomSpacing
}

// GridLayout flows children left to right, wrapping to a new row when the
// next item would overrun the available width. Rows start ItemSpacing from
// the top and left; consecutive items are ItemSpacing+ItemSpacingH apart.
// Each child is offset by its declared position.
type GridLayout struct {
	target LayoutTarget

	// cursor is the right edge of the last item in the row, 0 at row start.
	cursor    int
	rowY      int
	rowBottom int
}

// NewGridLayout returns a grid layout for t.
func NewGridLayout(t LayoutTarget) *GridLayout {
	return &GridLayout{target: t}
}

func (g *GridLayout) reset() {
	p := g.target.Params()
	g.cursor = 0
	g.rowY = p.ItemSpacing
	g.rowBottom = p.ItemSpacing
	p.ContentHeight = 0
}

func (g *GridLayout) AdjustChild(child *Widget) {
	if len(g.target.LayoutChildren()) == 0 {
		g.reset()
	}
	g.place(child)
}

func (g *GridLayout) AdjustChildren() {
	g.reset()
	for _, c := range g.target.LayoutChildren() {
		g.place(c)
	}
}

func (g *GridLayout) place(child *Widget) {
	p := g.target.Params()
	hint := child.layoutHint()
	w := child.Bounds.Width
	if g.cursor > 0 && g.cursor+w > g.target.LayoutWidth()+2*p.ItemSpacing+p.ItemSpacingH {
		g.rowY = g.rowBottom + p.ItemSpacing
		g.cursor = 0
	}
	x := g.cursor + p.ItemSpacing
	if g.cursor > 0 {
		x += p.ItemSpacingH
	}
	child.Bounds.X = hint.X + x
	child.Bounds.Y = hint.Y + g.rowY
	if !takesSpace(child, p) {
		return
	}
	g.cursor = x + w
	g.rowBottom = max(g.rowBottom, g.rowY+child.Bounds.Height)
	p.ContentHeight = max(p.ContentHeight, g.rowBottom+p.ItemSpacing)
}

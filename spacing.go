package willowui

// SpacingContainer arranges its children in a grid and optionally grows to
// fit them.
type SpacingContainer struct {
	*Widget
	LayoutParams
	Layout Layout
	// AutoHeight sets Bounds.Height to the content height after each change.
	AutoHeight bool
}

// NewSpacingContainer creates a spacing container with a grid layout.
func NewSpacingContainer(id string) *SpacingContainer {
	sc := &SpacingContainer{}
	sc.Widget = NewWidget("SpacingContainer", sc)
	sc.ID = id
	sc.Layout = NewGridLayout(sc)
	return sc
}

func (sc *SpacingContainer) LayoutChildren() []*Widget { return sc.Children() }
func (sc *SpacingContainer) Params() *LayoutParams     { return &sc.LayoutParams }
func (sc *SpacingContainer) LayoutWidth() int          { return sc.Bounds.Width }

func (sc *SpacingContainer) ChildAdding(child *Widget) {
	sc.Layout.AdjustChild(child)
	sc.fit()
}

func (sc *SpacingContainer) ChildRemoved(child *Widget) { sc.Relayout() }

func (sc *SpacingContainer) ChildReplaced(old, replacement *Widget) { sc.Relayout() }

func (sc *SpacingContainer) ChildrenCleared() {
	sc.ContentHeight = 0
	sc.fit()
}

// Relayout repositions every child from its declared position.
func (sc *SpacingContainer) Relayout() {
	sc.Layout.AdjustChildren()
	sc.fit()
}

func (sc *SpacingContainer) fit() {
	if sc.AutoHeight {
		sc.Bounds.Height = sc.ContentHeight
	}
}

func (sc *SpacingContainer) Configure(f *Fields) error {
	f.Int("ItemSpacing", &sc.ItemSpacing)
	f.Int("ItemSpacingH", &sc.ItemSpacingH)
	f.Bool("CollapseHiddenChildren", &sc.CollapseHiddenChildren)
	f.Bool("AutoHeight", &sc.AutoHeight)
	if v, ok := f.Lookup("Layout"); ok {
		switch v {
		case "List":
			sc.Layout = NewListLayout(sc)
		case "Grid":
			sc.Layout = NewGridLayout(sc)
		default:
			f.Fail("Layout", errBadChoice("List or Grid", v))
		}
	}
	return f.Err()
}

func (sc *SpacingContainer) CloneBehavior(clone *Widget) any {
	c := &SpacingContainer{Widget: clone, LayoutParams: sc.LayoutParams, AutoHeight: sc.AutoHeight}
	c.ContentHeight = 0
	if _, ok := sc.Layout.(*ListLayout); ok {
		c.Layout = NewListLayout(c)
	} else {
		c.Layout = NewGridLayout(c)
	}
	return c
}

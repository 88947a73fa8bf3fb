package willowui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuTemplates = `
Background@MAIN_MENU:
  X: (WINDOW_RIGHT - WIDTH) / 2
  Y: (WINDOW_BOTTOM - HEIGHT) / 2
  Width: 300
  Height: 200
  Children:
    - Label@TITLE:
        X: 0
        Y: 10
        Width: PARENT_RIGHT
        Height: 25
        Text: Main Menu
        Align: Center
    - Button@QUIT:
        X: PARENT_RIGHT - WIDTH - 20
        Y: PARENT_BOTTOM - HEIGHT - 20
        Width: 120
        Height: 25
        Text: Quit
        Key: escape
    - ScrollPanel@LIST:
        Y: 40
        Width: PARENT_RIGHT
        Height: 100
        ItemSpacing: 4
        Layout: Grid
Label@HINT:
  Width: 100
  Height: 10
  Text: hello
`

func loadMenu(t *testing.T) *Context {
	t.Helper()
	ui := newTestContext()
	require.NoError(t, ui.LoadTemplates([]byte(menuTemplates)))
	return ui
}

func TestParseTemplatesStructure(t *testing.T) {
	ts, err := ParseTemplates([]byte(menuTemplates))
	require.NoError(t, err)
	assert.Equal(t, []string{"HINT", "MAIN_MENU"}, ts.IDs())

	n, ok := ts.Lookup("MAIN_MENU")
	require.True(t, ok)
	assert.Equal(t, "Background", n.Type)
	assert.Equal(t, []string{"X", "Y", "Width", "Height"}, n.FieldOrder)
	require.Len(t, n.Children, 3)
	assert.Equal(t, "Label", n.Children[0].Type)
	assert.Equal(t, "TITLE", n.Children[0].ID)
	assert.Equal(t, "Main Menu", n.Children[0].Fields["Text"])
}

func TestParseTemplatesMappingChildren(t *testing.T) {
	ts, err := ParseTemplates([]byte(`
Container@ROOT:
  Children:
    Label@A:
      Text: a
    Label@B:
      Text: b
`))
	require.NoError(t, err)
	n, _ := ts.Lookup("ROOT")
	require.Len(t, n.Children, 2)
	assert.Equal(t, "B", n.Children[1].ID)
}

func TestParseTemplatesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"missing top-level id", "Label:\n  Text: x\n"},
		{"missing type", "'@X':\n  Text: x\n"},
		{"non-scalar field", "Label@X:\n  Text: [a, b]\n"},
		{"duplicate field", "Label@X:\n  Text: a\n  Text: b\n"},
		{"bad children", "Container@X:\n  Children: 3\n"},
		{"invalid yaml", "Label@X: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplates([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseTemplatesEmpty(t *testing.T) {
	ts, err := ParseTemplates(nil)
	require.NoError(t, err)
	assert.Empty(t, ts.IDs())
}

func TestMergeDuplicateTemplate(t *testing.T) {
	ui := loadMenu(t)
	err := ui.LoadTemplates([]byte("Label@HINT:\n  Text: again\n"))
	assert.Error(t, err)
}

func TestOpenWindowFromTemplate(t *testing.T) {
	ui := loadMenu(t)
	w, err := ui.OpenWindow("MAIN_MENU", nil)
	require.NoError(t, err)

	assert.Equal(t, ui.TopWindow(), w)
	assert.Equal(t, Rect{250, 200, 300, 200}, w.Bounds)

	title, err := GetAs[*Label](w, "TITLE")
	require.NoError(t, err)
	assert.Equal(t, "Main Menu", title.Text.Get())
	assert.Equal(t, AlignCenter, title.Align)
	assert.Equal(t, 300, title.Bounds.Width)

	quit, err := GetAs[*Button](w, "QUIT")
	require.NoError(t, err)
	assert.Equal(t, Rect{160, 155, 120, 25}, quit.Bounds)
	assert.Equal(t, KeyEscape, quit.Key)

	list, err := GetAs[*ScrollPanel](w, "LIST")
	require.NoError(t, err)
	assert.Equal(t, 4, list.ItemSpacing)
	assert.IsType(t, &GridLayout{}, list.Layout)
}

func TestBuildWidgetSubstitutions(t *testing.T) {
	ui := newTestContext()
	require.NoError(t, ui.LoadTemplates([]byte(`
Container@ROW:
  X: INDENT * 2
  Width: 10
  Height: 10
`)))
	w, err := ui.BuildWidget("ROW", nil, Vars{"INDENT": 7})
	require.NoError(t, err)
	assert.Equal(t, 14, w.Bounds.X)
	assert.Nil(t, w.Parent)
}

func TestLoadWidgetAppends(t *testing.T) {
	ui := loadMenu(t)
	parent := box("parent", 0, 0, 200, 200)
	ui.Root().AddChild(parent)
	w, err := ui.LoadWidget("HINT", parent, nil)
	require.NoError(t, err)
	assert.Equal(t, parent, w.Parent)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    error
		wantMsg string
	}{
		{"unknown type", "Widgetish@X:\n  Width: 1\n", ErrUnknownWidgetType, "X"},
		{"unknown field", "Label@X:\n  Colour: red\n", ErrUnknownField, "Colour"},
		{"bad expression", "Label@X:\n  Width: 3 +\n", ErrBadExpression, "Width"},
		{"unknown variable", "Label@X:\n  Width: MISSING\n", ErrUnknownVariable, "Width"},
		{"bad child", "Container@X:\n  Children:\n    - Label@Y:\n        Bogus: 1\n", ErrUnknownField, "X/Y"},
		{"bad align", "Label@X:\n  Align: Middle\n", nil, "Align"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestContext()
			require.NoError(t, ui.LoadTemplates([]byte(tt.yaml)))
			_, err := ui.BuildWidget("X", nil, nil)
			require.Error(t, err)
			var le *LoadError
			require.True(t, errors.As(err, &le), "err = %v", err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBuildMissingRequiredField(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register("Icon", func() *Widget { return NewContainer("") }, "Image")
	ui := NewContext(Settings{}, WithRegistry(reg))
	require.NoError(t, ui.LoadTemplates([]byte("Icon@X:\n  Width: 1\n")))
	_, err := ui.BuildWidget("X", nil, nil)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "Image")
}

func TestBuildBoundsErrorNamesField(t *testing.T) {
	ui := newTestContext()
	require.NoError(t, ui.LoadTemplates([]byte("Container@X:\n  Y: HEIGHT / 0\n  Height: 5\n")))
	_, err := ui.BuildWidget("X", nil, nil)
	var be *BoundsError
	require.True(t, errors.As(err, &be), "err = %v", err)
	assert.Equal(t, "Y", be.Field)
}

func TestRegistryKinds(t *testing.T) {
	kinds := DefaultRegistry().Kinds()
	assert.Contains(t, kinds, "ScrollPanel")
	assert.Contains(t, kinds, "DropDownButton")
	assert.IsIncreasing(t, kinds)

	w, err := DefaultRegistry().New("TextField")
	require.NoError(t, err)
	assert.Equal(t, "TextField", w.Kind)
	_, ok := w.Behavior().(*TextField)
	assert.True(t, ok)
}

func TestLoadTemplateFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("Label@A:\n  Text: a\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Label@B:\n  Text: b\n"), 0o644))

	ts, err := LoadTemplateFiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ts.IDs())

	_, err = LoadTemplateFiles(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTooltipTemplate(t *testing.T) {
	ui := loadMenu(t)
	tc := NewTooltipContainer("tooltips")
	ui.Root().AddChild(tc.Widget)
	token, err := tc.SetTooltipTemplate(ui, "HINT", nil)
	require.NoError(t, err)
	assert.NotZero(t, token)
	l, err := As[*Label](tc.Tooltip())
	require.NoError(t, err)
	assert.Equal(t, "hello", l.Text.Get())
}

func TestBuildClickThroughOnEveryKind(t *testing.T) {
	for _, kind := range DefaultRegistry().Kinds() {
		t.Run(kind, func(t *testing.T) {
			reg := DefaultRegistry()
			ui := NewContext(Settings{}, WithRegistry(reg))
			require.NoError(t, ui.LoadTemplates([]byte(kind+"@W:\n  ClickThrough: true\n")))
			w, err := ui.BuildWidget("W", nil, nil)
			require.NoError(t, err)
			assert.True(t, w.ClickThrough)
		})
	}
}

func TestBuildClickThroughOverridesKindDefault(t *testing.T) {
	ui := newTestContext()
	require.NoError(t, ui.LoadTemplates([]byte("ScrollPanel@W:\n  ClickThrough: false\nBackground@B:\n  ClickThrough: true\n")))
	w, err := ui.BuildWidget("W", nil, nil)
	require.NoError(t, err)
	assert.False(t, w.ClickThrough)
	bw, err := ui.BuildWidget("B", nil, nil)
	require.NoError(t, err)
	b, err := As[*Background](bw)
	require.NoError(t, err)
	assert.True(t, b.ClickThrough)
}

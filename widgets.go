package willowui

import (
	"unicode/utf8"
)

// Background is a styled panel. It consumes clicks inside its bounds and
// can optionally be dragged with the left button.
type Background struct {
	*Widget
	Style     string
	Draggable bool

	moving    bool
	lastMouse Point
}

// NewBackground creates a background panel.
func NewBackground(id string) *Background {
	b := &Background{Style: "dialog"}
	b.Widget = NewWidget("Background", b)
	b.ID = id
	b.ClickThrough = false
	return b
}

func (b *Background) Draw(ui *Context, r Renderer) {
	r.DrawPanel(b.Style, b.RenderBounds(), WidgetState{})
}

func (b *Background) HandleMouseInput(ui *Context, mi MouseInput) bool {
	if b.ClickThrough || (!b.moving && !b.RenderBounds().Contains(mi.Location)) {
		return false
	}
	if !b.Draggable || (mi.Event != MouseMove && mi.Button != MouseButtonLeft) {
		return true
	}
	switch mi.Event {
	case MouseDown:
		if ui.TakeMouseFocus(b.Widget, mi) {
			b.moving = true
			b.lastMouse = mi.Location
		}
	case MouseMove:
		if b.moving {
			d := mi.Location.Sub(b.lastMouse)
			b.Bounds.X += d.X
			b.Bounds.Y += d.Y
			b.lastMouse = mi.Location
		}
	case MouseUp:
		if b.moving {
			ui.YieldMouseFocus(b.Widget, mi)
		}
	}
	return true
}

func (b *Background) YieldMouseFocus(ui *Context, mi MouseInput) bool {
	b.moving = false
	return true
}

func (b *Background) Configure(f *Fields) error {
	f.String("Style", &b.Style)
	f.Bool("Draggable", &b.Draggable)
	return f.Err()
}

func (b *Background) CloneBehavior(clone *Widget) any {
	return &Background{Widget: clone, Style: b.Style, Draggable: b.Draggable}
}

// Label draws a single line of text.
type Label struct {
	*Widget
	Text  Binding[string]
	Font  string
	Align TextAlign
	Color Color
}

// NewLabel creates a label showing text.
func NewLabel(id, text string) *Label {
	l := &Label{Text: Static(text), Font: "regular", Color: ColorWhite}
	l.Widget = NewWidget("Label", l)
	l.ID = id
	return l
}

func (l *Label) Draw(ui *Context, r Renderer) {
	text := l.Text.Get()
	if text == "" {
		return
	}
	r.DrawText(text, l.Font, alignText(r, text, l.Font, l.RenderBounds(), l.Align), l.Color)
}

func (l *Label) Configure(f *Fields) error {
	var text string
	if f.String("Text", &text) {
		l.Text.Set(text)
	}
	f.String("Font", &l.Font)
	f.Align("Align", &l.Align)
	return f.Err()
}

func (l *Label) CloneBehavior(clone *Widget) any {
	c := *l
	c.Widget = clone
	return &c
}

// Button is a clickable panel with a text caption. OnClick fires on
// release when the press started on the button and the cursor is still
// over it.
type Button struct {
	*Widget
	Text        Binding[string]
	Font        string
	Style       string
	Align       TextAlign
	Disabled    Binding[bool]
	Highlighted Binding[bool]
	// Key triggers OnClick from the keyboard. KeyUnknown disables it.
	Key        Key
	CursorName string

	OnClick     func()
	OnMouseDown func(mi MouseInput)
	OnMouseUp   func(mi MouseInput)
	// OnDoubleClick fires instead of OnMouseUp on the second press of a
	// double click.
	OnDoubleClick func()

	depressed bool
}

// NewButton creates a button with a caption.
func NewButton(id, text string) *Button {
	b := newButton(text)
	b.Widget = NewWidget("Button", b)
	b.ID = id
	return b
}

func newButton(text string) *Button {
	return &Button{Text: Static(text), Font: "bold", Style: "button", Align: AlignCenter}
}

// Depressed reports whether the button is drawn pressed.
func (b *Button) Depressed() bool { return b.depressed }

func (b *Button) state() WidgetState {
	return WidgetState{
		Disabled:    b.Disabled.Get(),
		Pressed:     b.depressed,
		Hover:       b.IsMouseOver(),
		Focused:     b.HasKeyboardFocus(),
		Highlighted: b.Highlighted.Get(),
	}
}

func (b *Button) Draw(ui *Context, r Renderer) {
	rb := b.RenderBounds()
	r.DrawPanel(b.Style, rb, b.state())
	text := b.Text.Get()
	if text == "" {
		return
	}
	at := alignText(r, text, b.Font, rb, b.Align)
	if b.depressed {
		at = at.Add(Point{1, 1})
	}
	c := ColorWhite
	if b.Disabled.Get() {
		c = Color{0.5, 0.5, 0.5, 1}
	}
	r.DrawText(text, b.Font, at, c)
}

func (b *Button) HandleMouseInput(ui *Context, mi MouseInput) bool {
	if mi.Event != MouseMove && mi.Button != MouseButtonLeft {
		return false
	}
	if mi.Event == MouseDown && !ui.TakeMouseFocus(b.Widget, mi) {
		return false
	}
	disabled := b.Disabled.Get()
	if b.HasMouseFocus() && mi.Event == MouseUp {
		if b.depressed && !disabled {
			if mi.TapCount == 2 && b.OnDoubleClick != nil {
				b.OnDoubleClick()
			} else {
				b.release(mi)
			}
		}
		return ui.YieldMouseFocus(b.Widget, mi)
	}
	switch {
	case mi.Event == MouseDown:
		if disabled {
			ui.YieldMouseFocus(b.Widget, mi)
			return true
		}
		if b.OnMouseDown != nil {
			b.OnMouseDown(mi)
		}
		b.depressed = true
	case mi.Event == MouseMove && b.HasMouseFocus():
		b.depressed = b.RenderBounds().Contains(mi.Location)
	}
	return b.depressed
}

func (b *Button) release(mi MouseInput) {
	if b.OnMouseUp != nil {
		b.OnMouseUp(mi)
	}
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) YieldMouseFocus(ui *Context, mi MouseInput) bool {
	b.depressed = false
	return true
}

func (b *Button) HandleKeyPress(ui *Context, ki KeyInput) bool {
	if b.Key == KeyUnknown || ki.Key != b.Key || ki.Event != KeyPressed || ki.IsRepeat {
		return false
	}
	if !b.Disabled.Get() && b.OnClick != nil {
		b.OnClick()
	}
	return true
}

func (b *Button) Configure(f *Fields) error {
	var text string
	if f.String("Text", &text) {
		b.Text.Set(text)
	}
	f.String("Font", &b.Font)
	f.String("Style", &b.Style)
	f.String("Cursor", &b.CursorName)
	f.Align("Align", &b.Align)
	var disabled bool
	if f.Bool("Disabled", &disabled) {
		b.Disabled.Set(disabled)
	}
	f.Key("Key", &b.Key)
	return f.Err()
}

func (b *Button) Cursor(p Point) string { return b.CursorName }

func (b *Button) CloneBehavior(clone *Widget) any {
	c := *b
	c.Widget = clone
	c.depressed = false
	return &c
}

// TextField is a single-line editable text box. It takes keyboard focus
// when clicked and gives it up when a click lands outside it.
type TextField struct {
	*Widget
	Text      string
	MaxLength int
	Font      string
	Style     string
	Disabled  Binding[bool]
	// HoldFocusWhileEditing refuses to yield keyboard focus while the field
	// is not empty.
	HoldFocusWhileEditing bool

	OnEnterKey   func() bool
	OnEscKey     func() bool
	OnTextEdited func()
	OnLoseFocus  func()

	cursor int
}

// NewTextField creates an empty text field.
func NewTextField(id string) *TextField {
	tf := &TextField{Font: "regular", Style: "textfield"}
	tf.Widget = NewWidget("TextField", tf)
	tf.ID = id
	return tf
}

// CursorPosition returns the caret position in runes.
func (tf *TextField) CursorPosition() int { return min(tf.cursor, utf8.RuneCountInString(tf.Text)) }

// SetText replaces the text and moves the caret to the end.
func (tf *TextField) SetText(s string) {
	tf.Text = s
	tf.cursor = utf8.RuneCountInString(s)
}

func (tf *TextField) Draw(ui *Context, r Renderer) {
	rb := tf.RenderBounds()
	r.DrawPanel(tf.Style, rb, WidgetState{
		Disabled: tf.Disabled.Get(),
		Focused:  tf.HasKeyboardFocus(),
		Hover:    tf.IsMouseOver(),
	})
	r.PushClip(rb.Inset(2))
	at := alignText(r, tf.Text, tf.Font, rb.Inset(4), AlignLeft)
	r.DrawText(tf.Text, tf.Font, at, ColorWhite)
	if tf.HasKeyboardFocus() && (ui.Ticks()/20)%2 == 0 {
		runes := []rune(tf.Text)
		w := r.MeasureText(string(runes[:tf.CursorPosition()]), tf.Font).X
		r.DrawText("|", tf.Font, Point{at.X + w, at.Y}, ColorWhite)
	}
	r.PopClip()
}

func (tf *TextField) HandleMouseInput(ui *Context, mi MouseInput) bool {
	if tf.Disabled.Get() || mi.Event != MouseDown {
		return false
	}
	if !tf.RenderBounds().Contains(mi.Location) {
		if tf.HasKeyboardFocus() {
			ui.YieldKeyboardFocus(tf.Widget)
		}
		return false
	}
	if !ui.TakeKeyboardFocus(tf.Widget) {
		return false
	}
	tf.cursor = utf8.RuneCountInString(tf.Text)
	return true
}

func (tf *TextField) HandleKeyPress(ui *Context, ki KeyInput) bool {
	if !tf.HasKeyboardFocus() || ki.Event != KeyPressed {
		return false
	}
	runes := []rune(tf.Text)
	pos := tf.CursorPosition()
	switch ki.Key {
	case KeyEnter:
		return tf.OnEnterKey != nil && tf.OnEnterKey()
	case KeyEscape:
		return tf.OnEscKey != nil && tf.OnEscKey()
	case KeyArrowLeft:
		tf.cursor = max(0, pos-1)
	case KeyArrowRight:
		tf.cursor = min(len(runes), pos+1)
	case KeyHome:
		tf.cursor = 0
	case KeyEnd:
		tf.cursor = len(runes)
	case KeyBackspace:
		if pos > 0 {
			tf.edit(string(runes[:pos-1])+string(runes[pos:]), pos-1)
		}
	case KeyDelete:
		if pos < len(runes) {
			tf.edit(string(runes[:pos])+string(runes[pos+1:]), pos)
		}
	default:
		// Printable keys arrive as text input.
		return ki.Key < KeyEnter
	}
	return true
}

func (tf *TextField) HandleTextInput(ui *Context, text string) bool {
	if !tf.HasKeyboardFocus() {
		return false
	}
	runes := []rune(tf.Text)
	insert := []rune(text)
	if tf.MaxLength > 0 {
		room := tf.MaxLength - len(runes)
		if room <= 0 {
			return true
		}
		if len(insert) > room {
			insert = insert[:room]
		}
	}
	pos := tf.CursorPosition()
	tf.edit(string(runes[:pos])+string(insert)+string(runes[pos:]), pos+len(insert))
	return true
}

func (tf *TextField) edit(text string, cursor int) {
	tf.Text = text
	tf.cursor = cursor
	if tf.OnTextEdited != nil {
		tf.OnTextEdited()
	}
}

func (tf *TextField) YieldKeyboardFocus(ui *Context) bool {
	if tf.HoldFocusWhileEditing && tf.Text != "" {
		return false
	}
	if tf.OnLoseFocus != nil {
		tf.OnLoseFocus()
	}
	return true
}

func (tf *TextField) Cursor(p Point) string { return "textinput" }

func (tf *TextField) Configure(f *Fields) error {
	var text string
	if f.String("Text", &text) {
		tf.SetText(text)
	}
	f.Int("MaxLength", &tf.MaxLength)
	f.String("Font", &tf.Font)
	f.String("Style", &tf.Style)
	f.Bool("HoldFocusWhileEditing", &tf.HoldFocusWhileEditing)
	return f.Err()
}

func (tf *TextField) CloneBehavior(clone *Widget) any {
	c := *tf
	c.Widget = clone
	return &c
}

package willowui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// MouseEvent is the phase of a mouse input.
type MouseEvent uint8

const (
	MouseDown MouseEvent = iota
	MouseMove
	MouseUp
	MouseWheelUp
	MouseWheelDown
)

var mouseEventNames = [...]string{"down", "move", "up", "wheelup", "wheeldown"}

func (e MouseEvent) String() string {
	if int(e) < len(mouseEventNames) {
		return mouseEventNames[e]
	}
	return fmt.Sprintf("MouseEvent(%d)", e)
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseInput is one mouse event in screen coordinates.
type MouseInput struct {
	Event     MouseEvent
	Location  Point
	Button    MouseButton
	Modifiers KeyModifiers
	// TapCount is 2 for the second press of a double click.
	TapCount int
}

// KeyEvent is the phase of a key input.
type KeyEvent uint8

const (
	KeyPressed KeyEvent = iota
	KeyReleased
)

// Key identifies a keyboard key. Printable keys use their lower-case rune
// value; non-printable keys use the named constants below.
type Key rune

const (
	KeyUnknown Key = 0

	KeyEnter Key = 0x110000 + iota
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace Key = ' '
)

var keyNames = map[Key]string{
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyTab:        "tab",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPageUp:     "pageup",
	KeyPageDown:   "pagedown",
	KeySpace:      "space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > 0 && k < 0x110000 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// ParseKey parses a key name as produced by Key.String. Single characters
// map to their lower-case rune.
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(name)
	for k, n := range keyNames {
		if n == lower {
			return k, nil
		}
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return Key(r), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// KeyInput is one keyboard event.
type KeyInput struct {
	Event     KeyEvent
	Key       Key
	Modifiers KeyModifiers
	IsRepeat  bool
}

// InputKind tags an InputEvent.
type InputKind uint8

const (
	InputMouse InputKind = iota
	InputKey
	InputText
)

// InputEvent records one routed input and its outcome. It is delivered to
// the context's EventSink after routing completes.
type InputEvent struct {
	Kind    InputKind
	Mouse   MouseInput
	Key     KeyInput
	Text    string
	Handled bool
	// TargetID is the ID of the mouse-over widget for mouse input and the
	// keyboard-focus widget for key and text input. Empty when none.
	TargetID string
}

// EventSink receives routed input events. Implementations bridge input into
// external systems such as an ECS world.
type EventSink interface {
	EmitInput(ev InputEvent)
}

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willowui"
)

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var keyMap = buildKeyMap()

func buildKeyMap() map[ebiten.Key]willowui.Key {
	m := map[ebiten.Key]willowui.Key{
		ebiten.KeyEnter:        willowui.KeyEnter,
		ebiten.KeyNumpadEnter:  willowui.KeyEnter,
		ebiten.KeyEscape:       willowui.KeyEscape,
		ebiten.KeyTab:          willowui.KeyTab,
		ebiten.KeyBackspace:    willowui.KeyBackspace,
		ebiten.KeyDelete:       willowui.KeyDelete,
		ebiten.KeyArrowUp:      willowui.KeyArrowUp,
		ebiten.KeyArrowDown:    willowui.KeyArrowDown,
		ebiten.KeyArrowLeft:    willowui.KeyArrowLeft,
		ebiten.KeyArrowRight:   willowui.KeyArrowRight,
		ebiten.KeyHome:         willowui.KeyHome,
		ebiten.KeyEnd:          willowui.KeyEnd,
		ebiten.KeyPageUp:       willowui.KeyPageUp,
		ebiten.KeyPageDown:     willowui.KeyPageDown,
		ebiten.KeySpace:        willowui.KeySpace,
		ebiten.KeyMinus:        '-',
		ebiten.KeyEqual:        '=',
		ebiten.KeyComma:        ',',
		ebiten.KeyPeriod:       '.',
		ebiten.KeySlash:        '/',
		ebiten.KeySemicolon:    ';',
		ebiten.KeyQuote:        '\'',
		ebiten.KeyBracketLeft:  '[',
		ebiten.KeyBracketRight: ']',
		ebiten.KeyBackslash:    '\\',
		ebiten.KeyBackquote:    '`',
	}
	for i, k := range letterKeys {
		m[k] = willowui.Key('a' + i)
	}
	for i, k := range digitKeys {
		m[k] = willowui.Key('0' + i)
	}
	return m
}

// TranslateKey maps an Ebitengine key to a willowui key. Modifier and
// function keys have no mapping and return KeyUnknown.
func TranslateKey(k ebiten.Key) willowui.Key {
	if wk, ok := keyMap[k]; ok {
		return wk
	}
	return willowui.KeyUnknown
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() willowui.KeyModifiers {
	var mods willowui.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= willowui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= willowui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= willowui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= willowui.ModMeta
	}
	return mods
}

var cursorShapes = map[string]ebiten.CursorShapeType{
	"default":     ebiten.CursorShapeDefault,
	"pointer":     ebiten.CursorShapePointer,
	"textinput":   ebiten.CursorShapeText,
	"crosshair":   ebiten.CursorShapeCrosshair,
	"move":        ebiten.CursorShapeMove,
	"not-allowed": ebiten.CursorShapeNotAllowed,
	"ew-resize":   ebiten.CursorShapeEWResize,
	"ns-resize":   ebiten.CursorShapeNSResize,
}

// CursorShape maps a widget cursor name to an Ebitengine cursor shape.
// Unknown names use the default arrow.
func CursorShape(name string) ebiten.CursorShapeType {
	if s, ok := cursorShapes[name]; ok {
		return s
	}
	return ebiten.CursorShapeDefault
}

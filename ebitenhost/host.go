package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/willowui"
)

// Key repeat timing in ticks.
const (
	keyRepeatDelay    = 24
	keyRepeatInterval = 4
)

// Two presses of the same button within this many ticks and pixels form a
// double click.
const (
	doubleClickTicks    = 18
	doubleClickDistance = 4
)

var hostButtons = [...]struct {
	eb ebiten.MouseButton
	ui willowui.MouseButton
}{
	{ebiten.MouseButtonLeft, willowui.MouseButtonLeft},
	{ebiten.MouseButtonRight, willowui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, willowui.MouseButtonMiddle},
}

// Host adapts a willowui Context to ebiten.Game.
type Host struct {
	UI       *willowui.Context
	Renderer *Renderer

	// ClearColor fills the screen before the UI draws. Zero alpha skips it.
	ClearColor willowui.Color
	// ShowFPS prints the frame and tick rate in the top-left corner.
	ShowFPS bool
	// Script, when set, is stepped once per frame before the UI ticks.
	Script *willowui.InputScript
	// OnUpdate runs after the UI ticks. A non-nil error ends the game.
	OnUpdate func() error
	// ExitOnScriptDone ends the game once Script finishes.
	ExitOnScriptDone bool
	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// "screenshots".
	ScreenshotDir string

	mouse    willowui.Point
	hasMouse bool
	held     willowui.MouseButton

	lastPress      willowui.MouseButton
	lastPressAt    willowui.Point
	lastPressTick  uint64
	lastPressCount int

	keys  []ebiten.Key
	chars []rune

	screenshotQueue []pendingShot
}

// NewHost creates a host for ui with the default theme.
func NewHost(ui *willowui.Context) *Host {
	return &Host{
		UI:         ui,
		Renderer:   NewRenderer(DefaultTheme()),
		ClearColor: willowui.Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
	}
}

// Update polls input, steps the script and ticks the UI.
func (h *Host) Update() error {
	mods := readModifiers()
	h.pollMouse(mods)
	h.pollKeys(mods)
	h.pollText()

	if h.Script != nil && !h.Script.Done() {
		h.Script.Step(h.UI)
	}
	h.UI.Tick()

	if h.hasMouse {
		ebiten.SetCursorShape(CursorShape(h.UI.CursorAt(h.mouse)))
	}
	if h.Script != nil {
		if err := h.Script.Err(); err != nil {
			return fmt.Errorf("input script: %w", err)
		}
		if h.ExitOnScriptDone && h.Script.Done() {
			return ebiten.Termination
		}
	}
	if h.OnUpdate != nil {
		return h.OnUpdate()
	}
	return nil
}

func (h *Host) pollMouse(mods willowui.KeyModifiers) {
	x, y := ebiten.CursorPosition()
	p := willowui.Point{X: x, Y: y}
	if !h.hasMouse || p != h.mouse {
		h.mouse, h.hasMouse = p, true
		h.UI.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseMove, Location: p, Button: h.held, Modifiers: mods})
	}

	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			if h.held == willowui.MouseButtonNone {
				h.held = b.ui
			}
			h.UI.HandleMouseInput(willowui.MouseInput{
				Event: willowui.MouseDown, Location: p, Button: b.ui, Modifiers: mods,
				TapCount: h.tapCount(b.ui, p),
			})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			if h.held == b.ui {
				h.held = willowui.MouseButtonNone
			}
			h.UI.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseUp, Location: p, Button: b.ui, Modifiers: mods})
		}
	}

	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		h.UI.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseWheelUp, Location: p, Modifiers: mods})
	case dy < 0:
		h.UI.HandleMouseInput(willowui.MouseInput{Event: willowui.MouseWheelDown, Location: p, Modifiers: mods})
	}
}

// tapCount returns 2 when this press completes a double click and 1
// otherwise. A third quick press starts a new sequence.
func (h *Host) tapCount(b willowui.MouseButton, p willowui.Point) int {
	now := h.UI.Ticks()
	d := p.Sub(h.lastPressAt)
	if b == h.lastPress && h.lastPressCount == 1 && now-h.lastPressTick <= doubleClickTicks &&
		abs(d.X) <= doubleClickDistance && abs(d.Y) <= doubleClickDistance {
		h.lastPressCount = 2
	} else {
		h.lastPressCount = 1
	}
	h.lastPress, h.lastPressAt, h.lastPressTick = b, p, now
	return h.lastPressCount
}

func (h *Host) pollKeys(mods willowui.KeyModifiers) {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if wk := TranslateKey(k); wk != willowui.KeyUnknown {
			h.UI.HandleKeyPress(willowui.KeyInput{Event: willowui.KeyPressed, Key: wk, Modifiers: mods})
		}
	}

	h.keys = inpututil.AppendPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if !isRepeatTick(inpututil.KeyPressDuration(k)) {
			continue
		}
		if wk := TranslateKey(k); wk != willowui.KeyUnknown {
			h.UI.HandleKeyPress(willowui.KeyInput{Event: willowui.KeyPressed, Key: wk, Modifiers: mods, IsRepeat: true})
		}
	}

	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if wk := TranslateKey(k); wk != willowui.KeyUnknown {
			h.UI.HandleKeyPress(willowui.KeyInput{Event: willowui.KeyReleased, Key: wk, Modifiers: mods})
		}
	}
}

// isRepeatTick reports whether a key held for d ticks should emit a repeat.
func isRepeatTick(d int) bool {
	return d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func (h *Host) pollText() {
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	if len(h.chars) > 0 {
		h.UI.HandleTextInput(string(h.chars))
	}
}

// Draw paints the UI onto screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.ClearColor.A > 0 {
		screen.Fill(h.ClearColor.RGBA8())
	}
	h.Renderer.Begin(screen)
	h.UI.Draw(h.Renderer)
	if h.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	h.flushScreenshots(screen)
}

// Layout keeps the logical screen at the UI's window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.UI.WindowSize()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

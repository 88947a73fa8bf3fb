package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willowui"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the window size; the logical screen stays at the
	// UI's window size. Zero means 1.
	Scale int
	// Resizable lets the user resize the window.
	Resizable bool
	ShowFPS   bool
	// ClearColor overrides the default background when its alpha is set.
	ClearColor willowui.Color
	Theme      *Theme
	// Script is replayed from the first frame. Its screenshot steps are
	// written to ScreenshotDir.
	Script        *willowui.InputScript
	ScreenshotDir string
	// ExitOnScriptDone ends the game once Script finishes.
	ExitOnScriptDone bool
	// OnUpdate runs once per frame after the UI ticks.
	OnUpdate func() error
}

// Run opens a window and runs ui until the window closes or an update
// returns an error. It blocks.
func Run(ui *willowui.Context, cfg RunConfig) error {
	h := NewHost(ui)
	h.ShowFPS = cfg.ShowFPS
	h.Script = cfg.Script
	h.ScreenshotDir = cfg.ScreenshotDir
	if h.Script != nil && h.Script.OnScreenshot == nil {
		h.Script.OnScreenshot = h.Screenshot
	}
	h.ExitOnScriptDone = cfg.ExitOnScriptDone
	h.OnUpdate = cfg.OnUpdate
	if cfg.ClearColor.A > 0 {
		h.ClearColor = cfg.ClearColor
	}
	if cfg.Theme != nil {
		h.Renderer.Theme = *cfg.Theme
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	w, hgt := ui.WindowSize()
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w*scale, hgt*scale)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(ui.Settings().TicksPerSecond)

	return ebiten.RunGame(h)
}

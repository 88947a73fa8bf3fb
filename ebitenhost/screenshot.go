package ebitenhost

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

type pendingShot struct {
	label string
	tick  uint64
}

// Screenshot queues a capture of the next drawn frame. Files are named
// after the UI tick and label, e.g. "000120-after-clicks.png".
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, pendingShot{label: label, tick: h.UI.Ticks()})
}

func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	shots := h.screenshotQueue
	h.screenshotQueue = h.screenshotQueue[:0]

	dir := h.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.UI.Logger().Error("screenshot dir", "dir", dir, "err", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frameImage(screen)); err != nil {
		h.UI.Logger().Error("screenshot encode", "err", err)
		return
	}
	for _, s := range shots {
		path := filepath.Join(dir, screenshotName(s))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			h.UI.Logger().Error("screenshot write", "path", path, "err", err)
			continue
		}
		h.UI.Logger().Info("screenshot saved", "path", path)
	}
}

// frameImage copies the screen into an image.RGBA. Both hold
// alpha-premultiplied pixels, so png.Encode does the conversion.
func frameImage(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

func screenshotName(s pendingShot) string {
	slug := strings.Join(strings.FieldsFunc(s.label, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '.')
	}), "_")
	if slug == "" {
		slug = "frame"
	}
	return fmt.Sprintf("%06d-%s.png", s.tick, slug)
}

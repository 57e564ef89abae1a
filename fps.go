package rwui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay renders the current FPS and TPS in the top-left corner of the
// screen. The text refreshes every ~0.5 seconds to stay readable.
type fpsOverlay struct {
	img   *ebiten.Image
	since time.Duration
	fresh bool
}

func (f *fpsOverlay) tick(elapsed time.Duration) {
	f.since += elapsed
	if f.fresh && f.since < 500*time.Millisecond {
		return
	}
	f.since = 0
	f.fresh = true

	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
	if f.img == nil {
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	// Semi-transparent background for readability.
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		return
	}
	screen.DrawImage(f.img, nil)
}

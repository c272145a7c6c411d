package burrow

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsMarker identifies the stats overlay in a HUD.
const StatsMarker = "stats-container"

// statsRefreshSeconds is how often the stats text is regenerated.
const statsRefreshSeconds = 0.5

// StatsWidget is a HUD overlay showing the current FPS, TPS and sprite
// count. The text is refreshed every ~0.5 seconds into its own image using
// ebitenutil.DebugPrint.
type StatsWidget struct {
	X, Y float64

	surface *Surface
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewStatsWidget creates a stats overlay that counts sprites on surface.
// surface may be nil.
func NewStatsWidget(surface *Surface) *StatsWidget {
	return &StatsWidget{surface: surface, elapsed: statsRefreshSeconds}
}

// Marker implements Overlay.
func (w *StatsWidget) Marker() string { return StatsMarker }

// Z implements zOrdered; stats draw on top.
func (w *StatsWidget) Z() int { return 1000 }

// Text returns the most recently generated stats text.
func (w *StatsWidget) Text() string { return w.text }

// Update accumulates time and regenerates the text when due.
func (w *StatsWidget) Update(dt float64) {
	w.elapsed += dt / TargetTPS
	if w.elapsed < statsRefreshSeconds {
		return
	}
	w.elapsed = 0

	sprites := 0
	if w.surface != nil && !w.surface.Destroyed() {
		sprites = w.surface.Stage().NumChildren()
	}
	w.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nNodes: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), sprites)
	if w.img != nil {
		w.render()
	}
}

// Draw implements Overlay.
func (w *StatsWidget) Draw(dst *ebiten.Image) {
	if w.img == nil {
		// 110x48 is enough for three short lines of the debug font.
		w.img = ebiten.NewImage(110, 48)
		w.render()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w.X, w.Y)
	dst.DrawImage(w.img, op)
}

func (w *StatsWidget) render() {
	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, w.text)
}

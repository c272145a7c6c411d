package burrow

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TargetTPS is the tick rate at which the elapsed-time factor equals 1.
const TargetTPS = 60

// DefaultBackground is the surface clear color.
var DefaultBackground = RGB(0x1099bb)

// Surface is the shared rendering surface: it owns the stage node tree, the
// frame clock, and the viewport size. Simulations add nodes to the stage and
// subscribe to the ticker; the host calls Update and Draw from its
// ebiten.Game.
type Surface struct {
	// Background fills the target before the stage is drawn.
	Background Color

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string

	stage  *Node
	ticker Ticker

	width, height float64
	destroyed     bool
	debug         bool

	op              ebiten.DrawImageOptions
	screenshotQueue []string
	drawCount       int
}

// NewSurface creates a surface with an empty stage of the given size.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		Background:    DefaultBackground,
		ScreenshotDir: "screenshots",
		stage:         NewContainer("stage"),
		width:         width,
		height:        height,
	}
}

// Width returns the current viewport width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the current viewport height.
func (s *Surface) Height() float64 { return s.height }

// Stage returns the root node every simulation attaches to.
func (s *Surface) Stage() *Node { return s.stage }

// Ticker returns the shared frame clock.
func (s *Surface) Ticker() *Ticker { return &s.ticker }

// Resize updates the viewport size. Simulations read the new size on their
// next tick.
func (s *Surface) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// DeltaTime returns the elapsed-time factor for one Update at the current
// ebiten tick rate: 1 at TargetTPS, 2 at half of it.
func (s *Surface) DeltaTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1
	}
	return float64(TargetTPS) / float64(tps)
}

// Update advances the frame clock by one tick.
func (s *Surface) Update() {
	s.Advance(s.DeltaTime())
}

// Advance ticks every subscriber with an explicit elapsed-time factor.
// Headless runs and tests drive the surface through Advance.
func (s *Surface) Advance(dt float64) {
	if s.destroyed {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.ticker.Tick(dt)
	if s.debug {
		s.debugLogTick(time.Since(t0))
	}
}

// Draw clears dst to the background color and draws the stage tree.
func (s *Surface) Draw(dst *ebiten.Image) {
	if s.destroyed {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dst.Fill(s.Background.RGBA8())
	s.drawCount = 0
	s.drawNode(dst, s.stage, identityTransform, 1, false)

	if s.debug {
		s.debugLogDraw(time.Since(t0))
	}
	s.flushScreenshots(dst)
}

// Destroy stops the clock and disposes the stage. The surface ignores
// Update and Draw afterwards.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.ticker.Clear()
	s.stage.Dispose()
}

// Destroyed reports whether Destroy has been called.
func (s *Surface) Destroyed() bool { return s.destroyed }

// drawNode walks the tree depth-first, refreshing world transforms and
// issuing one DrawImage per visible sprite or rect.
func (s *Surface) drawNode(dst *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}

	recompute := refreshWorld(n, parentTransform, parentAlpha, parentRecomputed)

	switch n.Type {
	case NodeTypeSprite:
		if n.Texture != nil {
			if img := n.Texture.Image(); img != nil {
				s.drawImage(dst, img, n.worldTransform, 1, 1, n.Color, n.worldAlpha)
			}
		}
	case NodeTypeRect:
		if n.Width > 0 && n.Height > 0 {
			s.drawImage(dst, ensureWhitePixel(), n.worldTransform, n.Width, n.Height, n.Color, n.worldAlpha)
		}
	}

	for _, child := range n.children {
		s.drawNode(dst, child, n.worldTransform, n.worldAlpha, recompute)
	}
}

func (s *Surface) drawImage(dst, img *ebiten.Image, m [6]float64, sx, sy float64, c Color, alpha float64) {
	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Scale(sx, sy)
	op.GeoM.Concat(affineGeoM(m))

	// Apply premultiplied color scale
	a := float32(c.A * alpha)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)

	dst.DrawImage(img, op)
	s.drawCount++
}

// affineGeoM converts a [6]float64 transform into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by rect nodes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

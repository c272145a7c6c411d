package burrow

import (
	"bytes"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay is an element drawn on top of the surface in screen space.
// Marker is a stable identifier used to find an existing overlay instead of
// mounting a duplicate.
type Overlay interface {
	Marker() string
	Draw(dst *ebiten.Image)
}

// overlayUpdater is implemented by overlays that refresh themselves each tick.
type overlayUpdater interface {
	Update(dt float64)
}

// zOrdered is implemented by overlays that care about stacking order.
type zOrdered interface {
	Z() int
}

// HUD is the host container for overlays: counters, stats, navigation. It
// is independent of the surface so it survives simulation switches.
type HUD struct {
	overlays []Overlay
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Query returns the overlay with the given marker, or nil.
func (h *HUD) Query(marker string) Overlay {
	for _, o := range h.overlays {
		if o.Marker() == marker {
			return o
		}
	}
	return nil
}

// Append mounts o. Overlays draw in ascending Z order, then mount order.
func (h *HUD) Append(o Overlay) {
	h.overlays = append(h.overlays, o)
	slices.SortStableFunc(h.overlays, func(a, b Overlay) int {
		return overlayZ(a) - overlayZ(b)
	})
}

// Remove unmounts the overlay with the given marker and reports whether one
// was found.
func (h *HUD) Remove(marker string) bool {
	for i, o := range h.overlays {
		if o.Marker() == marker {
			h.overlays = slices.Delete(h.overlays, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of mounted overlays.
func (h *HUD) Len() int {
	return len(h.overlays)
}

// Update forwards the elapsed-time factor to overlays that refresh themselves.
func (h *HUD) Update(dt float64) {
	for _, o := range h.overlays {
		if u, ok := o.(overlayUpdater); ok {
			u.Update(dt)
		}
	}
}

// Draw draws every overlay onto dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	for _, o := range h.overlays {
		o.Draw(dst)
	}
}

func overlayZ(o Overlay) int {
	if z, ok := o.(zOrdered); ok {
		return z.Z()
	}
	return 0
}

// --- Label ---

// Label is a single line of screen-space text.
type Label struct {
	X, Y     float64
	Color    Color
	FontSize float64
	ZIndex   int

	marker string
	text   string
}

// NewLabel creates a white 20px label at the origin.
func NewLabel(marker string) *Label {
	return &Label{
		marker:   marker,
		Color:    ColorWhite,
		FontSize: 20,
	}
}

// Marker implements Overlay.
func (l *Label) Marker() string { return l.marker }

// Z implements zOrdered.
func (l *Label) Z() int { return l.ZIndex }

// Text returns the label's content.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's content.
func (l *Label) SetText(s string) { l.text = s }

// Draw implements Overlay.
func (l *Label) Draw(dst *ebiten.Image) {
	if l.text == "" {
		return
	}
	face := fontFace(l.FontSize)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color.RGBA8())
	text.Draw(dst, l.text, face, op)
}

// font source singleton (no sync.Once; drawing happens on the game goroutine)
var (
	fontSource     *text.GoTextFaceSource
	fontSourceErr  error
	fontFaceBySize = map[float64]*text.GoTextFace{}
)

// fontFace returns a Go Regular face of the given size, or nil if the font
// could not be parsed.
func fontFace(size float64) *text.GoTextFace {
	if fontSource == nil && fontSourceErr == nil {
		fontSource, fontSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontSourceErr != nil {
			log.Printf("[burrow] hud: failed to parse font: %v", fontSourceErr)
		}
	}
	if fontSource == nil {
		return nil
	}
	if f, ok := fontFaceBySize[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fontSource, Size: size}
	fontFaceBySize[size] = f
	return f
}

// MeasureText returns the advance width and line height of s at size.
func MeasureText(s string, size float64) (w, h float64) {
	face := fontFace(size)
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

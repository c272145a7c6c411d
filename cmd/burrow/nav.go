package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/burrow"
)

const (
	navMarker   = "nav"
	navFontSize = 16
	navPadding  = 10
	navGap      = 20
	navMargin   = 10
)

var (
	navActiveColor   = burrow.RGB(0x0088cc)
	navInactiveColor = burrow.RGB(0x333333)
	navBackground    = color.RGBA{255, 255, 255, 230}
)

func navTitle(k burrow.Kind) string {
	switch k {
	case burrow.KindWin:
		return "Win Effect"
	default:
		return "Bunny Game"
	}
}

type navLink struct {
	kind   burrow.Kind
	label  *burrow.Label
	bounds burrow.Rect
}

// navBar is the top-right route switcher. It is a HUD overlay; the host
// hit-tests clicks against it.
type navBar struct {
	links  []*navLink
	bounds burrow.Rect
}

func newNavBar() *navBar {
	n := &navBar{}
	for _, k := range burrow.Routes {
		l := burrow.NewLabel(navMarker + k.Route())
		l.FontSize = navFontSize
		l.SetText(navTitle(k))
		n.links = append(n.links, &navLink{kind: k, label: l})
	}
	return n
}

func (n *navBar) Marker() string { return navMarker }

func (n *navBar) Z() int { return 2000 }

// layout right-aligns the links for a screen of the given width.
func (n *navBar) layout(screenW float64) {
	var widths []float64
	total, lineH := 0.0, 0.0
	for _, l := range n.links {
		w, h := burrow.MeasureText(l.label.Text(), navFontSize)
		widths = append(widths, w)
		total += w
		lineH = max(lineH, h)
	}
	total += navGap * float64(len(n.links)-1)

	n.bounds = burrow.Rect{
		X:      screenW - navMargin - total - 2*navPadding,
		Y:      navMargin,
		Width:  total + 2*navPadding,
		Height: lineH + 2*navPadding,
	}
	x := n.bounds.X + navPadding
	y := n.bounds.Y + navPadding
	for i, l := range n.links {
		l.label.X, l.label.Y = x, y
		l.bounds = burrow.Rect{X: x, Y: y, Width: widths[i], Height: lineH}
		x += widths[i] + navGap
	}
}

func (n *navBar) setActive(k burrow.Kind) {
	for _, l := range n.links {
		if l.kind == k {
			l.label.Color = navActiveColor
		} else {
			l.label.Color = navInactiveColor
		}
	}
}

// linkAt returns the kind of the link under (x, y).
func (n *navBar) linkAt(x, y float64) (burrow.Kind, bool) {
	for _, l := range n.links {
		if l.bounds.Contains(x, y) {
			return l.kind, true
		}
	}
	return burrow.KindNone, false
}

func (n *navBar) Draw(dst *ebiten.Image) {
	b := n.bounds
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), navBackground, false)
	for _, l := range n.links {
		l.label.Draw(dst)
	}
}

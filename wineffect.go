package burrow

import (
	"context"
	"math"

	"github.com/tanema/gween/ease"
)

// Win effect cosmetics.
const (
	winSpinPerTick = 0.1
	winPulse       = 0.2
)

// EaseInOutCubic is the default progress remapping of the win effect:
// 4p³ below one half, 1-(-2p+2)³/2 above.
func EaseInOutCubic(p float64) float64 {
	return applyEase(ease.InOutCubic, p)
}

// applyEase evaluates a gween easing function over a unit span.
func applyEase(fn ease.TweenFunc, p float64) float64 {
	return float64(fn(float32(p), 0, 1, 1))
}

// WinParams configures a WinEffect.
type WinParams struct {
	Start, End Vec2

	// Duration is the run length in elapsed-time units (ticks at TargetTPS).
	// Zero means 1.
	Duration float64

	// Ease remaps linear progress before interpolation. Nil means
	// ease.InOutCubic.
	Ease ease.TweenFunc
}

// WinEffect moves a single sprite from Start to End with eased progress,
// spinning it and pulsing its scale along the way. It owns its own tick
// callback.
type WinEffect struct {
	*Actor

	surface *Surface
	texture *Texture
	params  WinParams

	progress   float64
	running    bool
	onComplete func()
	tick       TickHandle
}

var _ Simulation = (*WinEffect)(nil)

// NewWinEffect mounts a sprite for tex at params.Start, subscribes to the
// surface ticker and starts the animation.
func NewWinEffect(surface *Surface, tex *Texture, params WinParams) *WinEffect {
	if params.Duration <= 0 {
		params.Duration = 1
	}
	if params.Ease == nil {
		params.Ease = ease.InOutCubic
	}
	e := &WinEffect{surface: surface, texture: tex, params: params}
	e.mount()
	return e
}

func (e *WinEffect) mount() {
	e.Actor = newActor(e.surface, "win", e.texture)
	e.SetPosition(e.params.Start.X, e.params.Start.Y)
	e.tick = e.surface.Ticker().Add(e.Update)
	e.Start(nil)
}

// Start rewinds the animation and runs it. onComplete, if non-nil, fires
// once when the sprite reaches End.
func (e *WinEffect) Start(onComplete func()) {
	e.progress = 0
	e.running = true
	e.onComplete = onComplete
	if n := e.node; n != nil {
		n.SetRotation(0)
		n.SetScale(1, 1)
	}
}

// Update advances progress by dt/Duration. On reaching 1 the sprite snaps
// to End and the completion callback fires.
func (e *WinEffect) Update(dt float64) {
	if !e.running || e.Destroyed() {
		return
	}

	e.progress += dt / e.params.Duration
	if e.progress >= 1 {
		e.progress = 1
		e.running = false
		e.SetPosition(e.params.End.X, e.params.End.Y)
		if e.onComplete != nil {
			e.onComplete()
		}
		return
	}

	p := e.params.Start.Lerp(e.params.End, applyEase(e.params.Ease, e.progress))
	e.SetPosition(p.X, p.Y)
	e.node.SetRotation(e.node.Rotation + winSpinPerTick*dt)
	s := 1 + math.Sin(e.progress*math.Pi)*winPulse
	e.node.SetScale(s, s)
}

// Stop halts the animation where it is. The completion callback does not
// fire.
func (e *WinEffect) Stop() {
	e.running = false
}

// Progress returns linear progress in [0, 1].
func (e *WinEffect) Progress() float64 { return e.progress }

// Running reports whether the animation is in flight.
func (e *WinEffect) Running() bool { return e.running }

// Params returns the effect's configuration.
func (e *WinEffect) Params() WinParams { return e.params }

// Init remounts an effect that was destroyed and restarts it. On a mounted
// effect it does nothing.
func (e *WinEffect) Init(ctx context.Context, p InitParams) {
	if e.Actor != nil && !e.Destroyed() {
		return
	}
	e.mount()
}

// Resize does nothing; Start and End are fixed at construction.
func (e *WinEffect) Resize(width, height float64) {}

// Restart rewinds and reruns the animation with the same callback.
func (e *WinEffect) Restart() {
	if e.Destroyed() {
		return
	}
	e.Start(e.onComplete)
}

// Destroy unsubscribes from the ticker and releases the sprite.
func (e *WinEffect) Destroy() {
	defer e.tick.Remove()
	e.running = false
	e.Actor.Destroy()
}

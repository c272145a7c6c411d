package burrow

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
)

const (
	// DefaultBunnyCount is the population spawned by Init.
	DefaultBunnyCount = 20000

	// BunnyTexture is the extensionless asset path of the shared bunny
	// texture. The loader picks the compressed or PNG variant.
	BunnyTexture = "bunny"

	// CounterMarker identifies the captured-count label in a HUD.
	CounterMarker = "bunny-count"

	holeWidth  = 50
	holeHeight = 20

	bunnyGravity    = 0.5
	bunnyJumpImpact = 20
	bunnyJitter     = 50
)

// Bunny is one bouncing sprite.
type Bunny struct {
	*Actor
}

// update applies gravity, the ground bounce and the wall bounce, then syncs
// the node. width and height are the live viewport size.
func (b *Bunny) update(dt, width, height float64, rng *rand.Rand) {
	w, h := b.Size()
	halfW, halfH := w/2, h/2
	groundY := height - halfH

	b.vel.Y += bunnyGravity * dt
	b.pos.X += b.vel.X * dt
	b.pos.Y += b.vel.Y * dt

	if b.pos.Y >= groundY {
		b.pos.Y = groundY
		b.vel.Y = -bunnyJumpImpact * rng.Float64()
		b.vel.X = (rng.Float64() - 0.5) * 8
	}

	if b.pos.X <= halfW || b.pos.X >= width-halfW {
		b.vel.X = -b.vel.X
		b.pos.X = max(halfW, min(width-halfW, b.pos.X))
	}

	b.syncNode()
}

// BunnyOptions configures a BunnyGame.
type BunnyOptions struct {
	// Count is the number of bunnies spawned once the texture loads.
	// Zero means DefaultBunnyCount.
	Count int

	// Texture is the loader path of the bunny texture. Empty means
	// BunnyTexture.
	Texture string

	// Rand drives tints, velocities, positions and bounces. Nil seeds a new
	// generator.
	Rand *rand.Rand

	// Sink, if set, receives a CaptureEvent for every captured bunny.
	Sink EventSink
}

// BunnyGame is the bouncing-particle simulation: a population of bunnies
// falling under gravity, bouncing off the viewport edges, and disappearing
// into a hole at the bottom of the screen.
type BunnyGame struct {
	surface *Surface
	loader  *Loader
	opts    BunnyOptions
	rng     *rand.Rand

	bunnies  []*Bunny
	hole     *Node
	captured int
	counter  *Label

	tick    TickHandle
	pending <-chan LoadResult
	params  InitParams
}

var _ Simulation = (*BunnyGame)(nil)

// NewBunnyGame creates an uninitialized simulation on surface. Call Init to
// mount it.
func NewBunnyGame(surface *Surface, loader *Loader, opts BunnyOptions) *BunnyGame {
	if opts.Count <= 0 {
		opts.Count = DefaultBunnyCount
	}
	if opts.Texture == "" {
		opts.Texture = BunnyTexture
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &BunnyGame{surface: surface, loader: loader, opts: opts, rng: rng}
}

// Init mounts the counter label and the hole, starts loading the bunny
// texture and registers the tick callback. Repeated calls never duplicate
// the hole, the label or the callback, and do not respawn a live population.
func (g *BunnyGame) Init(ctx context.Context, p InitParams) {
	g.params = p
	g.initCounter(p.HUD)
	g.initHole(p.Width, p.Height)
	if !g.tick.Active() {
		g.tick = g.surface.Ticker().Add(g.Update)
	}
	if g.pending != nil || len(g.bunnies) > 0 {
		return
	}
	if g.loader == nil {
		log.Printf("[bunny] texture load failed: %v", errNoLoader)
		return
	}
	g.pending = g.loader.LoadAsync(ctx, g.opts.Texture)
}

func (g *BunnyGame) initCounter(hud *HUD) {
	if hud == nil {
		return
	}
	if existing, ok := hud.Query(CounterMarker).(*Label); ok {
		g.counter = existing
		return
	}
	l := NewLabel(CounterMarker)
	l.X, l.Y = 10, 120
	l.ZIndex = 1000
	g.counter = l
	g.updateCounter()
	hud.Append(l)
}

func (g *BunnyGame) initHole(width, height float64) {
	if g.hole != nil && g.surface.Stage().HasChild(g.hole) {
		return
	}
	g.hole = NewRect("hole", holeWidth, holeHeight, ColorBlack)
	g.hole.SetPosition(g.rng.Float64()*(width-holeWidth), height-holeHeight)
	g.surface.Stage().AddChild(g.hole)
}

// finishLoad consumes a texture load result and spawns the population.
func (g *BunnyGame) finishLoad(res LoadResult) {
	g.pending = nil
	if res.Err != nil {
		log.Printf("[bunny] texture load failed: %v", res.Err)
		return
	}
	g.AddBunnies(res.Texture, g.opts.Count)
}

// AddBunnies spawns n bunnies using tex around the viewport center.
func (g *BunnyGame) AddBunnies(tex *Texture, n int) {
	cx, cy := g.surface.Width()/2, g.surface.Height()/2
	g.bunnies = append(make([]*Bunny, 0, len(g.bunnies)+n), g.bunnies...)
	for range n {
		b := &Bunny{Actor: newActor(g.surface, "bunny", tex)}
		b.node.Color = RandomTint(g.rng)
		b.SetVelocity((g.rng.Float64()-0.5)*4, (g.rng.Float64()-0.5)*4)
		b.SetPosition(
			cx+g.rng.Float64()*2*bunnyJitter-bunnyJitter,
			cy+g.rng.Float64()*2*bunnyJitter-bunnyJitter,
		)
		g.bunnies = append(g.bunnies, b)
	}
}

// pollLoad picks up a finished texture load without blocking.
func (g *BunnyGame) pollLoad() {
	if g.pending == nil {
		return
	}
	select {
	case res := <-g.pending:
		g.finishLoad(res)
	default:
	}
}

// AwaitLoad blocks until the texture load started by Init has finished and
// the population is spawned. Headless runs use it instead of waiting for a
// tick to pick the result up. It must run on the goroutine that ticks the
// surface.
func (g *BunnyGame) AwaitLoad(ctx context.Context) error {
	if g.pending == nil {
		return nil
	}
	select {
	case res := <-g.pending:
		g.finishLoad(res)
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Update advances every bunny once. A bunny overlapping the hole is
// captured instead of moved: it is destroyed and compacted out of the
// collection in the same pass.
func (g *BunnyGame) Update(dt float64) {
	g.pollLoad()
	if len(g.bunnies) == 0 {
		return
	}

	var holeBounds Rect
	hasHole := g.hole != nil && !g.hole.IsDisposed()
	if hasHole {
		holeBounds = g.hole.Bounds()
	}
	width, height := g.surface.Width(), g.surface.Height()

	live := g.bunnies[:0]
	for i, b := range g.bunnies {
		if hasHole && b.Bounds().Overlaps(holeBounds) {
			g.capture(b, len(live)+len(g.bunnies)-i-1)
			continue
		}
		b.update(dt, width, height, g.rng)
		live = append(live, b)
	}
	clear(g.bunnies[len(live):])
	g.bunnies = live
}

// capture removes b and records it. remaining is the live count once b is
// gone.
func (g *BunnyGame) capture(b *Bunny, remaining int) {
	pos := b.Position()
	b.Destroy()
	g.captured++
	g.updateCounter()
	if g.opts.Sink != nil {
		g.opts.Sink.EmitCapture(CaptureEvent{
			Total:     g.captured,
			Remaining: remaining,
			X:         pos.X,
			Y:         pos.Y,
		})
	}
}

func (g *BunnyGame) updateCounter() {
	if g.counter != nil {
		g.counter.SetText(fmt.Sprintf("Captured Bunnies: %d", g.captured))
	}
}

// Resize is a no-op: bunnies read the live viewport size every tick.
func (g *BunnyGame) Resize(width, height float64) {}

// Destroy stops the tick callback, destroys every bunny and detaches the
// hole. It is safe to call repeatedly. The captured count is kept.
func (g *BunnyGame) Destroy() {
	defer g.tick.Remove()
	for i := len(g.bunnies) - 1; i >= 0; i-- {
		g.bunnies[i].Destroy()
	}
	clear(g.bunnies)
	g.bunnies = g.bunnies[:0]
	if g.hole != nil {
		g.hole.RemoveFromParent()
	}
	g.pending = nil
}

// Restart tears the simulation down and mounts it again with the last
// parameters.
func (g *BunnyGame) Restart() {
	g.Destroy()
	g.Init(context.Background(), g.params)
}

// Bunnies returns the live population. The slice must not be modified.
func (g *BunnyGame) Bunnies() []*Bunny { return g.bunnies }

// Len returns the number of live bunnies.
func (g *BunnyGame) Len() int { return len(g.bunnies) }

// Captured returns how many bunnies have fallen into the hole.
func (g *BunnyGame) Captured() int { return g.captured }

// Hole returns the capture-zone node, or nil before Init.
func (g *BunnyGame) Hole() *Node { return g.hole }

// Counter returns the captured-count label, or nil when Init had no HUD.
func (g *BunnyGame) Counter() *Label { return g.counter }

// Loading reports whether the texture load is still in flight.
func (g *BunnyGame) Loading() bool { return g.pending != nil }

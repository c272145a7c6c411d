package burrow

// Entity is anything the simulations move around: it has a position and a
// velocity, occupies a rectangle on the stage, and can be removed from it.
type Entity interface {
	Position() Vec2
	SetPosition(x, y float64)
	Velocity() Vec2
	SetVelocity(x, y float64)
	Bounds() Rect
	Destroy()
}

// Actor is the Entity implementation shared by bunnies and the win effect.
// It owns one sprite node, centered on its position, which stays attached to
// the surface stage until Destroy.
type Actor struct {
	surface *Surface
	node    *Node
	pos     Vec2
	vel     Vec2
}

var _ Entity = (*Actor)(nil)

// newActor creates a sprite node for tex, anchors it at its center and
// attaches it to the surface stage.
func newActor(s *Surface, name string, tex *Texture) *Actor {
	n := NewSprite(name, tex)
	n.SetAnchor(0.5, 0.5)
	s.Stage().AddChild(n)
	return &Actor{surface: s, node: n}
}

// Node returns the sprite's scene node, or nil after Destroy.
func (a *Actor) Node() *Node { return a.node }

// Position returns the logical position.
func (a *Actor) Position() Vec2 { return a.pos }

// SetPosition moves the sprite and its node.
func (a *Actor) SetPosition(x, y float64) {
	a.pos = Vec2{x, y}
	if a.node != nil {
		a.node.SetPosition(x, y)
	}
}

// Velocity returns the current velocity.
func (a *Actor) Velocity() Vec2 { return a.vel }

// SetVelocity replaces the velocity.
func (a *Actor) SetVelocity(x, y float64) {
	a.vel = Vec2{x, y}
}

// Bounds returns the node's rectangle in stage coordinates.
func (a *Actor) Bounds() Rect {
	if a.node == nil {
		return Rect{X: a.pos.X, Y: a.pos.Y}
	}
	return a.node.Bounds()
}

// Size returns the rendered width and height of the node.
func (a *Actor) Size() (w, h float64) {
	if a.node == nil {
		return 0, 0
	}
	return a.node.Size()
}

// syncNode copies the logical position to the node.
func (a *Actor) syncNode() {
	a.node.SetPosition(a.pos.X, a.pos.Y)
}

// Destroy detaches and disposes the node. Later calls are no-ops.
func (a *Actor) Destroy() {
	if a.node == nil {
		return
	}
	a.node.Dispose()
	a.node = nil
}

// Destroyed reports whether Destroy has been called.
func (a *Actor) Destroyed() bool { return a.node == nil }

package burrow

import "context"

// InitParams is what a simulation needs to mount itself.
type InitParams struct {
	Width, Height float64
	HUD           *HUD
}

// Simulation is the contract the Manager drives. Every method is safe to
// call in any state; errors are logged, never returned.
type Simulation interface {
	// Init mounts the simulation onto the surface. Calling Init again after
	// Destroy mounts it afresh.
	Init(ctx context.Context, p InitParams)
	// Update advances the simulation by one tick.
	Update(dt float64)
	Resize(width, height float64)
	// Destroy removes everything the simulation added to the surface and
	// stops its tick callback.
	Destroy()
	Restart()
}

// Kind identifies a simulation the Manager can run.
type Kind uint8

const (
	KindNone  Kind = iota // nothing active
	KindBunny             // bouncing-particle simulation
	KindWin               // tweened win effect
)

// String returns the short kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBunny:
		return "bunny"
	case KindWin:
		return "win"
	default:
		return "none"
	}
}

// Route returns the URL-style path the host shows for k.
func (k Kind) Route() string {
	switch k {
	case KindWin:
		return "/win"
	default:
		return "/bunny"
	}
}

// Routes lists the navigable kinds in navigation order.
var Routes = []Kind{KindBunny, KindWin}

// KindForRoute maps a route path to a kind. Unknown paths, including "/",
// map to KindBunny.
func KindForRoute(path string) Kind {
	switch path {
	case "/win", "win":
		return KindWin
	default:
		return KindBunny
	}
}

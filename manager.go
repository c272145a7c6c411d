package burrow

import (
	"context"
	"log"
)

// DefaultWinDuration is the win effect run length in elapsed-time units.
const DefaultWinDuration = 500

// ManagerConfig configures the simulations a Manager builds.
type ManagerConfig struct {
	// Bunny is passed to NewBunnyGame.
	Bunny BunnyOptions

	// WinTexture is the loader path of the win effect sprite. Empty means
	// BunnyTexture.
	WinTexture string

	// WinDuration is the win effect run length. Zero means
	// DefaultWinDuration.
	WinDuration float64

	// NoStats skips mounting the stats overlay.
	NoStats bool
}

// Manager decides which simulation runs on a shared surface. At most one is
// active; each kind keeps a single instance for the manager's lifetime, so
// switching away and back reuses it.
type Manager struct {
	surface *Surface
	loader  *Loader
	cfg     ManagerConfig

	active    Kind
	bunny     *BunnyGame
	win       *WinEffect
	destroyed bool
}

// NewManager creates a manager with nothing active.
func NewManager(surface *Surface, loader *Loader, cfg ManagerConfig) *Manager {
	if cfg.WinTexture == "" {
		cfg.WinTexture = BunnyTexture
	}
	if cfg.WinDuration <= 0 {
		cfg.WinDuration = DefaultWinDuration
	}
	return &Manager{surface: surface, loader: loader, cfg: cfg}
}

// Surface returns the shared rendering surface.
func (m *Manager) Surface() *Surface { return m.surface }

// Active returns the running kind.
func (m *Manager) Active() Kind { return m.active }

// Simulation returns the retained instance for kind, or nil if it has not
// been built.
func (m *Manager) Simulation(kind Kind) Simulation {
	switch kind {
	case KindBunny:
		if m.bunny != nil {
			return m.bunny
		}
	case KindWin:
		if m.win != nil {
			return m.win
		}
	}
	return nil
}

// BunnyGame returns the retained bunny simulation, or nil.
func (m *Manager) BunnyGame() *BunnyGame { return m.bunny }

// WinEffect returns the retained win effect, or nil.
func (m *Manager) WinEffect() *WinEffect { return m.win }

// Start makes kind the active simulation. Starting the active kind is a
// no-op. Otherwise the current simulation is destroyed before the new one
// is initialized. Starting KindNone only tears down.
func (m *Manager) Start(ctx context.Context, kind Kind, hud *HUD) {
	if m.destroyed {
		log.Printf("[manager] start %s: manager destroyed", kind)
		return
	}
	if kind == m.active {
		log.Printf("[manager] %s is already running", kind)
		return
	}

	m.stopActive()
	if kind == KindNone {
		return
	}
	m.mountStats(hud)

	p := InitParams{Width: m.surface.Width(), Height: m.surface.Height(), HUD: hud}
	var sim Simulation
	switch kind {
	case KindBunny:
		if m.bunny == nil {
			m.bunny = NewBunnyGame(m.surface, m.loader, m.cfg.Bunny)
		}
		sim = m.bunny
	case KindWin:
		if m.win == nil {
			win, err := m.newWinEffect(ctx, p.Width, p.Height)
			if err != nil {
				log.Printf("[manager] win effect texture load failed: %v", err)
				return
			}
			m.win = win
		}
		sim = m.win
	default:
		log.Printf("[manager] unknown simulation kind %d", kind)
		return
	}

	sim.Init(ctx, p)
	m.active = kind
	log.Printf("[manager] started %s", kind)
}

func (m *Manager) newWinEffect(ctx context.Context, width, height float64) (*WinEffect, error) {
	if m.loader == nil {
		return nil, errNoLoader
	}
	tex, err := m.loader.Load(ctx, m.cfg.WinTexture)
	if err != nil {
		return nil, err
	}
	return NewWinEffect(m.surface, tex, WinParams{
		Start:    Vec2{0, height / 2},
		End:      Vec2{width, height / 2},
		Duration: m.cfg.WinDuration,
	}), nil
}

// mountStats appends the stats overlay unless the HUD already has one.
func (m *Manager) mountStats(hud *HUD) {
	if m.cfg.NoStats || hud == nil || hud.Query(StatsMarker) != nil {
		return
	}
	hud.Append(NewStatsWidget(m.surface))
}

// stopActive destroys the active simulation, if any.
func (m *Manager) stopActive() {
	if sim := m.Simulation(m.active); sim != nil {
		sim.Destroy()
	}
	m.active = KindNone
}

// Restart restarts the active simulation.
func (m *Manager) Restart() {
	if sim := m.Simulation(m.active); sim != nil {
		sim.Restart()
	}
}

// Resize resizes the surface and forwards the new size to the bunny game.
func (m *Manager) Resize(width, height float64) {
	if m.destroyed {
		return
	}
	m.surface.Resize(width, height)
	if m.bunny != nil {
		m.bunny.Resize(width, height)
	}
}

// Destroy tears down the active simulation and releases the surface. The
// retained instances are dropped.
func (m *Manager) Destroy() {
	if m.destroyed {
		return
	}
	m.stopActive()
	m.surface.Destroy()
	m.bunny = nil
	m.win = nil
	m.destroyed = true
}

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/burrow"
	"github.com/phanxgames/burrow/assets"
	"github.com/phanxgames/burrow/internal/config"
)

// host is the ebiten.Game that owns the surface, the HUD and the manager,
// and routes navigation to the manager.
type host struct {
	ctx     context.Context
	cfg     *config.Config
	surface *burrow.Surface
	loader  *burrow.Loader
	manager *burrow.Manager
	hud     *burrow.HUD
	nav     *navBar
	script  *burrow.Script

	route         string
	width, height int
	quit          bool
}

var _ burrow.ScriptTarget = (*host)(nil)

func newHost(ctx context.Context, cfg *config.Config) (*host, error) {
	bg, err := cfg.BackgroundRGB()
	if err != nil {
		return nil, err
	}

	surface := burrow.NewSurface(float64(cfg.Window.Width), float64(cfg.Window.Height))
	surface.Background = burrow.RGB(bg)
	surface.ScreenshotDir = cfg.ScreenshotDir
	surface.SetDebugMode(cfg.Debug)

	loader := burrow.NewLoader(assets.FS())
	loader.PreferCompressed = cfg.Bunny.PreferCompressed

	var rng *rand.Rand
	if cfg.Bunny.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Bunny.Seed, cfg.Bunny.Seed))
	}

	h := &host{
		ctx:     ctx,
		cfg:     cfg,
		surface: surface,
		loader:  loader,
		manager: burrow.NewManager(surface, loader, burrow.ManagerConfig{
			Bunny: burrow.BunnyOptions{
				Count:   cfg.Bunny.Count,
				Texture: cfg.Bunny.Texture,
				Rand:    rng,
			},
			WinTexture:  cfg.Win.Texture,
			WinDuration: cfg.Win.Duration,
			NoStats:     !cfg.ShowStats,
		}),
		hud:    burrow.NewHUD(),
		nav:    newNavBar(),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	h.hud.Append(h.nav)
	h.nav.layout(float64(h.width))
	h.Navigate(cfg.Route)
	return h, nil
}

// run opens the window and blocks until it closes.
func (h *host) run() error {
	defer h.manager.Destroy()
	defer h.loader.Release()

	ebiten.SetWindowTitle(h.cfg.Window.Title)
	ebiten.SetWindowSize(h.cfg.Window.Width, h.cfg.Window.Height)
	ebiten.SetTPS(h.cfg.Window.TPS)
	if h.cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Navigate starts the simulation for route. Unknown routes fall back to
// the bunny game.
func (h *host) Navigate(route string) {
	kind := burrow.KindForRoute(route)
	h.route = kind.Route()
	h.nav.setActive(kind)
	h.manager.Start(h.ctx, kind, h.hud)
}

// Restart restarts the active simulation.
func (h *host) Restart() {
	h.manager.Restart()
}

// Screenshot queues a capture of the next frame.
func (h *host) Screenshot(label string) {
	h.surface.Screenshot(label)
}

// Resize changes the logical screen size.
func (h *host) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		log.Printf("[host] ignoring resize to %vx%v", width, height)
		return
	}
	h.width, h.height = int(width), int(height)
	h.manager.Resize(width, height)
	h.nav.layout(width)
}

// Quit ends the game loop at the next Update.
func (h *host) Quit() {
	h.quit = true
}

func (h *host) Update() error {
	if h.quit {
		return ebiten.Termination
	}
	h.handleInput()
	if h.script != nil {
		h.script.Step(h)
	}

	dt := h.surface.DeltaTime()
	h.surface.Update()
	h.hud.Update(dt)
	return nil
}

func (h *host) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		h.Navigate(burrow.KindBunny.Route())
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		h.Navigate(burrow.KindWin.Route())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		h.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		h.Screenshot(h.route)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		h.Quit()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if kind, ok := h.nav.linkAt(float64(x), float64(y)); ok {
			h.Navigate(kind.Route())
		}
	}
}

func (h *host) Draw(screen *ebiten.Image) {
	h.surface.Draw(screen)
	h.hud.Draw(screen)
}

// Layout follows the window size so the simulations see the real viewport.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.cfg.Window.Resizable && (outsideWidth != h.width || outsideHeight != h.height) {
		h.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return h.width, h.height
}

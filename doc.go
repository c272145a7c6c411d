// Package burrow runs two small [Ebitengine] demos on a shared retained-mode
// surface: a bunny game where thousands of sprites bounce under gravity and
// fall into a hole, and a win effect that sweeps one sprite across the screen
// with eased motion.
//
// # Quick start
//
// A [Manager] owns the [Surface] and decides which [Simulation] runs. The
// host program implements [ebiten.Game] and forwards the frame loop:
//
//	surface := burrow.NewSurface(800, 600)
//	loader := burrow.NewLoader(assets.FS())
//	hud := burrow.NewHUD()
//	m := burrow.NewManager(surface, loader, burrow.ManagerConfig{})
//	m.Start(ctx, burrow.KindBunny, hud)
//
//	func (g *Game) Update() error {
//		g.surface.Update()
//		g.hud.Update(g.surface.DeltaTime())
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.surface.Draw(screen)
//		g.hud.Draw(screen)
//	}
//
// # Surface and scene graph
//
// Every visual element is a [Node] attached below [Surface.Stage]. Children
// inherit their parent's transform and alpha. World transforms are only
// recomputed for dirty subtrees during [Surface.Draw].
//
// # Frame clock
//
// Simulations subscribe to [Surface.Ticker]. Each tick passes an elapsed-time
// factor that is 1 at [TargetTPS]; [Surface.Advance] drives the clock
// explicitly for headless runs. Subscribers removed during a tick stop
// receiving ticks at once and are compacted out when the tick ends.
//
// # Assets
//
// A [Loader] reads textures from an [io/fs.FS] and caches them by path.
// Extensionless paths resolve to the compressed variant when
// [Loader.PreferCompressed] is set and fall back to PNG.
//
// # Overlays
//
// The [HUD] draws screen-space overlays above the surface, ordered by Z and
// looked up by marker. The bunny counter and the [StatsWidget] live there.
//
// [Ebitengine]: https://ebitengine.org
package burrow

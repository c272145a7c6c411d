package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/phanxgames/burrow"
	"github.com/phanxgames/burrow/assets"
	"github.com/phanxgames/burrow/ecs"
	"github.com/phanxgames/burrow/internal/config"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var (
	benchTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	benchPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1099bb")).
			Padding(0, 2)

	benchLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	benchValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)
)

type benchOptions struct {
	Width, Height float64
	Bunnies       int
	Ticks         int
	Seed          uint64
	Texture       string
}

type benchResult struct {
	Ticks     int
	Bunnies   int
	Captured  int
	Remaining int
	Elapsed   time.Duration
	// PerSecond holds captures per TargetTPS ticks.
	PerSecond []float64
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := bench(cmd.Context(), benchOptionsFrom(cfg))
	if err != nil {
		return err
	}
	printBench(cmd.OutOrStdout(), res)
	return nil
}

func benchOptionsFrom(cfg *config.Config) benchOptions {
	return benchOptions{
		Width:   float64(cfg.Window.Width),
		Height:  float64(cfg.Window.Height),
		Bunnies: cfg.Bunny.Count,
		Ticks:   benchTicks,
		Seed:    benchSeed,
		Texture: cfg.Bunny.Texture,
	}
}

// bench runs the bunny simulation on a windowless surface at a fixed
// elapsed-time factor of 1 and counts captures through a Donburi world.
func bench(ctx context.Context, opts benchOptions) (benchResult, error) {
	world := donburi.NewWorld()
	counter := ecs.SubscribeCounter(world)

	surface := burrow.NewSurface(opts.Width, opts.Height)
	defer surface.Destroy()

	game := burrow.NewBunnyGame(surface, burrow.NewLoader(assets.FS()), burrow.BunnyOptions{
		Count:   opts.Bunnies,
		Texture: opts.Texture,
		Rand:    rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		Sink:    ecs.NewDonburiSink(world),
	})
	game.Init(ctx, burrow.InitParams{Width: opts.Width, Height: opts.Height})
	if err := game.AwaitLoad(ctx); err != nil {
		return benchResult{}, fmt.Errorf("bench: %w", err)
	}

	res := benchResult{Ticks: opts.Ticks, Bunnies: game.Len()}
	start := time.Now()
	window := 0
	for i := range opts.Ticks {
		if err := ctx.Err(); err != nil {
			return benchResult{}, err
		}
		before := counter.Total
		surface.Advance(1)
		events.ProcessAllEvents(world)
		window += counter.Total - before

		if (i+1)%burrow.TargetTPS == 0 || i == opts.Ticks-1 {
			res.PerSecond = append(res.PerSecond, float64(window))
			window = 0
		}
	}
	res.Elapsed = time.Since(start)
	res.Captured = counter.Total
	res.Remaining = game.Len()
	game.Destroy()
	return res, nil
}

func printBench(w io.Writer, res benchResult) {
	fmt.Fprintln(w, benchTitle.Render("burrow bench"))

	if len(res.PerSecond) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(res.PerSecond,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("captures per second"),
		))
	}

	tps := 0.0
	if res.Elapsed > 0 {
		tps = float64(res.Ticks) / res.Elapsed.Seconds()
	}
	row := func(label string, value any) string {
		return benchLabel.Render(fmt.Sprintf("%-10s", label)) + " " + benchValue.Render(fmt.Sprint(value))
	}
	fmt.Fprintln(w, benchPanel.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("ticks", res.Ticks),
		row("bunnies", res.Bunnies),
		row("captured", res.Captured),
		row("remaining", res.Remaining),
		row("elapsed", res.Elapsed.Round(time.Millisecond)),
		row("ticks/s", fmt.Sprintf("%.0f", tps)),
	)))
}

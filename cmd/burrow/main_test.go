package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/phanxgames/burrow"
	"github.com/phanxgames/burrow/internal/config"
)

func TestBench_CountsAddUp(t *testing.T) {
	res, err := bench(t.Context(), benchOptions{
		Width: 400, Height: 300, Bunnies: 200, Ticks: 600, Seed: 7,
		Texture: "bunny",
	})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if res.Bunnies != 200 {
		t.Fatalf("Bunnies = %d, want 200", res.Bunnies)
	}
	if res.Captured+res.Remaining != res.Bunnies {
		t.Errorf("captured %d + remaining %d != %d", res.Captured, res.Remaining, res.Bunnies)
	}
	if len(res.PerSecond) != 10 {
		t.Errorf("PerSecond has %d windows, want 10", len(res.PerSecond))
	}
	sum := 0.0
	for _, v := range res.PerSecond {
		sum += v
	}
	if int(sum) != res.Captured {
		t.Errorf("per-second sum = %v, want %d", sum, res.Captured)
	}
}

func TestBench_Deterministic(t *testing.T) {
	opts := benchOptions{Width: 400, Height: 300, Bunnies: 100, Ticks: 300, Seed: 3, Texture: "bunny"}
	a, err := bench(t.Context(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bench(t.Context(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.Captured != b.Captured {
		t.Errorf("same seed gave %d and %d captures", a.Captured, b.Captured)
	}
}

func TestBench_MissingTexture(t *testing.T) {
	_, err := bench(t.Context(), benchOptions{Width: 400, Height: 300, Bunnies: 10, Ticks: 10, Texture: "nope"})
	if err == nil {
		t.Fatal("expected error for missing texture")
	}
}

func TestPrintBench(t *testing.T) {
	var buf bytes.Buffer
	printBench(&buf, benchResult{Ticks: 120, Bunnies: 10, Captured: 4, Remaining: 6, PerSecond: []float64{1, 3}})
	out := buf.String()
	for _, want := range []string{"burrow bench", "captures per second", "captured", "remaining"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	defer func() { configFile, preset, route, bunnies, debug = "", "", "", 0, false }()

	preset = "small"
	route = "/win"
	bunnies = 42
	debug = true
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Route != "/win" || cfg.Bunny.Count != 42 || !cfg.Debug {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	preset = "nope"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestNavBar_Layout(t *testing.T) {
	n := newNavBar()
	n.layout(800)
	n.setActive(burrow.KindWin)

	if right := n.bounds.X + n.bounds.Width; math.Abs(right-(800-navMargin)) > 1e-9 {
		t.Errorf("bar right edge = %v, want %v", right, 800-navMargin)
	}
	for _, l := range n.links {
		cx := l.bounds.X + l.bounds.Width/2
		cy := l.bounds.Y + l.bounds.Height/2
		kind, ok := n.linkAt(cx, cy)
		if !ok || kind != l.kind {
			t.Errorf("linkAt center of %s = %v,%v", l.kind, kind, ok)
		}
		want := navInactiveColor
		if l.kind == burrow.KindWin {
			want = navActiveColor
		}
		if l.label.Color != want {
			t.Errorf("%s color = %v, want %v", l.kind, l.label.Color, want)
		}
	}
	if _, ok := n.linkAt(0, 0); ok {
		t.Error("linkAt(0,0) should miss")
	}
}

func TestHost_Navigate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bunny.Count = 10
	cfg.Route = "/unknown"
	h, err := newHost(t.Context(), cfg)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	defer h.manager.Destroy()

	if h.route != "/bunny" || h.manager.Active() != burrow.KindBunny {
		t.Errorf("unknown route should start bunny, got %s / %s", h.route, h.manager.Active())
	}

	h.Navigate("/win")
	if h.manager.Active() != burrow.KindWin {
		t.Errorf("active = %s, want win", h.manager.Active())
	}

	h.Resize(640, 480)
	if h.surface.Width() != 640 || h.surface.Height() != 480 {
		t.Errorf("surface size = %vx%v, want 640x480", h.surface.Width(), h.surface.Height())
	}
	h.Resize(0, 10)
	if h.surface.Width() != 640 {
		t.Error("zero-width resize should be ignored")
	}
}

func TestHost_Script(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bunny.Count = 10
	h, err := newHost(t.Context(), cfg)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	defer h.manager.Destroy()

	h.script, err = burrow.LoadScript([]byte(`
steps:
  - action: route
    route: /win
  - action: wait
    frames: 2
  - action: quit
`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	for range 5 {
		h.script.Step(h)
	}
	if h.manager.Active() != burrow.KindWin {
		t.Errorf("active = %s, want win", h.manager.Active())
	}
	if !h.quit || !h.script.Done() {
		t.Errorf("quit=%v done=%v, want both true", h.quit, h.script.Done())
	}
}

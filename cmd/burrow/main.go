// Command burrow runs the bunny and win-effect demos in a window, or the bunny
// simulation headless as a benchmark.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/burrow"
	"github.com/phanxgames/burrow/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	route      string
	bunnies    int
	scriptFile string
	debug      bool

	benchTicks int
	benchSeed  uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "burrow",
		Short: "bouncing bunnies and a win effect on Ebitengine",
		RunE:  runWindow,
	}
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the demo window",
		RunE:  runWindow,
	}
	addRunFlags(runCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run the bunny simulation headless and report captures",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	benchCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	benchCmd.Flags().IntVar(&bunnies, "bunnies", 0, "bunny count (0 uses config)")
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 60*30, "ticks to simulate")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "random seed")

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "list routes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range burrow.Routes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", k.Route(), navTitle(k))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list bunny population presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d bunnies\n", name, config.Presets[name].Count)
			}
		},
	}

	rootCmd.AddCommand(runCmd, benchCmd, routesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&route, "route", "", "initial route (/bunny or /win)")
	cmd.Flags().IntVar(&bunnies, "bunnies", 0, "bunny count (0 uses config)")
	cmd.Flags().StringVar(&scriptFile, "script", "", "automation script (yaml)")
	cmd.Flags().BoolVar(&debug, "debug", false, "print per-frame timings")
}

// loadConfig resolves the config file or preset and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if route != "" {
		cfg.Route = route
	}
	if bunnies > 0 {
		cfg.Bunny.Count = bunnies
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var script *burrow.Script
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = burrow.LoadScript(data); err != nil {
			return err
		}
	}

	h, err := newHost(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	h.script = script
	return h.run()
}

package config

import "sort"

// Presets maps a name to bunny population overrides.
var Presets = map[string]BunnyConfig{
	"tiny":   {Count: 100},
	"small":  {Count: 1000},
	"demo":   {Count: DefaultBunnies},
	"stress": {Count: 100000},
}

// GetPreset returns the default config with the named preset applied, or nil
// if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Bunny.Count = p.Count
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

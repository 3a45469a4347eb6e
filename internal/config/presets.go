package config

import "sort"

var Presets = map[string]*Config{
	"draft": {
		IntervalMs: 50, StepsPerFrame: 6,
		Canvas: Canvas{SizeInches: 3, DPI: 60, MarkerRadius: 3, Supersample: 1},
	},
	"notebook": {
		IntervalMs: 50, StepsPerFrame: 3,
		Canvas: Canvas{SizeInches: 4, DPI: 100, MarkerRadius: 3, Supersample: 1},
	},
	"smooth": {
		IntervalMs: 20, StepsPerFrame: 1, ShowAverage: true,
		Canvas: Canvas{SizeInches: 4, DPI: 100, MarkerRadius: 3, Supersample: 2},
	},
	"poster": {
		IntervalMs: 40, StepsPerFrame: 2, ShowAverage: true,
		Canvas: Canvas{SizeInches: 8, DPI: 150, MarkerRadius: 5, Supersample: 2},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Preview.Theme == "" {
		cfg.Preview.Theme = DefaultConfig().Preview.Theme
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

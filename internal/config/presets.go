package config

import "sort"

// Presets are ready-made channel configurations keyed by transformation
// family, then preset name.
var Presets = map[string]map[string]*Channel{
	"geometric": {
		"tv": {
			Name: "tv", Adstock: "geometric", LMax: 12, Mode: "after",
			Params: map[string]float64{"alpha": 0.7},
		},
		"radio": {
			Name: "radio", Adstock: "geometric", LMax: 8, Mode: "after",
			Params: map[string]float64{"alpha": 0.4},
		},
		"search": {
			Name: "search", Adstock: "geometric", LMax: 4, Mode: "after",
			Params: map[string]float64{"alpha": 0.1},
		},
	},
	"delayed": {
		"brand-tv": {
			Name: "brand-tv", Adstock: "delayed", LMax: 16, Mode: "after",
			Params: map[string]float64{"alpha": 0.8, "theta": 3},
		},
		"sponsorship": {
			Name: "sponsorship", Adstock: "delayed", LMax: 20, Mode: "after",
			Params: map[string]float64{"alpha": 0.9, "theta": 5},
		},
	},
	"weibull": {
		"digital": {
			Name: "digital", Adstock: "weibull-pdf", LMax: 12, Mode: "after",
			Params: map[string]float64{"lam": 2, "k": 2},
		},
		"ooh": {
			Name: "ooh", Adstock: "weibull-cdf", LMax: 16, Mode: "after",
			Params: map[string]float64{"lam": 6, "k": 1.5},
		},
	},
}

func GetPreset(family, name string) *Channel {
	group, ok := Presets[family]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(family string) []string {
	group, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListFamilies returns the preset families, sorted.
func ListFamilies() []string {
	families := make([]string, 0, len(Presets))
	for f := range Presets {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

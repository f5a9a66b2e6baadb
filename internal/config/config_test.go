package config

import (
	"path/filepath"
	"testing"

	"github.com/quantmix/adstock/internal/adstock"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %s, got %s", DefaultDataDir, cfg.DataDir)
	}
	if len(cfg.Channels) == 0 {
		t.Fatal("expected a default channel")
	}
	if cfg.Channels[0].Adstock != "geometric" {
		t.Errorf("expected geometric adstock, got %s", cfg.Channels[0].Adstock)
	}
}

func TestGetPreset(t *testing.T) {
	ch := GetPreset("geometric", "tv")
	if ch == nil {
		t.Fatal("expected preset, got nil")
	}
	if ch.Params["alpha"] != 0.7 {
		t.Errorf("expected alpha 0.7, got %f", ch.Params["alpha"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if ch := GetPreset("geometric", "nonexistent"); ch != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if ch := GetPreset("nonexistent", "tv"); ch != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("geometric")
	if len(presets) == 0 {
		t.Error("expected presets for geometric")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestPresetsConstruct(t *testing.T) {
	reg := adstock.NewRegistry()

	for _, family := range ListFamilies() {
		for _, name := range ListPresets(family) {
			ch := GetPreset(family, name)

			tr, err := ch.Transform(reg)
			if err != nil {
				t.Fatalf("%s/%s: %v", family, name, err)
			}

			// Every preset carries a full parameter set for its kernel.
			if _, err := tr.Weights(ch.ParamValues()); err != nil {
				t.Errorf("%s/%s: %v", family, name, err)
			}
		}
	}
}

func TestChannelOptions(t *testing.T) {
	ch := Channel{Name: "tv", Adstock: "geometric"}
	opts := ch.Options()

	if opts.LMax != adstock.DefaultLMax {
		t.Errorf("expected default l_max %d, got %d", adstock.DefaultLMax, opts.LMax)
	}
	if !opts.Normalize {
		t.Error("expected normalization by default")
	}
	if opts.Mode != adstock.ConvAfter {
		t.Errorf("expected after mode, got %s", opts.Mode)
	}

	ch = Channel{Name: "tv", Adstock: "delayed", LMax: 20, Raw: true, Mode: "overlap"}
	opts = ch.Options()

	if opts.LMax != 20 || opts.Normalize || opts.Mode != adstock.ConvOverlap {
		t.Errorf("expected overridden options, got %+v", opts)
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.yaml")

	cfg := &Config{
		DataDir: "runs",
		Channels: []Channel{
			{
				Name:    "digital",
				Adstock: "weibull-pdf",
				LMax:    8,
				Mode:    "after",
				Params:  map[string]float64{"lam": 2, "k": 1.5},
				Priors: map[string]Prior{
					"lam": {Dist: "gamma", Kwargs: map[string]float64{"alpha": 2, "beta": 1}},
				},
			},
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	ch, err := loaded.Find("digital")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if ch.LMax != 8 {
		t.Errorf("expected l_max 8, got %d", ch.LMax)
	}
	if ch.Priors["lam"].Dist != "gamma" {
		t.Errorf("expected gamma prior override, got %s", ch.Priors["lam"].Dist)
	}

	opts := ch.Options()
	if opts.Priors["lam"].Kwargs["alpha"] != 2 {
		t.Errorf("expected prior kwargs to carry over, got %v", opts.Priors["lam"])
	}
}

func TestFind_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.Find("podcast"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

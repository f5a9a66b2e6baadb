package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantmix/adstock/internal/adstock"
	"github.com/quantmix/adstock/internal/prior"
)

const (
	DefaultLMax    = 12
	DefaultMode    = "after"
	DefaultAdstock = "geometric"
	DefaultDataDir = ".adstock"
)

type Config struct {
	DataDir  string    `yaml:"data_dir"`
	Channels []Channel `yaml:"channels"`
}

// Channel describes how one media channel's spend is adstocked.
type Channel struct {
	Name    string             `yaml:"name"`
	Adstock string             `yaml:"adstock"`
	LMax    int                `yaml:"l_max"`
	Raw     bool               `yaml:"raw"` // skip kernel normalization
	Mode    string             `yaml:"mode"`
	Params  map[string]float64 `yaml:"params"`
	Priors  map[string]Prior   `yaml:"priors"`
}

// Prior mirrors prior.Prior for yaml configs.
type Prior struct {
	Dist   string             `yaml:"dist"`
	Kwargs map[string]float64 `yaml:"kwargs"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Channels: []Channel{
			{Name: "tv", Adstock: DefaultAdstock, LMax: DefaultLMax, Mode: DefaultMode},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find returns the channel with the given name.
func (c *Config) Find(name string) (*Channel, error) {
	for i := range c.Channels {
		if c.Channels[i].Name == name {
			return &c.Channels[i], nil
		}
	}
	return nil, fmt.Errorf("unknown channel: %s", name)
}

// Options translates the channel into construction options, filling in
// defaults for unset fields.
func (ch *Channel) Options() adstock.Options {
	opts := adstock.DefaultOptions()
	if ch.LMax > 0 {
		opts.LMax = ch.LMax
	}
	opts.Normalize = !ch.Raw
	if ch.Mode != "" {
		opts.Mode = adstock.ConvMode(ch.Mode)
	}
	if len(ch.Priors) > 0 {
		opts.Priors = make(map[string]prior.Prior, len(ch.Priors))
		for name, p := range ch.Priors {
			opts.Priors[name] = prior.Prior{Dist: p.Dist, Kwargs: p.Kwargs}
		}
	}
	return opts
}

// Transform constructs the channel's transformation from the registry.
func (ch *Channel) Transform(reg *adstock.Registry) (adstock.Transformation, error) {
	name := ch.Adstock
	if name == "" {
		name = DefaultAdstock
	}
	return reg.Get(name, ch.Options())
}

// ParamValues returns the channel's fixed parameter values as Params.
func (ch *Channel) ParamValues() adstock.Params {
	p := make(adstock.Params, len(ch.Params))
	for name, v := range ch.Params {
		p[name] = v
	}
	return p
}

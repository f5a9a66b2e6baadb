package adstock

import (
	"fmt"
	"sort"

	"github.com/quantmix/adstock/internal/prior"
)

// Params maps parameter names to values for a transformation.
type Params map[string]float64

// ConvMode selects how the decay kernel is applied relative to the
// exposure period.
type ConvMode string

const (
	// ConvAfter spreads the effect over the exposure period and the
	// periods that follow it.
	ConvAfter ConvMode = "after"

	// ConvBefore spreads the effect over the exposure period and the
	// periods that precede it.
	ConvBefore ConvMode = "before"

	// ConvOverlap centers the kernel on the exposure period.
	ConvOverlap ConvMode = "overlap"
)

// DefaultLMax is the default maximum carryover length in periods.
const DefaultLMax = 12

// Transformation is a named, parametrized decay function with a prior
// for every parameter of its kernel.
type Transformation interface {
	Name() string
	MaxLag() int
	Mode() ConvMode
	ParamNames() []string
	Priors() map[string]prior.Prior
	Weights(p Params) ([]float64, error)
	Apply(x []float64, p Params) ([]float64, error)
}

// Options configure a transformation at construction time.
type Options struct {
	LMax      int
	Normalize bool
	Mode      ConvMode
	// Priors replace the default prior for the named parameters.
	Priors map[string]prior.Prior
}

func DefaultOptions() Options {
	return Options{LMax: DefaultLMax, Normalize: true, Mode: ConvAfter}
}

type base struct {
	name      string
	lMax      int
	normalize bool
	mode      ConvMode
	priors    map[string]prior.Prior
}

func newBase(name string, opts Options, defaults map[string]prior.Prior) (base, error) {
	if opts.LMax < 1 {
		return base{}, fmt.Errorf("%w: got %d", ErrBadLag, opts.LMax)
	}
	switch opts.Mode {
	case ConvAfter, ConvBefore, ConvOverlap:
	default:
		return base{}, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	priors := make(map[string]prior.Prior, len(defaults))
	for param, p := range defaults {
		priors[param] = p
	}
	for param, p := range opts.Priors {
		if _, ok := priors[param]; !ok {
			return base{}, fmt.Errorf("%w: no prior slot for %q", ErrUnknownParam, param)
		}
		priors[param] = p
	}

	return base{
		name:      name,
		lMax:      opts.LMax,
		normalize: opts.Normalize,
		mode:      opts.Mode,
		priors:    priors,
	}, nil
}

func (b *base) Name() string   { return b.name }
func (b *base) MaxLag() int    { return b.lMax }
func (b *base) Mode() ConvMode { return b.mode }

func (b *base) ParamNames() []string {
	names := make([]string, 0, len(b.priors))
	for name := range b.priors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *base) Priors() map[string]prior.Prior {
	out := make(map[string]prior.Prior, len(b.priors))
	for name, p := range b.priors {
		out[name] = p
	}
	return out
}

func (b *base) need(p Params, name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s requires %q", ErrMissingParam, b.name, name)
	}
	return v, nil
}

// finish applies the normalization flag to a freshly built kernel.
func (b *base) finish(w []float64) []float64 {
	if !b.normalize {
		return w
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum == 0 {
		return w
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

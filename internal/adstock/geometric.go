package adstock

import (
	"fmt"

	"github.com/quantmix/adstock/internal/prior"
)

// Geometric is constant-rate decay: a fraction alpha of the effect
// carries over each period, w[i] = alpha^i.
type Geometric struct {
	base
}

func NewGeometric(opts Options) (*Geometric, error) {
	b, err := newBase("geometric", opts, map[string]prior.Prior{
		"alpha": prior.Beta(1, 3),
	})
	if err != nil {
		return nil, err
	}
	return &Geometric{base: b}, nil
}

func (g *Geometric) Weights(p Params) ([]float64, error) {
	alpha, err := g.need(p, "alpha")
	if err != nil {
		return nil, err
	}
	if alpha < 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: alpha=%g, want [0, 1)", ErrParamBounds, alpha)
	}

	w := make([]float64, g.lMax)
	w[0] = 1
	for i := 1; i < g.lMax; i++ {
		w[i] = w[i-1] * alpha
	}
	return g.finish(w), nil
}

func (g *Geometric) Apply(x []float64, p Params) ([]float64, error) {
	w, err := g.Weights(p)
	if err != nil {
		return nil, err
	}
	return Convolve(x, w, g.mode), nil
}

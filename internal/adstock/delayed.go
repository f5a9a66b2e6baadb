package adstock

import (
	"fmt"
	"math"

	"github.com/quantmix/adstock/internal/prior"
)

// Delayed is geometric decay with a delayed peak: the effect builds up
// to period theta and decays geometrically on both sides of it,
// w[i] = alpha^((i-theta)^2).
type Delayed struct {
	base
}

func NewDelayed(opts Options) (*Delayed, error) {
	b, err := newBase("delayed", opts, map[string]prior.Prior{
		"alpha": prior.Beta(1, 3),
		"theta": prior.HalfNormal(1),
	})
	if err != nil {
		return nil, err
	}
	return &Delayed{base: b}, nil
}

func (d *Delayed) Weights(p Params) ([]float64, error) {
	alpha, err := d.need(p, "alpha")
	if err != nil {
		return nil, err
	}
	theta, err := d.need(p, "theta")
	if err != nil {
		return nil, err
	}
	if alpha < 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: alpha=%g, want [0, 1)", ErrParamBounds, alpha)
	}
	if theta < 0 || theta >= float64(d.lMax) {
		return nil, fmt.Errorf("%w: theta=%g, want [0, %d)", ErrParamBounds, theta, d.lMax)
	}

	w := make([]float64, d.lMax)
	for i := range w {
		lag := float64(i) - theta
		w[i] = math.Pow(alpha, lag*lag)
	}
	return d.finish(w), nil
}

func (d *Delayed) Apply(x []float64, p Params) ([]float64, error) {
	w, err := d.Weights(p)
	if err != nil {
		return nil, err
	}
	return Convolve(x, w, d.mode), nil
}

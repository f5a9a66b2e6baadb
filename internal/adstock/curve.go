package adstock

import (
	"errors"
	"sort"

	"github.com/quantmix/adstock/internal/prior"
)

// Curve returns the impulse response of the transformation: the decay
// of a single exposure of the given amount over the following periods.
func Curve(t Transformation, p Params, amount float64) ([]float64, error) {
	x := make([]float64, t.MaxLag())
	x[0] = amount
	return t.Apply(x, p)
}

// maxRedraws bounds rejection sampling when a prior puts mass outside
// the kernel's support.
const maxRedraws = 100

// SampleCurves draws n parameter sets from the transformation's priors
// and returns each set with its impulse curve. Draws outside the
// kernel's support (e.g. a theta beyond the carryover window) are
// redrawn, truncating the prior to the valid range. Draws are
// reproducible for a given seed.
func SampleCurves(t Transformation, n int, seed uint64) ([]Params, [][]float64, error) {
	s := prior.NewSampler(seed)
	priors := t.Priors()

	names := make([]string, 0, len(priors))
	for name := range priors {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]Params, 0, n)
	curves := make([][]float64, 0, n)

	for i := 0; i < n; i++ {
		var (
			p     Params
			curve []float64
		)

		for attempt := 0; ; attempt++ {
			p = make(Params, len(names))
			for _, name := range names {
				v, err := s.Draw(priors[name])
				if err != nil {
					return nil, nil, err
				}
				p[name] = v
			}

			var err error
			curve, err = Curve(t, p, 1.0)
			if err == nil {
				break
			}
			if !errors.Is(err, ErrParamBounds) || attempt >= maxRedraws {
				return nil, nil, err
			}
		}

		params = append(params, p)
		curves = append(curves, curve)
	}

	return params, curves, nil
}

// MeanLag returns the center of mass of a kernel in periods.
func MeanLag(w []float64) float64 {
	total := 0.0
	weighted := 0.0
	for i, v := range w {
		total += v
		weighted += float64(i) * v
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// HalfLife returns the first period by which at least half of the total
// effect has landed.
func HalfLife(w []float64) int {
	total := 0.0
	for _, v := range w {
		total += v
	}

	acc := 0.0
	for i, v := range w {
		acc += v
		if acc >= total/2 {
			return i
		}
	}
	return len(w) - 1
}

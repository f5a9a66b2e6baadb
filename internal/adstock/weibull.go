package adstock

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantmix/adstock/internal/prior"
)

// WeibullKind selects which Weibull curve shapes the kernel.
type WeibullKind string

const (
	// WeibullPDF shapes the kernel with the Weibull density, allowing a
	// delayed peak when k > 1.
	WeibullPDF WeibullKind = "pdf"

	// WeibullCDF shapes the kernel with cumulative survival: each
	// period retains the fraction of effect that has not yet worn off.
	WeibullCDF WeibullKind = "cdf"
)

// Weibull is decay shaped by a Weibull distribution with scale lam and
// shape k, evaluated at lags t = 1..l_max.
type Weibull struct {
	base
	kind WeibullKind
}

func NewWeibull(kind WeibullKind, opts Options) (*Weibull, error) {
	switch kind {
	case WeibullPDF, WeibullCDF:
	default:
		return nil, fmt.Errorf("%w: %q (choose from [%s %s])", ErrUnknownKind, kind, WeibullPDF, WeibullCDF)
	}

	b, err := newBase("weibull-"+string(kind), opts, map[string]prior.Prior{
		"lam": prior.HalfNormal(1),
		"k":   prior.HalfNormal(1),
	})
	if err != nil {
		return nil, err
	}
	return &Weibull{base: b, kind: kind}, nil
}

func (w *Weibull) Kind() WeibullKind { return w.kind }

func (w *Weibull) Weights(p Params) ([]float64, error) {
	lam, err := w.need(p, "lam")
	if err != nil {
		return nil, err
	}
	k, err := w.need(p, "k")
	if err != nil {
		return nil, err
	}
	if lam <= 0 {
		return nil, fmt.Errorf("%w: lam=%g, want > 0", ErrParamBounds, lam)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%g, want > 0", ErrParamBounds, k)
	}

	dist := distuv.Weibull{K: k, Lambda: lam}
	ws := make([]float64, w.lMax)

	switch w.kind {
	case WeibullPDF:
		for i := range ws {
			ws[i] = dist.Prob(float64(i + 1))
		}
		rescale(ws)
	default: // WeibullCDF
		// w[0] = 1, then each period keeps the survival fraction of
		// the previous lag.
		acc := 1.0
		for i := range ws {
			ws[i] = acc
			acc *= dist.Survival(float64(i + 1))
		}
	}

	return w.finish(ws), nil
}

func (w *Weibull) Apply(x []float64, p Params) ([]float64, error) {
	ws, err := w.Weights(p)
	if err != nil {
		return nil, err
	}
	return Convolve(x, ws, w.mode), nil
}

// rescale maps values onto [0, 1] by min-max scaling. A flat kernel
// rescales to all ones.
func rescale(w []float64) {
	lo, hi := w[0], w[0]
	for _, v := range w {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		for i := range w {
			w[i] = 1
		}
		return
	}
	for i := range w {
		w[i] = (w[i] - lo) / (hi - lo)
	}
}

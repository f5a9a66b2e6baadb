package prior

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws values from prior distributions using a seedable source.
// Samplers are not safe for concurrent use.
type Sampler struct {
	src rand.Source
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.NewSource(seed)}
}

// Draw returns a single value from the prior.
func (s *Sampler) Draw(p Prior) (float64, error) {
	d, err := s.dist(p)
	if err != nil {
		return 0, err
	}
	return d.Rand(), nil
}

// Sample returns n independent draws from the prior.
func (s *Sampler) Sample(p Prior, n int) ([]float64, error) {
	d, err := s.dist(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out, nil
}

// LogProb evaluates the prior's log-density at x.
func LogProb(p Prior, x float64) (float64, error) {
	d, err := (&Sampler{}).dist(p)
	if err != nil {
		return 0, err
	}
	return d.LogProb(x), nil
}

// Mean returns the expected value of the prior.
func Mean(p Prior) (float64, error) {
	d, err := (&Sampler{}).dist(p)
	if err != nil {
		return 0, err
	}
	return d.Mean(), nil
}

type distribution interface {
	Rand() float64
	LogProb(x float64) float64
	Mean() float64
}

func (s *Sampler) dist(p Prior) (distribution, error) {
	switch p.Dist {
	case DistBeta:
		alpha, err := positiveKwarg(p, "alpha")
		if err != nil {
			return nil, err
		}
		beta, err := positiveKwarg(p, "beta")
		if err != nil {
			return nil, err
		}
		return distuv.Beta{Alpha: alpha, Beta: beta, Src: s.src}, nil

	case DistHalfNormal:
		sigma, err := positiveKwarg(p, "sigma")
		if err != nil {
			return nil, err
		}
		return halfNormal{distuv.Normal{Mu: 0, Sigma: sigma, Src: s.src}}, nil

	case DistNormal:
		mu, err := p.kwarg("mu")
		if err != nil {
			return nil, err
		}
		sigma, err := positiveKwarg(p, "sigma")
		if err != nil {
			return nil, err
		}
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}, nil

	case DistGamma:
		alpha, err := positiveKwarg(p, "alpha")
		if err != nil {
			return nil, err
		}
		beta, err := positiveKwarg(p, "beta")
		if err != nil {
			return nil, err
		}
		return distuv.Gamma{Alpha: alpha, Beta: beta, Src: s.src}, nil

	case DistLogNormal:
		mu, err := p.kwarg("mu")
		if err != nil {
			return nil, err
		}
		sigma, err := positiveKwarg(p, "sigma")
		if err != nil {
			return nil, err
		}
		return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}, nil

	case DistUniform:
		lower, err := p.kwarg("lower")
		if err != nil {
			return nil, err
		}
		upper, err := p.kwarg("upper")
		if err != nil {
			return nil, err
		}
		if upper <= lower {
			return nil, fmt.Errorf("%w: uniform upper=%g, want > lower=%g", ErrBadKwarg, upper, lower)
		}
		return distuv.Uniform{Min: lower, Max: upper, Src: s.src}, nil
	}

	return nil, fmt.Errorf("%w: %s (choose from %v)", ErrUnknownDist, p.Dist, Families())
}

// halfNormal folds a zero-mean normal onto the non-negative half-line.
type halfNormal struct {
	norm distuv.Normal
}

func (h halfNormal) Rand() float64 {
	return math.Abs(h.norm.Rand())
}

func (h halfNormal) LogProb(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Ln2 + h.norm.LogProb(x)
}

func (h halfNormal) Mean() float64 {
	return h.norm.Sigma * math.Sqrt(2/math.Pi)
}

package prior

import (
	"errors"
	"fmt"
	"sort"
)

// Families supported for prior distributions.
const (
	DistBeta       = "beta"
	DistHalfNormal = "halfnormal"
	DistNormal     = "normal"
	DistGamma      = "gamma"
	DistLogNormal  = "lognormal"
	DistUniform    = "uniform"
)

var (
	// ErrUnknownDist indicates a distribution family not in the catalog.
	ErrUnknownDist = errors.New("prior: unknown distribution")

	// ErrMissingKwarg indicates a required hyperparameter is absent.
	ErrMissingKwarg = errors.New("prior: missing hyperparameter")

	// ErrBadKwarg indicates a hyperparameter outside its valid range.
	ErrBadKwarg = errors.New("prior: hyperparameter out of valid range")
)

// Prior describes a parameter's prior distribution: a family name plus
// its numeric hyperparameters.
type Prior struct {
	Dist   string             `yaml:"dist" json:"dist"`
	Kwargs map[string]float64 `yaml:"kwargs" json:"kwargs"`
}

func Beta(alpha, beta float64) Prior {
	return Prior{Dist: DistBeta, Kwargs: map[string]float64{"alpha": alpha, "beta": beta}}
}

func HalfNormal(sigma float64) Prior {
	return Prior{Dist: DistHalfNormal, Kwargs: map[string]float64{"sigma": sigma}}
}

func Normal(mu, sigma float64) Prior {
	return Prior{Dist: DistNormal, Kwargs: map[string]float64{"mu": mu, "sigma": sigma}}
}

func Gamma(alpha, beta float64) Prior {
	return Prior{Dist: DistGamma, Kwargs: map[string]float64{"alpha": alpha, "beta": beta}}
}

func LogNormal(mu, sigma float64) Prior {
	return Prior{Dist: DistLogNormal, Kwargs: map[string]float64{"mu": mu, "sigma": sigma}}
}

func Uniform(lower, upper float64) Prior {
	return Prior{Dist: DistUniform, Kwargs: map[string]float64{"lower": lower, "upper": upper}}
}

// Families returns the supported family names, sorted.
func Families() []string {
	return []string{DistBeta, DistGamma, DistHalfNormal, DistLogNormal, DistNormal, DistUniform}
}

func (p Prior) String() string {
	keys := make([]string, 0, len(p.Kwargs))
	for k := range p.Kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := p.Dist + "("
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%g", k, p.Kwargs[k])
	}
	return s + ")"
}

func (p Prior) kwarg(name string) (float64, error) {
	v, ok := p.Kwargs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s requires %q", ErrMissingKwarg, p.Dist, name)
	}
	return v, nil
}

func positiveKwarg(p Prior, name string) (float64, error) {
	v, err := p.kwarg(name)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s %s=%g, want > 0", ErrBadKwarg, p.Dist, name, v)
	}
	return v, nil
}

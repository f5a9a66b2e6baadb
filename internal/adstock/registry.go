package adstock

import (
	"fmt"
	"sort"
)

// Registry maps transformation names to constructors. The lookup name
// "weibull" is an alias for "weibull-pdf".
type Registry struct {
	transforms map[string]func(Options) (Transformation, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		transforms: make(map[string]func(Options) (Transformation, error)),
	}

	r.transforms["geometric"] = func(o Options) (Transformation, error) { return NewGeometric(o) }
	r.transforms["delayed"] = func(o Options) (Transformation, error) { return NewDelayed(o) }
	r.transforms["weibull"] = func(o Options) (Transformation, error) { return NewWeibull(WeibullPDF, o) }
	r.transforms["weibull-pdf"] = func(o Options) (Transformation, error) { return NewWeibull(WeibullPDF, o) }
	r.transforms["weibull-cdf"] = func(o Options) (Transformation, error) { return NewWeibull(WeibullCDF, o) }

	return r
}

func (r *Registry) Get(name string, opts Options) (Transformation, error) {
	fn, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (choose from %v)", ErrUnknownTransform, name, r.List())
	}
	return fn(opts)
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs a transformation by name with the default registry.
func New(name string, opts Options) (Transformation, error) {
	return NewRegistry().Get(name, opts)
}

// Package adstock provides decay transformations for marketing-mix models.
//
// An adstock transformation models how the effect of advertising spend
// carries over into later periods. Each transformation is a named,
// parametrized decay kernel with default priors for its parameters:
//
//   - [Geometric]: constant-rate decay, w[i] = alpha^i
//   - [Delayed]: geometric decay peaking theta periods after exposure
//   - [Weibull]: flexible decay shaped by a Weibull PDF or CDF
//
// Transformations are selected by name through a [Registry]:
//
//	reg := adstock.NewRegistry()
//	tr, err := reg.Get("geometric", adstock.DefaultOptions())
//	y, err := tr.Apply(spend, adstock.Params{"alpha": 0.5})
//
// Kernels are applied by discrete convolution; [ConvMode] selects
// whether the effect lands after, before, or around the exposure period.
package adstock

package adstock

import "errors"

// Domain errors for transformation construction and evaluation.
var (
	// ErrUnknownTransform indicates a name with no registry entry.
	ErrUnknownTransform = errors.New("adstock: unknown transformation")

	// ErrUnknownMode indicates an unrecognized convolution mode.
	ErrUnknownMode = errors.New("adstock: unknown convolution mode")

	// ErrUnknownKind indicates an unrecognized weibull kernel kind.
	ErrUnknownKind = errors.New("adstock: unknown weibull kind")

	// ErrBadLag indicates a non-positive maximum lag.
	ErrBadLag = errors.New("adstock: max lag must be at least 1")

	// ErrMissingParam indicates a parameter the kernel needs is absent.
	ErrMissingParam = errors.New("adstock: missing parameter")

	// ErrUnknownParam indicates a prior override for a parameter the
	// kernel does not have.
	ErrUnknownParam = errors.New("adstock: unknown parameter")

	// ErrParamBounds indicates a parameter value outside its valid range.
	ErrParamBounds = errors.New("adstock: parameter out of valid bounds")
)

package adstock

// Convolve applies a decay kernel to a series. The output has the same
// length as x; effect falling outside the series is truncated.
//
// For spend in period j, tap w[i] lands on period j+i (After), j-i
// (Before), or j+i-center (Overlap, center = (len(w)-1)/2).
func Convolve(x, w []float64, mode ConvMode) []float64 {
	y := make([]float64, len(x))
	center := (len(w) - 1) / 2

	for t := range x {
		acc := 0.0
		for i, wi := range w {
			var j int
			switch mode {
			case ConvBefore:
				j = t + i
			case ConvOverlap:
				j = t - i + center
			default:
				j = t - i
			}
			if j < 0 || j >= len(x) {
				continue
			}
			acc += wi * x[j]
		}
		y[t] = acc
	}
	return y
}

package pricing

import "math"

const sqrt2Pi = 2.5066282746310002

// normPDF is the standard normal probability density at x.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// normCDF is the standard normal cumulative distribution at x, computed via
// the error function. Saturates to exactly 0 or 1 for large |x|; that is the
// expected floating-point behavior, not an error.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

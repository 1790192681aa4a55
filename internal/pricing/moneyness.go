package pricing

import "math"

// D1D2 computes the Black-Scholes moneyness terms
//
//	d1 = (ln(S/K) + (r - q + vol²/2)·T) / (vol·√T)
//	d2 = d1 - vol·√T
//
// Every formula in this package derives from this pair. Validate guarantees
// T > 0 and vol > 0; the explicit denominator check only matters when D1D2 is
// called directly with unvalidated inputs, in which case it fails with a
// *NumericalError instead of propagating NaN/Inf downstream.
func D1D2(p Params) (d1, d2 float64, err error) {
	den := p.Vol * math.Sqrt(p.T)
	if den == 0 {
		return 0, 0, &NumericalError{Op: "d1/d2", Message: "degenerate denominator: vol*sqrt(T) is zero"}
	}
	d1 = (math.Log(p.S/p.K) + (p.R-p.Q+0.5*p.Vol*p.Vol)*p.T) / den
	d2 = d1 - den
	return d1, d2, nil
}

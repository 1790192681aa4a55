// Package pricing implements the analytic Black-Scholes-Merton engine for
// European vanilla options with continuous dividend yield: the theoretical
// price and its sensitivities from first through fourth order.
//
// Every exported function validates its inputs, computes d1/d2 once, and
// evaluates a single closed-form expression. All functions are pure; the
// package holds no state and is safe for concurrent use.
package pricing

import "math"

// Price returns the Black-Scholes price of a European option.
//
//	call: S·e^(-qT)·N(d1) - K·e^(-rT)·N(d2)
//	put:  K·e^(-rT)·N(-d2) - S·e^(-qT)·N(-d1)
//
// A non-finite result fails with a *NumericalError so downstream consumers
// (Lambda in particular) never see NaN or Inf.
func Price(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	price := priceValue(p, typ, d1, d2)
	if !isFinite(price) {
		return 0, &NumericalError{Op: "price", Message: "non-finite result"}
	}
	return price, nil
}

func priceValue(p Params, typ OptionType, d1, d2 float64) float64 {
	if typ == Call {
		return p.S*math.Exp(-p.Q*p.T)*normCDF(d1) - p.K*math.Exp(-p.R*p.T)*normCDF(d2)
	}
	return p.K*math.Exp(-p.R*p.T)*normCDF(-d2) - p.S*math.Exp(-p.Q*p.T)*normCDF(-d1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

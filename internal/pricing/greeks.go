package pricing

import "math"

// Delta is the sensitivity of the option price to the spot price:
// e^(-qT)·N(d1) for calls, e^(-qT)·(N(d1)-1) for puts.
func Delta(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	delta := deltaValue(p, typ, d1)
	if !isFinite(delta) {
		return 0, &NumericalError{Op: "delta", Message: "non-finite result"}
	}
	return delta, nil
}

func deltaValue(p Params, typ OptionType, d1 float64) float64 {
	if typ == Call {
		return math.Exp(-p.Q*p.T) * normCDF(d1)
	}
	return math.Exp(-p.Q*p.T) * (normCDF(d1) - 1)
}

// Vega is the sensitivity of the option price to volatility,
// S·e^(-qT)·n(d1)·√T. It is identical for calls and puts and returned raw;
// divide by 100 for the conventional per-vol-point quote.
func Vega(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return vegaValue(p, d1), nil
}

func vegaValue(p Params, d1 float64) float64 {
	return p.S * math.Exp(-p.Q*p.T) * normPDF(d1) * math.Sqrt(p.T)
}

// Theta is the sensitivity of the option price to the passage of time,
// annualized. Divide by 365 (calendar) or 252 (trading) for a daily figure.
// Long positions typically carry negative theta.
func Theta(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return thetaValue(p, typ, d1, d2), nil
}

func thetaValue(p Params, typ OptionType, d1, d2 float64) float64 {
	decay := -(p.S * normPDF(d1) * p.Vol * math.Exp(-p.Q*p.T)) / (2 * math.Sqrt(p.T))
	if typ == Call {
		return decay - p.R*p.K*math.Exp(-p.R*p.T)*normCDF(d2) + p.Q*p.S*math.Exp(-p.Q*p.T)*normCDF(d1)
	}
	return decay + p.R*p.K*math.Exp(-p.R*p.T)*normCDF(-d2) - p.Q*p.S*math.Exp(-p.Q*p.T)*normCDF(-d1)
}

// Rho is the sensitivity of the option price to the risk-free rate, scaled by
// 0.01 to the conventional per-1%-rate-move quote.
func Rho(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	_, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return rhoValue(p, typ, d2), nil
}

func rhoValue(p Params, typ OptionType, d2 float64) float64 {
	if typ == Call {
		return p.K * p.T * math.Exp(-p.R*p.T) * normCDF(d2) * 0.01
	}
	return -p.K * p.T * math.Exp(-p.R*p.T) * normCDF(-d2) * 0.01
}

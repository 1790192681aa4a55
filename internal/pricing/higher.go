package pricing

import "math"

// gammaValue is e^(-qT)·n(d1) / (S·vol·√T), the building block shared by the
// second- and third-order spot sensitivities.
func gammaValue(p Params, d1 float64) float64 {
	return math.Exp(-p.Q*p.T) * normPDF(d1) / (p.S * p.Vol * math.Sqrt(p.T))
}

// Gamma is the second derivative of the option price with respect to spot.
// Identical for calls and puts.
func Gamma(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return gammaValue(p, d1), nil
}

// Vanna is the cross sensitivity of delta to volatility (equivalently, of
// vega to spot): -e^(-qT)·n(d1)·d2/vol. Identical for calls and puts.
func Vanna(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return vannaValue(p, d1, d2), nil
}

func vannaValue(p Params, d1, d2 float64) float64 {
	return -math.Exp(-p.Q*p.T) * normPDF(d1) * d2 / p.Vol
}

// Charm is delta decay, the rate of change of delta through time. The decay
// core is shared; the dividend-yield correction differs by option type.
func Charm(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return charmValue(p, typ, d1, d2), nil
}

func charmValue(p Params, typ OptionType, d1, d2 float64) float64 {
	common := -math.Exp(-p.Q*p.T) * normPDF(d1) / (2 * p.T) *
		(2*(p.R-p.Q)/(p.Vol*math.Sqrt(p.T)) - d2/(2*p.T))
	if typ == Call {
		return common - p.Q*math.Exp(-p.Q*p.T)*normCDF(d1)
	}
	return common + p.Q*math.Exp(-p.Q*p.T)*normCDF(-d1)
}

// Vomma is the second derivative of the option price with respect to
// volatility: S·e^(-qT)·n(d1)·√T·d1·d2/vol. The option type is accepted for
// signature symmetry with the other sensitivities but does not affect the
// value; it is only validated.
func Vomma(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return vommaValue(p, d1, d2), nil
}

func vommaValue(p Params, d1, d2 float64) float64 {
	return p.S * math.Exp(-p.Q*p.T) * normPDF(d1) * math.Sqrt(p.T) * d1 * d2 / p.Vol
}

// Veta is the rate of change of vega through time. Identical for calls and
// puts.
func Veta(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return vetaValue(p, d1, d2), nil
}

func vetaValue(p Params, d1, d2 float64) float64 {
	volSqrtT := p.Vol * math.Sqrt(p.T)
	return -p.S * math.Exp(-p.Q*p.T) * normPDF(d1) * math.Sqrt(p.T) *
		(p.Q + (p.R-p.Q)*d1/volSqrtT + (1+d1*d2)/(2*p.T))
}

// Speed is the third derivative of the option price with respect to spot:
// -gamma/S·(1 + d1/(vol·√T)). Identical for calls and puts.
func Speed(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return speedValue(p, d1), nil
}

func speedValue(p Params, d1 float64) float64 {
	return -gammaValue(p, d1) / p.S * (1 + d1/(p.Vol*math.Sqrt(p.T)))
}

// Zomma is the rate of change of gamma with respect to volatility:
// (d1·d2 - 1)·gamma/vol. Identical for calls and puts.
func Zomma(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return zommaValue(p, d1, d2), nil
}

func zommaValue(p Params, d1, d2 float64) float64 {
	return (d1*d2 - 1) * gammaValue(p, d1) / p.Vol
}

// Color is gamma decay, the rate of change of gamma through time. Identical
// for calls and puts.
func Color(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return colorValue(p, d1), nil
}

func colorValue(p Params, d1 float64) float64 {
	sqrtT := math.Sqrt(p.T)
	return -gammaValue(p, d1) *
		(p.R - p.Q + d1*p.Vol/(2*sqrtT) + (2*p.Q+d1*p.Vol/sqrtT)/(2*p.T))
}

// Ultima is the third derivative of the option price with respect to
// volatility. Like Vomma, the option type is validated but does not affect
// the value.
func Ultima(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return ultimaValue(p, d1, d2), nil
}

func ultimaValue(p Params, d1, d2 float64) float64 {
	vomma := vommaValue(p, d1, d2)
	return vomma / p.Vol * (d1*d2 - d1/p.Vol - d2/p.Vol - 1 + 1/(p.Vol*p.Vol))
}

// Vera is the rate of change of rho with respect to volatility:
// -K·T·e^(-rT)·n(d2)·d1/(vol·√T) for calls; puts take the negated call value.
func Vera(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return veraValue(p, typ, d1, d2), nil
}

func veraValue(p Params, typ OptionType, d1, d2 float64) float64 {
	vera := -p.K * p.T * math.Exp(-p.R*p.T) * normPDF(d2) * d1 / (p.Vol * math.Sqrt(p.T))
	if typ == Put {
		return -vera
	}
	return vera
}

package pricing

import "math"

// lambdaPriceFloor is the smallest |price| Lambda divides by. Below it the
// elasticity is reported as the mathematical limit instead of overflowing.
const lambdaPriceFloor = 1e-10

// Lambda is the elasticity of the option: (Delta·S)/Price, the percentage
// change in option value per percentage change in spot. When the price is
// within lambdaPriceFloor of zero the limit is a signed infinity carrying
// delta's sign; that infinity is a designed return value, the one exception
// to the non-finite-result rule.
func Lambda(p Params, typ OptionType) (float64, error) {
	if err := Validate(p, typ); err != nil {
		return 0, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return lambdaValue(p, typ, d1, d2)
}

func lambdaValue(p Params, typ OptionType, d1, d2 float64) (float64, error) {
	delta := deltaValue(p, typ, d1)
	price := priceValue(p, typ, d1, d2)
	if !isFinite(delta) || !isFinite(price) {
		return 0, &NumericalError{Op: "lambda", Message: "non-finite delta or price"}
	}
	if math.Abs(price) < lambdaPriceFloor {
		return math.Copysign(math.Inf(1), delta), nil
	}
	return delta * p.S / price, nil
}

// Epsilon is the vega elasticity, (d1² - 1 - d1/(vol·√T)) / vol. Identical
// for calls and puts.
func Epsilon(p Params) (float64, error) {
	if err := Validate(p, Call); err != nil {
		return 0, err
	}
	d1, _, err := D1D2(p)
	if err != nil {
		return 0, err
	}
	return epsilonValue(p, d1), nil
}

func epsilonValue(p Params, d1 float64) float64 {
	return (d1*d1 - 1 - d1/(p.Vol*math.Sqrt(p.T))) / p.Vol
}

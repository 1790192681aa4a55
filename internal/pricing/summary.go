package pricing

// Summary is a full sensitivity snapshot of a single option: the theoretical
// price and every greek the engine computes, evaluated from one validated set
// of inputs and a single d1/d2 computation.
type Summary struct {
	Price   float64 `json:"price"`
	Delta   float64 `json:"delta"`
	Gamma   float64 `json:"gamma"`
	Vega    float64 `json:"vega"`
	Theta   float64 `json:"theta"`
	Rho     float64 `json:"rho"`
	Vanna   float64 `json:"vanna"`
	Charm   float64 `json:"charm"`
	Vomma   float64 `json:"vomma"`
	Veta    float64 `json:"veta"`
	Speed   float64 `json:"speed"`
	Zomma   float64 `json:"zomma"`
	Color   float64 `json:"color"`
	Ultima  float64 `json:"ultima"`
	Vera    float64 `json:"vera"`
	Lambda  float64 `json:"lambda"`
	Epsilon float64 `json:"epsilon"`
}

// Summarize computes the price and the complete greek family in one call.
// Lambda may be a signed infinity in the degenerate near-zero-price case,
// exactly as the standalone function returns it.
func Summarize(p Params, typ OptionType) (*Summary, error) {
	if err := Validate(p, typ); err != nil {
		return nil, err
	}
	d1, d2, err := D1D2(p)
	if err != nil {
		return nil, err
	}
	price := priceValue(p, typ, d1, d2)
	if !isFinite(price) {
		return nil, &NumericalError{Op: "price", Message: "non-finite result"}
	}
	lambda, err := lambdaValue(p, typ, d1, d2)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Price:   price,
		Delta:   deltaValue(p, typ, d1),
		Gamma:   gammaValue(p, d1),
		Vega:    vegaValue(p, d1),
		Theta:   thetaValue(p, typ, d1, d2),
		Rho:     rhoValue(p, typ, d2),
		Vanna:   vannaValue(p, d1, d2),
		Charm:   charmValue(p, typ, d1, d2),
		Vomma:   vommaValue(p, d1, d2),
		Veta:    vetaValue(p, d1, d2),
		Speed:   speedValue(p, d1),
		Zomma:   zommaValue(p, d1, d2),
		Color:   colorValue(p, d1),
		Ultima:  ultimaValue(p, d1, d2),
		Vera:    veraValue(p, typ, d1, d2),
		Lambda:  lambda,
		Epsilon: epsilonValue(p, d1),
	}, nil
}

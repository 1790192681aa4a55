package pricing

import "fmt"

// OptionType discriminates European calls from puts.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseOptionType converts a raw string into an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(s) {
	case Call:
		return Call, nil
	case Put:
		return Put, nil
	}
	return "", &ValidationError{
		Field:   "type",
		Message: fmt.Sprintf("option type must be %q or %q, got %q", Call, Put, s),
	}
}

// Params holds the six market inputs of the Black-Scholes-Merton model.
// A Params value is immutable once constructed and cheap to copy.
type Params struct {
	S   float64 // spot price of the underlying
	K   float64 // strike price
	T   float64 // time to maturity in years
	R   float64 // risk-free rate, annualized decimal
	Q   float64 // continuous dividend yield, annualized decimal
	Vol float64 // volatility, annualized decimal
}

// Practical ceilings. Values beyond these are almost certainly unit mistakes
// (e.g. volatility passed as a percentage) and produce useless numbers.
const (
	maxPrice    = 1e12
	maxMaturity = 100
	maxVol      = 5
)

// Validate checks every field against its domain constraint and returns the
// first violation as a *ValidationError. Checks run per field in the order
// S, K, T, vol, r, q, option type, so callers get exactly one error even when
// several inputs are bad at once.
func Validate(p Params, typ OptionType) error {
	switch {
	case p.S <= 0:
		return &ValidationError{Field: "S", Message: fmt.Sprintf("spot price (S) must be positive, got %g", p.S)}
	case p.S > maxPrice:
		return &ValidationError{Field: "S", Message: fmt.Sprintf("spot price (S) is too large: %g", p.S)}
	case p.K <= 0:
		return &ValidationError{Field: "K", Message: fmt.Sprintf("strike price (K) must be positive, got %g", p.K)}
	case p.K > maxPrice:
		return &ValidationError{Field: "K", Message: fmt.Sprintf("strike price (K) is too large: %g", p.K)}
	case p.T <= 0:
		return &ValidationError{Field: "T", Message: fmt.Sprintf("time to maturity (T) must be positive, got %g", p.T)}
	case p.T > maxMaturity:
		return &ValidationError{Field: "T", Message: fmt.Sprintf("time to maturity (T) is unusually large: %g years", p.T)}
	case p.Vol <= 0:
		return &ValidationError{Field: "vol", Message: fmt.Sprintf("volatility (vol) must be positive, got %g", p.Vol)}
	case p.Vol > maxVol:
		return &ValidationError{Field: "vol", Message: fmt.Sprintf("volatility (vol) %g is unusually high; expected an annualized decimal such as 0.2", p.Vol)}
	case p.R > 1 || p.R < -1:
		return &ValidationError{Field: "r", Message: fmt.Sprintf("risk-free rate (r) %g is unusual; expected an annualized decimal such as 0.05", p.R)}
	case p.Q < 0:
		return &ValidationError{Field: "q", Message: fmt.Sprintf("dividend yield (q) cannot be negative, got %g", p.Q)}
	case p.Q > 1:
		return &ValidationError{Field: "q", Message: fmt.Sprintf("dividend yield (q) %g is unusually high; expected an annualized decimal such as 0.02", p.Q)}
	}
	if typ != Call && typ != Put {
		return &ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("option type must be %q or %q, got %q", Call, Put, string(typ)),
		}
	}
	return nil
}

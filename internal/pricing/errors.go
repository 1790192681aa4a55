package pricing

import "fmt"

// ValidationError reports a market parameter that violates its domain
// constraint. Field names the offending input (S, K, T, r, q, vol or type).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NumericalError reports a computation that produced a non-finite value or a
// zero denominator despite validated inputs. Op names the computation.
type NumericalError struct {
	Op      string
	Message string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

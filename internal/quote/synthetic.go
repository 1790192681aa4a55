package quote

import (
	"math"
	"math/rand"
	"time"
)

// syntheticProvider generates a geometric-Brownian close series. Useful for
// offline runs and tests; a fixed seed makes the series reproducible.
type syntheticProvider struct {
	seed int64
}

// NewSyntheticProvider returns a deterministic offline Provider.
func NewSyntheticProvider(seed int64) Provider {
	return &syntheticProvider{seed: seed}
}

func (prov *syntheticProvider) DailyBars(symbol string, from, to time.Time) ([]Bar, error) {
	rng := rand.New(rand.NewSource(prov.seed))
	price := 100.0 + float64(rng.Intn(200))

	var out []Bar
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() == time.Saturday || cur.Weekday() == time.Sunday {
			continue
		}
		delta := rng.NormFloat64() * 0.01 * price
		open := price
		close := price + delta
		high := math.Max(open, close) + math.Abs(rng.NormFloat64()*0.3)
		low := math.Min(open, close) - math.Abs(rng.NormFloat64()*0.3)
		out = append(out, Bar{
			Date:   cur,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: float64(1000 + rng.Intn(5000)),
		})
		price = close
	}
	return out, nil
}

// Package quote supplies the market observations the pricing CLI can resolve
// for the caller: a spot price and a historical volatility estimate for an
// underlying symbol. The engine itself never touches this package; providers
// are wired only at the command boundary.
package quote

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Bar is a daily OHLCV observation.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Provider supplies daily bars for an underlying symbol.
type Provider interface {
	DailyBars(symbol string, from, to time.Time) ([]Bar, error)
}

// spotLookback is the trailing window searched for the most recent close.
const spotLookback = 10 // calendar days

// Spot returns the most recent daily close at or before asOf.
func Spot(p Provider, symbol string, asOf time.Time) (float64, error) {
	bars, err := p.DailyBars(symbol, asOf.AddDate(0, 0, -spotLookback), asOf)
	if err != nil {
		return 0, errors.Wrapf(err, "fetching bars for %s", symbol)
	}
	if len(bars) == 0 {
		return 0, errors.Errorf("no bars for %s in the %d days before %s", symbol, spotLookback, asOf.Format("2006-01-02"))
	}
	return bars[len(bars)-1].Close, nil
}

// Closes extracts the close series from a slice of bars.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}

// defaultVol is returned when the close series is too short to estimate from.
const defaultVol = 0.30

// AnnualizedVolatility estimates volatility as the sample standard deviation
// of daily log returns scaled by √252.
func AnnualizedVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return defaultVol
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	mean := 0.0
	for _, v := range rets {
		mean += v
	}
	mean /= float64(len(rets))
	sd := 0.0
	for _, v := range rets {
		sd += (v - mean) * (v - mean)
	}
	sd = math.Sqrt(sd / float64(len(rets)-1))
	return sd * math.Sqrt(252.0)
}

package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func mustPrice(t *testing.T, p Params, typ OptionType) float64 {
	t.Helper()
	v, err := Price(p, typ)
	require.NoError(t, err)
	return v
}

var central = &fd.Settings{Formula: fd.Central}

func TestDeltaBoundaryAnchor(t *testing.T) {
	call, err := Delta(validParams, Call)
	require.NoError(t, err)
	require.InDelta(t, 0.5869, call, 1e-3)

	put, err := Delta(validParams, Put)
	require.NoError(t, err)
	require.InDelta(t, -0.3933, put, 1e-3)
}

// 0 < Delta_call < e^(-qT) and -e^(-qT) < Delta_put < 0 for all valid inputs.
func TestDeltaBounds(t *testing.T) {
	for _, p := range parityGrid {
		disc := math.Exp(-p.Q * p.T)

		call, err := Delta(p, Call)
		require.NoError(t, err)
		require.Greater(t, call, 0.0)
		require.Less(t, call, disc)

		put, err := Delta(p, Put)
		require.NoError(t, err)
		require.Less(t, put, 0.0)
		require.Greater(t, put, -disc)
	}
}

func TestDeltaMatchesFiniteDifference(t *testing.T) {
	for _, p := range parityGrid {
		for _, typ := range []OptionType{Call, Put} {
			want := fd.Derivative(func(s float64) float64 {
				q := p
				q.S = s
				return mustPrice(t, q, typ)
			}, p.S, central)

			got, err := Delta(p, typ)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-5, "%s delta for %+v", typ, p)
		}
	}
}

func TestVegaBoundaryAnchor(t *testing.T) {
	v, err := Vega(validParams)
	require.NoError(t, err)
	require.InDelta(t, 37.901, v, 1e-3)
}

func TestVegaMatchesFiniteDifference(t *testing.T) {
	for _, p := range parityGrid {
		want := fd.Derivative(func(vol float64) float64 {
			q := p
			q.Vol = vol
			return mustPrice(t, q, Call)
		}, p.Vol, central)

		got, err := Vega(p)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-4, "vega for %+v", p)
	}
}

func TestThetaBoundaryAnchor(t *testing.T) {
	v, err := Theta(validParams, Call)
	require.NoError(t, err)
	require.InDelta(t, -5.0894, v, 1e-3)
}

// Theta is -dPrice/dT: the annualized decay as calendar time passes.
func TestThetaMatchesFiniteDifference(t *testing.T) {
	for _, p := range parityGrid {
		for _, typ := range []OptionType{Call, Put} {
			want := -fd.Derivative(func(tm float64) float64 {
				q := p
				q.T = tm
				return mustPrice(t, q, typ)
			}, p.T, central)

			got, err := Theta(p, typ)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-4, "%s theta for %+v", typ, p)
		}
	}
}

func TestRhoBoundaryAnchor(t *testing.T) {
	v, err := Rho(validParams, Call)
	require.NoError(t, err)
	require.InDelta(t, 0.4946, v, 1e-3)
}

// Rho is quoted per 1% rate move: 0.01 times the raw derivative.
func TestRhoMatchesFiniteDifference(t *testing.T) {
	for _, p := range parityGrid {
		for _, typ := range []OptionType{Call, Put} {
			want := 0.01 * fd.Derivative(func(r float64) float64 {
				q := p
				q.R = r
				return mustPrice(t, q, typ)
			}, p.R, central)

			got, err := Rho(p, typ)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-5, "%s rho for %+v", typ, p)
		}
	}
}

func TestRhoSigns(t *testing.T) {
	for _, p := range parityGrid {
		call, err := Rho(p, Call)
		require.NoError(t, err)
		require.Greater(t, call, 0.0)

		put, err := Rho(p, Put)
		require.NoError(t, err)
		require.Less(t, put, 0.0)
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkingshamrock/black-scholes/internal/config"
)

func testServer() *Server {
	return New(config.Default())
}

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestPrice(t *testing.T) {
	rec := get(t, "/api/v1/price?S=100&K=100&T=1&r=0.05&q=0.02&vol=0.2&type=call")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value           float64        `json:"value"`
		InputParameters map[string]any `json:"input_parameters"`
		Model           string         `json:"model"`
		Status          string         `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.InDelta(t, 9.227005508154036, resp.Value, 1e-9)
	require.Equal(t, "black-scholes", resp.Model)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "call", resp.InputParameters["type"])
	require.Equal(t, 100.0, resp.InputParameters["S"])
}

func TestPriceUsesConfiguredDefaults(t *testing.T) {
	// r and q omitted; the default config carries r=0.05, q=0.
	rec := get(t, "/api/v1/price?S=100&K=100&T=1&vol=0.2&type=call")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		InputParameters struct {
			R float64 `json:"r"`
			Q float64 `json:"q"`
		} `json:"input_parameters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 0.05, resp.InputParameters.R)
	require.Equal(t, 0.0, resp.InputParameters.Q)
}

func TestPriceValidationError(t *testing.T) {
	rec := get(t, "/api/v1/price?S=100&K=100&T=1&vol=0&type=call")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "error", resp.Status)
	require.Contains(t, resp.Error, "volatility")
}

func TestPriceMalformedInput(t *testing.T) {
	for _, target := range []string{
		"/api/v1/price?S=abc&K=100&T=1&vol=0.2",
		"/api/v1/price?K=100&T=1&vol=0.2",
		"/api/v1/price?S=100&K=100&T=1&vol=0.2&type=straddle",
	} {
		rec := get(t, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGreekDelta(t *testing.T) {
	rec := get(t, "/api/v1/greeks/delta?S=100&K=100&T=1&r=0.05&q=0.02&vol=0.2&type=put")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.InDelta(t, -0.3933, resp.Value, 1e-4)
}

func TestGreekTypeFreeWithoutType(t *testing.T) {
	// Gamma ignores the option type; omitting it must not fail.
	rec := get(t, "/api/v1/greeks/gamma?S=100&K=100&T=1&r=0.05&q=0.02&vol=0.2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.InDelta(t, 0.018951, resp.Value, 1e-5)
}

func TestGreekUnknown(t *testing.T) {
	rec := get(t, "/api/v1/greeks/kappa?S=100&K=100&T=1&vol=0.2")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGreekLambdaInfinityAsString(t *testing.T) {
	// Deep out-of-the-money call with a near-zero price: Lambda saturates
	// to +Inf, which the envelope renders as a string.
	rec := get(t, "/api/v1/greeks/lambda?S=100&K=500&T=0.02&r=0.05&q=0.02&vol=0.05&type=call")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value any `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "+Inf", resp.Value)
}

func TestSummary(t *testing.T) {
	rec := get(t, "/api/v1/summary?S=100&K=100&T=1&r=0.05&q=0.02&vol=0.2&type=call")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary map[string]any `json:"summary"`
		Model   string         `json:"model"`
		Status  string         `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)

	for _, key := range []string{
		"price", "delta", "gamma", "vega", "theta", "rho",
		"vanna", "charm", "vomma", "veta", "speed", "zomma",
		"color", "ultima", "vera", "lambda", "epsilon",
	} {
		require.Contains(t, resp.Summary, key)
	}
	require.InDelta(t, 9.227005508154036, resp.Summary["price"].(float64), 1e-9)
}

func TestSummaryRejectsBadInput(t *testing.T) {
	rec := get(t, "/api/v1/summary?S=100&K=-1&T=1&vol=0.2&type=call")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

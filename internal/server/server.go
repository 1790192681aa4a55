// Package server exposes the pricing engine over HTTP. It owns everything
// the engine deliberately does not: parsing raw query parameters into typed
// scalars, choosing operation names, and translating results and errors into
// a response envelope.
package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/walkingshamrock/black-scholes/internal/config"
	"github.com/walkingshamrock/black-scholes/internal/pricing"
)

type Server struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Router builds the HTTP routing table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/price", s.handlePrice).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/summary", s.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/greeks/{greek}", s.handleGreek).Methods(http.MethodGet)
	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// inputParams echoes the request back in the response envelope.
type inputParams struct {
	S    float64 `json:"S"`
	K    float64 `json:"K"`
	T    float64 `json:"T"`
	R    float64 `json:"r"`
	Q    float64 `json:"q"`
	Vol  float64 `json:"vol"`
	Type string  `json:"type"`
}

type valueResponse struct {
	Value           any         `json:"value"`
	InputParameters inputParams `json:"input_parameters"`
	Model           string      `json:"model"`
	Status          string      `json:"status"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

const modelName = "black-scholes"

// parseParams decodes the six market inputs plus the option type from query
// parameters. r and q fall back to the configured defaults; type falls back
// to "call" (the type-independent greeks never read it).
func (s *Server) parseParams(r *http.Request) (pricing.Params, pricing.OptionType, error) {
	q := r.URL.Query()

	float := func(name string, def float64, required bool) (float64, error) {
		raw := q.Get(name)
		if raw == "" {
			if required {
				return 0, &pricing.ValidationError{Field: name, Message: "missing required parameter " + name}
			}
			return def, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &pricing.ValidationError{Field: name, Message: "parameter " + name + " is not a number: " + raw}
		}
		return v, nil
	}

	var p pricing.Params
	var err error
	if p.S, err = float("S", 0, true); err != nil {
		return p, "", err
	}
	if p.K, err = float("K", 0, true); err != nil {
		return p, "", err
	}
	if p.T, err = float("T", 0, true); err != nil {
		return p, "", err
	}
	if p.R, err = float("r", s.cfg.Defaults.Rate, false); err != nil {
		return p, "", err
	}
	if p.Q, err = float("q", s.cfg.Defaults.Yield, false); err != nil {
		return p, "", err
	}
	if p.Vol, err = float("vol", 0, true); err != nil {
		return p, "", err
	}

	typ := pricing.Call
	if raw := q.Get("type"); raw != "" {
		if typ, err = pricing.ParseOptionType(raw); err != nil {
			return p, "", err
		}
	}
	return p, typ, nil
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	p, typ, err := s.parseParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := pricing.Price(p, typ)
	if err != nil {
		writeError(w, err)
		return
	}
	writeValue(w, v, p, typ)
}

type greekFunc func(pricing.Params, pricing.OptionType) (float64, error)

func typeFree(f func(pricing.Params) (float64, error)) greekFunc {
	return func(p pricing.Params, _ pricing.OptionType) (float64, error) {
		return f(p)
	}
}

var greekFuncs = map[string]greekFunc{
	"delta":   pricing.Delta,
	"vega":    typeFree(pricing.Vega),
	"theta":   pricing.Theta,
	"rho":     pricing.Rho,
	"gamma":   typeFree(pricing.Gamma),
	"vanna":   typeFree(pricing.Vanna),
	"charm":   pricing.Charm,
	"vomma":   pricing.Vomma,
	"veta":    typeFree(pricing.Veta),
	"speed":   typeFree(pricing.Speed),
	"zomma":   typeFree(pricing.Zomma),
	"color":   typeFree(pricing.Color),
	"ultima":  pricing.Ultima,
	"vera":    pricing.Vera,
	"lambda":  pricing.Lambda,
	"epsilon": typeFree(pricing.Epsilon),
}

func (s *Server) handleGreek(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["greek"]
	f, ok := greekFuncs[name]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(errorResponse{Error: "unknown greek: " + name, Status: "error"})
		return
	}

	p, typ, err := s.parseParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := f(p, typ)
	if err != nil {
		writeError(w, err)
		return
	}
	writeValue(w, v, p, typ)
}

// summaryPayload shadows the Lambda field so the designed signed-infinity
// limit can be serialized; JSON has no representation for IEEE infinities.
type summaryPayload struct {
	*pricing.Summary
	Lambda any `json:"lambda"`
}

type summaryResponse struct {
	Summary         summaryPayload `json:"summary"`
	InputParameters inputParams    `json:"input_parameters"`
	Model           string         `json:"model"`
	Status          string         `json:"status"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	p, typ, err := s.parseParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sum, err := pricing.Summarize(p, typ)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaryResponse{
		Summary:         summaryPayload{Summary: sum, Lambda: jsonValue(sum.Lambda)},
		InputParameters: echo(p, typ),
		Model:           modelName,
		Status:          "success",
	})
}

func writeValue(w http.ResponseWriter, v float64, p pricing.Params, typ pricing.OptionType) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(valueResponse{
		Value:           jsonValue(v),
		InputParameters: echo(p, typ),
		Model:           modelName,
		Status:          "success",
	})
}

func jsonValue(v float64) any {
	if math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func echo(p pricing.Params, typ pricing.OptionType) inputParams {
	return inputParams{S: p.S, K: p.K, T: p.T, R: p.R, Q: p.Q, Vol: p.Vol, Type: string(typ)}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var verr *pricing.ValidationError
	var nerr *pricing.NumericalError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.As(err, &nerr):
		status = http.StatusUnprocessableEntity
	}
	zap.L().Warn("request failed", zap.Int("status", status), zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Status: "error"})
}

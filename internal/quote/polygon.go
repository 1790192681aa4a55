package quote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// polygonProvider fetches daily aggregates from the Polygon.io REST API.
type polygonProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

// NewPolygonProvider returns a Provider backed by Polygon.io daily aggregates.
func NewPolygonProvider(apiKey string) Provider {
	return &polygonProvider{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.polygon.io",
	}
}

func (prov *polygonProvider) DailyBars(symbol string, from, to time.Time) ([]Bar, error) {
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		prov.baseURL, symbol, from.Format("2006-01-02"), to.Format("2006-01-02"), prov.apiKey)

	zap.L().Debug("fetching polygon daily bars",
		zap.String("symbol", symbol),
		zap.String("from", from.Format("2006-01-02")),
		zap.String("to", to.Format("2006-01-02")),
	)

	resp, err := prov.client.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "polygon aggs request")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("polygon aggs status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			Time  int64   `json:"t"`
			Open  float64 `json:"o"`
			High  float64 `json:"h"`
			Low   float64 `json:"l"`
			Close float64 `json:"c"`
			Vol   float64 `json:"v"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decoding polygon aggs response")
	}

	out := make([]Bar, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, Bar{
			Date:   time.UnixMilli(r.Time).UTC(),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Vol,
		})
	}
	return out, nil
}

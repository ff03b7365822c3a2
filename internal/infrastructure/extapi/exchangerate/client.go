// Package exchangerate wraps the exchangerate-api.com v6 pair endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/freelancer-toolkit/api/internal/api/metrics"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

// Client fetches conversion rates for currency pairs.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient builds a Client. baseURL may be empty to use the production endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type pairResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PairRate returns the conversion rate from one currency to another.
func (c *Client) PairRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	timer := prometheus.NewTimer(metrics.ExternalRequestDuration.WithLabelValues("exchange_rate"))
	defer timer.ObserveDuration()

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate provider: %s", resp.Status)
	}

	var out pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("exchange rate decode: %w", err)
	}

	if out.Result != "success" {
		if out.ErrorType != "" {
			return 0, fmt.Errorf("exchange rate provider: %s", out.ErrorType)
		}
		return 0, fmt.Errorf("exchange rate provider: unknown error")
	}
	return out.ConversionRate, nil
}

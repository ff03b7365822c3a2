// Package timezone wraps the Google Time Zone API.
package timezone

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/freelancer-toolkit/api/internal/api/metrics"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/timezone"

// Client looks up the timezone of a geographic point.
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

type timezoneResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	TimezoneID   string `json:"timeZoneId"`
	TimezoneName string `json:"timeZoneName"`
	DSTOffset    int    `json:"dstOffset"`
	RawOffset    int    `json:"rawOffset"`
}

// Lookup returns the timezone at the given coordinates for the given time.
func (c *Client) Lookup(ctx context.Context, lat, lng float64, at time.Time) (*ports.TimezoneInfo, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("timestamp", strconv.FormatInt(at.Unix(), 10))
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.ExternalRequestDuration.WithLabelValues("timezone"))
	defer timer.ObserveDuration()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timezone request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timezone provider: %s", resp.Status)
	}

	var out timezoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("timezone decode: %w", err)
	}

	if out.Status != "OK" {
		if out.ErrorMessage != "" {
			return nil, fmt.Errorf("timezone provider: %s", out.ErrorMessage)
		}
		return nil, fmt.Errorf("timezone provider: %s", out.Status)
	}

	return &ports.TimezoneInfo{
		TimezoneID:   out.TimezoneID,
		TimezoneName: out.TimezoneName,
		DSTOffset:    out.DSTOffset,
		RawOffset:    out.RawOffset,
	}, nil
}

// Package places wraps the Google Places text-search and find-place endpoints.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/freelancer-toolkit/api/internal/api/metrics"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client searches places and geocodes free-text locations.
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

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location location `json:"location"`
}

type searchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Geometry         geometry `json:"geometry"`
		Rating           float64  `json:"rating"`
	} `json:"results"`
}

// SearchWorkspaces finds co-working spaces near the given location.
func (c *Client) SearchWorkspaces(ctx context.Context, loc string) ([]ports.Place, error) {
	q := url.Values{}
	q.Set("query", "workspaces in "+loc)
	q.Set("key", c.apiKey)

	var out searchResponse
	if err := c.get(ctx, c.baseURL+"/textsearch/json?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	if out.Status != "OK" && out.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places provider: %s", out.Status)
	}

	results := make([]ports.Place, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, ports.Place{
			PlaceID:   r.PlaceID,
			Name:      r.Name,
			Address:   r.FormattedAddress,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
			Rating:    r.Rating,
		})
	}
	return results, nil
}

type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		Geometry geometry `json:"geometry"`
	} `json:"candidates"`
}

// Geocode resolves a free-text location to coordinates using find-place.
func (c *Client) Geocode(ctx context.Context, loc string) (float64, float64, error) {
	q := url.Values{}
	q.Set("input", loc)
	q.Set("inputtype", "textquery")
	q.Set("fields", "geometry")
	q.Set("key", c.apiKey)

	var out findPlaceResponse
	if err := c.get(ctx, c.baseURL+"/findplacefromtext/json?"+q.Encode(), &out); err != nil {
		return 0, 0, err
	}
	if out.Status != "OK" || len(out.Candidates) == 0 {
		return 0, 0, fmt.Errorf("places provider: no results for %q", loc)
	}

	pos := out.Candidates[0].Geometry.Location
	return pos.Lat, pos.Lng, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.ExternalRequestDuration.WithLabelValues("places"))
	defer timer.ObserveDuration()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places provider: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places decode: %w", err)
	}
	return nil
}

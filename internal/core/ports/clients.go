package ports

import (
	"context"
	"time"
)

// ExchangeRateClient fetches the conversion rate between two currencies from
// the external exchange-rate provider.
type ExchangeRateClient interface {
	PairRate(ctx context.Context, from, to string) (float64, error)
}

// RateCache caches exchange rates so repeated lookups for the same pair do
// not hit the external provider.
type RateCache interface {
	Get(ctx context.Context, from, to string) (float64, bool, error)
	Set(ctx context.Context, from, to string, rate float64) error
}

// Place is a single result from a places text search.
type Place struct {
	PlaceID   string  `json:"place_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rating    float64 `json:"rating,omitempty"`
}

// PlacesClient proxies the external places provider.
type PlacesClient interface {
	// SearchWorkspaces finds co-working spaces near the given location.
	SearchWorkspaces(ctx context.Context, location string) ([]Place, error)
	// Geocode resolves a free-text location to coordinates.
	Geocode(ctx context.Context, location string) (lat, lng float64, err error)
}

// TimezoneInfo is the timezone of a geographic point.
type TimezoneInfo struct {
	TimezoneID   string `json:"timezone_id"`
	TimezoneName string `json:"timezone_name"`
	DSTOffset    int    `json:"dst_offset"`
	RawOffset    int    `json:"raw_offset"`
}

// TimezoneClient proxies the external timezone provider.
type TimezoneClient interface {
	Lookup(ctx context.Context, lat, lng float64, at time.Time) (*TimezoneInfo, error)
}

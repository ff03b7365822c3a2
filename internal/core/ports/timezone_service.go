package ports

import "context"

// TimezoneResult is the timezone lookup response for a free-text location.
type TimezoneResult struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  TimezoneInfo
}

// TimezoneService resolves a location to its timezone by geocoding through
// the places provider and querying the timezone provider.
type TimezoneService interface {
	Lookup(ctx context.Context, location string) (*TimezoneResult, error)
}

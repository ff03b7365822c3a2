package service

import (
	"context"
	"fmt"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// TimezoneService resolves a free-text location to its timezone: geocode via
// the places provider, then query the timezone provider with the coordinates.
type TimezoneService struct {
	places   ports.PlacesClient
	timezone ports.TimezoneClient
}

func NewTimezoneService(places ports.PlacesClient, timezone ports.TimezoneClient) *TimezoneService {
	return &TimezoneService{places: places, timezone: timezone}
}

func (s *TimezoneService) Lookup(ctx context.Context, location string) (*ports.TimezoneResult, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}

	lat, lng, err := s.places.Geocode(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", location, err)
	}

	info, err := s.timezone.Lookup(ctx, lat, lng, time.Now())
	if err != nil {
		return nil, fmt.Errorf("timezone lookup: %w", err)
	}

	return &ports.TimezoneResult{
		Location:  location,
		Latitude:  lat,
		Longitude: lng,
		Timezone:  *info,
	}, nil
}

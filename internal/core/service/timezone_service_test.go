package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

func TestTimezoneService_Lookup(t *testing.T) {
	places := &stubPlacesClient{
		geocodeFn: func(ctx context.Context, location string) (float64, float64, error) {
			return 38.72, -9.14, nil
		},
	}
	timezone := &stubTimezoneClient{
		lookupFn: func(ctx context.Context, lat, lng float64, at time.Time) (*ports.TimezoneInfo, error) {
			if lat != 38.72 || lng != -9.14 {
				t.Fatalf("unexpected coordinates: %v %v", lat, lng)
			}
			return &ports.TimezoneInfo{TimezoneID: "Europe/Lisbon", TimezoneName: "Western European Time"}, nil
		},
	}
	svc := NewTimezoneService(places, timezone)

	result, err := svc.Lookup(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Timezone.TimezoneID != "Europe/Lisbon" || result.Location != "Lisbon" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTimezoneService_Lookup_EmptyLocation(t *testing.T) {
	svc := NewTimezoneService(&stubPlacesClient{}, &stubTimezoneClient{})

	if _, err := svc.Lookup(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTimezoneService_Lookup_GeocodeFailure(t *testing.T) {
	places := &stubPlacesClient{
		geocodeFn: func(ctx context.Context, location string) (float64, float64, error) {
			return 0, 0, errors.New("no results")
		},
	}
	timezone := &stubTimezoneClient{
		lookupFn: func(ctx context.Context, lat, lng float64, at time.Time) (*ports.TimezoneInfo, error) {
			t.Fatal("timezone provider must not be called when geocoding fails")
			return nil, nil
		},
	}
	svc := NewTimezoneService(places, timezone)

	if _, err := svc.Lookup(context.Background(), "Atlantis"); err == nil {
		t.Fatal("expected error")
	}
}

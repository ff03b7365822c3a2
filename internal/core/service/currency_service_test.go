package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

func TestCurrencyService_Convert_CacheHit(t *testing.T) {
	client := &stubExchangeClient{
		pairRateFn: func(ctx context.Context, from, to string) (float64, error) {
			t.Fatal("provider must not be called on a cache hit")
			return 0, nil
		},
	}
	cache := &stubRateCache{
		getFn: func(ctx context.Context, from, to string) (float64, bool, error) {
			return 0.85, true, nil
		},
	}
	svc := NewCurrencyService(client, cache, &stubConversionRepo{}, zerolog.Nop())

	result, err := svc.Convert(context.Background(), "usd", "eur", 100)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.FromCurrency != "USD" || result.ToCurrency != "EUR" {
		t.Fatalf("expected currencies normalised to upper case: %+v", result)
	}
	if result.Rate != 0.85 || result.ConvertedAmount != 85 {
		t.Fatalf("unexpected conversion: %+v", result)
	}
}

func TestCurrencyService_Convert_CacheMissStoresRate(t *testing.T) {
	client := &stubExchangeClient{
		pairRateFn: func(ctx context.Context, from, to string) (float64, error) {
			return 1.25, nil
		},
	}
	var cachedRate float64
	cache := &stubRateCache{
		getFn: func(ctx context.Context, from, to string) (float64, bool, error) {
			return 0, false, nil
		},
		setFn: func(ctx context.Context, from, to string, rate float64) error {
			cachedRate = rate
			return nil
		},
	}
	svc := NewCurrencyService(client, cache, &stubConversionRepo{}, zerolog.Nop())

	result, err := svc.Convert(context.Background(), "GBP", "USD", 10)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.ConvertedAmount != 12.5 {
		t.Fatalf("unexpected converted amount: %v", result.ConvertedAmount)
	}
	if cachedRate != 1.25 {
		t.Fatalf("expected rate cached, got %v", cachedRate)
	}
}

func TestCurrencyService_Convert_CacheFailureFallsThrough(t *testing.T) {
	client := &stubExchangeClient{
		pairRateFn: func(ctx context.Context, from, to string) (float64, error) {
			return 2, nil
		},
	}
	cache := &stubRateCache{
		getFn: func(ctx context.Context, from, to string) (float64, bool, error) {
			return 0, false, errors.New("redis down")
		},
		setFn: func(ctx context.Context, from, to string, rate float64) error {
			return errors.New("redis down")
		},
	}
	svc := NewCurrencyService(client, cache, &stubConversionRepo{}, zerolog.Nop())

	// A broken cache degrades to provider-only lookups, never to an error.
	result, err := svc.Convert(context.Background(), "USD", "JPY", 3)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.ConvertedAmount != 6 {
		t.Fatalf("unexpected converted amount: %v", result.ConvertedAmount)
	}
}

func TestCurrencyService_Convert_Rounding(t *testing.T) {
	client := &stubExchangeClient{
		pairRateFn: func(ctx context.Context, from, to string) (float64, error) {
			return 0.333333, nil
		},
	}
	cache := &stubRateCache{
		getFn: func(ctx context.Context, from, to string) (float64, bool, error) { return 0, false, nil },
		setFn: func(ctx context.Context, from, to string, rate float64) error { return nil },
	}
	svc := NewCurrencyService(client, cache, &stubConversionRepo{}, zerolog.Nop())

	result, err := svc.Convert(context.Background(), "USD", "EUR", 10)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.ConvertedAmount != 3.33 {
		t.Fatalf("expected 3.33, got %v", result.ConvertedAmount)
	}
}

func TestCurrencyService_Convert_InvalidInput(t *testing.T) {
	svc := NewCurrencyService(&stubExchangeClient{}, &stubRateCache{}, &stubConversionRepo{}, zerolog.Nop())

	if _, err := svc.Convert(context.Background(), "", "EUR", 10); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty from, got %v", err)
	}
	if _, err := svc.Convert(context.Background(), "USD", "EUR", 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero amount, got %v", err)
	}
	if _, err := svc.Convert(context.Background(), "USD", "EUR", -5); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}
}

func TestCurrencyService_SaveConversion(t *testing.T) {
	client := &stubExchangeClient{
		pairRateFn: func(ctx context.Context, from, to string) (float64, error) { return 0.5, nil },
	}
	cache := &stubRateCache{
		getFn: func(ctx context.Context, from, to string) (float64, bool, error) { return 0, false, nil },
		setFn: func(ctx context.Context, from, to string, rate float64) error { return nil },
	}
	var stored *domain.CurrencyConversion
	repo := &stubConversionRepo{
		createFn: func(ctx context.Context, conv *domain.CurrencyConversion) (*domain.CurrencyConversion, error) {
			stored = conv
			created := *conv
			created.ID = "conv_1"
			return &created, nil
		},
	}
	svc := NewCurrencyService(client, cache, repo, zerolog.Nop())

	conv, err := svc.SaveConversion(context.Background(), "user_1", "USD", "EUR", 200)
	if err != nil {
		t.Fatalf("save conversion: %v", err)
	}
	if conv.ID != "conv_1" {
		t.Fatalf("expected stored id, got %+v", conv)
	}
	if stored.UserID != "user_1" || stored.ConvertedAmount != 100 || stored.Rate != 0.5 {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
	if stored.Timestamp.IsZero() {
		t.Fatal("expected timestamp set")
	}
}

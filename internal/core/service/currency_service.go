package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/api/metrics"
	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// CurrencyService converts between currencies via the external provider,
// caching pair rates so repeated lookups stay off the provider.
type CurrencyService struct {
	client ports.ExchangeRateClient
	cache  ports.RateCache
	repo   ports.ConversionRepository
	log    zerolog.Logger
}

func NewCurrencyService(client ports.ExchangeRateClient, cache ports.RateCache, repo ports.ConversionRepository, log zerolog.Logger) *CurrencyService {
	return &CurrencyService{client: client, cache: cache, repo: repo, log: log}
}

// Convert looks up the pair rate (cache first) and applies it to amount.
// Converted amounts are rounded to two decimal places.
func (s *CurrencyService) Convert(ctx context.Context, from, to string, amount float64) (*ports.ConversionResult, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to currencies are required", domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	rate, err := s.pairRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &ports.ConversionResult{
		FromCurrency:    from,
		ToCurrency:      to,
		Amount:          amount,
		Rate:            rate,
		ConvertedAmount: math.Round(rate*amount*100) / 100,
	}, nil
}

// SaveConversion performs a conversion and persists the record for the user.
func (s *CurrencyService) SaveConversion(ctx context.Context, userID, from, to string, amount float64) (*domain.CurrencyConversion, error) {
	result, err := s.Convert(ctx, from, to, amount)
	if err != nil {
		return nil, err
	}

	conv := &domain.CurrencyConversion{
		UserID:          userID,
		FromCurrency:    result.FromCurrency,
		ToCurrency:      result.ToCurrency,
		Amount:          result.Amount,
		ConvertedAmount: result.ConvertedAmount,
		Rate:            result.Rate,
		Timestamp:       time.Now().UTC(),
	}
	return s.repo.Create(ctx, conv)
}

func (s *CurrencyService) ListConversions(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error) {
	return s.repo.List(ctx, userID)
}

func (s *CurrencyService) DeleteConversion(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

// pairRate consults the cache before the external provider. Cache failures
// are logged and ignored; the provider remains the source of truth.
func (s *CurrencyService) pairRate(ctx context.Context, from, to string) (float64, error) {
	if rate, ok, err := s.cache.Get(ctx, from, to); err != nil {
		s.log.Warn().Err(err).Str("pair", from+"/"+to).Msg("rate cache read failed")
	} else if ok {
		metrics.ConversionsTotal.WithLabelValues("cache").Inc()
		return rate, nil
	}

	rate, err := s.client.PairRate(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("fetch exchange rate: %w", err)
	}
	metrics.ConversionsTotal.WithLabelValues("provider").Inc()

	if err := s.cache.Set(ctx, from, to, rate); err != nil {
		s.log.Warn().Err(err).Str("pair", from+"/"+to).Msg("rate cache write failed")
	}
	return rate, nil
}

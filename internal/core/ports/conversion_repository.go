package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// ConversionRepository defines persistence operations for saved currency conversions.
type ConversionRepository interface {
	Create(ctx context.Context, conv *domain.CurrencyConversion) (*domain.CurrencyConversion, error)
	List(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error)
	Delete(ctx context.Context, id, userID string) error
}

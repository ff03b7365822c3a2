package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// ConversionResult is the outcome of a currency conversion lookup.
type ConversionResult struct {
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
}

// CurrencyService converts between currencies and manages saved conversion records.
type CurrencyService interface {
	// Convert looks up the pair rate (cache first) and applies it to amount.
	Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error)
	// SaveConversion performs a conversion and persists the record for the user.
	SaveConversion(ctx context.Context, userID, from, to string, amount float64) (*domain.CurrencyConversion, error)
	ListConversions(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error)
	DeleteConversion(ctx context.Context, id, userID string) error
}

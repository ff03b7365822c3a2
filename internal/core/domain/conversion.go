package domain

import "time"

// CurrencyConversion records a conversion performed for a user.
type CurrencyConversion struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FromCurrency    string    `json:"from_currency"`
	ToCurrency      string    `json:"to_currency"`
	Amount          float64   `json:"amount"`
	ConvertedAmount float64   `json:"converted_amount"`
	Rate            float64   `json:"rate"`
	Timestamp       time.Time `json:"timestamp"`
}

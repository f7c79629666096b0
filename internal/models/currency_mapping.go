package models

import "time"

// CurrencyMapping mirrors a row of the currency_mappings table.
type CurrencyMapping struct {
	CurrencyID  string    `json:"currencyId"` // Primary Key (e.g., "bitcoin")
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

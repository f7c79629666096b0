package dto

import (
	"github.com/dh467/coindesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EnrichedCurrencyResponse defines one entry of the enriched currency list:
// feed price data joined with the locally stored display name.
type EnrichedCurrencyResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	// Price is null when the feed reported no usable price.
	Price            *decimal.Decimal `json:"price"`
	DisplayTimestamp string           `json:"displayTimestamp"`
}

// ToEnrichedCurrencyResponse converts a domain.EnrichedCurrency to its DTO
func ToEnrichedCurrencyResponse(e domain.EnrichedCurrency) EnrichedCurrencyResponse {
	return EnrichedCurrencyResponse{
		ID:               e.ID,
		DisplayName:      e.DisplayName,
		Price:            e.Price,
		DisplayTimestamp: e.DisplayTimestamp,
	}
}

// ToListEnrichedCurrencyResponse converts a slice of domain.EnrichedCurrency to DTOs
func ToListEnrichedCurrencyResponse(es []domain.EnrichedCurrency) []EnrichedCurrencyResponse {
	res := make([]EnrichedCurrencyResponse, len(es))
	for i, e := range es {
		res[i] = ToEnrichedCurrencyResponse(e)
	}
	return res
}

package dto

import (
	"github.com/dh467/coindesk/internal/core/domain"
)

// displayTimeLayout is the wire format for all human-facing timestamps.
const displayTimeLayout = "2006/01/02 15:04:05"

// CreateCurrencyRequest defines the data needed to track a new currency.
type CreateCurrencyRequest struct {
	ID          string `json:"id" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

// UpdateCurrencyRequest defines the data needed to rename a tracked currency.
type UpdateCurrencyRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency mapping.
type CurrencyResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToCurrencyResponse converts a domain.CurrencyMapping to a CurrencyResponse DTO
func ToCurrencyResponse(m *domain.CurrencyMapping) CurrencyResponse {
	return CurrencyResponse{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt.Format(displayTimeLayout),
		UpdatedAt:   m.UpdatedAt.Format(displayTimeLayout),
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyMapping to response DTOs
func ToListCurrencyResponse(mappings []domain.CurrencyMapping) []CurrencyResponse {
	res := make([]CurrencyResponse, len(mappings))
	for i := range mappings {
		res[i] = ToCurrencyResponse(&mappings[i])
	}
	return res
}

package mapping

import (
	"github.com/dh467/coindesk/internal/core/domain"
	"github.com/dh467/coindesk/internal/models"
)

// ToModelCurrencyMapping converts a domain CurrencyMapping to a model CurrencyMapping
func ToModelCurrencyMapping(d domain.CurrencyMapping) models.CurrencyMapping {
	return models.CurrencyMapping{
		CurrencyID:  d.ID,
		DisplayName: d.DisplayName,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainCurrencyMapping converts a model CurrencyMapping to a domain CurrencyMapping
func ToDomainCurrencyMapping(m models.CurrencyMapping) domain.CurrencyMapping {
	return domain.CurrencyMapping{
		ID:          m.CurrencyID,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainCurrencyMappingSlice converts a slice of model CurrencyMappings to domain CurrencyMappings
func ToDomainCurrencyMappingSlice(ms []models.CurrencyMapping) []domain.CurrencyMapping {
	ds := make([]domain.CurrencyMapping, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyMapping(m)
	}
	return ds
}

package services

import (
	"context"

	"github.com/dh467/coindesk/internal/core/domain"
	"github.com/dh467/coindesk/internal/dto"
)

// CurrencyMappingReaderSvc defines read operations for currency mappings
type CurrencyMappingReaderSvc interface {
	// GetCurrency retrieves a specific mapping by its feed id.
	GetCurrency(ctx context.Context, id string) (*domain.CurrencyMapping, error)

	// ListCurrencies retrieves all currency mappings.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyMapping, error)
}

// CurrencyMappingWriterSvc defines write operations for currency mappings
type CurrencyMappingWriterSvc interface {
	// CreateCurrency persists a new mapping after validating its fields.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyMapping, error)

	// UpdateCurrency changes the display name of an existing mapping.
	UpdateCurrency(ctx context.Context, id string, req dto.UpdateCurrencyRequest) (*domain.CurrencyMapping, error)

	// DeleteCurrency removes a mapping.
	DeleteCurrency(ctx context.Context, id string) error

	// SeedDefaultCurrencies inserts the default well-known currencies when
	// the mapping table is empty. Idempotent; invoked once at bootstrap.
	SeedDefaultCurrencies(ctx context.Context) error
}

// CurrencyMappingSvcFacade combines all mapping-related service interfaces
type CurrencyMappingSvcFacade interface {
	CurrencyMappingReaderSvc
	CurrencyMappingWriterSvc
}

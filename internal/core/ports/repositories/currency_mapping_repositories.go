package repositories

import (
	"context"

	"github.com/dh467/coindesk/internal/core/domain"
)

// CurrencyMappingReader defines read operations for the currency mapping table
type CurrencyMappingReader interface {
	// FindByID retrieves a specific mapping by its feed id.
	// Returns apperrors.ErrNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*domain.CurrencyMapping, error)

	// List retrieves all currency mappings.
	List(ctx context.Context) ([]domain.CurrencyMapping, error)
}

// CurrencyMappingWriter defines write operations for the currency mapping table
type CurrencyMappingWriter interface {
	// Insert persists a new mapping. Returns apperrors.ErrDuplicate when the
	// id is already present; the insert is atomic with the existence check.
	Insert(ctx context.Context, mapping domain.CurrencyMapping) error

	// Update changes the display name of an existing mapping and refreshes
	// its updatedAt. Returns the updated row or apperrors.ErrNotFound.
	Update(ctx context.Context, id, displayName string) (*domain.CurrencyMapping, error)

	// Delete removes a mapping. Returns apperrors.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// CurrencyMappingRepositoryFacade combines all mapping-table repository interfaces
type CurrencyMappingRepositoryFacade interface {
	CurrencyMappingReader
	CurrencyMappingWriter
}

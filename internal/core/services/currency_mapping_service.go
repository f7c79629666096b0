package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/domain"
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"github.com/dh467/coindesk/internal/dto"
	"github.com/dh467/coindesk/internal/middleware"
)

// defaultCurrencies is the seed set inserted when the mapping table is empty
// at startup.
var defaultCurrencies = []struct {
	id          string
	displayName string
}{
	{"bitcoin", "比特幣"},
	{"ethereum", "以太幣"},
	{"dogecoin", "狗狗幣"},
}

// CurrencyMappingService provides the CRUD lifecycle over the currency
// mapping table, enforcing non-blank fields before the store is touched.
type CurrencyMappingService struct {
	mappingRepo portsrepo.CurrencyMappingRepositoryFacade
}

// NewCurrencyMappingService creates a new CurrencyMappingService.
func NewCurrencyMappingService(mappingRepo portsrepo.CurrencyMappingRepositoryFacade) *CurrencyMappingService {
	return &CurrencyMappingService{mappingRepo: mappingRepo}
}

// CreateCurrency validates and persists a new currency mapping.
func (s *CurrencyMappingService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyMapping, error) {
	id := strings.TrimSpace(req.ID)
	displayName := strings.TrimSpace(req.DisplayName)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	if displayName == "" {
		return nil, fmt.Errorf("%w: displayName is required", apperrors.ErrValidation)
	}

	now := time.Now()
	m := domain.CurrencyMapping{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.mappingRepo.Insert(ctx, m); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Currency mapping created", slog.String("currency_id", id))
	return &m, nil
}

// GetCurrency retrieves a currency mapping by id.
func (s *CurrencyMappingService) GetCurrency(ctx context.Context, id string) (*domain.CurrencyMapping, error) {
	m, err := s.mappingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListCurrencies retrieves all currency mappings.
func (s *CurrencyMappingService) ListCurrencies(ctx context.Context) ([]domain.CurrencyMapping, error) {
	mappings, err := s.mappingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency mappings: %w", err)
	}
	// Return empty slice if no mappings found, not nil
	if mappings == nil {
		return []domain.CurrencyMapping{}, nil
	}
	return mappings, nil
}

// UpdateCurrency changes the display name of an existing mapping.
func (s *CurrencyMappingService) UpdateCurrency(ctx context.Context, id string, req dto.UpdateCurrencyRequest) (*domain.CurrencyMapping, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: displayName is required", apperrors.ErrValidation)
	}

	return s.mappingRepo.Update(ctx, id, displayName)
}

// DeleteCurrency removes a currency mapping.
func (s *CurrencyMappingService) DeleteCurrency(ctx context.Context, id string) error {
	middleware.GetLoggerFromCtx(ctx).Warn("Deleting currency mapping", slog.String("currency_id", id))
	return s.mappingRepo.Delete(ctx, id)
}

// SeedDefaultCurrencies inserts the default well-known currencies when the
// mapping table is empty. Guarded by the emptiness check, so running it on
// every boot is a no-op after first startup.
func (s *CurrencyMappingService) SeedDefaultCurrencies(ctx context.Context) error {
	existing, err := s.mappingRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check currency mappings before seeding: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	for _, c := range defaultCurrencies {
		m := domain.CurrencyMapping{
			ID:          c.id,
			DisplayName: c.displayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.mappingRepo.Insert(ctx, m); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", c.id, err)
		}
	}
	middleware.GetLoggerFromCtx(ctx).Info("Seeded default currency mappings", slog.Int("count", len(defaultCurrencies)))
	return nil
}

package handlers_test

import (
	"context"

	"github.com/dh467/coindesk/internal/core/domain"
	portssvc "github.com/dh467/coindesk/internal/core/ports/services"
	"github.com/dh467/coindesk/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyMappingService ---
type MockCurrencyMappingService struct {
	mock.Mock
}

func (m *MockCurrencyMappingService) GetCurrency(ctx context.Context, id string) (*domain.CurrencyMapping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingService) ListCurrencies(ctx context.Context) ([]domain.CurrencyMapping, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyMapping, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingService) UpdateCurrency(ctx context.Context, id string, req dto.UpdateCurrencyRequest) (*domain.CurrencyMapping, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingService) DeleteCurrency(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCurrencyMappingService) SeedDefaultCurrencies(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencyMappingSvcFacade = (*MockCurrencyMappingService)(nil)

// --- Mock CoindeskService ---
type MockCoindeskService struct {
	mock.Mock
}

func (m *MockCoindeskService) GetRawFeed(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCoindeskService) GetEnrichedCurrencies(ctx context.Context) ([]domain.EnrichedCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedCurrency), args.Error(1)
}

var _ portssvc.CoindeskSvcFacade = (*MockCoindeskService)(nil)

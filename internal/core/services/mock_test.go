package services_test

import (
	"context"

	"github.com/dh467/coindesk/internal/core/domain"
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyMappingRepository ---
type MockCurrencyMappingRepo struct {
	mock.Mock
}

func (m *MockCurrencyMappingRepo) FindByID(ctx context.Context, id string) (*domain.CurrencyMapping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingRepo) List(ctx context.Context) ([]domain.CurrencyMapping, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingRepo) Insert(ctx context.Context, mapping domain.CurrencyMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockCurrencyMappingRepo) Update(ctx context.Context, id, displayName string) (*domain.CurrencyMapping, error) {
	args := m.Called(ctx, id, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyMapping), args.Error(1)
}

func (m *MockCurrencyMappingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portsrepo.CurrencyMappingRepositoryFacade = (*MockCurrencyMappingRepo)(nil)

// --- Mock FeedClient ---
type MockFeedClient struct {
	mock.Mock
}

func (m *MockFeedClient) Fetch(ctx context.Context, ids []string) ([]byte, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portsrepo.FeedClient = (*MockFeedClient)(nil)

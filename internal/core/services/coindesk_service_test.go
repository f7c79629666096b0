package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/domain"
	"github.com/dh467/coindesk/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CoindeskServiceTestSuite struct {
	suite.Suite
	mappingRepo *MockCurrencyMappingRepo
	feedClient  *MockFeedClient
	service     *services.CoindeskService
	taipei      *time.Location
}

func (s *CoindeskServiceTestSuite) SetupTest() {
	s.mappingRepo = new(MockCurrencyMappingRepo)
	s.feedClient = new(MockFeedClient)

	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(s.T(), err)
	s.taipei = loc

	s.service = services.NewCoindeskService(s.mappingRepo, s.feedClient, loc)
}

func (s *CoindeskServiceTestSuite) trackedMappings() []domain.CurrencyMapping {
	now := time.Now()
	return []domain.CurrencyMapping{
		{ID: "bitcoin", DisplayName: "比特幣", CreatedAt: now, UpdatedAt: now},
		{ID: "ethereum", DisplayName: "以太幣", CreatedAt: now, UpdatedAt: now},
	}
}

func (s *CoindeskServiceTestSuite) TestGetRawFeed_Passthrough() {
	raw := []byte(sampleFeed)
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	s.feedClient.On("Fetch", mock.Anything, []string{"bitcoin", "ethereum"}).Return(raw, nil)

	got, err := s.service.GetRawFeed(context.Background())

	require.NoError(s.T(), err)
	assert.Equal(s.T(), raw, got)
}

func (s *CoindeskServiceTestSuite) TestGetRawFeed_NoTrackedCurrencies() {
	s.mappingRepo.On("List", mock.Anything).Return([]domain.CurrencyMapping{}, nil)

	_, err := s.service.GetRawFeed(context.Background())

	assert.ErrorIs(s.T(), err, apperrors.ErrNoTrackedCurrencies)
	// The emptiness check must short-circuit before any network call
	s.feedClient.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
}

func (s *CoindeskServiceTestSuite) TestGetRawFeed_EmptyFeed() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	s.feedClient.On("Fetch", mock.Anything, mock.Anything).Return([]byte(`[]`), nil)

	_, err := s.service.GetRawFeed(context.Background())

	assert.ErrorIs(s.T(), err, apperrors.ErrEmptyFeed)
	assert.NotErrorIs(s.T(), err, apperrors.ErrFeedParse)
}

func (s *CoindeskServiceTestSuite) TestGetRawFeed_MalformedFeed() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	s.feedClient.On("Fetch", mock.Anything, mock.Anything).Return([]byte(`<html>`), nil)

	_, err := s.service.GetRawFeed(context.Background())

	assert.ErrorIs(s.T(), err, apperrors.ErrFeedParse)
}

func (s *CoindeskServiceTestSuite) TestGetRawFeed_FeedUnavailable() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	s.feedClient.On("Fetch", mock.Anything, mock.Anything).Return(nil, apperrors.ErrFeedUnavailable)

	_, err := s.service.GetRawFeed(context.Background())

	assert.ErrorIs(s.T(), err, apperrors.ErrFeedUnavailable)
}

func (s *CoindeskServiceTestSuite) TestGetEnrichedCurrencies_JoinsAndConvertsTimestamps() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	// Feed deliberately out of order to exercise sorting
	feed := `[
		{"id":"ethereum","current_price":80000.25,"last_updated":"2025-08-30T04:15:00Z"},
		{"id":"bitcoin","current_price":1000000.50,"last_updated":"2025-08-30T04:15:00Z"}
	]`
	s.feedClient.On("Fetch", mock.Anything, []string{"bitcoin", "ethereum"}).Return([]byte(feed), nil)

	enriched, err := s.service.GetEnrichedCurrencies(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), enriched, 2)

	// Sorted ascending by id
	assert.Equal(s.T(), "bitcoin", enriched[0].ID)
	assert.Equal(s.T(), "ethereum", enriched[1].ID)

	assert.Equal(s.T(), "比特幣", enriched[0].DisplayName)
	assert.Equal(s.T(), "以太幣", enriched[1].DisplayName)

	require.NotNil(s.T(), enriched[0].Price)
	assert.Equal(s.T(), "1000000.5", enriched[0].Price.String())
	require.NotNil(s.T(), enriched[1].Price)
	assert.Equal(s.T(), "80000.25", enriched[1].Price.String())

	// 04:15 UTC is 12:15 in Taipei (UTC+8)
	assert.Equal(s.T(), "2025/08/30 12:15:00", enriched[0].DisplayTimestamp)
	assert.Equal(s.T(), "2025/08/30 12:15:00", enriched[1].DisplayTimestamp)
}

func (s *CoindeskServiceTestSuite) TestGetEnrichedCurrencies_ExcludesUntrackedFeedRecords() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	feed := `[
		{"id":"bitcoin","current_price":1000000.50,"last_updated":"2025-08-30T04:15:00Z"},
		{"id":"dogecoin","current_price":3.5,"last_updated":"2025-08-30T04:15:00Z"}
	]`
	s.feedClient.On("Fetch", mock.Anything, mock.Anything).Return([]byte(feed), nil)

	enriched, err := s.service.GetEnrichedCurrencies(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), enriched, 1)
	assert.Equal(s.T(), "bitcoin", enriched[0].ID)
}

func (s *CoindeskServiceTestSuite) TestGetEnrichedCurrencies_NilPricePropagates() {
	s.mappingRepo.On("List", mock.Anything).Return(s.trackedMappings(), nil)
	feed := `[{"id":"bitcoin","current_price":null,"last_updated":"2025-08-30T04:15:00Z"}]`
	s.feedClient.On("Fetch", mock.Anything, mock.Anything).Return([]byte(feed), nil)

	enriched, err := s.service.GetEnrichedCurrencies(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), enriched, 1)
	assert.Nil(s.T(), enriched[0].Price)
}

func (s *CoindeskServiceTestSuite) TestGetEnrichedCurrencies_NoTrackedCurrencies() {
	s.mappingRepo.On("List", mock.Anything).Return([]domain.CurrencyMapping{}, nil)

	_, err := s.service.GetEnrichedCurrencies(context.Background())

	assert.ErrorIs(s.T(), err, apperrors.ErrNoTrackedCurrencies)
	s.feedClient.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
}

func TestCoindeskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoindeskServiceTestSuite))
}

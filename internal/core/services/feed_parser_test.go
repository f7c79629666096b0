package services_test

import (
	"testing"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `[
	{"id":"bitcoin","symbol":"btc","current_price":1000000.50,"last_updated":"2025-08-30T04:15:00Z"},
	{"id":"ethereum","symbol":"eth","current_price":80000.25,"last_updated":"2025-08-30T04:15:00+00:00"}
]`

func TestParseFeed(t *testing.T) {
	records, err := services.ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "bitcoin", records[0].ID)
	require.NotNil(t, records[0].Price)
	assert.Equal(t, "1000000.5", records[0].Price.String())
	assert.Equal(t, time.Date(2025, 8, 30, 4, 15, 0, 0, time.UTC), records[0].LastUpdated.UTC())

	assert.Equal(t, "ethereum", records[1].ID)
	require.NotNil(t, records[1].Price)
	assert.Equal(t, "80000.25", records[1].Price.String())
}

func TestParseFeed_PriceLeniency(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"null price", `[{"id":"bitcoin","current_price":null,"last_updated":"2025-08-30T04:15:00Z"}]`},
		{"absent price", `[{"id":"bitcoin","last_updated":"2025-08-30T04:15:00Z"}]`},
		{"non-numeric price", `[{"id":"bitcoin","current_price":"n/a","last_updated":"2025-08-30T04:15:00Z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := services.ParseFeed([]byte(tt.payload))
			require.NoError(t, err, "a partially-priced feed is still valid")
			require.Len(t, records, 1)
			assert.Nil(t, records[0].Price)
		})
	}
}

func TestParseFeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"malformed json", `{"not":"an array"`, apperrors.ErrFeedParse},
		{"object instead of array", `{"id":"bitcoin"}`, apperrors.ErrFeedParse},
		{"empty array", `[]`, apperrors.ErrEmptyFeed},
		{"record without id", `[{"current_price":1,"last_updated":"2025-08-30T04:15:00Z"}]`, apperrors.ErrFeedParse},
		{"record without timestamp", `[{"id":"bitcoin","current_price":1}]`, apperrors.ErrFeedParse},
		{"bad timestamp", `[{"id":"bitcoin","current_price":1,"last_updated":"yesterday"}]`, apperrors.ErrFeedParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ParseFeed([]byte(tt.payload))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProbeFeed(t *testing.T) {
	assert.NoError(t, services.ProbeFeed([]byte(sampleFeed)))
	assert.ErrorIs(t, services.ProbeFeed([]byte(`[]`)), apperrors.ErrEmptyFeed)
	assert.ErrorIs(t, services.ProbeFeed([]byte(`not json`)), apperrors.ErrFeedParse)
	// Probe does not inspect individual records, only the array shape
	assert.NoError(t, services.ProbeFeed([]byte(`[{"anything":true}]`)))
}

package services

import (
	"context"

	"github.com/dh467/coindesk/internal/core/domain"
)

// CoindeskSvcFacade exposes the aggregation pipeline: raw market feed
// passthrough and the enriched, display-ready currency list.
type CoindeskSvcFacade interface {
	// GetRawFeed returns the upstream feed body for all tracked currencies,
	// after verifying the tracked set is non-empty and the feed payload is a
	// well-formed, non-empty array.
	GetRawFeed(ctx context.Context) ([]byte, error)

	// GetEnrichedCurrencies joins the feed with local display names and
	// returns the result sorted ascending by currency id.
	GetEnrichedCurrencies(ctx context.Context) ([]domain.EnrichedCurrency, error)
}

// Package domain holds the core business types of the coindesk service.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyMapping links a market feed currency id (e.g. "bitcoin") to its
// localized display name. Persisted; owned by the mapping repository.
type CurrencyMapping struct {
	ID          string // Primary Key, feed identifier
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeedRecord is one currency entry parsed from a market feed response.
// Transient; lives only for the duration of a single aggregation call.
type FeedRecord struct {
	ID string
	// Price is nil when the feed reports no usable price for the currency.
	// Decimal, not float64, because it represents money.
	Price       *decimal.Decimal
	LastUpdated time.Time
}

// EnrichedCurrency is the output of joining a FeedRecord with the local
// mapping table.
type EnrichedCurrency struct {
	ID          string
	DisplayName string // empty when the feed id has no mapping row
	Price       *decimal.Decimal
	// DisplayTimestamp is LastUpdated converted to the configured display
	// time zone and formatted as yyyy/MM/dd HH:mm:ss.
	DisplayTimestamp string
}

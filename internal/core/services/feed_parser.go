package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// feedEntry mirrors one element of the coins/markets response, keeping only
// the fields the aggregation pipeline needs.
type feedEntry struct {
	ID string `json:"id"`
	// CurrentPrice stays raw so an absent or non-numeric price degrades to
	// "no price" instead of failing the whole payload.
	CurrentPrice json.RawMessage `json:"current_price"`
	LastUpdated  string          `json:"last_updated"`
}

// ProbeFeed checks that raw is a well-formed, non-empty JSON array without
// decoding the individual records. Returns apperrors.ErrFeedParse or
// apperrors.ErrEmptyFeed.
func ProbeFeed(raw []byte) error {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFeedParse, err)
	}
	if len(elements) == 0 {
		return apperrors.ErrEmptyFeed
	}
	return nil
}

// ParseFeed parses a raw feed payload into typed records. Every record must
// carry an id and an ISO-8601 timestamp with offset; a missing or
// non-numeric price yields a nil Price, not an error.
func ParseFeed(raw []byte) ([]domain.FeedRecord, error) {
	var entries []feedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedParse, err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrEmptyFeed
	}

	records := make([]domain.FeedRecord, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: feed record without id", apperrors.ErrFeedParse)
		}
		lastUpdated, err := time.Parse(time.RFC3339, e.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid last_updated for %s: %v", apperrors.ErrFeedParse, e.ID, err)
		}
		records = append(records, domain.FeedRecord{
			ID:          e.ID,
			Price:       parsePrice(e.CurrentPrice),
			LastUpdated: lastUpdated,
		})
	}
	return records, nil
}

// parsePrice converts a raw current_price value into a decimal. Anything
// that is not a number (absent field, null, strings, objects) counts as
// "no price" and maps to nil.
func parsePrice(raw json.RawMessage) *decimal.Decimal {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	price, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return nil
	}
	return &price
}

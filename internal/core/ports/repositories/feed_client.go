package repositories

import "context"

// FeedClient fetches raw market data for a set of tracked currency ids.
// Implementations issue a single GET against the upstream feed; retries are
// a caller concern.
type FeedClient interface {
	// Fetch returns the raw response body for the given ids, or
	// apperrors.ErrFeedUnavailable on network, timeout or non-2xx failures.
	Fetch(ctx context.Context, ids []string) ([]byte, error)
}

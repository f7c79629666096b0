package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoTrackedCurrencies indicates the currency mapping table is empty, so
// there is nothing to request from the market feed.
var ErrNoTrackedCurrencies = errors.New("no tracked currencies")

// ErrEmptyFeed indicates the market feed answered with a well-formed but
// empty payload. Distinct from ErrFeedParse so callers can surface it as a
// 404-class condition instead of an upstream failure.
var ErrEmptyFeed = errors.New("empty feed")

// ErrFeedParse indicates the market feed payload could not be parsed.
var ErrFeedParse = errors.New("feed parse error")

// ErrFeedUnavailable indicates the market feed could not be reached or
// answered with a non-2xx status.
var ErrFeedUnavailable = errors.New("feed unavailable")

// Package coingecko implements the market feed client against the CoinGecko
// coins/markets endpoint.
package coingecko

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"github.com/dh467/coindesk/internal/middleware"
)

// DefaultBaseURL is the public CoinGecko API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

var _ portsrepo.FeedClient = (*Client)(nil)

// Client fetches market data from the CoinGecko API.
type Client struct {
	baseURL       string
	quoteCurrency string
	client        *http.Client
}

// NewClient creates a new CoinGecko feed client. quoteCurrency is the fixed
// vs_currency parameter (e.g. "twd"); timeout bounds the whole round trip.
func NewClient(baseURL, quoteCurrency string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		quoteCurrency: quoteCurrency,
		client:        &http.Client{Timeout: timeout},
	}
}

// Fetch issues a single GET for the given currency ids and returns the raw
// response body. Network errors, timeouts and non-2xx statuses all surface
// as apperrors.ErrFeedUnavailable; no retries are attempted here.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]byte, error) {
	params := url.Values{}
	params.Set("vs_currency", c.quoteCurrency)
	params.Set("ids", strings.Join(ids, ","))

	reqURL := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode())
	middleware.GetLoggerFromCtx(ctx).Info("Fetching data from CoinGecko API", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create coingecko request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: coingecko returned status %d", apperrors.ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading coingecko response: %v", apperrors.ErrFeedUnavailable, err)
	}
	return body, nil
}

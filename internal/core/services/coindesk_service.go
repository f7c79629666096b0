package services

import (
	"context"
	"sort"
	"time"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/core/domain"
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// displayTimeLayout is the Go layout for the yyyy/MM/dd HH:mm:ss display format.
const displayTimeLayout = "2006/01/02 15:04:05"

// CoindeskService aggregates market feed data with the local mapping table.
type CoindeskService struct {
	mappingRepo     portsrepo.CurrencyMappingReader
	feedClient      portsrepo.FeedClient
	displayLocation *time.Location
}

// NewCoindeskService creates a new CoindeskService. displayLocation is the
// fixed time zone feed timestamps are converted to for display.
func NewCoindeskService(mappingRepo portsrepo.CurrencyMappingReader, feedClient portsrepo.FeedClient, displayLocation *time.Location) *CoindeskService {
	return &CoindeskService{
		mappingRepo:     mappingRepo,
		feedClient:      feedClient,
		displayLocation: displayLocation,
	}
}

// fetchTrackedRaw lists the tracked currency ids and fetches the raw feed
// for them. The emptiness check on the tracked set happens before the feed
// call so an empty table never causes a network round trip. The returned
// payload is probed for well-formedness and non-emptiness.
func (s *CoindeskService) fetchTrackedRaw(ctx context.Context) ([]byte, []string, error) {
	mappings, err := s.mappingRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(mappings) == 0 {
		return nil, nil, apperrors.ErrNoTrackedCurrencies
	}

	ids := make([]string, len(mappings))
	for i, m := range mappings {
		ids[i] = m.ID
	}

	raw, err := s.feedClient.Fetch(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if err := ProbeFeed(raw); err != nil {
		return nil, nil, err
	}
	return raw, ids, nil
}

// GetRawFeed returns the upstream feed body for all tracked currencies.
func (s *CoindeskService) GetRawFeed(ctx context.Context) ([]byte, error) {
	raw, _, err := s.fetchTrackedRaw(ctx)
	return raw, err
}

// GetEnrichedCurrencies fetches the feed and joins it with the locally
// stored display names. The feed round trip and the store read for the join
// run concurrently; the join waits on both. The result is sorted ascending
// by currency id.
func (s *CoindeskService) GetEnrichedCurrencies(ctx context.Context) ([]domain.EnrichedCurrency, error) {
	var (
		raw      []byte
		tracked  []string
		mappings []domain.CurrencyMapping
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, tracked, err = s.fetchTrackedRaw(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		mappings, err = s.mappingRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records, err := ParseFeed(raw)
	if err != nil {
		return nil, err
	}

	// One lookup for the whole batch, not one store read per record.
	displayNames := make(map[string]string, len(mappings))
	for _, m := range mappings {
		displayNames[m.ID] = m.DisplayName
	}
	requested := make(map[string]struct{}, len(tracked))
	for _, id := range tracked {
		requested[id] = struct{}{}
	}

	enriched := make([]domain.EnrichedCurrency, 0, len(records))
	for _, rec := range records {
		// Records the feed volunteered for ids we never asked about are
		// dropped rather than surfaced.
		if _, ok := requested[rec.ID]; !ok {
			continue
		}
		enriched = append(enriched, domain.EnrichedCurrency{
			ID:               rec.ID,
			DisplayName:      displayNames[rec.ID],
			Price:            rec.Price,
			DisplayTimestamp: rec.LastUpdated.In(s.displayLocation).Format(displayTimeLayout),
		})
	}

	sort.Slice(enriched, func(i, j int) bool {
		return enriched[i].ID < enriched[j].ID
	})
	return enriched, nil
}

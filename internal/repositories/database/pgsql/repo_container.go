package pgsql

import (
	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories. The feed client is
// injected separately since it is not database-backed.
func NewRepositoryProvider(dbPool *pgxpool.Pool, feedClient portsrepo.FeedClient) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyMappingRepo: newPgxCurrencyMappingRepository(dbPool),
		FeedClient:          feedClient,
	}
}

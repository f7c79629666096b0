package services

import (
	"time"

	portsrepo "github.com/dh467/coindesk/internal/core/ports/repositories"
	portssvc "github.com/dh467/coindesk/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, displayLocation *time.Location) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CurrencyMapping: NewCurrencyMappingService(repos.CurrencyMappingRepo),
		Coindesk:        NewCoindeskService(repos.CurrencyMappingRepo, repos.FeedClient, displayLocation),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencyMappingSvcFacade = (*CurrencyMappingService)(nil)
	_ portssvc.CoindeskSvcFacade        = (*CoindeskService)(nil)
)

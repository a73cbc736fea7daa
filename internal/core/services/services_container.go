package services

import (
	"time"

	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/cache"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/config"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store cache.Store) (*portssvc.ServiceContainer, error) {
	schema, err := mapping.SchemaByName(cfg.NotionSchema)
	if err != nil {
		return nil, err
	}
	base := BaseService{Now: time.Now}

	invoices := NewInvoiceService(
		repos.Pages,
		cfg.NotionDatabaseID,
		WithSchema(schema),
		WithItemConcurrency(cfg.ItemFetchConcurrency),
		WithInvoiceBase(base),
	)
	cached := NewCachedInvoiceService(invoices, store, cfg.ListCacheTTL)

	return &portssvc.ServiceContainer{
		Invoice: cached,
		Quote:   NewQuoteService(repos.Pages, cfg.NotionQuoteDatabaseID, base),
		Maintenance: NewMaintenanceService(repos.Pages, MaintenanceConfig{
			InvoiceDatabaseID: cfg.NotionDatabaseID,
			ItemsDatabaseID:   cfg.NotionItemsDatabaseID,
			Schema:            schema,
		}, cached, base),
	}, nil
}

package repositories

import (
	"context"

	"github.com/jomei/notionapi"
)

// PageReaderRepository defines read access to document-store pages.
type PageReaderRepository interface {
	// RetrievePage fetches one page. A missing page yields an error matching apperrors.ErrNotFound.
	RetrievePage(ctx context.Context, pageID string) (*notionapi.Page, error)

	// QueryDatabase returns every page of a database matching filter. A nil filter matches all.
	QueryDatabase(ctx context.Context, databaseID string, filter notionapi.Filter) ([]notionapi.Page, error)
}

// PageWriterRepository defines the write operations used by maintenance tasks.
type PageWriterRepository interface {
	// ArchivePage soft-deletes a page.
	ArchivePage(ctx context.Context, pageID string) (*notionapi.Page, error)

	// CreatePage creates a page in a database.
	CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// PageRepositoryFacade combines all page repository interfaces.
type PageRepositoryFacade interface {
	PageReaderRepository
	PageWriterRepository
}

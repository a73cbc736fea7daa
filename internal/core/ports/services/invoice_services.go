package services

import (
	"context"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoiceByID returns the invoice with its items, or nil when it does not exist.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// GetInvoiceItems resolves item ids concurrently. Items that fail to load are
	// dropped, so the result may be shorter than ids. Input order is kept.
	GetInvoiceItems(ctx context.Context, itemIDs []string) []domain.InvoiceItem

	// ListInvoices returns all invoices, optionally only those with status.
	// The result is not sorted.
	ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error)
}

// CacheInvalidatorSvc evicts cached results by tag.
type CacheInvalidatorSvc interface {
	Invalidate(ctx context.Context, tag string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
}

// CachedInvoiceSvcFacade is an invoice service whose cached lists can be invalidated.
type CachedInvoiceSvcFacade interface {
	InvoiceSvcFacade
	CacheInvalidatorSvc
}

// QuoteSvcFacade reads quotes of the legacy schema.
type QuoteSvcFacade interface {
	// GetQuoteByShareToken returns the quote addressed by token, or nil when none matches.
	GetQuoteByShareToken(ctx context.Context, token string) (*domain.Quote, error)
}

// MaintenanceSvcFacade defines operator tasks that write to the document store.
type MaintenanceSvcFacade interface {
	// CleanupDuplicates archives all but the earliest created invoice for each number.
	CleanupDuplicates(ctx context.Context) (*domain.CleanupResult, error)

	// Seed creates sample items and one invoice referencing them.
	Seed(ctx context.Context) (*domain.SeedResult, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
	"github.com/jomei/notionapi"
	"golang.org/x/sync/errgroup"
)

// DefaultItemConcurrency bounds the item fan-out when no limit is configured.
const DefaultItemConcurrency = 10

// invoiceService reads invoices and their items from the document store.
type invoiceService struct {
	BaseService
	pages           portsrepo.PageReaderRepository
	databaseID      string
	schema          mapping.Schema
	itemConcurrency int
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithSchema selects the field-naming convention of the invoice database.
func WithSchema(schema mapping.Schema) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.schema = schema
	}
}

// WithItemConcurrency bounds concurrent item fetches. Values below 1 are ignored.
func WithItemConcurrency(n int) InvoiceServiceOption {
	return func(s *invoiceService) {
		if n > 0 {
			s.itemConcurrency = n
		}
	}
}

// WithInvoiceBase injects shared service settings such as the clock.
func WithInvoiceBase(base BaseService) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.BaseService = base
	}
}

// NewInvoiceService creates an invoice service over the invoice database databaseID.
func NewInvoiceService(pages portsrepo.PageReaderRepository, databaseID string, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		pages:           pages,
		databaseID:      databaseID,
		schema:          mapping.KoreanInvoiceSchema,
		itemConcurrency: DefaultItemConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// GetInvoiceByID returns nil, nil when the page does not exist. Every other
// failure is returned so callers can tell "absent" from "broken".
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	page, err := s.pages.RetrievePage(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Invoice not found", slog.String("invoice_id", invoiceID))
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to retrieve invoice page", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to retrieve invoice %s: %w", invoiceID, err)
	}

	rec, err := mapping.ToInvoiceRecord(page, s.schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to transform invoice %s: %w", invoiceID, err)
	}

	inv := rec.WithItems(s.GetInvoiceItems(ctx, rec.ItemIDs))
	return &inv, nil
}

// GetInvoiceItems fetches every id concurrently and keeps the input order.
// A failed fetch is logged and dropped; it never fails the batch.
func (s *invoiceService) GetInvoiceItems(ctx context.Context, itemIDs []string) []domain.InvoiceItem {
	if len(itemIDs) == 0 {
		return []domain.InvoiceItem{}
	}

	slots := make([]*domain.InvoiceItem, len(itemIDs))
	var g errgroup.Group
	g.SetLimit(s.itemConcurrency)
	for i, id := range itemIDs {
		g.Go(func() error {
			page, err := s.pages.RetrievePage(ctx, id)
			if err != nil {
				s.LogWarn(ctx, err, "Failed to retrieve invoice item, skipping", slog.String("item_id", id))
				return nil
			}
			item, err := mapping.ToInvoiceItem(page, s.schema)
			if err != nil {
				s.LogWarn(ctx, err, "Failed to transform invoice item, skipping", slog.String("item_id", id))
				return nil
			}
			slots[i] = &item
			return nil
		})
	}
	_ = g.Wait()

	items := make([]domain.InvoiceItem, 0, len(itemIDs))
	for _, item := range slots {
		if item != nil {
			items = append(items, *item)
		}
	}
	return items
}

// ListInvoices queries the invoice database once and resolves items per record.
// Records that cannot be transformed are skipped.
func (s *invoiceService) ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	if s.databaseID == "" {
		return nil, fmt.Errorf("%w: invoice database id is not set", apperrors.ErrConfig)
	}

	var filter notionapi.Filter
	if status != nil {
		label, ok := s.schema.LabelForStatus(*status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *status)
		}
		filter = notion.SelectEquals(s.schema.Status, label)
	}

	pages, err := s.pages.QueryDatabase(ctx, s.databaseID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to query invoice database")
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	now := s.now()
	invoices := make([]domain.Invoice, 0, len(pages))
	for i := range pages {
		rec, err := mapping.ToInvoiceRecord(&pages[i], s.schema, now)
		if err != nil {
			s.LogWarn(ctx, err, "Skipping invoice record", slog.Int("index", i))
			continue
		}
		invoices = append(invoices, rec.WithItems(s.GetInvoiceItems(ctx, rec.ItemIDs)))
	}

	s.LogDebug(ctx, "Listed invoices", slog.Int("count", len(invoices)))
	return invoices, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/cache"
)

const (
	// InvoicesTag groups every cached invoice list.
	InvoicesTag = "invoices"

	// DefaultListTTL is how long a successful invoice list stays cached.
	DefaultListTTL = 60 * time.Second
)

// cachedInvoiceService layers the two caches over an invoice service: lookups by
// id are memoized per request, and lists are shared across requests for a short
// window. Only successful results are cached.
type cachedInvoiceService struct {
	BaseService
	next  portssvc.InvoiceSvcFacade
	store cache.Store
	ttl   time.Duration
}

// NewCachedInvoiceService wraps next. A ttl of zero uses DefaultListTTL.
func NewCachedInvoiceService(next portssvc.InvoiceSvcFacade, store cache.Store, ttl time.Duration) portssvc.CachedInvoiceSvcFacade {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &cachedInvoiceService{next: next, store: store, ttl: ttl}
}

var _ portssvc.CachedInvoiceSvcFacade = (*cachedInvoiceService)(nil)

func (s *cachedInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return cache.Memoize(ctx, "invoice:"+invoiceID, func(ctx context.Context) (*domain.Invoice, error) {
		return s.next.GetInvoiceByID(ctx, invoiceID)
	})
}

func (s *cachedInvoiceService) GetInvoiceItems(ctx context.Context, itemIDs []string) []domain.InvoiceItem {
	return s.next.GetInvoiceItems(ctx, itemIDs)
}

// ListInvoices serves from the shared store when possible. Store failures are
// logged and the upstream is used directly.
func (s *cachedInvoiceService) ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	key := listKey(status)

	if raw, ok, err := s.store.Get(ctx, key); err != nil {
		s.LogWarn(ctx, err, "Invoice list cache read failed", slog.String("key", key))
	} else if ok {
		var invoices []domain.Invoice
		if err := json.Unmarshal(raw, &invoices); err != nil {
			s.LogWarn(ctx, err, "Invoice list cache entry is corrupt", slog.String("key", key))
		} else {
			s.LogDebug(ctx, "Invoice list cache hit", slog.String("key", key))
			return invoices, nil
		}
	}

	invoices, err := s.next.ListInvoices(ctx, status)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(invoices)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to encode invoice list for cache", slog.String("key", key))
		return invoices, nil
	}
	if err := s.store.Set(ctx, key, raw, s.ttl, InvoicesTag); err != nil {
		s.LogWarn(ctx, err, "Invoice list cache write failed", slog.String("key", key))
	}
	return invoices, nil
}

// Invalidate evicts every list cached under tag.
func (s *cachedInvoiceService) Invalidate(ctx context.Context, tag string) error {
	if err := s.store.InvalidateTag(ctx, tag); err != nil {
		s.LogError(ctx, err, "Failed to invalidate cache tag", slog.String("tag", tag))
		return fmt.Errorf("failed to invalidate %s: %w", tag, err)
	}
	s.LogInfo(ctx, "Cache tag invalidated", slog.String("tag", tag))
	return nil
}

func listKey(status *domain.InvoiceStatus) string {
	if status == nil {
		return InvoicesTag + ":all"
	}
	return InvoicesTag + ":" + string(*status)
}

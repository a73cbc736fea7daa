package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
)

const (
	seedClientName = "XYZ 디자인"
	seedDueDays    = 30
)

var seedItems = []struct {
	name      string
	quantity  int64
	unitPrice int64
}{
	{"웹사이트 디자인", 1, 300000},
	{"로고 제작", 2, 50000},
	{"명함 디자인", 100, 10000},
}

// MaintenanceConfig names the databases maintenance tasks write to.
type MaintenanceConfig struct {
	InvoiceDatabaseID string
	ItemsDatabaseID   string
	Schema            mapping.Schema
}

type maintenanceService struct {
	BaseService
	pages       portsrepo.PageRepositoryFacade
	cfg         MaintenanceConfig
	invalidator portssvc.CacheInvalidatorSvc
}

// NewMaintenanceService creates the maintenance service. invalidator may be nil.
func NewMaintenanceService(pages portsrepo.PageRepositoryFacade, cfg MaintenanceConfig, invalidator portssvc.CacheInvalidatorSvc, base BaseService) portssvc.MaintenanceSvcFacade {
	if cfg.Schema.Name == "" {
		cfg.Schema = mapping.KoreanInvoiceSchema
	}
	return &maintenanceService{BaseService: base, pages: pages, cfg: cfg, invalidator: invalidator}
}

var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

// CleanupDuplicates keeps the earliest created page of every invoice number and
// archives the rest one by one. Pages without a number are left alone.
func (s *maintenanceService) CleanupDuplicates(ctx context.Context) (*domain.CleanupResult, error) {
	if s.cfg.InvoiceDatabaseID == "" {
		return nil, fmt.Errorf("%w: invoice database id is not set", apperrors.ErrConfig)
	}

	pages, err := s.pages.QueryDatabase(ctx, s.cfg.InvoiceDatabaseID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to query invoices for cleanup")
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	result := &domain.CleanupResult{DeletedIDs: []string{}, Failed: []domain.FailedArchive{}}
	for _, dup := range duplicatesOf(pages, s.cfg.Schema.InvoiceNumber) {
		if _, err := s.pages.ArchivePage(ctx, string(dup.ID)); err != nil {
			s.LogWarn(ctx, err, "Failed to archive duplicate invoice", slog.String("page_id", string(dup.ID)))
			result.Failed = append(result.Failed, domain.FailedArchive{ID: string(dup.ID), Error: err.Error()})
			continue
		}
		result.DeletedIDs = append(result.DeletedIDs, string(dup.ID))
	}

	s.LogInfo(ctx, "Duplicate cleanup finished",
		slog.Int("deleted", result.DeletedCount()),
		slog.Int("failed", result.FailedCount()))

	if result.DeletedCount() > 0 {
		s.invalidate(ctx)
	}
	return result, nil
}

// duplicatesOf returns, per invoice number in order of first appearance, every
// page but the earliest created one. Ties on created time fall back to page id.
func duplicatesOf(pages []notionapi.Page, numberField string) []notionapi.Page {
	groups := make(map[string][]notionapi.Page)
	var order []string
	for _, p := range pages {
		number := strings.TrimSpace(mapping.GetTextProperty(p.Properties, numberField))
		if number == "" {
			continue
		}
		if _, seen := groups[number]; !seen {
			order = append(order, number)
		}
		groups[number] = append(groups[number], p)
	}

	var dups []notionapi.Page
	for _, number := range order {
		group := groups[number]
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].CreatedTime.Equal(group[j].CreatedTime) {
				return group[i].ID < group[j].ID
			}
			return group[i].CreatedTime.Before(group[j].CreatedTime)
		})
		dups = append(dups, group[1:]...)
	}
	return dups
}

// Seed creates three sample items and an invoice relating them. Items that fail
// to create are skipped; the invoice total is the sum of the created items.
func (s *maintenanceService) Seed(ctx context.Context) (*domain.SeedResult, error) {
	if s.cfg.ItemsDatabaseID == "" {
		return nil, fmt.Errorf("%w: items database id is not set", apperrors.ErrValidation)
	}
	if s.cfg.InvoiceDatabaseID == "" {
		return nil, fmt.Errorf("%w: invoice database id is not set", apperrors.ErrConfig)
	}

	total := decimal.Zero
	itemIDs := make([]string, 0, len(seedItems))
	for _, si := range seedItems {
		item := domain.InvoiceItem{
			Name:      si.name,
			Quantity:  decimal.NewFromInt(si.quantity),
			UnitPrice: decimal.NewFromInt(si.unitPrice),
		}
		item.Amount = item.Quantity.Mul(item.UnitPrice)

		page, err := s.pages.CreatePage(ctx, &notionapi.PageCreateRequest{
			Parent:     databaseParent(s.cfg.ItemsDatabaseID),
			Properties: mapping.ToInvoiceItemProperties(item, s.cfg.Schema),
		})
		if err != nil {
			s.LogWarn(ctx, err, "Failed to create seed item, skipping", slog.String("name", item.Name))
			continue
		}
		itemIDs = append(itemIDs, string(page.ID))
		total = total.Add(item.Amount)
	}
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("failed to create any seed item")
	}

	now := s.now()
	inv := domain.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%d-%s", now.Year(), strings.ToUpper(uuid.NewString()[:8])),
		ClientName:    seedClientName,
		IssueDate:     now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, seedDueDays).Format("2006-01-02"),
		Status:        domain.StatusPending,
		TotalAmount:   total,
	}
	page, err := s.pages.CreatePage(ctx, &notionapi.PageCreateRequest{
		Parent:     databaseParent(s.cfg.InvoiceDatabaseID),
		Properties: mapping.ToInvoiceProperties(inv, itemIDs, s.cfg.Schema),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create seed invoice", slog.String("number", inv.InvoiceNumber))
		return nil, fmt.Errorf("failed to create invoice %s: %w", inv.InvoiceNumber, err)
	}

	s.LogInfo(ctx, "Seed data created", slog.String("invoice_id", string(page.ID)), slog.Int("items", len(itemIDs)))
	s.invalidate(ctx)

	return &domain.SeedResult{InvoiceID: string(page.ID), InvoiceNumber: inv.InvoiceNumber, ItemIDs: itemIDs}, nil
}

func databaseParent(databaseID string) notionapi.Parent {
	return notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: notionapi.DatabaseID(databaseID)}
}

func (s *maintenanceService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, InvoicesTag); err != nil {
		s.LogWarn(ctx, err, "Cache invalidation after maintenance failed")
	}
}

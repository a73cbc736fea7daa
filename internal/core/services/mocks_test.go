package services_test

import (
	"context"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/mock"
)

// --- Mock PageRepository ---
type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) RetrievePage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notionapi.Page), args.Error(1)
}

func (m *MockPageRepository) QueryDatabase(ctx context.Context, databaseID string, filter notionapi.Filter) ([]notionapi.Page, error) {
	args := m.Called(ctx, databaseID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notionapi.Page), args.Error(1)
}

func (m *MockPageRepository) ArchivePage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notionapi.Page), args.Error(1)
}

func (m *MockPageRepository) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notionapi.Page), args.Error(1)
}

var _ portsrepo.PageRepositoryFacade = (*MockPageRepository)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceItems(ctx context.Context, itemIDs []string) []domain.InvoiceItem {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]domain.InvoiceItem)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock CacheInvalidator ---
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, tag string) error {
	return m.Called(ctx, tag).Error(0)
}

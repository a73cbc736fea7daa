package handlers_test

import (
	"context"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CachedInvoiceSvcFacade ---
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

func (m *MockInvoiceService) Invalidate(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// --- Mock QuoteSvcFacade ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GetQuoteByShareToken(ctx context.Context, token string) (*domain.Quote, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

// --- Mock MaintenanceSvcFacade ---
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) CleanupDuplicates(ctx context.Context) (*domain.CleanupResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CleanupResult), args.Error(1)
}

func (m *MockMaintenanceService) Seed(ctx context.Context) (*domain.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedResult), args.Error(1)
}

// --- Mock pdf.Renderer ---
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/core/services"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func invoicePage(id, number, status string, itemIDs ...string) notionapi.Page {
	return notionapi.Page{ID: notionapi.ObjectID(id), Properties: mapping.Properties{
		"견적서 번호":   notion.Title(number),
		"클라이언트 이름": notion.Text("ABC"),
		"발행일":      notion.Date("2026-02-01"),
		"총금액":      notion.Number(1000),
		"상태":       notion.Select(status),
		"항목":       notion.Relation(itemIDs...),
	}}
}

func itemPageFor(id, name string, qty, price float64) *notionapi.Page {
	return &notionapi.Page{ID: notionapi.ObjectID(id), Properties: mapping.Properties{
		"항목명": notion.Title(name),
		"수량":  notion.Number(qty),
		"단가":  notion.Number(price),
	}}
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPageRepository
	service  portssvc.InvoiceSvcFacade
	ctx      context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPageRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo, "db-invoices",
		services.WithSchema(mapping.KoreanInvoiceSchema),
		services.WithItemConcurrency(2),
		services.WithInvoiceBase(services.BaseService{Now: func() time.Time { return testNow }}),
	)
	suite.ctx = context.Background()
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_Success() {
	page := invoicePage("inv-1", "INV-001", "승인", "i1", "i2")
	suite.mockRepo.On("RetrievePage", suite.ctx, "inv-1").Return(&page, nil).Once()
	suite.mockRepo.On("RetrievePage", suite.ctx, "i1").Return(itemPageFor("i1", "디자인", 3, 1000), nil).Once()
	suite.mockRepo.On("RetrievePage", suite.ctx, "i2").Return(itemPageFor("i2", "개발", 1, 500), nil).Once()

	inv, err := suite.service.GetInvoiceByID(suite.ctx, "inv-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(inv)
	suite.Equal("INV-001", inv.InvoiceNumber)
	suite.Equal(domain.StatusApproved, inv.Status)
	suite.Equal(testNow, inv.CreatedAt)
	suite.Require().Len(inv.Items, 2)
	suite.Equal("i1", inv.Items[0].ID)
	suite.True(decimal.NewFromInt(3000).Equal(inv.Items[0].Amount))
	suite.Equal("i2", inv.Items[1].ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_NotFoundIsNil() {
	notFound := fmt.Errorf("%w: %w", apperrors.ErrNotFound, &notionapi.Error{Status: 404, Code: "object_not_found", Message: "missing"})
	suite.mockRepo.On("RetrievePage", suite.ctx, "gone").Return(nil, notFound).Once()

	inv, err := suite.service.GetInvoiceByID(suite.ctx, "gone")

	suite.NoError(err)
	suite.Nil(inv)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_ServerErrorPropagates() {
	boom := &notionapi.Error{Status: 500, Code: "internal_server_error", Message: "internal"}
	suite.mockRepo.On("RetrievePage", suite.ctx, "inv-1").Return(nil, boom).Once()

	inv, err := suite.service.GetInvoiceByID(suite.ctx, "inv-1")

	suite.Nil(inv)
	suite.Require().Error(err)
	suite.False(errors.Is(err, apperrors.ErrNotFound))
	var apiErr *notionapi.Error
	suite.True(errors.As(err, &apiErr))
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceItems_PartialFailureKeepsOrder() {
	suite.mockRepo.On("RetrievePage", suite.ctx, "a").Return(itemPageFor("a", "A", 1, 1), nil).Once()
	suite.mockRepo.On("RetrievePage", suite.ctx, "b").Return(nil, errors.New("timeout")).Once()
	suite.mockRepo.On("RetrievePage", suite.ctx, "c").Return(itemPageFor("c", "C", 1, 1), nil).Once()

	items := suite.service.GetInvoiceItems(suite.ctx, []string{"a", "b", "c"})

	suite.Require().Len(items, 2)
	suite.Equal("a", items[0].ID)
	suite.Equal("c", items[1].ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceItems_ManyItemsBounded() {
	ids := make([]string, 25)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%02d", i)
		suite.mockRepo.On("RetrievePage", suite.ctx, ids[i]).Return(itemPageFor(ids[i], ids[i], 1, 10), nil).Once()
	}

	items := suite.service.GetInvoiceItems(suite.ctx, ids)

	suite.Require().Len(items, len(ids))
	for i, item := range items {
		suite.Equal(ids[i], item.ID)
	}
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceItems_Empty() {
	items := suite.service.GetInvoiceItems(suite.ctx, nil)
	suite.NotNil(items)
	suite.Empty(items)
	suite.mockRepo.AssertNotCalled(suite.T(), "RetrievePage", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_FilterUsesLocalizedLabel() {
	status := domain.StatusPending
	suite.mockRepo.On("QueryDatabase", suite.ctx, "db-invoices", notion.SelectEquals("상태", "대기")).
		Return([]notionapi.Page{invoicePage("inv-1", "INV-001", "대기")}, nil).Once()

	invoices, err := suite.service.ListInvoices(suite.ctx, &status)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.Equal(domain.StatusPending, invoices[0].Status)
	suite.NotNil(invoices[0].Items)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_SkipsUnusableRecords() {
	pages := []notionapi.Page{
		invoicePage("inv-1", "INV-001", "승인", "i1"),
		{Properties: mapping.Properties{}},
		invoicePage("inv-3", "INV-003", "모름"),
	}
	suite.mockRepo.On("QueryDatabase", suite.ctx, "db-invoices", nil).Return(pages, nil).Once()
	suite.mockRepo.On("RetrievePage", suite.ctx, "i1").Return(nil, errors.New("gone")).Once()

	invoices, err := suite.service.ListInvoices(suite.ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 2)
	suite.Equal("inv-1", invoices[0].ID)
	suite.Empty(invoices[0].Items)
	suite.Equal("inv-3", invoices[1].ID)
	suite.Equal(domain.StatusPending, invoices[1].Status)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_QueryErrorPropagates() {
	suite.mockRepo.On("QueryDatabase", suite.ctx, "db-invoices", nil).
		Return(nil, errors.New("unauthorized")).Once()

	invoices, err := suite.service.ListInvoices(suite.ctx, nil)

	suite.Nil(invoices)
	suite.Error(err)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_UnknownStatus() {
	status := domain.InvoiceStatus("archived")
	_, err := suite.service.ListInvoices(suite.ctx, &status)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestListInvoices_MissingDatabaseID(t *testing.T) {
	svc := services.NewInvoiceService(new(MockPageRepository), "")
	_, err := svc.ListInvoices(context.Background(), nil)
	if !errors.Is(err, apperrors.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

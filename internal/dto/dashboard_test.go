package dto_test

import (
	"testing"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/SscSPs/notion_quote_viewer/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inv(id, issue string, status domain.InvoiceStatus, amount int64) domain.Invoice {
	return domain.Invoice{ID: id, IssueDate: issue, Status: status, TotalAmount: decimal.NewFromInt(amount)}
}

func TestToDashboardSummary(t *testing.T) {
	invoices := []domain.Invoice{
		inv("a", "2026-01-01", domain.StatusPending, 100),
		inv("b", "2026-03-01", domain.StatusApproved, 200),
		inv("c", "2026-02-01", domain.StatusPending, 300),
		inv("d", "", domain.StatusRejected, 400),
		inv("e", "2026-02-15", domain.StatusApproved, 500),
		inv("f", "2025-12-31", domain.StatusApproved, 600),
	}

	s := dto.ToDashboardSummary(invoices)

	assert.Equal(t, 6, s.TotalCount)
	assert.Equal(t, 2, s.StatusCounts[domain.StatusPending])
	assert.Equal(t, 3, s.StatusCounts[domain.StatusApproved])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusRejected])
	assert.True(t, decimal.NewFromInt(2100).Equal(s.TotalAmount))
	assert.True(t, decimal.NewFromInt(400).Equal(s.PendingAmount))

	require.Len(t, s.Recent, 5)
	ids := make([]string, len(s.Recent))
	for i, r := range s.Recent {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"b", "e", "c", "a", "f"}, ids)
	assert.Equal(t, "a", invoices[0].ID, "input must not be reordered")
}

func TestToDashboardSummary_Empty(t *testing.T) {
	s := dto.ToDashboardSummary(nil)
	assert.Zero(t, s.TotalCount)
	assert.Equal(t, 0, s.StatusCounts[domain.StatusApproved])
	assert.True(t, s.TotalAmount.IsZero())
	assert.Empty(t, s.Recent)
}

func TestFilterByStatus(t *testing.T) {
	invoices := []domain.Invoice{
		inv("a", "", domain.StatusPending, 1),
		inv("b", "", domain.StatusApproved, 1),
	}
	approved := domain.StatusApproved
	assert.Len(t, dto.FilterByStatus(invoices, nil), 2)
	got := dto.FilterByStatus(invoices, &approved)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestToCleanupResponse(t *testing.T) {
	none := dto.ToCleanupResponse(&domain.CleanupResult{})
	assert.Equal(t, "중복 견적서가 없습니다.", none.Message)

	some := dto.ToCleanupResponse(&domain.CleanupResult{
		DeletedIDs: []string{"x"},
		Failed:     []domain.FailedArchive{{ID: "y", Error: "conflict"}},
	})
	assert.Equal(t, "중복 제거 완료", some.Message)
	assert.Equal(t, 1, some.DeletedCount)
	assert.Equal(t, 1, some.FailedCount)
}

func TestToInvoiceTable(t *testing.T) {
	invoices := []domain.Invoice{
		inv("a", "2026-01-01", domain.StatusPending, 1),
		inv("b", "2026-03-01", domain.StatusApproved, 1),
		inv("c", "2026-02-01", domain.StatusPending, 1),
	}

	all := dto.ToInvoiceTable(invoices, nil)
	require.Len(t, all.Tabs, 4)
	assert.True(t, all.Tabs[0].Active)
	assert.Equal(t, 3, all.Tabs[0].Count)
	assert.Equal(t, 2, all.Tabs[1].Count)
	require.Len(t, all.Rows, 3)
	assert.Equal(t, "b", all.Rows[0].ID)

	pending := domain.StatusPending
	filtered := dto.ToInvoiceTable(invoices, &pending)
	assert.False(t, filtered.Tabs[0].Active)
	assert.True(t, filtered.Tabs[1].Active)
	require.Len(t, filtered.Rows, 2)
	assert.Equal(t, "c", filtered.Rows[0].ID)
	assert.Equal(t, "a", filtered.Rows[1].ID)
	assert.Equal(t, 3, filtered.Total)
}
